package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE CHUNK_TYPE",
		Short: "Remove the first chunk of a type from a PNG file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typ := args[0], args[1]
			p, err := readPNG(path)
			if err != nil {
				return err
			}
			chunk, err := p.RemoveFirstChunk(typ)
			if err != nil {
				return err
			}
			if err := writePNG(path, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %v\n", chunk)
			return nil
		},
	}
}
