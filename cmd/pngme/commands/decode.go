package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE CHUNK_TYPE",
		Short: "Print the message in the first chunk of a type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPNG(args[0])
			if err != nil {
				return err
			}
			chunk, err := p.ChunkByType(args[1])
			if err != nil {
				return err
			}
			message, err := chunk.DataAsString()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}
