package commands

import (
	"fmt"

	png "github.com/fumin/pngme"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "encode FILE CHUNK_TYPE MESSAGE",
		Short: "Append a message chunk to a PNG file",
		Long: `Append a chunk of type CHUNK_TYPE holding MESSAGE to FILE.
The file is replaced unless --output is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, typ, message := args[0], args[1], args[2]
			ct, err := png.ParseChunkType(typ)
			if err != nil {
				return err
			}
			if !ct.IsValid() {
				log.WithField("type", typ).Warn("chunk type has an invalid reserved bit")
			}
			if ct.IsCritical() {
				log.WithField("type", typ).Warn("critical chunk types make the file unreadable to decoders that do not know them")
			}

			p, err := readPNG(path)
			if err != nil {
				return err
			}
			chunk := png.NewChunk(ct, []byte(message))
			p.AppendChunk(chunk)

			if output == "" {
				output = path
			}
			if err := writePNG(output, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Encoded %d bytes as %v into %s\n", chunk.Length(), ct, output)
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "Write the result to this file instead of FILE")
	return c
}
