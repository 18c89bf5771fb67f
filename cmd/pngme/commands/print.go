package commands

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	png "github.com/fumin/pngme"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print FILE...",
		Short: "List the chunks of PNG files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pngs := make([]*png.PNG, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					p, err := readPNG(path)
					if err != nil {
						return err
					}
					pngs[i] = p
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i, p := range pngs {
				if len(args) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", args[i])
				}
				fmt.Fprint(cmd.OutOrStdout(), chunkTable(p))
			}
			return nil
		},
	}
}

func chunkTable(p *png.PNG) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.Header([]string{"#", "TYPE", "FLAGS", "SIZE", "CRC"})
	for i, c := range p.Chunks() {
		table.Append([]string{
			strconv.Itoa(i),
			c.Type().String(),
			chunkFlags(c.Type()),
			units.HumanSize(float64(c.Length())),
			fmt.Sprintf("%08x", c.CRC()),
		})
	}
	table.Render()
	return buf.String()
}

func chunkFlags(t png.ChunkType) string {
	var flags []string
	if t.IsCritical() {
		flags = append(flags, "critical")
	} else {
		flags = append(flags, "ancillary")
	}
	if t.IsPublic() {
		flags = append(flags, "public")
	} else {
		flags = append(flags, "private")
	}
	if t.IsSafeToCopy() {
		flags = append(flags, "safe-to-copy")
	}
	if !t.IsValid() {
		flags = append(flags, "invalid")
	}
	return strings.Join(flags, ",")
}
