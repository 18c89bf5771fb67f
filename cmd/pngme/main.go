// pngme hides messages in PNG files by adding, reading and removing chunks.
package main

import (
	"os"

	"github.com/fumin/pngme/cmd/pngme/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
