package commands

import (
	"os"

	png "github.com/fumin/pngme"
	"github.com/moby/sys/atomicwriter"
	"github.com/pkg/errors"
)

func readPNG(path string) (*png.PNG, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	p, err := png.Decode(b)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	log.WithField("file", path).WithField("chunks", p.Len()).Debug("decoded PNG")
	return p, nil
}

// writePNG replaces path with p, keeping the permissions of an existing file.
func writePNG(path string, p *png.PNG) error {
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := atomicwriter.WriteFile(path, p.Encode(), perm); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	log.WithField("file", path).WithField("chunks", p.Len()).Debug("wrote PNG")
	return nil
}
