package png

import (
	"github.com/pkg/errors"
)

// Decode decodes a complete PNG datastream.
// Any invalid chunk fails the whole decode.
func Decode(b []byte) (*PNG, error) {
	if err := checkHeader(b); err != nil {
		return nil, err
	}

	p := &PNG{}
	for off := len(pngHeader); off < len(b); {
		c, err := DecodeChunk(b[off:])
		if err != nil {
			return nil, errors.Wrapf(err, "chunk %d at offset %d", len(p.chunks), off)
		}
		p.chunks = append(p.chunks, c)
		off += c.EncodedLen()
	}
	return p, nil
}

func checkHeader(b []byte) error {
	if len(b) < len(pngHeader) {
		return errors.Wrapf(ErrBadSignature, "%d bytes is shorter than the signature", len(b))
	}
	if string(b[:len(pngHeader)]) != pngHeader {
		return errors.Wrapf(ErrBadSignature, "got %x", b[:len(pngHeader)])
	}
	return nil
}
