// Package png implements a chunk level PNG codec.
// It decodes a PNG datastream into its ordered chunks, verifying every
// checksum, and encodes them back byte for byte. Pixel data is not
// decompressed.
package png

import (
	"github.com/pkg/errors"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// A PNG is a signature followed by an ordered list of chunks.
// Chunk order is kept as is; the PNG ordering rules for IHDR, IDAT, IEND
// and friends are left to the caller.
//
// A PNG is not safe for concurrent use.
type PNG struct {
	chunks []Chunk
}

// New returns a PNG holding the given chunks in order.
func New(chunks []Chunk) *PNG {
	return &PNG{chunks: append([]Chunk(nil), chunks...)}
}

// Signature returns the 8 byte PNG signature.
func (p *PNG) Signature() [8]byte {
	var s [8]byte
	copy(s[:], pngHeader)
	return s
}

// Chunks returns the chunks in order.
// The returned slice is a copy, modifying it does not affect p.
func (p *PNG) Chunks() []Chunk {
	return append([]Chunk(nil), p.chunks...)
}

// Len returns the number of chunks.
func (p *PNG) Len() int {
	return len(p.chunks)
}

// ChunkByType returns the first chunk whose type is typ.
func (p *PNG) ChunkByType(typ string) (Chunk, error) {
	i := p.index(typ)
	if i < 0 {
		return Chunk{}, errors.Wrap(ErrNotFound, typ)
	}
	return p.chunks[i], nil
}

// AppendChunk adds c after the last chunk.
func (p *PNG) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk whose type is typ.
func (p *PNG) RemoveFirstChunk(typ string) (Chunk, error) {
	i := p.index(typ)
	if i < 0 {
		return Chunk{}, errors.Wrap(ErrNotFound, typ)
	}
	c := p.chunks[i]
	copy(p.chunks[i:], p.chunks[i+1:])
	p.chunks[len(p.chunks)-1] = Chunk{}
	p.chunks = p.chunks[:len(p.chunks)-1]
	return c, nil
}

func (p *PNG) index(typ string) int {
	for i, c := range p.chunks {
		if s, err := c.typ.Text(); err == nil && s == typ {
			return i
		}
	}
	return -1
}
