package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// chunkHeaderLen is the size of the length and type fields.
	chunkHeaderLen = 8
	// chunkCRCLen is the size of the trailing checksum.
	chunkCRCLen = 4
)

// A Chunk is a single PNG chunk.
// Its checksum is always computed from its type and data, so a Chunk cannot
// carry a stale or forged checksum.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk returns a chunk holding a copy of data.
func NewChunk(t ChunkType, data []byte) Chunk {
	d := bytes.Clone(data)
	if d == nil {
		d = []byte{}
	}
	return Chunk{
		length: uint32(len(d)),
		typ:    t,
		data:   d,
		crc:    checksum(t, d),
	}
}

// DecodeChunk decodes the chunk at the start of b.
// Bytes after the chunk's checksum are ignored.
func DecodeChunk(b []byte) (Chunk, error) {
	if len(b) < chunkHeaderLen {
		return Chunk{}, errors.Wrapf(ErrTruncatedInput, "chunk header needs %d bytes, have %d", chunkHeaderLen, len(b))
	}
	length := binary.BigEndian.Uint32(b[:4])
	var code [4]byte
	copy(code[:], b[4:8])
	t := ChunkTypeFromBytes(code)

	rest := b[chunkHeaderLen:]
	if uint64(length) > uint64(len(rest)) {
		return Chunk{}, errors.Wrapf(ErrTruncatedInput, "chunk %v declares %d bytes, have %d", t, length, len(rest))
	}
	data := rest[:length]
	rest = rest[length:]
	if len(rest) < chunkCRCLen {
		return Chunk{}, errors.Wrapf(ErrMissingChecksum, "chunk %v", t)
	}

	stored := binary.BigEndian.Uint32(rest[:chunkCRCLen])
	computed := checksum(t, data)
	if stored != computed {
		return Chunk{}, errors.Wrapf(ErrChecksumMismatch, "chunk %v: stored %d, computed %d", t, stored, computed)
	}

	return Chunk{
		length: length,
		typ:    t,
		data:   bytes.Clone(data),
		crc:    stored,
	}, nil
}

// Length returns the number of data bytes.
func (c Chunk) Length() uint32 { return c.length }

// Type returns the chunk type.
func (c Chunk) Type() ChunkType { return c.typ }

// Data returns the chunk data.
// Users must take care of not modifying the returned buffer.
func (c Chunk) Data() []byte { return c.data }

// CRC returns the CRC-32 of the chunk type and data.
func (c Chunk) CRC() uint32 { return c.crc }

// DataAsString returns the chunk data as text.
func (c Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", errors.Wrapf(ErrInvalidUTF8, "chunk %v", c.typ)
	}
	return string(c.data), nil
}

// EncodedLen returns the number of bytes Encode produces.
func (c Chunk) EncodedLen() int {
	return chunkHeaderLen + len(c.data) + chunkCRCLen
}

// Encode returns the wire form of the chunk.
func (c Chunk) Encode() []byte {
	return c.AppendEncoded(make([]byte, 0, c.EncodedLen()))
}

// AppendEncoded appends the wire form of the chunk to dst.
func (c Chunk) AppendEncoded(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.length)
	dst = append(dst, c.typ.code[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

func (c Chunk) String() string {
	return fmt.Sprintf("Chunk{Length: %d, Type: %v, CRC: %d, Data: %q}", c.length, c.typ, c.crc, c.data)
}

func checksum(t ChunkType, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(t.code[:])
	crc.Write(data)
	return crc.Sum32()
}
