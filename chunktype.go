package png

import (
	"fmt"

	"github.com/pkg/errors"
)

// A ChunkType is the 4-byte type code of a PNG chunk.
// The case of each letter encodes a property bit, as per the PNG spec.
// https://www.w3.org/TR/png/#5Chunk-naming-conventions
type ChunkType struct {
	code [4]byte
}

// ChunkTypeFromBytes returns the chunk type with the given code.
// The code is not validated, so that non-conforming files still round trip.
func ChunkTypeFromBytes(b [4]byte) ChunkType {
	return ChunkType{code: b}
}

// ParseChunkType parses a 4 letter chunk type such as "IHDR" or "tEXt".
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, errors.Wrapf(ErrInvalidTypeString, "%q has length %d", s, len(s))
	}
	var b [4]byte
	for i := 0; i < 4; i++ {
		if !isLetter(s[i]) {
			return ChunkType{}, errors.Wrapf(ErrInvalidTypeString, "%q has non alphabetic byte at %d", s, i)
		}
		b[i] = s[i]
	}
	return ChunkTypeFromBytes(b), nil
}

// Bytes returns the type code.
func (t ChunkType) Bytes() [4]byte {
	return t.code
}

// IsCritical reports whether the ancillary bit is 0.
func (t ChunkType) IsCritical() bool { return isUpper(t.code[0]) }

// IsPublic reports whether the private bit is 0.
func (t ChunkType) IsPublic() bool { return isUpper(t.code[1]) }

// IsReservedBitValid reports whether the reserved bit is 0, as required by
// the current version of PNG.
func (t ChunkType) IsReservedBitValid() bool { return isUpper(t.code[2]) }

// IsSafeToCopy reports whether the safe-to-copy bit is 1.
func (t ChunkType) IsSafeToCopy() bool { return isLower(t.code[3]) }

// IsValid reports whether the code consists of ASCII letters and has a valid reserved bit.
func (t ChunkType) IsValid() bool {
	for _, c := range t.code {
		if !isLetter(c) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// Text returns the type code as an ASCII string.
func (t ChunkType) Text() (string, error) {
	for i, c := range t.code {
		if c >= 0x80 {
			return "", errors.Wrapf(ErrInvalidTypeString, "non ASCII byte 0x%02x at %d", c, i)
		}
	}
	return string(t.code[:]), nil
}

func (t ChunkType) String() string {
	s, err := t.Text()
	if err != nil {
		return fmt.Sprintf("%q", t.code[:])
	}
	return s
}

func isUpper(c byte) bool  { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool  { return 'a' <= c && c <= 'z' }
func isLetter(c byte) bool { return isUpper(c) || isLower(c) }
