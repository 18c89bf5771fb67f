package png

import "github.com/pkg/errors"

// A FormatError reports that the input is not a valid PNG.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// Errors returned by this package are wrapped with context and should be
// compared with errors.Is.
var (
	ErrBadSignature      = FormatError("not a PNG file")
	ErrTruncatedInput    = FormatError("chunk data truncated")
	ErrMissingChecksum   = FormatError("missing checksum")
	ErrChecksumMismatch  = FormatError("invalid checksum")
	ErrInvalidTypeString = FormatError("invalid chunk type")
	ErrInvalidUTF8       = FormatError("chunk data is not valid UTF-8")

	ErrNotFound = errors.New("png: chunk not found")
)
