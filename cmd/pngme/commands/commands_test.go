package commands

import (
	"bytes"
	"errors"
	"image"
	stdpng "image/png"
	"os"
	"path/filepath"
	"testing"

	png "github.com/fumin/pngme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, stdpng.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 3, 2))))
	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeDecodeRemove(t *testing.T) {
	path := writeTestPNG(t)
	orig, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = run(t, "encode", path, "ruSt", "This is a secret message!")
	require.NoError(t, err)

	out, err := run(t, "decode", path, "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "This is a secret message!\n", out)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())

	out, err = run(t, "remove", path, "ruSt")
	require.NoError(t, err)
	assert.Contains(t, out, "ruSt")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, b)

	_, err = run(t, "decode", path, "ruSt")
	assert.True(t, errors.Is(err, png.ErrNotFound), "%v", err)
}

func TestEncodeOutput(t *testing.T) {
	path := writeTestPNG(t)
	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	output := filepath.Join(filepath.Dir(path), "out.png")

	_, err = run(t, "encode", "--output", output, path, "teSt", "hello")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, b)

	out, err := run(t, "decode", output, "teSt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestEncodeInvalidType(t *testing.T) {
	path := writeTestPNG(t)
	_, err := run(t, "encode", path, "ru5t", "hello")
	assert.True(t, errors.Is(err, png.ErrInvalidTypeString), "%v", err)
}

func TestDecodeNotPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.png")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a, certainly not a PNG"), 0o600))
	_, err := run(t, "decode", path, "ruSt")
	assert.True(t, errors.Is(err, png.ErrBadSignature), "%v", err)
}

func TestPrint(t *testing.T) {
	a, b := writeTestPNG(t), writeTestPNG(t)
	_, err := run(t, "encode", b, "ruSt", "secret")
	require.NoError(t, err)

	out, err := run(t, "print", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, a+":")
	assert.Contains(t, out, b+":")
	assert.Contains(t, out, "IHDR")
	assert.Contains(t, out, "IEND")
	assert.Contains(t, out, "ruSt")
	assert.Contains(t, out, "private")
}

func TestPrintMissingFile(t *testing.T) {
	_, err := run(t, "print", filepath.Join(t.TempDir(), "missing.png"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "%v", err)
}

func TestChunkFlags(t *testing.T) {
	for typ, want := range map[string]string{
		"IHDR": "critical,public",
		"tEXt": "ancillary,public,safe-to-copy",
		"ruSt": "ancillary,private,safe-to-copy",
		"Rust": "critical,private,safe-to-copy,invalid",
	} {
		ct, err := png.ParseChunkType(typ)
		require.NoError(t, err)
		assert.Equal(t, want, chunkFlags(ct), typ)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pngme version dev")
}
