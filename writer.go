package png

import (
	"io"
)

// EncodedLen returns the number of bytes Encode produces.
func (p *PNG) EncodedLen() int {
	n := len(pngHeader)
	for _, c := range p.chunks {
		n += c.EncodedLen()
	}
	return n
}

// Encode returns the PNG datastream: the signature followed by every chunk in order.
func (p *PNG) Encode() []byte {
	b := make([]byte, 0, p.EncodedLen())
	b = append(b, pngHeader...)
	for _, c := range p.chunks {
		b = c.AppendEncoded(b)
	}
	return b
}

// WriteTo writes the PNG datastream to w.
func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, pngHeader)
	total := int64(n)
	if err != nil {
		return total, err
	}
	var buf []byte
	for _, c := range p.chunks {
		buf = c.AppendEncoded(buf[:0])
		n, err := w.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
