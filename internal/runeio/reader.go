package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements Reader, it is
// simply returned, otherwise a bufio.Reader provides rune reading around it.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	return bufio.NewReader(r)
}
