package fileinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gosipl/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The location of the last line read is tracked to facilitate
// user feedback.
type Input struct {
	Queue []io.Reader
	Last  Location

	cur  io.Reader
	rr   runeio.Reader
	scan Location
	buf  strings.Builder
}

// ReadLine reads runes up to the next line feed, returning the line without
// its terminator. A final line missing its line feed is still returned.
// Each stream is closed (if it is an io.Closer) once exhausted, and reading
// continues with the next queued stream. Returns io.EOF once all streams
// are exhausted.
func (in *Input) ReadLine() (string, error) {
	in.buf.Reset()
	for {
		if in.rr == nil && !in.nextIn() {
			if in.buf.Len() > 0 {
				return in.line(), nil
			}
			return "", io.EOF
		}

		r, _, err := in.rr.ReadRune()
		if err == nil {
			if r == '\n' {
				return in.line(), nil
			}
			in.buf.WriteRune(r)
			continue
		}
		if err != io.EOF {
			return "", err
		}

		in.closeIn()
		if in.buf.Len() > 0 {
			return in.line(), nil
		}
	}
}

func (in *Input) line() string {
	in.scan.Line++
	in.Last = in.scan
	return strings.TrimSuffix(in.buf.String(), "\r")
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.rr = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur = r
		in.rr = runeio.NewReader(r)
		in.scan.Name = nameOf(r)
		in.scan.Line = 0
	}
	return in.rr != nil
}

// Named attaches a name to a reader, used when reporting input Locations.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
