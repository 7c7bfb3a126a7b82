package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

var discardWriteFlusher WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer: in-memory buffers and the
// discard writer get a noop Flush, any existing WriteFlusher is returned
// as-is, and anything else is wrapped in a new bufio.Writer.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return discardWriteFlusher
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// bytes.Buffer and strings.Builder
	type buffer interface {
		io.Writer
		Cap() int
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// WriteFlushers combines any number of WriteFlusher-s into a single one that
// will write into and flush all of them.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	switch wfs := appendWriteFlusher(nil, wfs...); len(wfs) {
	case 0:
		return nil
	case 1:
		return wfs[0]
	default:
		return wfs
	}
}

type writeFlushers []WriteFlusher

func (wfs writeFlushers) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs writeFlushers) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func appendWriteFlusher(all writeFlushers, some ...WriteFlusher) writeFlushers {
	for _, one := range some {
		if many, ok := one.(writeFlushers); ok {
			all = append(all, many...)
		} else if one != nil {
			all = append(all, one)
		}
	}
	return all
}

// WriteLine writes line followed by a line feed.
func WriteLine(w io.Writer, line string) error {
	if sw, ok := w.(io.StringWriter); ok {
		if _, err := sw.WriteString(line); err != nil {
			return err
		}
	} else if _, err := w.Write([]byte(line)); err != nil {
		return err
	}
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
