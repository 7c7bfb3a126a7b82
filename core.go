package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gosipl/internal/flushio"
)

// LineReader supplies program input one line at a time, returning io.EOF
// once no more input remains.
type LineReader interface {
	ReadLine() (string, error)
}

type ioCore struct {
	logging
	in     LineReader
	out    flushio.WriteFlusher
	errorf func(mess string, args ...interface{})
}

func (ioc *ioCore) writeLine(line string) error {
	return flushio.WriteLine(ioc.out, line)
}

// readLine flushes any pending output, so that prompts are seen, before
// reading a line of input.
func (ioc *ioCore) readLine() (string, error) {
	if err := ioc.out.Flush(); err != nil {
		return "", err
	}
	if ioc.in == nil {
		return "", io.EOF
	}
	return ioc.in.ReadLine()
}

func (ioc *ioCore) report(err error) {
	if ioc.errorf != nil {
		ioc.errorf("%v", err)
	}
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
