package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/jcorbin/gosipl/internal/fileinput"
	"github.com/jcorbin/gosipl/internal/flushio"
)

// Option configures an Interpreter.
type Option interface{ apply(ip *Interpreter) }

// Options combines any number of options into one, ignoring any nil ones.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(ip *Interpreter) {
	for _, opt := range opts {
		opt.apply(ip)
	}
}

var defaultOptions = Options(
	withOutput(io.Discard),
	withErrorf(stderrErrorf),
	withRand(nil),
)

func stderrErrorf(mess string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ERROR: "+mess+"\n", args...)
}

type withLogfn func(mess string, args ...interface{})
type withErrorf func(mess string, args ...interface{})

func (logfn withLogfn) apply(ip *Interpreter) { ip.logfn = logfn }

func (errorf withErrorf) apply(ip *Interpreter) { ip.errorf = errorf }

type inputOption struct{ io.Reader }
type lineReaderOption struct{ LineReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type randOption struct{ *rand.Rand }
type keepStateOption bool

func withInput(r io.Reader) inputOption             { return inputOption{r} }
func withLineReader(lr LineReader) lineReaderOption { return lineReaderOption{lr} }
func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withTee(w io.Writer) teeOption                 { return teeOption{w} }
func withRand(rng *rand.Rand) randOption            { return randOption{rng} }
func withKeepState(keep bool) keepStateOption       { return keepStateOption(keep) }

func (i inputOption) apply(ip *Interpreter) {
	ip.in = &fileinput.Input{Queue: []io.Reader{i.Reader}}
}

func (lr lineReaderOption) apply(ip *Interpreter) {
	ip.in = lr.LineReader
}

func (o outputOption) apply(ip *Interpreter) {
	if ip.out != nil {
		ip.out.Flush()
	}
	ip.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(ip *Interpreter) {
	ip.out = flushio.WriteFlushers(ip.out, flushio.NewWriteFlusher(o.Writer))
}

func (r randOption) apply(ip *Interpreter) {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ip.rng = r.Rand
}

func (keep keepStateOption) apply(ip *Interpreter) {
	ip.keepState = bool(keep)
}
