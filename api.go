package main

import (
	"context"
	"io"
	"math/rand"

	"github.com/jcorbin/gosipl/internal/panicerr"
)

// New creates an Interpreter; without options it reads no input, discards
// its output, and reports errors to os.Stderr.
func New(opts ...Option) *Interpreter {
	var ip Interpreter
	defaultOptions.apply(&ip)
	Options(opts...).apply(&ip)
	return &ip
}

// Run executes the given program text to completion.
//
// Returns nil if the program ran off its end, ErrExit if it stopped at an
// EXIT statement, a HaltError if a run-fatal error stopped it, or any
// context error if ctx was done before it finished. A panic while running
// is reported, then returned as a HaltError.
func (ip *Interpreter) Run(ctx context.Context, program string) error {
	err := panicerr.Recover("sipl", func() error {
		return ip.run(ctx, program)
	})
	if panicerr.IsPanic(err) || panicerr.IsExit(err) {
		err = ip.crashed(err)
	}
	if ferr := ip.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func WithInput(r io.Reader) Option        { return withInput(r) }
func WithLineReader(lr LineReader) Option { return withLineReader(lr) }
func WithOutput(w io.Writer) Option       { return withOutput(w) }
func WithTee(w io.Writer) Option          { return withTee(w) }
func WithRand(rng *rand.Rand) Option      { return withRand(rng) }
func WithKeepState(keep bool) Option      { return withKeepState(keep) }

func WithLogf(logfn func(mess string, args ...interface{})) Option    { return withLogfn(logfn) }
func WithErrorf(errorf func(mess string, args ...interface{})) Option { return withErrorf(errorf) }
