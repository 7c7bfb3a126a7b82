package main

import (
	"context"
	"errors"
	"math/rand"

	"github.com/jcorbin/gosipl/internal/panicerr"
)

// Interpreter runs SIPL programs. Each Interpreter owns its program, labels
// and variables: it must not be shared by concurrent runs, but any number of
// Interpreters may run side by side.
type Interpreter struct {
	ioCore

	rng       *rand.Rand
	keepState bool

	prog   []string
	labels labelTable
	vars   environment

	// arrays is a placeholder for named collections; no statement writes
	// it yet, but DMP reports it.
	arrays map[string][]string

	pc   int // address of the executing statement
	next int // address of the statement to execute after it
}

func (ip *Interpreter) load(text string) {
	ip.prog = splitStatements(text)
	ip.labels = buildLabels(ip.prog)
	for _, decl := range ip.labels.shadowed() {
		ip.logf("#", "label %v at line %v shadowed by a later declaration", decl.name, decl.addr+1)
	}
	if !ip.keepState {
		ip.vars.reset()
		ip.arrays = nil
	}
}

func (ip *Interpreter) run(ctx context.Context, text string) error {
	ip.load(text)
	for ip.pc = 0; ip.pc < len(ip.prog); ip.pc = ip.next {
		if err := ctx.Err(); err != nil {
			return err
		}
		ip.next = ip.pc + 1
		stmt := ip.prog[ip.pc]
		ip.logf("L", "%v / %v : %v", ip.pc+1, len(ip.prog), stmt)
		if err := ip.exec(stmt); err != nil {
			if err = ip.fail(stmt, err); err != nil {
				return err
			}
		}
	}
	return nil
}

// exec runs a single statement; conditional actions re-enter here.
func (ip *Interpreter) exec(stmt string) error {
	if stmt == "" || stmt[0] == labelMarker || stmt[0] == commentMarker {
		return nil
	}
	args := splitFields(stmt)
	if len(args) == 0 {
		return nil
	}
	cmd, defined := commands[args[0]]
	if !defined {
		return errUnknownCommand
	}
	return cmd(ip, stmt, args)
}

// crashed reports a panic or goroutine exit recovered from a run, tracing the
// panic stack if there is one.
func (ip *Interpreter) crashed(err error) error {
	if ip.pc >= 0 && ip.pc < len(ip.prog) {
		err = statementError{ip.prog[ip.pc], err}
	}
	ip.report(err)
	if stack := panicerr.PanicStack(err); stack != "" {
		ip.logf("!", "panic stack:\n%s", stack)
	}
	return halt(err)
}

// fail reports a statement error, returning non-nil only if the run must
// stop.
func (ip *Interpreter) fail(stmt string, err error) error {
	if errors.Is(err, ErrExit) {
		ip.logf("#", "exiting")
		return ErrExit
	}
	var halted HaltError
	if errors.As(err, &halted) {
		err = statementError{stmt, halted.error}
		ip.report(err)
		return halt(err)
	}
	ip.report(statementError{stmt, err})
	return nil
}
