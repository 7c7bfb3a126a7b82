package main

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errSyntax         = errors.New("syntax error")
	errUndefined      = errors.New("undefined variable")
	errOperands       = errors.New("not enough operands")
	errUnsupported    = errors.New("unsupported token")
	errNotNumber      = errors.New("not a number")
	errLabelNotFound  = errors.New("label not found")
	errSelfJump       = errors.New("jump to self")
	errJumpRange      = errors.New("jump out of range")
	errInputExhausted = errors.New("failed to read input")
	errArgCount       = errors.New("not enough or too many arguments")
	errRange          = errors.New("invalid range")
	errUnknownCommand = errors.New("unknown command")
)

// ErrExit is returned by Run when the program stopped at an EXIT statement.
var ErrExit = errors.New("exit")

// HaltError is returned by Run when an error ended the program early; the
// error has already been reported through the error channel.
type HaltError struct{ error }

func (err HaltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err HaltError) Unwrap() error { return err.error }

func halt(err error) error { return HaltError{err} }

type statementError struct {
	stmt string
	err  error
}

func (se statementError) Error() string {
	return fmt.Sprintf("%v | Line: %q", se.err, se.stmt)
}

func (se statementError) Unwrap() error { return se.err }

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotNumber, s)
	}
	return n, nil
}
