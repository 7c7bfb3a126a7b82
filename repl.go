package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const (
	siplVersion   = "0.2.1-pre2"
	sipliAppendix = "-002"
	historyFile   = ".sipli_history"
	promptMain    = ">>> "
)

// runREPL runs each line read from the terminal as a separate program, until
// an EXIT statement or the end of input.
func runREPL(ctx context.Context, historyPath string, opts ...Option) error {
	fmt.Printf("SIPLI version %v%v\nUse HLP for help or pass -h argument for parameter list.\n",
		siplVersion, sipliAppendix)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	ip := New(append(opts, WithLineReader(promptReader{ln}))...)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		src, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(src)

		err = ip.Run(ctx, src)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err = runResult(err); err != nil {
			return err
		}
	}
}

// promptReader reads INPT lines through the terminal line editor.
type promptReader struct{ *liner.State }

func (pr promptReader) ReadLine() (string, error) { return pr.Prompt("") }
