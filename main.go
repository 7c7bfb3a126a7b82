package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jcorbin/gosipl/internal/logio"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()

	var (
		file    string
		debug   bool
		keep    bool
		timeout time.Duration
		history string
	)
	flag.StringVar(&file, "f", "", "run the given program file")
	flag.StringVar(&file, "file", "", "run the given program file")
	flag.BoolVar(&debug, "d", false, "enable debug logging, including DMP output")
	flag.BoolVar(&debug, "debug", false, "enable debug logging, including DMP output")
	flag.BoolVar(&keep, "keep", false, "keep variables between interactive submissions")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.StringVar(&history, "history", defaultHistoryPath(), "interactive history file")
	flag.Parse()
	if file == "" && flag.NArg() > 0 {
		file = flag.Arg(0)
	}

	var log logio.Logger
	log.SetOutput(os.Stderr)

	var opts = []Option{
		WithOutput(os.Stdout),
		WithErrorf(log.Errorf),
		WithKeepState(keep),
	}
	if debug {
		opts = append(opts, WithLogf(log.Leveledf("DEBUG")))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		if file != "" {
			return runFile(ctx, file, opts...)
		}
		return runREPL(ctx, history, opts...)
	})
	eg.Go(func() error {
		return awaitSignal(ctx)
	})
	log.ErrorIf(eg.Wait())
	cancel()
	os.Exit(log.ExitCode())
}

func runFile(ctx context.Context, name string, opts ...Option) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	ip := New(append(opts, WithInput(os.Stdin))...)
	return runResult(ip.Run(ctx, string(src)))
}

// runResult filters out errors that need no further reporting.
func runResult(err error) error {
	var halted HaltError
	if errors.Is(err, ErrExit) || errors.As(err, &halted) {
		return nil
	}
	return err
}

// awaitSignal returns an error after the first interrupt or termination
// signal, or nil once ctx is done; a second signal gets default handling.
func awaitSignal(ctx context.Context) error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	select {
	case sig := <-sigc:
		return fmt.Errorf("received %v", sig)
	case <-ctx.Done():
		return nil
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
