package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

var (
	caseType = flag.String("type", "scriptTestCase", "test case builder type")
	infix    = flag.String("infix", "Script", "infix for generated wrapper names")
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "goimports")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// builderMethod matches builder methods that take arguments, capturing the
// method prefix, the rest of its name, and its parameter list.
func builderMethod(typeName string) *regexp.Regexp {
	return regexp.MustCompile(`func \(st ` + typeName + `\) (expect|with)(.+?)\((.+?)\) ` + typeName)
}

func run(ctx context.Context) error {
	pattern := builderMethod(*caseType)

	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_expects.go")
		flag.Visit(func(f *flag.Flag) {
			fmt.Fprintf(&buf, " -%v %v", f.Name, f.Value)
		})
		buf.WriteString(" --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := pattern.FindSubmatch(sc.Bytes()); len(match) > 0 {
			var (
				baseName = match[1]
				whatName = match[2]
				args     = match[3]
			)
			buf.WriteString("func ")
			buf.Write(baseName)
			buf.WriteString(*infix)
			buf.Write(whatName)
			buf.WriteString("(")
			buf.Write(args)
			fmt.Fprintf(&buf, ") func(%[1]v) %[1]v {\n", *caseType)
			fmt.Fprintf(&buf, "  return func(st %[1]v) %[1]v {\n", *caseType)
			buf.WriteString("    return st.")
			buf.Write(baseName)
			buf.Write(whatName)
			buf.WriteString("(")

			for i, part := range bytes.Split(args, []byte(",")) {
				if i > 0 {
					buf.WriteString(", ")
				}
				fields := bytes.Fields(part)
				buf.Write(fields[0])
				if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
					buf.WriteString("...")
				}
			}

			buf.WriteString(")\n")
			buf.WriteString("  }\n")
			buf.WriteString("}\n\n")
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}
