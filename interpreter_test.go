package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/repr"
	"github.com/jcorbin/gosipl/internal/fileinput"
	"github.com/jcorbin/gosipl/internal/logio"
	"github.com/stretchr/testify/assert"
)

type scriptTestCases []scriptTestCase

func (sts scriptTestCases) run(t *testing.T) {
	{
		var exclusive []scriptTestCase
		for _, st := range sts {
			if st.exclusive {
				exclusive = append(exclusive, st)
			}
		}
		if len(exclusive) > 0 {
			sts = exclusive
		}
	}
	for _, st := range sts {
		t.Run(st.name, st.run)
	}
}

func scriptTest(name string) (st scriptTestCase) {
	st.name = name
	return st
}

type optFunc func(ip *Interpreter)

func (f optFunc) apply(ip *Interpreter) { f(ip) }

type scriptTestCase struct {
	name    string
	prog    string
	opts    []interface{}
	expect  []func(t *testing.T, ip *Interpreter)
	timeout time.Duration
	wantErr error

	exclusive bool
}

func (st scriptTestCase) apply(wraps ...func(scriptTestCase) scriptTestCase) scriptTestCase {
	for _, wrap := range wraps {
		st = wrap(st)
	}
	return st
}

func (st scriptTestCase) exclusiveTest() scriptTestCase {
	st.exclusive = true
	return st
}

func (st scriptTestCase) withOptions(opts ...Option) scriptTestCase {
	for _, opt := range opts {
		st.opts = append(st.opts, opt)
	}
	return st
}

func (st scriptTestCase) withProg(stmts ...string) scriptTestCase {
	st.prog = prog(stmts...)
	return st
}

func (st scriptTestCase) withVar(name, value string) scriptTestCase {
	st.opts = append(st.opts, optFunc(func(ip *Interpreter) {
		ip.vars.set(name, value)
	}))
	return st.withKeepState()
}

func (st scriptTestCase) withArray(name string, values ...string) scriptTestCase {
	st.opts = append(st.opts, optFunc(func(ip *Interpreter) {
		if ip.arrays == nil {
			ip.arrays = make(map[string][]string)
		}
		ip.arrays[name] = values
	}))
	return st.withKeepState()
}

func (st scriptTestCase) withKeepState() scriptTestCase {
	st.opts = append(st.opts, withKeepState(true))
	return st
}

func (st scriptTestCase) withSeed(seed int64) scriptTestCase {
	st.opts = append(st.opts, func(st *scriptTestCase, t *testing.T) Option {
		return WithRand(rand.New(rand.NewSource(seed)))
	})
	return st
}

func (st scriptTestCase) withInput(input string) scriptTestCase {
	st.opts = append(st.opts, func(st *scriptTestCase, t *testing.T) Option {
		return WithInput(fileinput.Named(t.Name()+"/input", strings.NewReader(input)))
	})
	return st
}

func (st scriptTestCase) withTimeout(timeout time.Duration) scriptTestCase {
	st.timeout = timeout
	return st
}

func (st scriptTestCase) expectError(err error) scriptTestCase {
	st.wantErr = err
	return st
}

func (st scriptTestCase) expectVar(name, value string) scriptTestCase {
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		got, defined := ip.vars.get(name)
		if assert.True(t, defined, "expected variable %q to be defined", name) {
			assert.Equal(t, value, got, "expected variable %q value", name)
		}
	})
	return st
}

func (st scriptTestCase) expectUnset(name string) scriptTestCase {
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		got, defined := ip.vars.get(name)
		assert.False(t, defined, "expected variable %q to be undefined, got %q", name, got)
	})
	return st
}

func (st scriptTestCase) expectVars(names ...string) scriptTestCase {
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		var got []string
		ip.vars.each(func(name, _ string) bool {
			got = append(got, name)
			return true
		})
		want := append([]string(nil), names...)
		sort.Strings(want)
		assert.Equal(t, want, got, "expected defined variables")
	})
	return st
}

func (st scriptTestCase) expectOutput(output string) scriptTestCase {
	var out strings.Builder
	st.opts = append(st.opts, func(st *scriptTestCase, t *testing.T) Option {
		out.Reset()
		return WithOutput(&out)
	})
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return st
}

func (st scriptTestCase) checkOutput(check func(t *testing.T, output string)) scriptTestCase {
	var out strings.Builder
	st.opts = append(st.opts, func(st *scriptTestCase, t *testing.T) Option {
		out.Reset()
		return WithOutput(&out)
	})
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		check(t, out.String())
	})
	return st
}

// expectReports checks the errors reported while running, given as their
// message text.
func (st scriptTestCase) expectReports(reports ...string) scriptTestCase {
	rec := &reportRecorder{}
	st.opts = append(st.opts, rec.option)
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		assert.Equal(t, reports, rec.messages, "expected error reports")
	})
	return st
}

// expectReported checks the errors reported while running, matching each
// against a sentinel error in turn.
func (st scriptTestCase) expectReported(errs ...error) scriptTestCase {
	rec := &reportRecorder{}
	st.opts = append(st.opts, rec.option)
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		if !assert.Equal(t, len(errs), len(rec.errs), "expected %v error reports", len(errs)) {
			for _, mess := range rec.messages {
				t.Logf("reported: %v", mess)
			}
			return
		}
		for i, err := range errs {
			assert.True(t, errors.Is(rec.errs[i], err),
				"expected report[%v] to be %v, got %v", i, err, rec.errs[i])
		}
	})
	return st
}

func (st scriptTestCase) expectDump(dump ...string) scriptTestCase {
	var got []string
	st.opts = append(st.opts, func(st *scriptTestCase, t *testing.T) Option {
		got = nil
		return WithLogf(func(mess string, args ...interface{}) {
			line := fmt.Sprintf(mess, args...)
			if strings.HasPrefix(line, "DMP ") {
				got = append(got, line[4:])
			}
		})
	})
	st.expect = append(st.expect, func(t *testing.T, ip *Interpreter) {
		assert.Equal(t, dump, got, "expected dump")
	})
	return st
}

type reportRecorder struct {
	messages []string
	errs     []error
}

func (rec *reportRecorder) option(st *scriptTestCase, t *testing.T) Option {
	rec.messages, rec.errs = nil, nil
	return WithErrorf(func(mess string, args ...interface{}) {
		rec.messages = append(rec.messages, fmt.Sprintf(mess, args...))
		if len(args) == 1 {
			if err, ok := args[0].(error); ok {
				rec.errs = append(rec.errs, err)
			}
		}
	})
}

func (st scriptTestCase) run(t *testing.T) {
	defer func(then time.Time) {
		label := "PASS"
		if t.Failed() {
			label = "FAIL"
		}
		t.Logf("%v\t%v\t%v", label, t.Name(), time.Since(then))
	}(time.Now())

	ip := st.buildInterpreter(t)

	// trace lines are only replayed into the test log on failure
	trace := logio.Writer{Logf: t.Logf, Prefix: "trace: "}
	var traceBuf strings.Builder
	if logfn := ip.logfn; logfn != nil {
		ip.logfn = func(mess string, args ...interface{}) {
			fmt.Fprintf(&traceBuf, mess+"\n", args...)
			logfn(mess, args...)
		}
	} else {
		ip.logfn = func(mess string, args ...interface{}) {
			fmt.Fprintf(&traceBuf, mess+"\n", args...)
		}
	}
	defer func() {
		if t.Failed() {
			trace.Write([]byte(traceBuf.String()))
			trace.Close()
		}
	}()

	st.runScriptTest(context.Background(), t, ip)
}

func (st scriptTestCase) runScriptTest(ctx context.Context, t *testing.T, ip *Interpreter) {
	const defaultTimeout = time.Second
	timeout := st.timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if t.Failed() {
			dumpToTest(t, ip)
		}
	}()

	if err := ip.Run(ctx, st.prog); st.wantErr != nil {
		assert.True(t, errors.Is(err, st.wantErr), "expected error: %v\ngot: %+v", st.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected run error")
	}

	if !t.Failed() {
		for _, expect := range st.expect {
			expect(t, ip)
		}
	}
}

func (st scriptTestCase) buildInterpreter(t *testing.T) *Interpreter {
	var ip Interpreter
	defaultOptions.apply(&ip)
	ip.errorf = nil
	ip.rng = rand.New(rand.NewSource(1))

	var opt Option
	for _, o := range st.opts {
		switch impl := o.(type) {
		case func(st *scriptTestCase, t *testing.T) Option:
			opt = Options(opt, impl(&st, t))
		case Option:
			opt = Options(opt, impl)
		default:
			t.Logf("unsupported scriptTestCase opt type %T", o)
			t.FailNow()
		}
	}
	if opt != nil {
		opt.apply(&ip)
	}
	return &ip
}

type interpreterState struct {
	Prog   []string
	PC     int
	Labels map[string]int
	Vars   map[string]string
	Arrays map[string][]string
}

func dumpToTest(t *testing.T, ip *Interpreter) {
	state := interpreterState{
		Prog:   ip.prog,
		PC:     ip.pc,
		Labels: ip.labels.addrs,
		Vars:   make(map[string]string, ip.vars.size()),
		Arrays: ip.arrays,
	}
	ip.vars.each(func(name, value string) bool {
		state.Vars[name] = value
		return true
	})
	t.Logf("interpreter state: %v", repr.String(state, repr.Indent("  ")))
}

//// utilities

func prog(stmts ...string) string {
	return strings.Join(stmts, ";\n")
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
