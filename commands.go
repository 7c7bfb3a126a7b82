package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type commandFunc func(ip *Interpreter, stmt string, args []string) error

var commands map[string]commandFunc

func init() {
	commands = map[string]commandFunc{
		"PRNT": (*Interpreter).print,
		"VAR":  (*Interpreter).assign,
		"GOTO": (*Interpreter).jump,
		"IF":   (*Interpreter).cond,
		"INPT": (*Interpreter).input,
		"RNG":  (*Interpreter).random,
		"HLP":  (*Interpreter).help,
		"EXIT": (*Interpreter).exit,
		"DMP":  (*Interpreter).dump,
	}
}

// PRNT text
func (ip *Interpreter) print(stmt string, args []string) error {
	if err := ip.writeLine(ip.render(argText(stmt, args[0]))); err != nil {
		return halt(err)
	}
	return nil
}

// VAR name = expr
func (ip *Interpreter) assign(stmt string, args []string) error {
	rest := argText(stmt, args[0])
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return fmt.Errorf("%w: invalid VAR, missing =", errSyntax)
	}
	name := strings.Trim(rest[:eq], blanks)
	if name == "" {
		return fmt.Errorf("%w: invalid VAR, missing name", errSyntax)
	}
	value, err := ip.evaluate(strings.Trim(rest[eq+1:], blanks))
	if err != nil {
		return err
	}
	ip.logf("=", "%v = %q", name, value)
	ip.vars.set(name, value)
	return nil
}

// GOTO label
func (ip *Interpreter) jump(stmt string, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: GOTO missing label", errSyntax)
	}
	name := args[1]
	addr, ok := ip.labels.resolve(name)
	if !ok {
		return fmt.Errorf("%w: %v", errLabelNotFound, name)
	}
	if addr < 0 || addr >= len(ip.prog) {
		return fmt.Errorf("%w: %v @%v", errJumpRange, name, addr)
	}
	if ip.landing(addr) == ip.pc {
		return fmt.Errorf("%w: %v", errSelfJump, name)
	}
	ip.logf(">", "goto %v @%v", name, addr+1)
	ip.next = addr
	return nil
}

// landing returns the address of the first statement at or after addr that
// is not a label declaration.
func (ip *Interpreter) landing(addr int) int {
	for ; addr < len(ip.prog); addr++ {
		if _, isLabel := labelName(ip.prog[addr]); !isLabel {
			break
		}
	}
	return addr
}

var conditionPattern = regexp.MustCompile(`^(\w+)\s*(==|!=|<=|>=|<|>)\s*(.+)$`)

// IF name op value : action
//
// Malformed IF statements halt the program, since their action can neither
// safely run nor be skipped.
func (ip *Interpreter) cond(stmt string, args []string) error {
	rest := argText(stmt, args[0])
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return halt(fmt.Errorf("%w: invalid IF, missing :", errSyntax))
	}
	condition := strings.Trim(rest[:colon], blanks)
	action := strings.Trim(rest[colon+1:], blanks)

	match := conditionPattern.FindStringSubmatch(condition)
	if match == nil {
		return halt(fmt.Errorf("%w: malformed condition in IF", errSyntax))
	}
	name, op := match[1], match[2]
	want, _ := unquote(match[3])
	have, _ := ip.vars.get(name)

	met, err := compare(have, op, want)
	if err != nil {
		return err
	}
	ip.logf("?", "%v(%q) %v %q => %v", name, have, op, want, met)
	if !met {
		return nil
	}
	defer ip.withLogPrefix("\t")()
	return ip.exec(action)
}

func compare(have, op, want string) (bool, error) {
	switch op {
	case "==":
		return have == want, nil
	case "!=":
		return have != want, nil
	}

	lhs, err := parseInt(have)
	if err != nil {
		return false, err
	}
	rhs, err := parseInt(want)
	if err != nil {
		return false, err
	}
	switch op {
	case "<":
		return lhs < rhs, nil
	case ">":
		return lhs > rhs, nil
	case "<=":
		return lhs <= rhs, nil
	case ">=":
		return lhs >= rhs, nil
	}
	return false, fmt.Errorf("%w: unsupported comparison %v", errSyntax, op)
}

func unquote(s string) (string, bool) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1], true
	}
	return s, false
}

// INPT name
func (ip *Interpreter) input(stmt string, args []string) error {
	name := argText(stmt, args[0])
	if name == "" {
		return fmt.Errorf("%w: missing variable name for INPT", errSyntax)
	}
	line, err := ip.readLine()
	if err != nil {
		return halt(fmt.Errorf("%w: %v", errInputExhausted, err))
	}
	ip.vars.set(name, strings.Trim(line, blanks))
	return nil
}

// RNG max name
// RNG min max name
func (ip *Interpreter) random(stmt string, args []string) error {
	var minArg, maxArg, name string
	switch len(args) {
	case 3:
		minArg, maxArg, name = "0", args[1], args[2]
	case 4:
		minArg, maxArg, name = args[1], args[2], args[3]
	default:
		return fmt.Errorf("%w for RNG", errArgCount)
	}

	lo, err := parseInt(minArg)
	if err != nil {
		return err
	}
	hi, err := parseInt(maxArg)
	if err != nil {
		return err
	}
	if hi <= 0 {
		return fmt.Errorf("%w: RNG maximum %v must be greater than zero", errRange, hi)
	}
	if lo >= hi {
		return fmt.Errorf("%w: RNG minimum %v must be less than maximum %v", errRange, lo, hi)
	}
	if lo < 0 && hi > lo+math.MaxInt {
		return fmt.Errorf("%w: RNG range %v to %v is too wide", errRange, lo, hi)
	}

	ip.vars.set(name, strconv.Itoa(lo+ip.rng.Intn(hi-lo)))
	return nil
}

// HLP
func (ip *Interpreter) help(stmt string, args []string) error {
	if err := writeHelp(ip.out); err != nil {
		return halt(err)
	}
	return nil
}

// EXIT
func (ip *Interpreter) exit(stmt string, args []string) error {
	return ErrExit
}

const dumpFootnote = "P. S. If you see no output, you might have debug mode disabled."

// DMP
func (ip *Interpreter) dump(stmt string, args []string) error {
	stateDumper{ip: ip, logf: func(mess string, args ...interface{}) {
		ip.logf("DMP", mess, args...)
	}}.dump()
	if err := ip.writeLine(dumpFootnote); err != nil {
		return halt(err)
	}
	return nil
}
