package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var intPattern = regexp.MustCompile(`^-?[0-9]+$`)

// binaryOps implement the postfix arithmetic operators; each is given its
// operands in push order.
var binaryOps = map[string]func(a, b int) int{
	"+": func(a, b int) int { return a + b },
	"-": func(a, b int) int { return a - b },
	"*": func(a, b int) int { return a * b },
	"/": func(a, b int) int {
		if b == 0 {
			return 0
		}
		return a / b
	},
	"%": func(a, b int) int {
		if b == 0 {
			return 0
		}
		return a % b
	},
	"**": func(a, b int) int { return int(math.Pow(float64(a), float64(b))) },
}

// evaluate computes a postfix integer expression, returning the decimal text
// of the bottom-most value left on the stack, or "" if none remain.
//
// A token starting with "$(" opens an inline sub-expression running up to the
// next ")"; its result becomes the result of the whole expression, discarding
// anything evaluated before it.
func (ip *Interpreter) evaluate(expr string) (string, error) {
	tokens := strings.Fields(expr)
	stack := make([]int, 0, len(tokens))
	for i, token := range tokens {
		switch {
		case intPattern.MatchString(token):
			n, err := parseInt(token)
			if err != nil {
				return "", err
			}
			stack = append(stack, n)

		case strings.HasPrefix(token, "$("):
			sub, err := captureSubExpr(tokens[i:])
			if err != nil {
				return "", fmt.Errorf("%w in expression %q", err, expr)
			}
			ip.logf("(", "sub-expression %q", sub)
			return ip.evaluate(sub)

		case token[0] == varSigil:
			n, err := ip.intVar(token[1:])
			if err != nil {
				return "", err
			}
			stack = append(stack, n)

		case ip.vars.has(token):
			n, err := ip.intVar(token)
			if err != nil {
				return "", err
			}
			stack = append(stack, n)

		default:
			op, isOp := binaryOps[token]
			if !isOp {
				return "", fmt.Errorf("%w: %v", errUnsupported, token)
			}
			if len(stack) < 2 {
				return "", fmt.Errorf("%w for: %v", errOperands, token)
			}
			n := len(stack) - 2
			a, b := stack[n], stack[n+1]
			stack = append(stack[:n], op(a, b))
		}
	}
	if len(stack) == 0 {
		return "", nil
	}
	return strconv.Itoa(stack[0]), nil
}

func (ip *Interpreter) intVar(name string) (int, error) {
	value, defined := ip.vars.get(name)
	if !defined {
		return 0, fmt.Errorf("%w: %v", errUndefined, name)
	}
	return parseInt(value)
}

// captureSubExpr collects the text of a sub-expression, given tokens starting
// with its opening "$(" token.
func captureSubExpr(tokens []string) (string, error) {
	var sb strings.Builder
	for i, token := range tokens {
		if i == 0 {
			token = token[2:]
		}
		if j := strings.IndexByte(token, ')'); j >= 0 {
			sb.WriteString(token[:j])
			return sb.String(), nil
		}
		sb.WriteString(token)
		sb.WriteByte(' ')
	}
	return "", fmt.Errorf("%w: unmatched (", errSyntax)
}
