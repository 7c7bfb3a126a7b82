package main

import (
	"io"
	"strings"

	"github.com/jcorbin/gosipl/internal/flushio"
)

type helpEntry struct{ usage, desc string }

var helpEntries = []helpEntry{
	{"PRNT [text]", "print text (supports $variables)"},
	{"VAR [name] = [val]", "define a variable"},
	{"INPT [varname]", "read stdin into variable"},
	{"GOTO [label]", "jump to label"},
	{":label", "define a label"},
	{"IF var [operand] val : [action]", "run action if condition met (Supported operands: == != < > <= >= )"},
	{"RNG [max] [var] or RNG [min] [max] [var]", "writes a random value between [min] (default 0, inclusive) and [max] (exclusive!) into a variable"},
	{"DMP", "dump program data (debug only)"},
	{"HLP", "show help message"},
	{"EXIT", "abort program execution"},
	{"_comment", "ignored line"},
}

func writeHelp(w io.Writer) error {
	width := 0
	for _, entry := range helpEntries {
		if n := len(entry.usage); n > width {
			width = n
		}
	}
	if err := flushio.WriteLine(w, "SIPL Token list\n"); err != nil {
		return err
	}
	for _, entry := range helpEntries {
		pad := strings.Repeat(" ", width-len(entry.usage)+2)
		if err := flushio.WriteLine(w, entry.usage+pad+" - "+entry.desc); err != nil {
			return err
		}
	}
	return nil
}
