package main

import (
	"sort"

	"github.com/jcorbin/gosipl/internal/runeio"
)

type stateDumper struct {
	ip   *Interpreter
	logf func(mess string, args ...interface{})
}

func (dump stateDumper) dump() {
	dump.logf("PROGRAM DATA DUMP:")
	dump.dumpLabels()
	dump.dumpVars()
	dump.dumpArrays()
}

func (dump stateDumper) dumpLabels() {
	dump.logf("## LABELS:")
	for _, decl := range dump.ip.labels.decls {
		dump.logf("- %v at line %v", decl.name, decl.addr+1)
	}
}

func (dump stateDumper) dumpVars() {
	dump.logf("## VARIABLES:")
	dump.ip.vars.each(func(name, value string) bool {
		dump.logf("- %v = %v", name, runeio.Visible(value))
		return true
	})
}

func (dump stateDumper) dumpArrays() {
	dump.logf("## ARRAYS:")
	names := make([]string, 0, len(dump.ip.arrays))
	for name := range dump.ip.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dump.logf("- %v", name)
		for _, value := range dump.ip.arrays[name] {
			dump.logf("| - %v", runeio.Visible(value))
		}
	}
}
