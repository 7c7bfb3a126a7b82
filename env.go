package main

import "github.com/google/btree"

type variable struct{ name, value string }

func variableLess(a, b variable) bool { return a.name < b.name }

// environment maps variable names to their text values, kept in name order
// so that dumps are stable.
type environment struct {
	tree *btree.BTreeG[variable]
}

const envDegree = 8

func (env *environment) get(name string) (string, bool) {
	if env.tree == nil {
		return "", false
	}
	v, ok := env.tree.Get(variable{name: name})
	return v.value, ok
}

func (env *environment) has(name string) bool {
	return env.tree != nil && env.tree.Has(variable{name: name})
}

func (env *environment) set(name, value string) {
	if env.tree == nil {
		env.tree = btree.NewG(envDegree, variableLess)
	}
	env.tree.ReplaceOrInsert(variable{name, value})
}

func (env *environment) size() int {
	if env.tree == nil {
		return 0
	}
	return env.tree.Len()
}

func (env *environment) reset() {
	if env.tree != nil {
		env.tree.Clear(false)
	}
}

// each calls fn with every variable in name order until fn returns false.
func (env *environment) each(fn func(name, value string) bool) {
	if env.tree != nil {
		env.tree.Ascend(func(v variable) bool { return fn(v.name, v.value) })
	}
}
