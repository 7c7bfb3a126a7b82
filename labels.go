package main

import "strings"

type labelDecl struct {
	name string
	addr int
}

// labelTable resolves label names to statement addresses. When a name is
// declared more than once, the later declaration wins.
type labelTable struct {
	addrs map[string]int
	decls []labelDecl
}

func buildLabels(prog []string) (lt labelTable) {
	for addr, stmt := range prog {
		if name, ok := labelName(stmt); ok {
			lt.declare(name, addr)
		}
	}
	return lt
}

func labelName(stmt string) (string, bool) {
	if len(stmt) == 0 || stmt[0] != labelMarker {
		return "", false
	}
	return strings.Trim(stmt[1:], blanks), true
}

func (lt *labelTable) declare(name string, addr int) {
	if lt.addrs == nil {
		lt.addrs = make(map[string]int)
	}
	lt.addrs[name] = addr
	lt.decls = append(lt.decls, labelDecl{name, addr})
}

func (lt labelTable) resolve(name string) (int, bool) {
	addr, ok := lt.addrs[name]
	return addr, ok
}

// shadowed returns any declarations hidden by a later one of the same name.
func (lt labelTable) shadowed() (decls []labelDecl) {
	for _, decl := range lt.decls {
		if lt.addrs[decl.name] != decl.addr {
			decls = append(decls, decl)
		}
	}
	return decls
}
