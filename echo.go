package main

import "regexp"

var varRefPattern = regexp.MustCompile(`\$(\w+)`)

// render substitutes every $name reference in text with the variable's value;
// references to undefined variables are left as-is.
func (ip *Interpreter) render(text string) string {
	return varRefPattern.ReplaceAllStringFunc(text, func(ref string) string {
		if value, defined := ip.vars.get(ref[1:]); defined {
			return value
		}
		return ref
	})
}
