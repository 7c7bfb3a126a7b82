package main

import "strings"

const (
	statementSep  = ';'
	commentMarker = '_'
	labelMarker   = ':'
	varSigil      = '$'
)

const blanks = " \t\r\n"

// splitStatements breaks program text into trimmed statements, dropping
// empty ones and comments.
func splitStatements(text string) []string {
	var stmts []string
	for _, stmt := range splitTokens(text, statementSep) {
		stmt = strings.Trim(stmt, blanks)
		if stmt == "" || stmt[0] == commentMarker {
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

// splitTokens splits s around each delim, skipping any empty tokens.
func splitTokens(s string, delim rune) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == delim })
}

// splitFields splits s around runs of blanks.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, isBlank)
}

func isBlank(r rune) bool { return strings.ContainsRune(blanks, r) }

// argText returns the statement text after its keyword, trimmed.
func argText(stmt, keyword string) string {
	return strings.Trim(strings.TrimPrefix(stmt, keyword), blanks)
}
