package search

import "strings"

// Tokenize lowercases the query and splits it on runs of whitespace.
// A blank query yields no tokens.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
