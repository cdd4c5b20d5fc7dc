package cli

import "unicode"

// Tokenize splits an input line into tokens on whitespace, treating
// double-quoted segments as part of the surrounding token with the quotes
// stripped. Empty tokens are dropped, so `a "" b` yields two tokens and
// `"a b"c` yields the single token `a bc`. An unterminated quote runs to
// the end of the line.
func Tokenize(line string) []string {
	var tokens []string
	var cur []rune
	inQuote := false

	for _, r := range line {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
			} else {
				cur = append(cur, r)
			}
		case r == '"':
			inQuote = true
		case unicode.IsSpace(r):
			if len(cur) > 0 {
				tokens = append(tokens, string(cur))
				cur = cur[:0]
			}
		default:
			cur = append(cur, r)
		}
	}
	if len(cur) > 0 {
		tokens = append(tokens, string(cur))
	}
	return tokens
}
