package zplize

import "strings"

// Command introducer characters. Format commands use the caret, control
// commands the tilde; both begin a new token.
const (
	caret byte = '^'
	tilde byte = '~'
)

// clean strips vertical whitespace, which is not part of the ZPL grammar.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\v', '\f', '\r':
			return -1
		}
		return r
	}, s)
}

// tokenize slices a ZPL document into command tokens. Every ^ or ~ begins
// a new token and terminates the previous one; the introducer is kept as
// the first character of the emitted token. Leading material before the
// first introducer is discarded.
func tokenize(s string) []string {
	s = clean(s)

	var tokens []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] != caret && s[i] != tilde {
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
		}
		start = i
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}
