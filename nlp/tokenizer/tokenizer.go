package tokenizer

import "regexp"

// reToken matches words (keeping internal apostrophes and hyphens), numbers
// with inner separators, whitespace runs, and any other single rune.
var reToken = regexp.MustCompile(`[’']?[\pL\pM]+(?:[’'\-][\pL\pM]+)*[’']?|\pN+(?:[.,:/]\pN+)*|\s+|[^\pL\pM\pN\s]`)

// Tokenize splits text into words, numbers, punctuation and symbols.
// A single ASCII space between tokens is dropped; any other whitespace run
// (newlines, tabs, repeated spaces) is kept as its own token.
func Tokenize(text string) []string {
	var out []string
	for _, tok := range reToken.FindAllString(text, -1) {
		if tok == " " {
			continue
		}
		out = append(out, tok)
	}
	return out
}
