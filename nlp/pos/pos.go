package pos

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reVBG = regexp.MustCompile(`.ing$`)
	reVBD = regexp.MustCompile(`..ed$`)
	reRB  = regexp.MustCompile(`..ly$`)
	reVB  = regexp.MustCompile(`^(is|are|be|am|was|were|been)$`)
	reJJ  = regexp.MustCompile(`...(al|ous|ive|ful|able|ible|ic|less|ar)$`)
	reNNS = regexp.MustCompile(`[^s]s$`)
	reCD  = regexp.MustCompile(`^\pN+(?:[.,:/]\pN+)*$`)
)

var closedClass = map[string]string{
	"a": "DT", "an": "DT", "the": "DT", "this": "DT", "that": "DT", "these": "DT",
	"those": "DT", "every": "DT", "each": "DT", "some": "DT", "any": "DT", "no": "DT",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$", "its": "PRP$",
	"our": "PRP$", "their": "PRP$",
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP", "we": "PRP",
	"they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP", "them": "PRP",
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",
	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "over": "IN", "under": "IN", "into": "IN",
	"about": "IN", "than": "IN", "between": "IN", "through": "IN",
	"to":  "TO",
	"can": "MD", "could": "MD", "will": "MD", "would": "MD", "may": "MD",
	"might": "MD", "must": "MD", "should": "MD", "shall": "MD",
}

// Tag assigns a coarse Penn-style POS tag to each token.
func Tag(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		lower := strings.ToLower(t)
		switch {
		case isAll(t, unicode.IsSpace):
			out[i] = "_SP"
		case isAll(t, unicode.IsPunct):
			out[i] = "."
		case isAll(t, unicode.IsSymbol):
			out[i] = "$"
		case reCD.MatchString(t):
			out[i] = "CD"
		case closedClass[lower] != "":
			out[i] = closedClass[lower]
		case reVB.MatchString(lower):
			out[i] = "VB"
		case reVBG.MatchString(lower):
			out[i] = "VBG"
		case reVBD.MatchString(lower):
			out[i] = "VBD"
		case reRB.MatchString(lower):
			out[i] = "RB"
		case i > 0 && unicode.IsUpper([]rune(t)[0]):
			out[i] = "NNP"
		case reJJ.MatchString(lower):
			out[i] = "JJ"
		case reNNS.MatchString(lower) && len(lower) > 3:
			out[i] = "NNS"
		default:
			out[i] = "NN"
		}
	}
	return out
}

func isAll(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
