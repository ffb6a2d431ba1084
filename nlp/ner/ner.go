// Package ner labels known named entities from an embedded gazetteer.
package ner

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/oarkflow/rake/nlp/tokenizer"
)

//go:embed gazetteer.txt
var gazetteer string

type entry struct {
	tokens []string
	kind   string
}

// byFirst indexes entries by their first token, longest first.
var byFirst = make(map[string][]entry)

func init() {
	for _, line := range strings.Split(gazetteer, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, kind, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		toks := tokenizer.Tokenize(strings.TrimSpace(name))
		if len(toks) == 0 {
			continue
		}
		byFirst[toks[0]] = append(byFirst[toks[0]], entry{tokens: toks, kind: strings.TrimSpace(kind)})
	}
	for _, es := range byFirst {
		sort.SliceStable(es, func(i, j int) bool { return len(es[i].tokens) > len(es[j].tokens) })
	}
}

// Label returns one IOB label per token: "B-TYPE" on the first token of the
// longest gazetteer match, "I-TYPE" on the rest, "O" elsewhere. Matching is
// case-sensitive.
func Label(tokens []string) []string {
	labels := make([]string, len(tokens))
	for i := 0; i < len(tokens); {
		e, ok := match(tokens[i:])
		if !ok {
			labels[i] = "O"
			i++
			continue
		}
		labels[i] = "B-" + e.kind
		for j := 1; j < len(e.tokens); j++ {
			labels[i+j] = "I-" + e.kind
		}
		i += len(e.tokens)
	}
	return labels
}

func match(tokens []string) (entry, bool) {
	for _, e := range byFirst[tokens[0]] {
		if hasPrefix(tokens, e.tokens) {
			return e, true
		}
	}
	return entry{}, false
}

func hasPrefix(tokens, prefix []string) bool {
	if len(prefix) > len(tokens) {
		return false
	}
	for i, p := range prefix {
		if tokens[i] != p {
			return false
		}
	}
	return true
}
