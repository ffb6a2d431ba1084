package keyword

import (
	"sort"
	"strings"

	"github.com/oarkflow/rake/nlp/document"
)

// Phraser cuts candidate phrases out of a document. Returned spans must be
// non-empty.
type Phraser interface {
	Phrases(doc *document.Document) []document.Span
}

// PhraserFunc adapts a function to Phraser.
type PhraserFunc func(doc *document.Document) []document.Span

func (f PhraserFunc) Phrases(doc *document.Document) []document.Span { return f(doc) }

// ContiguousPhraser emits maximal runs of non-stop tokens; stop tokens only
// delimit phrases. A nil Stop uses BasicStopTokens, independent of the
// classifier configured on Rake.
type ContiguousPhraser struct {
	Stop StopTokenClassifier
}

func (p ContiguousPhraser) Phrases(doc *document.Document) []document.Span {
	stop := p.Stop
	if stop == nil {
		stop = BasicStopTokens{}
	}
	var out []document.Span
	start := -1
	for i, t := range doc.Tokens {
		if stop.IsStop(t) {
			if start >= 0 {
				out = append(out, doc.Span(start, i))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, doc.Span(start, doc.Len()))
	}
	return out
}

// EntityNounChunkPhraser emits named entities (from IOB labels) and noun
// chunks (from POS tags). Where spans overlap the longest wins, the earlier
// one on ties. Output is ordered by position.
type EntityNounChunkPhraser struct{}

func (EntityNounChunkPhraser) Phrases(doc *document.Document) []document.Span {
	spans := append(entitySpans(doc), nounChunks(doc)...)
	return filterSpans(spans)
}

func entitySpans(doc *document.Document) []document.Span {
	var out []document.Span
	start := -1
	flush := func(end int) {
		if start >= 0 {
			out = append(out, doc.Span(start, end))
			start = -1
		}
	}
	for i, t := range doc.Tokens {
		switch {
		case strings.HasPrefix(t.Label, "B-"):
			flush(i)
			start = i
		case strings.HasPrefix(t.Label, "I-"):
			if start < 0 {
				start = i
			}
		default:
			flush(i)
		}
	}
	flush(doc.Len())
	return out
}

func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

func isModifierTag(tag string) bool {
	return strings.HasPrefix(tag, "JJ") || tag == "CD" || isNounTag(tag)
}

// nounChunks finds personal pronouns and runs of an optional determiner,
// then modifiers, ending in a noun.
func nounChunks(doc *document.Document) []document.Span {
	var out []document.Span
	toks := doc.Tokens
	for i := 0; i < len(toks); {
		if toks[i].Tag == "PRP" {
			out = append(out, doc.Span(i, i+1))
			i++
			continue
		}
		j := i
		if toks[j].Tag == "DT" || toks[j].Tag == "PRP$" {
			j++
		}
		lastNoun := -1
		for ; j < len(toks) && isModifierTag(toks[j].Tag); j++ {
			if isNounTag(toks[j].Tag) {
				lastNoun = j
			}
		}
		if lastNoun < 0 {
			i++
			continue
		}
		out = append(out, doc.Span(i, lastNoun+1))
		i = lastNoun + 1
	}
	return out
}

func filterSpans(spans []document.Span) []document.Span {
	sorted := make([]document.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Len() != sorted[j].Len() {
			return sorted[i].Len() > sorted[j].Len()
		}
		return sorted[i].Start < sorted[j].Start
	})
	var kept []document.Span
	for _, s := range sorted {
		if s.Len() == 0 {
			continue
		}
		overlap := false
		for _, k := range kept {
			if s.Overlaps(k) {
				overlap = true
				break
			}
		}
		if !overlap {
			kept = append(kept, s)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
	return kept
}
