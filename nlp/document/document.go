// Package document holds the annotated token sequence an analyzer produces
// and the spans phrasers cut out of it.
package document

import "strings"

// Token is one annotated unit of a parsed document.
type Token struct {
	Text  string
	Lemma string
	// Tag is a Penn-style part-of-speech tag, empty when the analyzer does not tag.
	Tag string
	// Label is an IOB entity label such as "B-GPE"; empty or "O" outside entities.
	Label string

	IsStop  bool
	IsSpace bool
	IsPunct bool
	LikeNum bool

	// Index is the token's position in Doc.
	Index int
	Doc   *Document
}

// Document is the ordered token sequence for one piece of text.
type Document struct {
	Text   string
	Tokens []Token
}

// New builds a Document and assigns Index and Doc on every token.
func New(text string, tokens []Token) *Document {
	d := &Document{Text: text, Tokens: tokens}
	for i := range d.Tokens {
		d.Tokens[i].Index = i
		d.Tokens[i].Doc = d
	}
	return d
}

// Len returns the number of tokens.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Tokens)
}

// Span returns the half-open token range [start, end) clamped to the document.
func (d *Document) Span(start, end int) Span {
	if start < 0 {
		start = 0
	}
	if end > d.Len() {
		end = d.Len()
	}
	if end < start {
		end = start
	}
	return Span{Doc: d, Start: start, End: end}
}

// Span references a contiguous run of tokens without copying them.
type Span struct {
	Doc        *Document
	Start, End int
}

// Tokens returns the referenced tokens.
func (s Span) Tokens() []Token {
	if s.Doc == nil || s.Start >= s.End {
		return nil
	}
	return s.Doc.Tokens[s.Start:s.End]
}

// Len returns the number of tokens in the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Overlaps reports whether s and o share at least one token position.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Text joins the display strings of the span's tokens with single spaces.
func (s Span) Text() string {
	toks := s.Tokens()
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
