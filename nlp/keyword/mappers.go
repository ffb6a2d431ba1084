package keyword

import (
	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/normalizer"
	"github.com/oarkflow/rake/nlp/stemmer"
)

// TokenMapper turns a token into its graph vertex key.
//
// Implementations must be idempotent: mapping a token whose text and lemma
// are an already-mapped key must return that key unchanged. This is not
// checked.
type TokenMapper interface {
	Map(t document.Token) string
}

// TokenMapperFunc adapts a function to TokenMapper.
type TokenMapperFunc func(t document.Token) string

func (f TokenMapperFunc) Map(t document.Token) string { return f(t) }

// TextMapper keys tokens by their display text, case-sensitive.
type TextMapper struct{}

func (TextMapper) Map(t document.Token) string { return t.Text }

// LemmaMapper keys tokens by lemma, falling back to the text.
type LemmaMapper struct{}

func (LemmaMapper) Map(t document.Token) string { return lemmaOf(t) }

// LemmaLowerMapper keys tokens by lower-cased lemma.
type LemmaLowerMapper struct{}

func (LemmaLowerMapper) Map(t document.Token) string { return normalizer.Lower(lemmaOf(t)) }

// FoldMapper keys tokens by their text lower-cased and stripped of diacritics.
type FoldMapper struct{}

func (FoldMapper) Map(t document.Token) string { return normalizer.Fold(t.Text) }

// StemMapper keys tokens by the Snowball English stem of their text.
// Stemming is not strictly idempotent for every word; use it only where
// keys are never re-mapped.
type StemMapper struct{}

func (StemMapper) Map(t document.Token) string { return stemmer.Stem(t.Text) }

func lemmaOf(t document.Token) string {
	if t.Lemma == "" {
		return t.Text
	}
	return t.Lemma
}
