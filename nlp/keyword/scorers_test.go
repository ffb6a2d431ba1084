package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oarkflow/rake/nlp/document"
)

func applesGraph(t *testing.T) (*document.Document, *Graph) {
	t.Helper()
	doc := parse(t, applesText)
	return doc, BuildGraph(ContiguousPhraser{}.Phrases(doc), TextMapper{}, BasicStopTokens{})
}

func TestWordScorers(t *testing.T) {
	doc, g := applesGraph(t)
	red, apples := doc.Tokens[0], doc.Tokens[1]

	assert.Equal(t, 1.0, FrequencyScorer{}.Score(g, red))
	assert.Equal(t, 2.0, FrequencyScorer{}.Score(g, apples))
	assert.Equal(t, 2.0, DegreeScorer{}.Score(g, red))
	assert.Equal(t, 4.0, DegreeScorer{}.Score(g, apples))
	assert.Equal(t, 2.0, DegreeToFrequencyScorer{}.Score(g, red))
	assert.Equal(t, 2.0, DegreeToFrequencyScorer{}.Score(g, apples))
}

func TestWordScorersAbsentKey(t *testing.T) {
	_, g := applesGraph(t)
	tok := document.Token{Text: "pears"}

	for name, s := range scorers {
		assert.Zero(t, s.Score(g, tok), name)
	}
}

func TestLocationPenalizedFrequencyScorer(t *testing.T) {
	doc, g := applesGraph(t)
	s := LocationPenalizedFrequencyScorer{}
	n := float64(doc.Len())

	assert.InDelta(t, 1.0, s.Score(g, doc.Tokens[0]), 1e-9)
	assert.InDelta(t, 2*(n-1)/n, s.Score(g, doc.Tokens[1]), 1e-9)
	assert.InDelta(t, 2*(n-7)/n, s.Score(g, doc.Tokens[7]), 1e-9)

	detached := document.Token{Text: "apples"}
	assert.Equal(t, 2.0, s.Score(g, detached))
}

func TestPositionalMarker(t *testing.T) {
	var s WordScorer = LocationPenalizedFrequencyScorer{}
	_, ok := s.(PositionalScorer)
	assert.True(t, ok)

	s = FrequencyScorer{}
	_, ok = s.(PositionalScorer)
	assert.False(t, ok)
}

func TestWordScorerFunc(t *testing.T) {
	_, g := applesGraph(t)
	s := WordScorerFunc(func(g *Graph, t document.Token) float64 { return float64(len(g.Neighbors(g.Key(t)))) })
	assert.Equal(t, 3.0, s.Score(g, document.Token{Text: "apples"}))
}
