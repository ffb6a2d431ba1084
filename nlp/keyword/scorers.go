package keyword

import "github.com/oarkflow/rake/nlp/document"

// WordScorer scores a token from the co-occurrence graph. Keys absent from
// the graph must score 0.
type WordScorer interface {
	Score(g *Graph, t document.Token) float64
}

// PositionalScorer marks scorers whose result depends on the token itself
// and not only on its key. Rake does not cache their scores by key.
type PositionalScorer interface {
	WordScorer
	Positional()
}

// WordScorerFunc adapts a function to WordScorer.
type WordScorerFunc func(g *Graph, t document.Token) float64

func (f WordScorerFunc) Score(g *Graph, t document.Token) float64 { return f(g, t) }

// FrequencyScorer scores a word by its occurrence count f(w).
type FrequencyScorer struct{}

func (FrequencyScorer) Score(g *Graph, t document.Token) float64 {
	return float64(g.Frequency(g.Key(t)))
}

// DegreeScorer scores a word by its degree d(w).
type DegreeScorer struct{}

func (DegreeScorer) Score(g *Graph, t document.Token) float64 {
	return float64(g.Degree(g.Key(t)))
}

// DegreeToFrequencyScorer scores a word by d(w)/f(w), 0 when f(w) is 0.
type DegreeToFrequencyScorer struct{}

func (DegreeToFrequencyScorer) Score(g *Graph, t document.Token) float64 {
	k := g.Key(t)
	freq := g.Frequency(k)
	if freq == 0 {
		return 0
	}
	return float64(g.Degree(k)) / float64(freq)
}

// LocationPenalizedFrequencyScorer scales f(w) down the later the token
// appears in its document: f(w) * (n - i) / n.
type LocationPenalizedFrequencyScorer struct{}

func (LocationPenalizedFrequencyScorer) Score(g *Graph, t document.Token) float64 {
	freq := float64(g.Frequency(g.Key(t)))
	n := t.Doc.Len()
	if n == 0 {
		return freq
	}
	return freq * float64(n-t.Index) / float64(n)
}

func (LocationPenalizedFrequencyScorer) Positional() {}
