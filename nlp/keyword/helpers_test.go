package keyword

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/pipeline"
)

const (
	setsText   = "linear constraints over the set of natural numbers"
	applesText = "red apples, are better than green apples."
)

func parse(t *testing.T, text string) *document.Document {
	t.Helper()
	doc, err := pipeline.NewBasic().Parse(text)
	require.NoError(t, err)
	return doc
}

func texts(spans []document.Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text()
	}
	return out
}

func rankedTexts(rs []Ranked) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Text
	}
	return out
}

func rankedScores(rs []Ranked) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Score
	}
	return out
}

// tagged builds a document from word/tag/label triples.
func tagged(triples ...[3]string) *document.Document {
	toks := make([]document.Token, len(triples))
	for i, tr := range triples {
		toks[i] = document.Token{Text: tr[0], Lemma: tr[0], Tag: tr[1], Label: tr[2]}
	}
	return document.New("", toks)
}

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Parse(text string) (*document.Document, error) {
	args := m.Called(text)
	doc, _ := args.Get(0).(*document.Document)
	return doc, args.Error(1)
}
