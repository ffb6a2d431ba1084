// Package pipeline provides the analyzers that turn raw text into annotated
// documents for keyword extraction.
package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"

	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/ner"
	"github.com/oarkflow/rake/nlp/pos"
	"github.com/oarkflow/rake/nlp/tokenizer"
)

const (
	// NameEnglish selects the prose-backed tagging pipeline.
	NameEnglish = "en_core"
	// NameBasic selects the regex tokenizer with the rule tagger.
	NameBasic = "en_basic"
	// DefaultName is used when no pipeline is configured.
	DefaultName = NameEnglish
)

// ErrUnknownPipeline is returned by Load for names it does not know.
var ErrUnknownPipeline = errors.New("pipeline: unknown pipeline")

// Analyzer parses text into an annotated document.
type Analyzer interface {
	Parse(text string) (*document.Document, error)
}

var registry = map[string]func() Analyzer{
	NameEnglish: func() Analyzer { return NewEnglish() },
	NameBasic:   func() Analyzer { return NewBasic() },
}

// Load returns the analyzer registered under name. An empty name selects
// DefaultName.
func Load(name string) (Analyzer, error) {
	if name == "" {
		name = DefaultName
	}
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPipeline, name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}

// Names lists the registered pipeline names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Basic tokenizes with a regular expression, tags with the rule tagger and
// labels gazetteer entities. It never fails.
type Basic struct{}

func NewBasic() *Basic { return &Basic{} }

func (b *Basic) Parse(text string) (*document.Document, error) {
	words := tokenizer.Tokenize(text)
	tags := pos.Tag(words)
	labels := ner.Label(words)
	tokens := make([]document.Token, len(words))
	for i, w := range words {
		tokens[i] = annotate(w, tags[i], labels[i])
	}
	return document.New(text, tokens), nil
}

// English runs prose's tokenizer, averaged-perceptron tagger and entity
// extractor. Sentence segmentation is disabled. Whitespace prose skips is
// kept as "_SP" tokens, except single spaces, as in Basic.
type English struct {
	model *prose.Model
	err   error
}

var (
	modelOnce sync.Once
	model     *prose.Model
	modelErr  error
)

// loadModel builds prose's tagging and entity model once per process.
func loadModel() (*prose.Model, error) {
	modelOnce.Do(func() {
		doc, err := prose.NewDocument("", prose.WithSegmentation(false))
		if err != nil {
			modelErr = fmt.Errorf("pipeline: %s: load model: %w", NameEnglish, err)
			return
		}
		model = doc.Model
	})
	return model, modelErr
}

// NewEnglish shares one model across all English analyzers. A model load
// failure is reported by Parse.
func NewEnglish() *English {
	m, err := loadModel()
	return &English{model: m, err: err}
}

func (e *English) Parse(text string) (*document.Document, error) {
	if strings.TrimSpace(text) == "" {
		return document.New(text, nil), nil
	}
	doc, err := e.document(text)
	if err != nil {
		return nil, err
	}

	var tokens []document.Token
	cursor := 0
	for _, t := range doc.Tokens() {
		if t.Text == "" {
			continue
		}
		if i := strings.Index(text[cursor:], t.Text); i >= 0 {
			tokens = appendGap(tokens, text[cursor:cursor+i])
			cursor += i + len(t.Text)
		}
		tokens = append(tokens, annotate(t.Text, t.Tag, t.Label))
	}
	tokens = appendGap(tokens, text[cursor:])
	return document.New(text, tokens), nil
}

func (e *English) document(text string) (*prose.Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false), prose.UsingModel(e.model))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s: %w", NameEnglish, err)
	}
	return doc, nil
}

// appendGap annotates text prose dropped between two tokens.
func appendGap(tokens []document.Token, gap string) []document.Token {
	words := tokenizer.Tokenize(gap)
	tags := pos.Tag(words)
	for i, w := range words {
		tokens = append(tokens, annotate(w, tags[i], "O"))
	}
	return tokens
}
