// Package keyword implements Rapid Automatic Keyword Extraction (RAKE) over
// annotated documents, with pluggable phrasing, keying, scoring and
// aggregation strategies.
package keyword

import (
	"sort"

	"go.uber.org/zap"

	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/pipeline"
)

const (
	DefaultMinLength = 1
	DefaultMaxLength = 100_000
)

// Analyzer parses raw text into an annotated document.
type Analyzer = pipeline.Analyzer

// Ranked is one scored phrase.
type Ranked struct {
	Score  float64       `json:"score"`
	Text   string        `json:"phrase"`
	Phrase document.Span `json:"-"`
}

// Result carries everything one extraction computed.
type Result struct {
	Doc     *document.Document
	Phrases []document.Span
	Graph   *Graph
	Ranked  []Ranked
}

// Rake ranks the phrases of a text. It keeps no per-call state, so one Rake
// may serve concurrent calls as long as its strategies are stateless.
type Rake struct {
	analyzer   Analyzer
	phraser    Phraser
	scorer     WordScorer
	aggregator Aggregator
	stop       StopTokenClassifier
	mapper     TokenMapper
	minLength  int
	maxLength  int
	logger     *zap.Logger
}

// Option configures a Rake. Nil strategies leave the default in place.
type Option func(*Rake)

func WithAnalyzer(a Analyzer) Option {
	return func(r *Rake) {
		if a != nil {
			r.analyzer = a
		}
	}
}

func WithPhraser(p Phraser) Option {
	return func(r *Rake) {
		if p != nil {
			r.phraser = p
		}
	}
}

func WithWordScorer(s WordScorer) Option {
	return func(r *Rake) {
		if s != nil {
			r.scorer = s
		}
	}
}

func WithAggregator(a Aggregator) Option {
	return func(r *Rake) {
		if a != nil {
			r.aggregator = a
		}
	}
}

func WithStopTokens(c StopTokenClassifier) Option {
	return func(r *Rake) {
		if c != nil {
			r.stop = c
		}
	}
}

func WithTokenMapper(m TokenMapper) Option {
	return func(r *Rake) {
		if m != nil {
			r.mapper = m
		}
	}
}

// WithLengthLimits keeps only phrases with min <= tokens <= max. A min
// below 1 is raised to 1.
func WithLengthLimits(min, max int) Option {
	return func(r *Rake) {
		if min < 1 {
			min = 1
		}
		r.minLength, r.maxLength = min, max
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Rake) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Rake using the English pipeline, contiguous non-stop
// phrases, text keys, frequency scores and summed phrase scores unless
// overridden.
func New(opts ...Option) *Rake {
	r := &Rake{
		analyzer:   pipeline.NewEnglish(),
		phraser:    ContiguousPhraser{},
		scorer:     FrequencyScorer{},
		aggregator: SumAggregator{},
		stop:       BasicStopTokens{},
		mapper:     TextMapper{},
		minLength:  DefaultMinLength,
		maxLength:  DefaultMaxLength,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply parses text and returns its phrases ranked by descending score.
// Analyzer errors are returned unchanged.
func (r *Rake) Apply(text string) ([]Ranked, error) {
	res, err := r.Analyze(text)
	if err != nil {
		return nil, err
	}
	return res.Ranked, nil
}

// Analyze is Apply that also returns the document, phrases and graph.
func (r *Rake) Analyze(text string) (*Result, error) {
	doc, err := r.analyzer.Parse(text)
	if err != nil {
		return nil, err
	}
	return r.analyzeDoc(doc), nil
}

// ApplyToDoc ranks the phrases of an already parsed document.
func (r *Rake) ApplyToDoc(doc *document.Document) []Ranked {
	return r.analyzeDoc(doc).Ranked
}

func (r *Rake) analyzeDoc(doc *document.Document) *Result {
	phrases := r.phrases(doc)
	g := BuildGraph(phrases, r.mapper, r.stop)

	_, positional := r.scorer.(PositionalScorer)
	cache := make(map[string]float64)
	score := func(t document.Token) float64 {
		if positional {
			return r.scorer.Score(g, t)
		}
		k := g.Key(t)
		if s, ok := cache[k]; ok {
			return s
		}
		s := r.scorer.Score(g, t)
		cache[k] = s
		return s
	}

	ranked := make([]Ranked, 0, len(phrases))
	for _, p := range phrases {
		toks := p.Tokens()
		scores := make([]float64, len(toks))
		for i, t := range toks {
			scores[i] = score(t)
		}
		ranked = append(ranked, Ranked{
			Score:  r.aggregator.Aggregate(scores),
			Text:   p.Text(),
			Phrase: p,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	r.logger.Debug("keywords extracted",
		zap.Int("tokens", doc.Len()),
		zap.Int("phrases", len(phrases)),
		zap.Int("vertices", g.Len()),
	)
	return &Result{Doc: doc, Phrases: phrases, Graph: g, Ranked: ranked}
}

func (r *Rake) phrases(doc *document.Document) []document.Span {
	if doc.Len() == 0 {
		return nil
	}
	var out []document.Span
	for _, p := range r.phraser.Phrases(doc) {
		if n := p.Len(); n >= r.minLength && n <= r.maxLength {
			out = append(out, p)
		}
	}
	return out
}
