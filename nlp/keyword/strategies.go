package keyword

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/oarkflow/rake/nlp/config"
	"github.com/oarkflow/rake/nlp/pipeline"
)

// ErrUnknownStrategy is returned for strategy names that are not registered.
var ErrUnknownStrategy = errors.New("keyword: unknown strategy")

var mappers = map[string]TokenMapper{
	"text":        TextMapper{},
	"lemma":       LemmaMapper{},
	"lemma_lower": LemmaLowerMapper{},
	"fold":        FoldMapper{},
	"stem":        StemMapper{},
}

var scorers = map[string]WordScorer{
	"frequency":                    FrequencyScorer{},
	"degree":                       DegreeScorer{},
	"degree_to_frequency":          DegreeToFrequencyScorer{},
	"location_penalized_frequency": LocationPenalizedFrequencyScorer{},
}

var phrasers = map[string]Phraser{
	"contiguous":        ContiguousPhraser{},
	"entity_noun_chunk": EntityNounChunkPhraser{},
}

var aggregatorNames = []string{"mean", "penalized_norm", "sum"}

func MapperByName(name string) (TokenMapper, error) {
	return lookup("mapper", name, mappers)
}

func ScorerByName(name string) (WordScorer, error) {
	return lookup("scorer", name, scorers)
}

func PhraserByName(name string) (Phraser, error) {
	return lookup("phraser", name, phrasers)
}

// AggregatorByName resolves an aggregator. maxLen only applies to
// "penalized_norm"; values below 1 select DefaultMaxLenBeforePenalization.
func AggregatorByName(name string, maxLen int) (Aggregator, error) {
	switch name {
	case "sum":
		return SumAggregator{}, nil
	case "mean":
		return MeanAggregator{}, nil
	case "penalized_norm":
		return PenalizedNormAggregator{MaxLen: maxLen}, nil
	}
	return nil, unknown("aggregator", name, aggregatorNames)
}

// FromConfig builds a Rake from the extractor section of a configuration.
func FromConfig(c config.Extractor, logger *zap.Logger) (*Rake, error) {
	analyzer, err := pipeline.Load(c.Pipeline)
	if err != nil {
		return nil, err
	}
	phraser, err := PhraserByName(c.Phraser)
	if err != nil {
		return nil, err
	}
	mapper, err := MapperByName(c.Mapper)
	if err != nil {
		return nil, err
	}
	scorer, err := ScorerByName(c.Scorer)
	if err != nil {
		return nil, err
	}
	aggregator, err := AggregatorByName(c.Aggregator, c.MaxLenBeforePenalization)
	if err != nil {
		return nil, err
	}
	return New(
		WithAnalyzer(analyzer),
		WithPhraser(phraser),
		WithTokenMapper(mapper),
		WithWordScorer(scorer),
		WithAggregator(aggregator),
		WithLengthLimits(c.MinLength, c.MaxLength),
		WithLogger(logger),
	), nil
}

func lookup[T any](kind, name string, m map[string]T) (T, error) {
	if v, ok := m[name]; ok {
		return v, nil
	}
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	var zero T
	return zero, unknown(kind, name, names)
}

func unknown(kind, name string, known []string) error {
	return fmt.Errorf("%w: %s %q (known: %s)", ErrUnknownStrategy, kind, name, strings.Join(known, ", "))
}
