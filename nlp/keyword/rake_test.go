package keyword

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/pipeline"
)

func basicRake(opts ...Option) *Rake {
	return New(append([]Option{WithAnalyzer(pipeline.NewBasic())}, opts...)...)
}

func TestRakeDefaults(t *testing.T) {
	got, err := basicRake().Apply(setsText)
	require.NoError(t, err)

	assert.Equal(t, []string{"linear constraints", "natural numbers", "set"}, rankedTexts(got))
	assert.Equal(t, []float64{2, 2, 1}, rankedScores(got))
}

func TestRakeDefaultPipeline(t *testing.T) {
	res, err := New().Analyze(setsText)
	require.NoError(t, err)

	assert.Equal(t, []string{"linear constraints", "natural numbers", "set"}, rankedTexts(res.Ranked))
	for _, k := range []string{"over", "the", "of"} {
		assert.NotContains(t, res.Graph.Keys(), k)
	}
	for i, r := range res.Ranked {
		if i > 0 {
			assert.GreaterOrEqual(t, res.Ranked[i-1].Score, r.Score)
		}
		want := 0.0
		for _, tok := range r.Phrase.Tokens() {
			want += float64(res.Graph.Frequency(tok.Text))
		}
		assert.Equal(t, want, r.Score, r.Text)
	}
	assert.Equal(t, []float64{2, 2, 1}, rankedScores(res.Ranked))
}

func TestRakeDefaultPipelineSplitsOnLineBreaks(t *testing.T) {
	got, err := New().Apply("machine learning\n\ndeep networks")
	require.NoError(t, err)

	assert.Equal(t, []string{"machine learning", "deep networks"}, rankedTexts(got))
	assert.Equal(t, []float64{2, 2}, rankedScores(got))
}

func TestRakeApples(t *testing.T) {
	tests := []struct {
		name   string
		scorer WordScorer
		want   []Ranked
	}{
		{"frequency", FrequencyScorer{}, []Ranked{{Score: 3, Text: "red apples"}, {Score: 3, Text: "green apples"}, {Score: 1, Text: "better"}}},
		{"degree", DegreeScorer{}, []Ranked{{Score: 6, Text: "red apples"}, {Score: 6, Text: "green apples"}, {Score: 1, Text: "better"}}},
		{"degree_to_frequency", DegreeToFrequencyScorer{}, []Ranked{{Score: 4, Text: "red apples"}, {Score: 4, Text: "green apples"}, {Score: 1, Text: "better"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := basicRake(WithWordScorer(tt.scorer)).Apply(applesText)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Text, got[i].Text)
				assert.Equal(t, tt.want[i].Score, got[i].Score)
			}
		})
	}
}

func TestRakeTiesKeepExtractionOrder(t *testing.T) {
	got, err := basicRake().Apply("zebra crossing, apple pie")
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra crossing", "apple pie"}, rankedTexts(got))
}

func TestRakeSortedNonIncreasing(t *testing.T) {
	text := "Compatibility of systems of linear constraints over the set of natural numbers. " +
		"Criteria of compatibility of a system of linear Diophantine equations, strict inequations, " +
		"and nonstrict inequations are considered."
	for name, s := range scorers {
		got, err := basicRake(WithWordScorer(s)).Apply(text)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score, name)
		}
	}
}

func TestRakeEmptyInputs(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t", "the of and", ", . ;"} {
		got, err := basicRake().Apply(text)
		require.NoError(t, err)
		assert.NotNil(t, got, "%q", text)
		assert.Empty(t, got, "%q", text)
	}
}

func TestRakeAnalyzerError(t *testing.T) {
	boom := errors.New("boom")
	a := &mockAnalyzer{}
	a.On("Parse", "some text").Return(nil, boom)

	got, err := New(WithAnalyzer(a)).Apply("some text")
	assert.Same(t, boom, err)
	assert.Nil(t, got)
	a.AssertExpectations(t)
}

func TestRakeUsesInjectedAnalyzer(t *testing.T) {
	doc := parse(t, applesText)
	a := &mockAnalyzer{}
	a.On("Parse", mock.Anything).Return(doc, nil).Once()

	res, err := New(WithAnalyzer(a)).Analyze("ignored")
	require.NoError(t, err)
	assert.Same(t, doc, res.Doc)
	assert.Equal(t, []string{"red apples", "better", "green apples"}, texts(res.Phrases))
	assert.Equal(t, 4, res.Graph.Degree("apples"))
	a.AssertExpectations(t)
}

func TestRakeAggregatorOnlyChangesScores(t *testing.T) {
	sum, err := basicRake().Analyze(applesText)
	require.NoError(t, err)
	mean, err := basicRake(WithAggregator(MeanAggregator{})).Analyze(applesText)
	require.NoError(t, err)

	assert.Equal(t, texts(sum.Phrases), texts(mean.Phrases))
	assert.Equal(t, sum.Graph.Matrix(), mean.Graph.Matrix())
	assert.Equal(t, []float64{1.5, 1.5, 1}, rankedScores(mean.Ranked))
}

func TestRakeDeterministic(t *testing.T) {
	a, err := basicRake().Apply(applesText)
	require.NoError(t, err)
	b, err := basicRake().Apply(applesText)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRakeConcurrentUse(t *testing.T) {
	r := basicRake()
	want, err := r.Apply(setsText)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Apply(setsText)
			assert.NoError(t, err)
			assert.Equal(t, rankedTexts(want), rankedTexts(got))
		}()
	}
	wg.Wait()
}

func TestRakeLengthLimits(t *testing.T) {
	got, err := basicRake(WithLengthLimits(2, 2)).Apply(setsText)
	require.NoError(t, err)
	assert.Equal(t, []string{"linear constraints", "natural numbers"}, rankedTexts(got))

	got, err = basicRake(WithLengthLimits(0, 1)).Apply(setsText)
	require.NoError(t, err)
	assert.Equal(t, []string{"set"}, rankedTexts(got))
}

func TestRakeLengthFilterAppliesBeforeGraph(t *testing.T) {
	res, err := basicRake(WithLengthLimits(2, 10)).Analyze(applesText)
	require.NoError(t, err)
	assert.NotContains(t, res.Graph.Keys(), "better")
}

func TestRakePositionalScoresAreNotCached(t *testing.T) {
	got, err := basicRake(WithWordScorer(LocationPenalizedFrequencyScorer{})).Apply("apples and apples")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.InDelta(t, 2.0, got[0].Score, 1e-9)
	assert.InDelta(t, 2.0/3.0, got[1].Score, 1e-9)
	assert.Equal(t, 0, got[0].Phrase.Start)
	assert.Equal(t, 2, got[1].Phrase.Start)
}

func TestRakeCustomStopTokens(t *testing.T) {
	stop := AnyStop(BasicStopTokens{}, StopTokenFunc(func(t document.Token) bool { return t.Text == "red" }))
	got, err := basicRake(WithStopTokens(stop)).Apply(applesText)
	require.NoError(t, err)

	assert.Equal(t, []string{"green apples", "red apples", "better"}, rankedTexts(got))
	assert.Equal(t, []float64{3, 2, 1}, rankedScores(got))
}

func TestRakeTokenMapper(t *testing.T) {
	got, err := basicRake(WithTokenMapper(LemmaLowerMapper{})).Apply("Apples grow. Red apple")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apples grow", "Red apple"}, rankedTexts(got))
	assert.Equal(t, []float64{3, 3}, rankedScores(got)[:2])
}

func TestRakeEntityNounChunks(t *testing.T) {
	res, err := basicRake(WithPhraser(EntityNounChunkPhraser{})).Analyze("Apple is looking at buying U.K. startup for $1 billion")
	require.NoError(t, err)

	phrases := texts(res.Phrases)
	assert.Contains(t, phrases, "Apple")
	assert.Contains(t, phrases, "U . K .")
	assert.NotContains(t, res.Graph.Keys(), ".")
	assert.Len(t, res.Ranked, len(res.Phrases))
}

func TestApplyToDoc(t *testing.T) {
	got := basicRake().ApplyToDoc(parse(t, setsText))
	assert.Equal(t, []string{"linear constraints", "natural numbers", "set"}, rankedTexts(got))

	assert.Empty(t, basicRake().ApplyToDoc(nil))
}

func TestNewIgnoresNilOptions(t *testing.T) {
	r := New(WithAnalyzer(nil), WithPhraser(nil), WithWordScorer(nil), WithAggregator(nil),
		WithStopTokens(nil), WithTokenMapper(nil), WithLogger(nil))

	assert.IsType(t, &pipeline.English{}, r.analyzer)
	assert.IsType(t, ContiguousPhraser{}, r.phraser)
	assert.IsType(t, FrequencyScorer{}, r.scorer)
	assert.IsType(t, SumAggregator{}, r.aggregator)
	assert.IsType(t, BasicStopTokens{}, r.stop)
	assert.IsType(t, TextMapper{}, r.mapper)
	assert.NotNil(t, r.logger)
}

func TestRakeLogsExtraction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := basicRake(WithLogger(zap.New(core))).Apply(setsText)
	require.NoError(t, err)

	entries := logs.FilterMessage("keywords extracted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["phrases"])
	assert.EqualValues(t, 5, fields["vertices"])
}
