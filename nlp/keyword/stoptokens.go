package keyword

import "github.com/oarkflow/rake/nlp/document"

// StopTokenClassifier decides whether a token is kept out of the
// co-occurrence graph.
type StopTokenClassifier interface {
	IsStop(t document.Token) bool
}

// StopTokenFunc adapts a function to StopTokenClassifier.
type StopTokenFunc func(t document.Token) bool

func (f StopTokenFunc) IsStop(t document.Token) bool { return f(t) }

// BasicStopTokens treats stop words, whitespace and punctuation as stop
// tokens unless they look like numbers.
type BasicStopTokens struct{}

func (BasicStopTokens) IsStop(t document.Token) bool {
	return (t.IsStop || t.IsSpace || t.IsPunct) && !t.LikeNum
}

// AnyStop reports a token as a stop token when any of cs does.
func AnyStop(cs ...StopTokenClassifier) StopTokenClassifier {
	return StopTokenFunc(func(t document.Token) bool {
		for _, c := range cs {
			if c.IsStop(t) {
				return true
			}
		}
		return false
	})
}
