package keyword

import (
	"sort"

	"github.com/oarkflow/rake/nlp/document"
)

// Graph is a sparse, weighted co-occurrence graph over mapped token keys.
// The diagonal holds each key's occurrence count.
type Graph struct {
	mapper TokenMapper
	adj    map[string]map[string]int
}

// NewGraph returns an empty graph keyed by mapper.
func NewGraph(mapper TokenMapper) *Graph {
	if mapper == nil {
		mapper = TextMapper{}
	}
	return &Graph{mapper: mapper, adj: make(map[string]map[string]int)}
}

// BuildGraph counts, for every phrase, each ordered pair of its tokens
// (self pairs included) where neither token is a stop token.
func BuildGraph(phrases []document.Span, mapper TokenMapper, stop StopTokenClassifier) *Graph {
	if stop == nil {
		stop = BasicStopTokens{}
	}
	g := NewGraph(mapper)
	for _, p := range phrases {
		toks := p.Tokens()
		for _, a := range toks {
			if stop.IsStop(a) {
				continue
			}
			ka := g.Key(a)
			for _, b := range toks {
				if stop.IsStop(b) {
					continue
				}
				g.Increment(ka, g.Key(b))
			}
		}
	}
	return g
}

// Key maps t with the graph's mapper.
func (g *Graph) Key(t document.Token) string {
	return g.mapper.Map(t)
}

// Increment adds one to the (a, b) edge, creating it if absent.
func (g *Graph) Increment(a, b string) {
	row, ok := g.adj[a]
	if !ok {
		row = make(map[string]int)
		g.adj[a] = row
	}
	row[b]++
}

// Count returns the weight of the (a, b) edge, 0 if absent.
func (g *Graph) Count(a, b string) int {
	return g.adj[a][b]
}

// Frequency returns the diagonal count of key.
func (g *Graph) Frequency(key string) int {
	return g.adj[key][key]
}

// Degree returns the sum of key's row.
func (g *Graph) Degree(key string) int {
	d := 0
	for _, n := range g.adj[key] {
		d += n
	}
	return d
}

// Neighbors returns a copy of key's row.
func (g *Graph) Neighbors(key string) map[string]int {
	row := g.adj[key]
	out := make(map[string]int, len(row))
	for k, n := range row {
		out[k] = n
	}
	return out
}

// Keys returns all vertices in sorted order.
func (g *Graph) Keys() []string {
	keys := make([]string, 0, len(g.adj))
	for k := range g.adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Frequencies returns the frequency distribution over all vertices.
func (g *Graph) Frequencies() map[string]int {
	out := make(map[string]int, len(g.adj))
	for k := range g.adj {
		out[k] = g.Frequency(k)
	}
	return out
}

// Degrees returns the degree of every vertex.
func (g *Graph) Degrees() map[string]int {
	out := make(map[string]int, len(g.adj))
	for k := range g.adj {
		out[k] = g.Degree(k)
	}
	return out
}

// Matrix returns a copy of the adjacency map.
func (g *Graph) Matrix() map[string]map[string]int {
	out := make(map[string]map[string]int, len(g.adj))
	for k := range g.adj {
		out[k] = g.Neighbors(k)
	}
	return out
}
