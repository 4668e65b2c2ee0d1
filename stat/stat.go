package stat

import (
	"github.com/revelaction/ertrie/model"
	"github.com/revelaction/ertrie/trie"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	Roots  int `json:"roots" yaml:"roots"`
	Nodes  int `json:"nodes" yaml:"nodes"`
	Leaves int `json:"leaves" yaml:"leaves"`

	// MaxDepth is the length of the longest tag path.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// InternalLeaves counts nodes carrying a template that also have
	// children.
	InternalLeaves int `json:"internal_leaves" yaml:"internal_leaves"`

	TagCount map[string]int `json:"tag_count" yaml:"tag_count"`

	Examples             int         `json:"examples" yaml:"examples"`
	Tokens               int         `json:"tokens" yaml:"tokens"`
	TokensPerExampleMean int         `json:"tokens_per_example_mean" yaml:"tokens_per_example_mean"`
	TokensPerExampleDis  map[int]int `json:"tokens_per_example_dis" yaml:"tokens_per_example_dis"`
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TagCount: map[string]int{}, TokensPerExampleDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(t *trie.Trie) {
	h.stats.Roots = len(t.Roots())
	h.stats.Nodes = t.Len()
	h.stats.Leaves = t.Leaves()

	t.Walk(func(n *trie.Node, depth int) bool {
		h.stats.TagCount[n.Tag]++
		if depth+1 > h.stats.MaxDepth {
			h.stats.MaxDepth = depth + 1
		}
		if n.HasLeaf() && len(n.Children()) > 0 {
			h.stats.InternalLeaves++
		}
		return true
	})
}

func (h *Handler) AggregateExamples(lib model.Library) {
	h.stats.Examples += len(lib)
	for _, ex := range lib {
		h.stats.Tokens += len(ex.Tokens)
		h.stats.TokensPerExampleDis[len(ex.Tokens)]++
	}

	if h.stats.Examples == 0 {
		return
	}
	h.stats.TokensPerExampleMean = h.stats.Tokens / h.stats.Examples
}
