package trie

import (
	"fmt"

	"github.com/revelaction/ertrie/errors"
)

// Tag comparison costs. The first two characters of a tag name its coarse
// category: NN, NNS and NNP are all nouns.
const (
	ExactCost     = 0
	FamilyCost    = 25
	DifferentCost = 100
)

// Cost compares two tags.
func Cost(a, b string) int {
	if a == b {
		return ExactCost
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) >= 2 && len(rb) >= 2 && ra[0] == rb[0] && ra[1] == rb[1] {
		return FamilyCost
	}

	return DifferentCost
}

// Budget bounds the cost-bounded lookup: the cumulative cost of a path and
// the number of its different (DifferentCost) tags.
type Budget struct {
	MaxCost       int `mapstructure:"max_cost" yaml:"max_cost" json:"maxCost"`
	MaxMismatches int `mapstructure:"max_mismatches" yaml:"max_mismatches" json:"maxMismatches"`
}

// DefaultBudget is the budget used for paragraphs.
var DefaultBudget = Budget{MaxCost: 100, MaxMismatches: 80}

// Admits reports whether a path of the given cost and mismatches is within
// the budget.
func (b Budget) Admits(cost, mismatches int) bool {
	return cost <= b.MaxCost && mismatches <= b.MaxMismatches
}

func (b Budget) Validate() error {
	if b.MaxCost < 0 || b.MaxMismatches < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "negative budget %s", b)
	}
	return nil
}

func (b Budget) String() string {
	return fmt.Sprintf("(%d,%d)", b.MaxCost, b.MaxMismatches)
}
