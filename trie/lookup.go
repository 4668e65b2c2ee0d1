package trie

import (
	"context"
	"slices"
	"strings"

	"github.com/revelaction/ertrie/errors"
)

// Candidate is a node reached by a lookup, with the cost of the path that
// reached it.
type Candidate struct {
	Node       *Node
	Path       []*Node
	Cost       int
	Mismatches int
}

// Tags returns the tag path from the root to the candidate node.
func (c Candidate) Tags() []string {
	tags := make([]string, len(c.Path))
	for i, n := range c.Path {
		tags[i] = n.Tag
	}
	return tags
}

// Strict walks a single path: at each depth the first child with an
// identical tag, else the first child of the same family. There is no
// backtracking. The node reached by the last tag must carry a template.
func (t *Trie) Strict(tags []string) (Candidate, error) {
	if len(tags) == 0 {
		return Candidate{}, errors.WithStack(errors.ErrEmptySentence)
	}

	level := t.roots
	c := Candidate{Path: make([]*Node, 0, len(tags))}

	for depth, tag := range tags {
		next, cost := strictChild(level, tag)
		if next == nil {
			return Candidate{}, errors.Wrapf(errors.ErrNoMatch, "strict: no child for %q at depth %d of %s", tag, depth, strings.Join(tags, " "))
		}
		c.Node = next
		c.Path = append(c.Path, next)
		c.Cost += cost
		level = next.children
	}

	if !c.Node.HasLeaf() {
		return Candidate{}, errors.Wrapf(errors.ErrNoMatch, "strict: path %s has no template", strings.Join(tags, " "))
	}

	return c, nil
}

func strictChild(nodes []*Node, tag string) (*Node, int) {
	for _, n := range nodes {
		if Cost(n.Tag, tag) == ExactCost {
			return n, ExactCost
		}
	}
	for _, n := range nodes {
		if Cost(n.Tag, tag) <= FamilyCost {
			return n, FamilyCost
		}
	}
	return nil, 0
}

// Frontier returns the nodes reachable by paths of len(tags) nodes whose
// cumulative cost and mismatch count stay within b. A new frontier is built
// at each depth; nodes without children drop out. The result is in
// insertion order: first root branch first, then first child at each
// depth.
func (t *Trie) Frontier(ctx context.Context, tags []string, b Budget) ([]Candidate, error) {
	if len(tags) == 0 {
		return nil, errors.WithStack(errors.ErrEmptySentence)
	}

	frontier := expand(nil, t.roots, tags[0], b)

	for _, tag := range tags[1:] {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "frontier")
		}
		if len(frontier) == 0 {
			break
		}

		next := make([]Candidate, 0, len(frontier))
		for _, c := range frontier {
			next = append(next, expand(&c, c.Node.children, tag, b)...)
		}
		frontier = next
	}

	return frontier, nil
}

// expand admits the nodes whose tag, added to the path of parent, keeps the
// path within b. parent is nil for the roots.
func expand(parent *Candidate, nodes []*Node, tag string, b Budget) []Candidate {
	var out []Candidate
	for _, n := range nodes {
		cost := Cost(n.Tag, tag)

		c := Candidate{Node: n, Cost: cost}
		if parent != nil {
			c.Cost += parent.Cost
			c.Mismatches = parent.Mismatches
			c.Path = slices.Clip(parent.Path)
		}
		if cost == DifferentCost {
			c.Mismatches++
		}

		if !b.Admits(c.Cost, c.Mismatches) {
			continue
		}

		c.Path = append(c.Path, n)
		out = append(out, c)
	}
	return out
}

// Select returns the candidate carrying a template with the lowest cost,
// then the lowest mismatch count. Ties go to the earliest candidate.
func Select(candidates []Candidate) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range candidates {
		if !c.Node.HasLeaf() {
			continue
		}
		if !found || c.Cost < best.Cost || (c.Cost == best.Cost && c.Mismatches < best.Mismatches) {
			best = c
			found = true
		}
	}
	return best, found
}

// Approximate selects among the frontier of tags under b.
func (t *Trie) Approximate(ctx context.Context, tags []string, b Budget) (Candidate, error) {
	frontier, err := t.Frontier(ctx, tags, b)
	if err != nil {
		return Candidate{}, err
	}

	c, ok := Select(frontier)
	if !ok {
		return Candidate{}, errors.Wrapf(errors.ErrNoMatch, "approximate %s: %d survivors, none with a template", b, len(frontier))
	}
	return c, nil
}
