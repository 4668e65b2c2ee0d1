// Package trie stores entity/relationship templates under the POS tag
// sequence of the sentence they were authored for.
//
// A Trie is built once and is read only afterwards: Insert must not run
// concurrently with anything else, lookups may run concurrently with each
// other.
package trie

import (
	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/model"
	sent "github.com/revelaction/ertrie/sentence"
)

// Node is a position in a tag path. A node may be internal and carry a
// template at the same time.
type Node struct {
	Tag string

	// Word is the word of the first training sentence that created the node.
	Word string

	children []*Node
	leaf     *model.Model
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	return find(n.children, tag)
}

// HasLeaf reports whether a template terminates at n.
func (n *Node) HasLeaf() bool {
	return n.leaf != nil
}

// Template returns a copy of the template stored at n.
func (n *Node) Template() (model.Model, bool) {
	if n.leaf == nil {
		return model.Model{}, false
	}
	return n.leaf.Clone(), true
}

func find(nodes []*Node, tag string) *Node {
	for _, n := range nodes {
		if n.Tag == tag {
			return n
		}
	}
	return nil
}

// Trie is a forest: one root per distinct first tag.
type Trie struct {
	roots  []*Node
	nodes  int
	leaves int
}

func New() *Trie {
	return &Trie{}
}

// Roots returns the roots in insertion order.
func (t *Trie) Roots() []*Node {
	return t.roots
}

// Len returns the number of nodes.
func (t *Trie) Len() int {
	return t.nodes
}

// Leaves returns the number of nodes carrying a template.
func (t *Trie) Leaves() int {
	return t.leaves
}

// Insert stores a copy of tpl under the tag sequence of s. Existing nodes
// are followed as long as the tags match; new nodes are created for the
// rest. If the whole path exists, the template of its last node is
// replaced.
func (t *Trie) Insert(s sent.Sentence, tpl model.Model) error {
	if s.Len() == 0 {
		return errors.WithStack(errors.ErrEmptySentence)
	}

	level := &t.roots
	var node *Node
	for _, tok := range s.Tokens {
		node = find(*level, tok.Tag)
		if node == nil {
			node = &Node{Tag: tok.Tag, Word: tok.Text}
			*level = append(*level, node)
			t.nodes++
		}
		level = &node.children
	}

	if node.leaf == nil {
		t.leaves++
	}
	c := tpl.Clone()
	node.leaf = &c
	return nil
}

// InsertExample validates ex and inserts it.
func (t *Trie) InsertExample(ex model.Example) error {
	if err := ex.Validate(); err != nil {
		return err
	}
	return t.Insert(ex.Sentence(), ex.Template)
}

// Tags returns every tag present in the trie, in walk order, without
// duplicates.
func (t *Trie) Tags() []string {
	seen := map[string]bool{}
	var tags []string
	t.Walk(func(n *Node, _ int) bool {
		if !seen[n.Tag] {
			seen[n.Tag] = true
			tags = append(tags, n.Tag)
		}
		return true
	})
	return tags
}
