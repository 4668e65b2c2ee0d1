package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/ertrie/trie"
)

// Detail selects what Tree prints for each node.
type Detail int

const (
	TagsOnly Detail = iota
	TagsAndWords
)

// Tree prints the trie, one node per line indented by depth. Nodes carrying
// a template end in ● followed by the number of entities and
// relationships of the template.
func Tree(w io.Writer, t *trie.Trie, d Detail, hasColor bool) error {
	bw := bufio.NewWriter(w)
	tr := &TextRenderer{HasColor: hasColor}

	t.Walk(func(n *trie.Node, depth int) bool {
		line := strings.Repeat("  ", depth) + n.Tag
		if d == TagsAndWords && n.Word != "" {
			line += " " + tr.color(Grey256, "("+n.Word+")")
		}
		if m, ok := n.Template(); ok {
			line += " " + tr.color(Green256, fmt.Sprintf("● %de %dr", len(m.Entities), len(m.Relationships)))
		}
		fmt.Fprintln(bw, line)
		return true
	})

	return bw.Flush()
}
