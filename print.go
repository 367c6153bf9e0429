package trie

import (
	"fmt"
	"io"
	"strings"
)

func (t *Trie) String() string {
	var b strings.Builder
	_ = t.Fprint(&b)
	return b.String()
}

// Fprint writes the tree to w, one node per line, indented by depth. Each line
// shows the node's label; leaves also show their word index:
//
//	ca
//	  t [0]
//	  r [1]
func (t *Trie) Fprint(w io.Writer) error {
	for c := t.nodes[root].child; c != noNode; c = t.nodes[c].sibling {
		err := t.fprint(w, c, 0)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Trie) fprint(w io.Writer, n nodeIndex, depth int) error {
	nd := t.nodes[n]
	line := strings.Repeat("  ", depth) + nd.label.Text(t.words)
	if nd.leaf() {
		line += fmt.Sprintf(" [%d]", nd.label.Word)
	}
	_, err := fmt.Fprintln(w, line)
	if err != nil {
		return err
	}
	for c := nd.child; c != noNode; c = t.nodes[c].sibling {
		err = t.fprint(w, c, depth+1)
		if err != nil {
			return err
		}
	}
	return nil
}
