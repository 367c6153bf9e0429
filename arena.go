package trie

// Label references the characters words[Word][Start:End+1] of a word table.
// It is the label of the edge leading into a node.
type Label struct {
	Word  int
	Start int
	End   int
}

// Len returns the number of characters covered by the label.
func (l Label) Len() int {
	return l.End - l.Start + 1
}

// Text returns the characters the label refers to.
func (l Label) Text(words []string) string {
	return words[l.Word][l.Start : l.End+1]
}

// nodeIndex addresses a node in the arena. The root lives at index 0 and is
// never a child or sibling, so 0 also serves as the nil link.
type nodeIndex int

const (
	root   nodeIndex = 0
	noNode nodeIndex = 0
)

type node struct {
	label   Label
	child   nodeIndex // first child
	sibling nodeIndex // next node under the same parent
}

func (n node) leaf() bool {
	return n.child == noNode
}

// arena holds every node of a trie in one growable slice.
type arena struct {
	nodes []node
}

func newArena(capacity int) arena {
	a := arena{nodes: make([]node, 1, capacity+1)}
	return a
}

func (a *arena) alloc(n node) nodeIndex {
	a.nodes = append(a.nodes, n)
	return nodeIndex(len(a.nodes) - 1)
}

// slot identifies the link that points at a node: either the first-child
// link of owner or its sibling link.
type slot struct {
	owner   nodeIndex
	sibling bool
}

func (a *arena) set(s slot, to nodeIndex) {
	if s.sibling {
		a.nodes[s.owner].sibling = to
	} else {
		a.nodes[s.owner].child = to
	}
}

// leaves calls f for every leaf in the subtree rooted at n, depth first.
func (a *arena) leaves(n nodeIndex, f func(Label)) {
	if a.nodes[n].leaf() {
		f(a.nodes[n].label)
		return
	}
	for c := a.nodes[n].child; c != noNode; c = a.nodes[c].sibling {
		a.leaves(c, f)
	}
}
