package trie

import (
	"fmt"
	"sort"
)

// Trie is a radix trie over a word table owned by the caller. Edge labels
// reference the table instead of copying it, so the table must not change
// while the trie is in use.
//
// A Trie is immutable once Build returns and is safe for concurrent use.
type Trie struct {
	words []string
	arena
}

// Build inserts words[0], words[1], ... into a new trie, in that order.
// Insertion order decides the shape of the tree but not query results.
//
// Every word must be non-empty, and no word may equal, extend, or be a prefix
// of another. Otherwise Build fails with a *BuildError wrapping ErrEmptyInput
// or ErrConflictingEntry, and no trie is returned.
func Build(words []string) (*Trie, error) {
	if len(words) == 0 {
		return nil, &BuildError{Index: -1, Err: ErrEmptyInput}
	}
	t := &Trie{
		words: words,
		arena: newArena(2 * len(words)),
	}
	for i, word := range words {
		if len(word) == 0 {
			return nil, &BuildError{Index: i, Err: ErrEmptyInput}
		}
		err := t.insert(i)
		if err != nil {
			Logger("build stopped at word %d %q: %v", i, word, err)
			return nil, &BuildError{Index: i, Word: word, Err: err}
		}
	}
	Logger("built trie: %d words, %d nodes", len(words), len(t.nodes))
	return t, nil
}

func (t *Trie) insert(w int) error {
	leaf := node{label: Label{Word: w, Start: 0, End: len(t.words[w]) - 1}}
	first := t.nodes[root].child
	if first == noNode {
		t.nodes[root].child = t.alloc(leaf)
		return nil
	}
	return t.place(slot{owner: root}, first, leaf)
}

// place finds the position of leaf in the chain starting at cur, which is
// linked from s. Both labels are compared from cur's start offset.
func (t *Trie) place(s slot, cur nodeIndex, leaf node) error {
	c := t.nodes[cur]
	rest := t.words[leaf.label.Word][c.label.Start:]
	m := commonPrefix(c.label.Text(t.words), rest)

	switch {
	case m == len(rest):
		return fmt.Errorf("%w: shares its whole path with word %d", ErrConflictingEntry, c.label.Word)

	case m == 0:
		if c.sibling == noNode {
			leaf.label.Start = c.label.Start
			t.nodes[cur].sibling = t.alloc(leaf)
			return nil
		}
		return t.place(slot{owner: cur, sibling: true}, c.sibling, leaf)

	case m == c.label.Len():
		if c.leaf() {
			return fmt.Errorf("%w: extends word %d", ErrConflictingEntry, c.label.Word)
		}
		return t.place(slot{owner: cur}, c.child, leaf)

	default:
		t.split(s, cur, m, leaf)
		return nil
	}
}

// split breaks the label of cur after m characters. A new branch node holding
// the common part takes cur's place in the chain; the shortened cur and leaf
// become its children.
func (t *Trie) split(s slot, cur nodeIndex, m int, leaf node) {
	c := t.nodes[cur]
	at := c.label.Start + m

	leaf.label.Start = at
	leaf.sibling = noNode
	l := t.alloc(leaf)

	branch := t.alloc(node{
		label:   Label{Word: c.label.Word, Start: c.label.Start, End: at - 1},
		child:   cur,
		sibling: c.sibling,
	})

	c.label.Start = at
	c.sibling = l
	t.nodes[cur] = c

	t.set(s, branch)
}

// Complete returns the indices of all words starting with prefix, in no
// particular order. The empty prefix matches every word. The boolean is false
// when nothing matches.
func (t *Trie) Complete(prefix string) ([]int, bool) {
	var found []int
	collect := func(l Label) {
		found = append(found, l.Word)
	}
	first := t.nodes[root].child
	switch {
	case first == noNode:
	case prefix == "":
		t.leaves(root, collect)
	default:
		t.complete(first, prefix, collect)
	}
	return found, len(found) > 0
}

func (t *Trie) complete(cur nodeIndex, prefix string, f func(Label)) {
	c := t.nodes[cur]
	rest := prefix[c.label.Start:]
	m := commonPrefix(c.label.Text(t.words), rest)

	switch {
	case m == len(rest):
		t.leaves(cur, f)
	case m == 0:
		if c.sibling != noNode {
			t.complete(c.sibling, prefix, f)
		}
	case m == c.label.Len():
		if !c.leaf() {
			t.complete(c.child, prefix, f)
		}
	}
	// a mismatch inside the label ends the search: siblings start with
	// other characters
}

// Search is like Complete but returns the matching words themselves, sorted.
// If limit is positive at most limit words are returned.
func (t *Trie) Search(prefix string, limit int) []string {
	found, ok := t.Complete(prefix)
	if !ok {
		return []string{}
	}
	hits := make([]string, len(found))
	for i, w := range found {
		hits[i] = t.words[w]
	}
	sort.Strings(hits)
	if limit > 0 && len(hits) > limit {
		return hits[:limit]
	}
	return hits
}

// Words returns the word table the trie was built over. The slice is shared
// with the caller, not copied.
func (t *Trie) Words() []string {
	return t.words
}

// Len returns the number of words in the trie.
func (t *Trie) Len() int {
	return len(t.words)
}

// Nodes returns the number of nodes in the trie, root included.
func (t *Trie) Nodes() int {
	return len(t.nodes)
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}
