package trie

// GTrie is a generic wrapper around Trie that completes to entries of a typed
// table instead of word indices.
type GTrie[T any] struct {
	*Trie
	entries []T
}

// BuildG builds a trie over key(entries[i]) for every entry, in order.
// It fails under the same conditions as Build.
func BuildG[T any](entries []T, key func(T) string) (*GTrie[T], error) {
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = key(e)
	}
	t, err := Build(words)
	if err != nil {
		return nil, err
	}
	return &GTrie[T]{Trie: t, entries: entries}, nil
}

// Complete returns the entries whose key starts with prefix, in no particular
// order. It returns nil when nothing matches.
func (g *GTrie[T]) Complete(prefix string) []T {
	found, ok := g.Trie.Complete(prefix)
	if !ok {
		return nil
	}
	res := make([]T, len(found))
	for i, w := range found {
		res[i] = g.entries[w]
	}
	return res
}

// Entry returns the entry stored at index i.
func (g *GTrie[T]) Entry(i int) T {
	return g.entries[i]
}
