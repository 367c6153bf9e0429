/*
Package trie provides a compact radix trie for prefix completion over a fixed
table of words.

The trie never copies word contents. Each edge is labeled by a reference into
the caller's word table (word index, start and end offsets), and queries
return word indices that the caller maps back through the same table. A trie is
built once with Build and is read-only afterwards, so queries may run
concurrently.
*/
package trie
