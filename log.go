package trie

// Logger receives diagnostic messages from Build. It discards them by default.
var Logger = func(f string, args ...any) {}
