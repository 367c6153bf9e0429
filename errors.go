package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Build gets no words or an empty word.
	ErrEmptyInput = errors.New("empty input")

	// ErrConflictingEntry is returned when a word duplicates, extends, or is
	// a prefix of a word inserted before it.
	ErrConflictingEntry = errors.New("conflicting entry")
)

// BuildError reports which word made Build fail. Index is -1 when the word
// table itself is empty.
type BuildError struct {
	Index int
	Word  string
	Err   error
}

func (e *BuildError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("trie: %v", e.Err)
	}
	return fmt.Sprintf("trie: word %d (%q): %v", e.Index, e.Word, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
