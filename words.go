package trie

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// InvalidWordError reports a line of a word list that is not made of
// lowercase ASCII letters only.
type InvalidWordError struct {
	Line int
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("line %d: invalid word %q", e.Line, e.Word)
}

// WordReader loads a word table, one word per line. The trie expects words to
// be lowercase ASCII letters; a WordReader can normalise input into that form
// before it reaches Build.
type WordReader struct {
	r                         io.Reader
	normalised, latin1, dedup bool
}

// NewWordReader creates a reader over r. By default input is read as UTF-8,
// not normalised and not deduplicated.
func NewWordReader(r io.Reader) *WordReader {
	return &WordReader{r: r}
}

// WithNormalisation strips diacritics and lowercases every word, so that
// "Jürgen" is read as "jurgen".
func (wr *WordReader) WithNormalisation() *WordReader {
	wr.normalised = true
	return wr
}

// WithoutNormalisation reads words verbatim.
func (wr *WordReader) WithoutNormalisation() *WordReader {
	wr.normalised = false
	return wr
}

// Latin1 decodes the input as ISO-8859-1 instead of UTF-8.
func (wr *WordReader) Latin1() *WordReader {
	wr.latin1 = true
	return wr
}

// WithDedupe drops repeated words, keeping the first occurrence. Build
// rejects exact duplicates, so lists that may contain them should use this.
func (wr *WordReader) WithDedupe() *WordReader {
	wr.dedup = true
	return wr
}

// ReadAll reads the whole input. Blank lines are skipped and surrounding
// space is trimmed.
func (wr *WordReader) ReadAll() ([]string, error) {
	in := wr.r
	if wr.latin1 {
		in = charmap.ISO8859_1.NewDecoder().Reader(in)
	}
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	var words []string
	seen := map[string]bool{}
	s := bufio.NewScanner(in)
	line := 0
	for s.Scan() {
		line++
		word := strings.TrimSpace(s.Text())
		if word == "" {
			continue
		}
		if wr.normalised {
			normal, _, err := transform.String(transformer, word)
			if err != nil {
				return nil, fmt.Errorf("line %d: can't normalise %q: %w", line, word, err)
			}
			word = strings.ToLower(normal)
		}
		if !isLowerASCII(word) {
			return nil, &InvalidWordError{Line: line, Word: word}
		}
		if wr.dedup {
			if seen[word] {
				continue
			}
			seen[word] = true
		}
		words = append(words, word)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("can't read words: %w", err)
	}
	return words, nil
}

func isLowerASCII(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
