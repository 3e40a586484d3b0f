// Package namepool builds pools of unique, randomly composed names for
// artists, albums, and tracks, and samples scrobbles from them.
package namepool

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const separator = " "

var (
	ErrInsufficientCorpus = errors.New("not enough words to form all unique names")
	ErrEmptyPool          = errors.New("pool must contain at least one name")
	ErrInvalidWordCount   = errors.New("names must have at least one word")
	ErrDuplicateName      = errors.New("duplicate name in pool")
)

// Generate returns count unique names, each made of the requested number of
// corpus words and title cased. Names are returned in the order they were
// accepted, so a seeded rng always yields the same slice.
//
// The corpus capacity is checked before generating anything: asking for
// more names than the corpus can form returns ErrInsufficientCorpus rather
// than retrying forever.
func Generate(rng *rand.Rand, corpus Corpus, count int, words int) ([]string, error) {
	if count < 1 {
		return nil, ErrEmptyPool
	}

	if words < 1 {
		return nil, ErrInvalidWordCount
	}

	capacity := corpus.Cardinality(words)
	if capacity < uint64(count) {
		return nil, fmt.Errorf(
			"%w: requested %d names of %d words, corpus can form %d",
			ErrInsufficientCorpus, count, words, capacity,
		)
	}

	seen := make(map[string]struct{}, count)
	names := make([]string, 0, count)

	for len(names) < count {
		name := titleCase(strings.Join(corpus.Phrase(rng, words), separator))
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names, nil
}

// titleCase upper cases the first letter of each word and leaves the rest of
// the word as it was. A Caser keeps state between calls, so we make a new one
// each time.
func titleCase(s string) string {
	return cases.Title(language.English, cases.NoLower).String(s)
}
