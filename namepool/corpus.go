package namepool

import (
	"math"
	"math/rand"
)

// A Corpus supplies the words that names are composed from. Cardinality
// must report exactly how many distinct phrases Phrase can return for a
// given word count.
type Corpus interface {
	Phrase(rng *rand.Rand, words int) []string
	Cardinality(words int) uint64
}

// Petnames builds phrases the way pet names are built: a noun, preceded by
// an adjective, preceded by as many adverbs as are needed to fill out the
// requested word count.
type Petnames struct {
	Adverbs    []string
	Adjectives []string
	Nouns      []string
}

// NewPetnames returns a Petnames corpus with each word list de-duplicated.
func NewPetnames(adverbs, adjectives, nouns []string) *Petnames {
	return &Petnames{
		Adverbs:    uniqueWords(adverbs),
		Adjectives: uniqueWords(adjectives),
		Nouns:      uniqueWords(nouns),
	}
}

// DefaultPetnames returns the built-in corpus
func DefaultPetnames() *Petnames {
	return NewPetnames(defaultAdverbs, defaultAdjectives, defaultNouns)
}

func (p *Petnames) Phrase(rng *rand.Rand, words int) []string {
	if words < 1 {
		return nil
	}

	phrase := make([]string, 0, words)
	for i := 0; i < words-2; i++ {
		phrase = append(phrase, pick(rng, p.Adverbs))
	}
	if words >= 2 {
		phrase = append(phrase, pick(rng, p.Adjectives))
	}

	return append(phrase, pick(rng, p.Nouns))
}

func (p *Petnames) Cardinality(words int) uint64 {
	switch {
	case words < 1:
		return 0
	case words == 1:
		return uint64(len(p.Nouns))
	}

	total := mulSaturating(uint64(len(p.Adjectives)), uint64(len(p.Nouns)))
	for i := 0; i < words-2; i++ {
		total = mulSaturating(total, uint64(len(p.Adverbs)))
	}

	return total
}

// A WordList draws every word of a phrase from the same list
type WordList struct {
	Words []string
}

// NewWordList returns a WordList over the de-duplicated words
func NewWordList(words []string) *WordList {
	return &WordList{Words: uniqueWords(words)}
}

func (w *WordList) Phrase(rng *rand.Rand, words int) []string {
	if words < 1 {
		return nil
	}

	phrase := make([]string, words)
	for i := range phrase {
		phrase[i] = pick(rng, w.Words)
	}

	return phrase
}

func (w *WordList) Cardinality(words int) uint64 {
	if words < 1 {
		return 0
	}

	total := uint64(1)
	for i := 0; i < words; i++ {
		total = mulSaturating(total, uint64(len(w.Words)))
	}

	return total
}

func pick(rng *rand.Rand, words []string) string {
	return words[rng.Intn(len(words))]
}

// mulSaturating multiplies, clamping at math.MaxUint64 instead of wrapping
func mulSaturating(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxUint64/b {
		return math.MaxUint64
	}

	return a * b
}

// uniqueWords drops empty words and any word that title cases to the same
// form as one already seen. Two such words would produce identical names,
// which would make Cardinality overcount.
func uniqueWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))

	for _, word := range words {
		if word == "" {
			continue
		}

		key := titleCase(word)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		unique = append(unique, word)
	}

	return unique
}
