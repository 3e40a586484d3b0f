package namepool

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func Test_Petnames(t *testing.T) {
	Convey("Petnames", t, func() {
		corpus := NewPetnames(
			[]string{"wildly", "softly"},
			[]string{"lunar", "velvet", "neon"},
			[]string{"otter", "comet", "raven", "reef"},
		)
		rng := rand.New(rand.NewSource(1))

		Convey("computes cardinality from its word lists", func() {
			So(corpus.Cardinality(0), ShouldEqual, 0)
			So(corpus.Cardinality(1), ShouldEqual, 4)
			So(corpus.Cardinality(2), ShouldEqual, 12)
			So(corpus.Cardinality(3), ShouldEqual, 24)
			So(corpus.Cardinality(4), ShouldEqual, 48)
		})

		Convey("builds phrases from adverbs, an adjective, and a noun", func() {
			phrase := corpus.Phrase(rng, 4)
			So(len(phrase), ShouldEqual, 4)
			So(phrase[0], ShouldBeIn, corpus.Adverbs)
			So(phrase[1], ShouldBeIn, corpus.Adverbs)
			So(phrase[2], ShouldBeIn, corpus.Adjectives)
			So(phrase[3], ShouldBeIn, corpus.Nouns)

			phrase = corpus.Phrase(rng, 1)
			So(len(phrase), ShouldEqual, 1)
			So(phrase[0], ShouldBeIn, corpus.Nouns)

			So(corpus.Phrase(rng, 0), ShouldBeNil)
		})

		Convey("drops duplicate words", func() {
			dupes := NewPetnames(nil, []string{"neon", "Neon", "neon"}, []string{"otter", "", "otter"})
			So(dupes.Adjectives, ShouldResemble, []string{"neon"})
			So(dupes.Nouns, ShouldResemble, []string{"otter"})
			So(dupes.Cardinality(2), ShouldEqual, 1)
		})

		Convey("the default corpus has room for the default pool sizes", func() {
			defaults := DefaultPetnames()
			So(defaults.Cardinality(ArtistWords), ShouldBeGreaterThan, 50)
			So(defaults.Cardinality(TrackWords), ShouldEqual,
				uint64(len(defaults.Adjectives)*len(defaults.Nouns)))
		})
	})
}

func Test_WordList(t *testing.T) {
	Convey("WordList", t, func() {
		corpus := NewWordList([]string{"a", "b", "c", "d", "e"})

		Convey("computes cardinality as a power of its length", func() {
			So(corpus.Cardinality(0), ShouldEqual, 0)
			So(corpus.Cardinality(1), ShouldEqual, 5)
			So(corpus.Cardinality(3), ShouldEqual, 125)
		})

		Convey("saturates rather than overflowing", func() {
			So(corpus.Cardinality(100), ShouldEqual, uint64(math.MaxUint64))
		})

		Convey("draws every word from the list", func() {
			phrase := corpus.Phrase(rand.New(rand.NewSource(3)), 6)
			So(len(phrase), ShouldEqual, 6)
			for _, word := range phrase {
				So(word, ShouldBeIn, corpus.Words)
			}
		})
	})
}

func Test_mulSaturating(t *testing.T) {
	Convey("mulSaturating()", t, func() {
		So(mulSaturating(0, math.MaxUint64), ShouldEqual, 0)
		So(mulSaturating(6, 7), ShouldEqual, 42)
		So(mulSaturating(math.MaxUint64/2, 3), ShouldEqual, uint64(math.MaxUint64))
	})
}
