package namepool

import (
	"fmt"
	"math/rand"
)

// Words per name for each category
const (
	ArtistWords = 3
	AlbumWords  = 3
	TrackWords  = 2
)

// Sizes is the number of unique names wanted in each category
type Sizes struct {
	Artists int
	Albums  int
	Tracks  int
}

// A NamePool holds the unique names for each category. It is never modified
// after construction, so it is safe to read from anywhere.
type NamePool struct {
	Artists []string
	Albums  []string
	Tracks  []string
}

// NewNamePool generates all three categories from the corpus
func NewNamePool(rng *rand.Rand, corpus Corpus, sizes Sizes) (*NamePool, error) {
	artists, err := Generate(rng, corpus, sizes.Artists, ArtistWords)
	if err != nil {
		return nil, fmt.Errorf("failed to generate artists: %w", err)
	}

	albums, err := Generate(rng, corpus, sizes.Albums, AlbumWords)
	if err != nil {
		return nil, fmt.Errorf("failed to generate albums: %w", err)
	}

	tracks, err := Generate(rng, corpus, sizes.Tracks, TrackWords)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tracks: %w", err)
	}

	return &NamePool{Artists: artists, Albums: albums, Tracks: tracks}, nil
}

// NewNamePoolFromNames builds a pool from names generated earlier, e.g. ones
// loaded from a snapshot. The same rules apply as for a generated pool.
func NewNamePoolFromNames(artists, albums, tracks []string) (*NamePool, error) {
	categories := []struct {
		name  string
		names []string
	}{
		{"artists", artists},
		{"albums", albums},
		{"tracks", tracks},
	}

	for _, category := range categories {
		if err := validateNames(category.names); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", category.name, err)
		}
	}

	return &NamePool{Artists: artists, Albums: albums, Tracks: tracks}, nil
}

func validateNames(names []string) error {
	if len(names) < 1 {
		return ErrEmptyPool
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Sample picks one name from each category, independently and uniformly
func (p *NamePool) Sample(rng *rand.Rand) Scrobble {
	return Scrobble{
		pool:   p,
		Artist: rng.Intn(len(p.Artists)),
		Album:  rng.Intn(len(p.Albums)),
		Track:  rng.Intn(len(p.Tracks)),
	}
}

// At returns the scrobble for the given index in each category. It panics
// if an index is out of range, as indexing a slice would.
func (p *NamePool) At(artist, album, track int) Scrobble {
	_, _, _ = p.Artists[artist], p.Albums[album], p.Tracks[track]

	return Scrobble{pool: p, Artist: artist, Album: album, Track: track}
}

// A Scrobble is one play of a track. It holds indexes into the pool it was
// sampled from rather than copies of the names.
type Scrobble struct {
	pool *NamePool

	Artist int
	Album  int
	Track  int
}

func (s Scrobble) ArtistName() string { return s.pool.Artists[s.Artist] }
func (s Scrobble) AlbumName() string  { return s.pool.Albums[s.Album] }
func (s Scrobble) TrackName() string  { return s.pool.Tracks[s.Track] }

// String formats the scrobble the way it is printed on the console
func (s Scrobble) String() string {
	return s.TrackName() + " on " + s.AlbumName() + " by " + s.ArtistName()
}
