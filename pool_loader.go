package main

import (
	"fmt"
	"math/rand"

	"github.com/Shimmur/scrobblespammer/cache"
	"github.com/Shimmur/scrobblespammer/namepool"
	log "github.com/sirupsen/logrus"
)

// Cache keys for each name category
const (
	artistsKey = "artists"
	albumsKey  = "albums"
	tracksKey  = "tracks"
)

// loadCorpus returns the word list from the configured file, or the built-in
// corpus when there isn't one.
func loadCorpus(wordFile string) (namepool.Corpus, error) {
	if wordFile == "" {
		return namepool.DefaultPetnames(), nil
	}

	return namepool.LoadWordList(wordFile)
}

// loadOrBuildPool reuses the pool snapshot at poolFile when there is one.
// Otherwise it generates a new pool and, if poolFile is set, saves it there
// for the next run.
func loadOrBuildPool(rng *rand.Rand, corpus namepool.Corpus, sizes namepool.Sizes,
	poolFile string) (*namepool.NamePool, error) {

	var poolCache *cache.Cache
	if poolFile != "" {
		poolCache = cache.NewCache(3, poolFile)

		if poolCache.Exists() {
			err := poolCache.Load()
			if err != nil {
				return nil, err
			}

			pool, err := namepool.NewNamePoolFromNames(
				poolCache.Get(artistsKey), poolCache.Get(albumsKey), poolCache.Get(tracksKey),
			)
			if err != nil {
				return nil, fmt.Errorf("pool snapshot %s is unusable: %w", poolFile, err)
			}

			log.Infof("Loaded name pool from %s", poolFile)
			return pool, nil
		}
	}

	pool, err := namepool.NewNamePool(rng, corpus, sizes)
	if err != nil {
		return nil, err
	}

	log.Infof("Generated %d artists, %d albums, %d tracks",
		len(pool.Artists), len(pool.Albums), len(pool.Tracks))

	if poolCache != nil {
		poolCache.Add(artistsKey, pool.Artists)
		poolCache.Add(albumsKey, pool.Albums)
		poolCache.Add(tracksKey, pool.Tracks)

		// Not worth failing the run over
		err := poolCache.Persist()
		if err != nil {
			log.Warnf("Unable to save name pool: %s", err)
		} else {
			log.Infof("Saved name pool to %s", poolFile)
		}
	}

	return pool, nil
}
