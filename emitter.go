package main

import (
	"context"
	"errors"
	"math/rand"

	"github.com/Shimmur/scrobblespammer/namepool"
	"github.com/Shimmur/scrobblespammer/reporter"
	director "github.com/relistan/go-director"
	log "github.com/sirupsen/logrus"
)

// An Emitter samples scrobbles from the pool and hands them to the Sink, one
// at a time, for as many iterations as the looper allows.
type Emitter struct {
	pool     *namepool.NamePool
	rng      *rand.Rand
	sink     Sink
	looper   director.Looper
	reporter *reporter.ProgressReporter
}

// NewEmitter configures an Emitter. The rng is only used from the looper's
// goroutine.
func NewEmitter(looper director.Looper, pool *namepool.NamePool, rng *rand.Rand,
	sink Sink, rptr *reporter.ProgressReporter) *Emitter {

	return &Emitter{
		pool:     pool,
		rng:      rng,
		sink:     sink,
		looper:   looper,
		reporter: rptr,
	}
}

// Run emits scrobbles until the looper is done or the context is cancelled.
// A failed submission is logged and counted, and the run carries on.
// Stopping early because of the context is not an error, and the submission
// it interrupted is not counted.
func (e *Emitter) Run(ctx context.Context) error {
	go e.looper.Loop(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		scrob := e.pool.Sample(e.rng)

		err := e.sink.Submit(ctx, scrob)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			log.Warnf("Failed to submit '%s': %s", scrob, err)
			e.reporter.IncrFailed()
			return nil
		}

		e.reporter.IncrSent()
		return nil
	})

	err := e.looper.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Infof("Stopping early: %s", err)
		err = nil
	}

	return err
}
