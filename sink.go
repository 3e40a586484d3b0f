package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Shimmur/scrobblespammer/namepool"
	limiter "github.com/sethvargo/go-limiter"
	"github.com/sethvargo/go-limiter/memorystore"
	log "github.com/sirupsen/logrus"
)

// A Sink is where emitted scrobbles go
type Sink interface {
	Submit(ctx context.Context, scrob namepool.Scrobble) error
	Stop()
}

// A ConsoleSink prints one line per scrobble
type ConsoleSink struct {
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) Submit(_ context.Context, scrob namepool.Scrobble) error {
	_, err := fmt.Fprintln(c.out, scrob.String())
	return err
}

// Stop would clean up any resources if we needed to manage any
func (c *ConsoleSink) Stop() { /* noop */ }

// A RateLimitingSink is a Sink that wraps another Sink, holding submissions
// back so no more than the configured number go through per interval.
// Unlike dropping, a limited submission waits for the next window.
type RateLimitingSink struct {
	limitStore limiter.Store
	output     Sink
	limitKey   string
}

func NewRateLimitingSink(tokenLimit int, interval time.Duration, output Sink) (*RateLimitingSink, error) {
	store, err := memorystore.New(&memorystore.Config{
		// Number of tokens allowed per interval.
		Tokens: uint64(tokenLimit),

		// Interval until tokens reset.
		Interval: interval,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create memory store: %w", err)
	}

	return &RateLimitingSink{
		limitStore: store,
		output:     output,
		limitKey:   "scrobbles",
	}, nil
}

// waitForToken blocks until the limiter hands out a token or the context is
// done.
func (s *RateLimitingSink) waitForToken(ctx context.Context) error {
	for {
		limit, remaining, reset, ok, err := s.limitStore.Take(ctx, s.limitKey)
		log.Debugf("Checking rate limit: %d %d %d %t", limit, remaining, reset, ok)
		if err != nil {
			return fmt.Errorf("unable to fetch rate limit for %s: %w", s.limitKey, err)
		}

		if ok {
			return nil
		}

		// reset is the end of the current window, in Unix nanoseconds
		timer := time.NewTimer(time.Until(time.Unix(0, int64(reset))))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Submit is a pass-through to the downstream Sink once a token is available
func (s *RateLimitingSink) Submit(ctx context.Context, scrob namepool.Scrobble) error {
	if err := s.waitForToken(ctx); err != nil {
		return err
	}

	return s.output.Submit(ctx, scrob)
}

// Stop cleans up our resources and stops the downstream Sink
func (s *RateLimitingSink) Stop() {
	_ = s.limitStore.Close(context.Background())
	s.output.Stop()
}
