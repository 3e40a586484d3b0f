package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"

	"github.com/Shimmur/scrobblespammer/namepool"
	log "github.com/sirupsen/logrus"
)

var errIntentional = errors.New("intentional test error")

// LogCapture logs for async testing where we can't get a nice handle on things
func LogCapture(fn func()) string {
	capture := &bytes.Buffer{}
	log.SetOutput(capture)
	fn()
	log.SetOutput(os.Stdout)

	return capture.String()
}

// mockSink implements the Sink interface, for testing
type mockSink struct {
	sync.Mutex

	ShouldError   bool
	StopWasCalled bool
	CallCount     int
	LastSubmitted *namepool.Scrobble
}

func (s *mockSink) Submit(_ context.Context, scrob namepool.Scrobble) error {
	s.Lock()
	defer s.Unlock()

	s.CallCount++
	if s.ShouldError {
		return errIntentional
	}

	s.LastSubmitted = &scrob
	return nil
}

func (s *mockSink) Stop() { s.StopWasCalled = true }

// testPool returns a small pool with fixed names
func testPool() *namepool.NamePool {
	pool, err := namepool.NewNamePoolFromNames(
		[]string{"Mc Fly & Co", "Boldly Neon Otter"},
		[]string{"Al Bum", "Wildly Velvet Comet"},
		[]string{"Song/Name", "Lunar Reef"},
	)
	if err != nil {
		panic(err)
	}

	return pool
}
