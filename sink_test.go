package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func Test_ConsoleSink(t *testing.T) {
	Convey("ConsoleSink", t, func() {
		out := &bytes.Buffer{}
		sink := NewConsoleSink(out)

		Convey("prints one line per scrobble", func() {
			pool := testPool()

			So(sink.Submit(context.Background(), pool.At(0, 0, 0)), ShouldBeNil)
			So(sink.Submit(context.Background(), pool.At(1, 1, 1)), ShouldBeNil)

			So(out.String(), ShouldEqual,
				"Song/Name on Al Bum by Mc Fly & Co\nLunar Reef on Wildly Velvet Comet by Boldly Neon Otter\n")
		})
	})
}

func Test_RateLimitingSink(t *testing.T) {
	Convey("RateLimitingSink", t, func() {
		mockUpstream := &mockSink{}
		sink, err := NewRateLimitingSink(1, 50*time.Millisecond, mockUpstream)
		So(err, ShouldBeNil)

		scrob := testPool().At(0, 1, 0)

		Convey("holds submissions back instead of dropping them", func() {
			start := time.Now()

			So(sink.Submit(context.Background(), scrob), ShouldBeNil)
			So(sink.Submit(context.Background(), scrob), ShouldBeNil)
			So(sink.Submit(context.Background(), scrob), ShouldBeNil)

			So(mockUpstream.CallCount, ShouldEqual, 3)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 50*time.Millisecond)
		})

		Convey("gives up waiting when the context is done", func() {
			So(sink.Submit(context.Background(), scrob), ShouldBeNil)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
			defer cancel()

			err := sink.Submit(ctx, scrob)
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
			So(mockUpstream.CallCount, ShouldEqual, 1)
		})

		Convey("passes errors through from downstream", func() {
			mockUpstream.ShouldError = true

			err := sink.Submit(context.Background(), scrob)
			So(errors.Is(err, errIntentional), ShouldBeTrue)
		})

		Convey("stops the downstream sink", func() {
			sink.Stop()
			So(mockUpstream.StopWasCalled, ShouldBeTrue)
		})
	})
}
