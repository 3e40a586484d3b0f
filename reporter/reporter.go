package reporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	cleanhttp "github.com/hashicorp/go-cleanhttp"
	director "github.com/relistan/go-director"
	log "github.com/sirupsen/logrus"
)

// A Summary is the outcome of a run
type Summary struct {
	Sent    uint64
	Failed  uint64
	Elapsed time.Duration
}

// A ProgressReporter tracks how many scrobbles were sent and how many failed.
// While running it logs progress on every tick of the ReportLooper, and at
// the end of the run it can post the final summary as an event.
type ProgressReporter struct {
	client    *http.Client
	EventURL  string
	InsertKey string
	RunID     string

	sentCount    uint64
	failedCount  uint64
	ReportLooper director.Looper
	hostname     string
	started      time.Time
}

// NewProgressReporter returns a properly configured reporter. When eventURL
// is empty no summary event is sent.
func NewProgressReporter(eventURL, insertKey, runID string, interval time.Duration) *ProgressReporter {
	hostname, err := os.Hostname()
	if err != nil {
		log.Warnf("Unable to determine hostname: %s", err)
		hostname = "unknown"
	}

	return &ProgressReporter{
		client:    cleanhttp.DefaultPooledClient(),
		EventURL:  eventURL,
		InsertKey: insertKey,
		RunID:     runID,
		// Buffered so the looper can finish even if nobody waits on it
		ReportLooper: director.NewTimedLooper(director.FOREVER, interval, make(chan error, 1)),
		hostname:     hostname,
		started:      time.Now(),
	}
}

// IncrSent atomically increments the sent count
func (r *ProgressReporter) IncrSent() {
	atomic.AddUint64(&r.sentCount, 1)
}

// IncrFailed atomically increments the failed count
func (r *ProgressReporter) IncrFailed() {
	atomic.AddUint64(&r.failedCount, 1)
}

// Summary returns the counts so far
func (r *ProgressReporter) Summary() Summary {
	return Summary{
		Sent:    atomic.LoadUint64(&r.sentCount),
		Failed:  atomic.LoadUint64(&r.failedCount),
		Elapsed: time.Since(r.started),
	}
}

// Run starts a background goroutine that logs progress on each tick. It
// exits on the first tick after the context is done.
func (r *ProgressReporter) Run(ctx context.Context) {
	r.started = time.Now()

	go r.ReportLooper.Loop(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.logProgress()
		return nil
	})
}

func (r *ProgressReporter) logProgress() {
	summary := r.Summary()

	rate := float64(summary.Sent+summary.Failed) / summary.Elapsed.Seconds()
	log.Infof("Progress: %d sent, %d failed in %.2fs (%.2f scrobbles/sec)",
		summary.Sent, summary.Failed, summary.Elapsed.Seconds(), rate)
}

// Finish logs the final summary and, if configured, posts it as an event.
// Failure to post is logged, not returned: the run itself is over by now.
func (r *ProgressReporter) Finish() Summary {
	summary := r.Summary()

	log.Infof("Run %s finished: %d sent, %d failed in %s",
		r.RunID, summary.Sent, summary.Failed, summary.Elapsed.Round(time.Millisecond))

	if r.EventURL != "" {
		err := r.sendEvent(summary)
		if err != nil {
			log.Errorf("Error reporting run summary: %s", err)
		}
	}

	return summary
}

// sendEvent serializes the summary to JSON and posts it to the EventURL
func (r *ProgressReporter) sendEvent(summary Summary) error {
	data, err := json.Marshal(struct {
		Time           string
		Hostname       string
		RunID          string
		Sent           uint64
		Failed         uint64
		ElapsedSeconds float64
		EventType      string `json:"eventType"`
	}{
		Time:           time.Now().UTC().Format(time.RFC3339),
		Hostname:       r.hostname,
		RunID:          r.RunID,
		Sent:           summary.Sent,
		Failed:         summary.Failed,
		ElapsedSeconds: summary.Elapsed.Seconds(),
		EventType:      "ScrobbleLoadTestRun",
	})
	if err != nil {
		return fmt.Errorf("unable to encode JSON event: %w", err)
	}

	req, err := http.NewRequest("POST", r.EventURL, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("unable to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.InsertKey != "" {
		req.Header.Add("X-Insert-Key", r.InsertKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed making HTTP request to %s: %w", r.EventURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad response from %s: %s", r.EventURL, string(body))
	}

	return nil
}
