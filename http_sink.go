package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Shimmur/scrobblespammer/namepool"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	loghttp "github.com/motemen/go-loghttp"
	log "github.com/sirupsen/logrus"
)

const (
	scrobbleMethod = "track.scrobble"
	runIDHeader    = "X-Scrobblespammer-Run"
)

// EncodeQuery builds the raw query string for a scrobble submission. Values
// are percent-encoded, with spaces as %20 rather than '+'.
func EncodeQuery(scrob namepool.Scrobble, now time.Time) string {
	var b strings.Builder

	params := [][2]string{
		{"method", scrobbleMethod},
		{"artist", scrob.ArtistName()},
		{"track", scrob.TrackName()},
		{"album", scrob.AlbumName()},
		{"timestamp", strconv.FormatInt(now.Unix(), 10)},
	}

	for i, param := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(param[0])
		b.WriteByte('=')
		b.WriteString(queryEscape(param[1]))
	}

	return b.String()
}

// queryEscape escapes like url.QueryEscape, but a literal '+' is already %2B
// by then, so any remaining '+' was a space.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// An HTTPSink submits each scrobble as a GET request to a scrobble service
type HTTPSink struct {
	Timeout time.Duration

	Host string
	Port int
	Path string

	runID  string
	now    func() time.Time
	client *http.Client
}

func NewHTTPSink(host string, port int, path string, timeout time.Duration, runID string) *HTTPSink {
	s := &HTTPSink{
		Timeout: timeout,
		Host:    host,
		Port:    port,
		Path:    path,
		runID:   runID,
		now:     time.Now,
	}

	// Keep-alives matter when sending hundreds of thousands of requests
	s.client = cleanhttp.DefaultPooledClient()
	s.client.Timeout = s.Timeout

	s.client.Transport = &loghttp.Transport{
		LogRequest: func(req *http.Request) {
			log.Debugf("--> %s %s", req.Method, req.URL)
		},
		LogResponse: func(resp *http.Response) {
			log.Debugf("<-- %d %s", resp.StatusCode, resp.Request.URL)
		},
		Transport: s.client.Transport,
	}

	return s
}

// URLFor returns the full request URL for a scrobble, timestamped now
func (s *HTTPSink) URLFor(scrob namepool.Scrobble) string {
	apiURL := url.URL{
		Scheme:   "http",
		Host:     fmt.Sprintf("%s:%d", s.Host, s.Port),
		Path:     s.Path,
		RawQuery: EncodeQuery(scrob, s.now()),
	}

	return apiURL.String()
}

func (s *HTTPSink) Submit(ctx context.Context, scrob namepool.Scrobble) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.URLFor(scrob), nil)
	if err != nil {
		return err
	}

	if s.runID != "" {
		req.Header.Set(runIDHeader, s.runID)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit scrobble to %s:%d: %w", s.Host, s.Port, err)
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused
	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body from %s:%d: %w", s.Host, s.Port, err)
	}

	if resp.StatusCode > 299 || resp.StatusCode < 200 {
		return fmt.Errorf("got unexpected response code from %s:%d: %d", s.Host, s.Port, resp.StatusCode)
	}

	return nil
}

// Stop releases idle keep-alive connections
func (s *HTTPSink) Stop() {
	s.client.CloseIdleConnections()
}
