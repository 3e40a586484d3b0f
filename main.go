package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shimmur/scrobblespammer/namepool"
	"github.com/Shimmur/scrobblespammer/reporter"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	director "github.com/relistan/go-director"
	"github.com/relistan/rubberneck"
	log "github.com/sirupsen/logrus"
)

const (
	ConsoleMode = "console"
	HTTPMode    = "http"

	defaultConsoleCount = 4
	defaultHTTPCount    = 500000
)

type Config struct {
	Mode  string `envconfig:"MODE" default:"http"`
	Count int    `envconfig:"COUNT" default:"0"` // 0 uses the mode's default, -1 runs until stopped

	Host           string        `envconfig:"TARGET_HOST" default:"localhost"`
	Port           int           `envconfig:"TARGET_PORT" default:"52727"`
	Path           string        `envconfig:"TARGET_PATH" default:"/2.0"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`
	RunTimeout     time.Duration `envconfig:"RUN_TIMEOUT" default:"0s"`
	Rate           int           `envconfig:"RATE" default:"0"`

	Artists  int    `envconfig:"ARTISTS" default:"50"`
	Albums   int    `envconfig:"ALBUMS" default:"50"`
	Tracks   int    `envconfig:"TRACKS" default:"12"`
	Seed     int64  `envconfig:"SEED" default:"0"`
	WordFile string `envconfig:"WORD_FILE"`
	PoolFile string `envconfig:"POOL_FILE"`

	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"10s"`
	ReportURL      string        `envconfig:"REPORT_URL"`
	ReportKey      string        `envconfig:"REPORT_KEY"`

	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	SyslogAddress string `envconfig:"SYSLOG_ADDRESS"`
}

// iterations resolves the configured count against the mode's default
func (c *Config) iterations() (int, error) {
	switch {
	case c.Count == director.FOREVER || c.Count > 0:
		return c.Count, nil
	case c.Count < director.FOREVER:
		return 0, fmt.Errorf("invalid count %d: must be positive, 0 for the default, or -1 for no limit", c.Count)
	case c.Mode == ConsoleMode:
		return defaultConsoleCount, nil
	default:
		return defaultHTTPCount, nil
	}
}

// configureLogging sets the log level and, when a syslog address is
// configured, relays every log entry there as JSON. The relay is returned so
// the caller can close it.
func configureLogging(config *Config) *SyslogRelay {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		log.Warnf("Unknown log level '%s', using info", config.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if config.SyslogAddress == "" {
		return nil
	}

	relay, err := NewSyslogRelay(config.SyslogAddress)
	if err != nil {
		log.Errorf("Error adding syslog hook: %s", err)
		return nil
	}
	log.AddHook(relay)

	return relay
}

func newSink(config *Config, out io.Writer, runID string) (Sink, error) {
	var sink Sink

	switch config.Mode {
	case ConsoleMode:
		sink = NewConsoleSink(out)
	case HTTPMode:
		sink = NewHTTPSink(config.Host, config.Port, config.Path, config.RequestTimeout, runID)
	default:
		return nil, fmt.Errorf("unknown mode '%s': expected %s or %s", config.Mode, ConsoleMode, HTTPMode)
	}

	if config.Rate > 0 {
		return NewRateLimitingSink(config.Rate, time.Second, sink)
	}

	return sink, nil
}

// run builds everything from the config and emits scrobbles until done.
// Console output goes to out.
func run(ctx context.Context, config *Config, out io.Writer) (reporter.Summary, error) {
	count, err := config.iterations()
	if err != nil {
		return reporter.Summary{}, err
	}

	if config.ReportInterval <= 0 {
		return reporter.Summary{}, fmt.Errorf("invalid report interval %s: must be positive", config.ReportInterval)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Infof("Using random seed %d", seed)
	rng := rand.New(rand.NewSource(seed))

	corpus, err := loadCorpus(config.WordFile)
	if err != nil {
		return reporter.Summary{}, err
	}

	sizes := namepool.Sizes{Artists: config.Artists, Albums: config.Albums, Tracks: config.Tracks}
	pool, err := loadOrBuildPool(rng, corpus, sizes, config.PoolFile)
	if err != nil {
		return reporter.Summary{}, err
	}

	runID := uuid.NewString()
	sink, err := newSink(config, out, runID)
	if err != nil {
		return reporter.Summary{}, err
	}
	defer sink.Stop()

	if config.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.RunTimeout)
		defer cancel()
	}

	rptr := reporter.NewProgressReporter(config.ReportURL, config.ReportKey, runID, config.ReportInterval)

	// Stops the progress logging once the run is over
	reportCtx, stopReporting := context.WithCancel(ctx)
	defer stopReporting()
	rptr.Run(reportCtx)

	log.Infof("Starting run %s: %d scrobbles in %s mode", runID, count, config.Mode)

	looper := director.NewFreeLooper(count, make(chan error))
	emitter := NewEmitter(looper, pool, rng, sink, rptr)

	err = emitter.Run(ctx)
	if err != nil {
		return reporter.Summary{}, err
	}

	return rptr.Finish(), nil
}

func main() {
	var config Config
	err := envconfig.Process("scrobble", &config)
	if err != nil {
		log.Fatal(err.Error())
	}
	rubberneck.Print(config)

	relay := configureLogging(&config)
	if relay != nil {
		defer relay.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = run(ctx, &config, os.Stdout)
	if err != nil {
		log.Fatal(err.Error())
	}
}
