package main

import (
	"io"

	"github.com/Nitro/sidecar-executor/loghooks"
	log "github.com/sirupsen/logrus"
)

// A SyslogRelay is a logrus hook that re-encodes every entry of the logger
// it is attached to as JSON and fires it at a UDP syslog address.
type SyslogRelay struct {
	syslogger *log.Logger
	udpHook   *loghooks.UDPHook
}

func NewSyslogRelay(address string) (*SyslogRelay, error) {
	// We relay UDP syslog because a load test shouldn't stall on its own
	// logging, and there is no backpressure issue to deal with.
	hook, err := loghooks.NewUDPHook(address)
	if err != nil {
		return nil, err
	}

	syslogger := log.New()
	syslogger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime:  "Timestamp",
			log.FieldKeyLevel: "Level",
			log.FieldKeyMsg:   "Payload",
			log.FieldKeyFunc:  "Func",
		},
	})
	syslogger.SetOutput(io.Discard)

	return &SyslogRelay{syslogger: syslogger, udpHook: hook}, nil
}

func (r *SyslogRelay) Levels() []log.Level {
	return log.AllLevels
}

// Fire hands the UDP hook a copy of the entry owned by the JSON syslogger,
// so it is serialized with that logger's formatter.
func (r *SyslogRelay) Fire(entry *log.Entry) error {
	relayed := r.syslogger.WithFields(entry.Data).WithTime(entry.Time)
	relayed.Level = entry.Level
	relayed.Message = entry.Message

	return r.udpHook.Fire(relayed)
}

// Close releases the UDP connection
func (r *SyslogRelay) Close() error {
	return r.udpHook.Conn.Close()
}
