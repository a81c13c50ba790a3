package rt

import (
	"log"
	"os"
)

// logger is a minimal verbosity-gated wrapper around the stdlib log
// package — the ambient logging style the rest of the teacher repo uses
// throughout (plain "log", no structured logging library anywhere in the
// corpus this module is grounded on).
type logger struct {
	l       *log.Logger
	enabled bool
}

func defaultLogger() *logger {
	return &logger{
		l:       log.New(os.Stderr, "rt: ", log.LstdFlags),
		enabled: os.Getenv("ORIZON_RT_DEBUG") != "",
	}
}

// collected logs a one-line summary of a finished collection run.
func (lg *logger) collected(old bool, reclaimed int) {
	if lg == nil || !lg.enabled {
		return
	}

	gen := "young"
	if old {
		gen = "old"
	}

	lg.l.Printf("collect generation=%s reclaimed=%d", gen, reclaimed)
}

// SetDebug toggles collector logging at runtime, overriding the
// ORIZON_RT_DEBUG environment variable the default logger reads at init.
func (c *Collector) SetDebug(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.enabled = on
}
