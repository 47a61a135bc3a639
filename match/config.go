package match

import (
	"time"

	"github.com/halvard/graphgram/csp"
)

// EndReason records why a finder's enumeration stopped.
type EndReason int

const (
	// NoMore means the search space was exhausted.
	NoMore EndReason = iota
	// MaxMatches means Config.MaxMatches matches were collected and the
	// search stopped without exhausting the space.
	MaxMatches
	// Timeout means Config.MaxMatchTime elapsed before the search
	// finished.
	Timeout
)

func (r EndReason) String() string {
	switch r {
	case NoMore:
		return "NoMore"
	case MaxMatches:
		return "MaxMatches"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

const (
	defaultMaxMatches   = 100000
	defaultMaxMatchTime = 60 * time.Second
)

// Config bounds a single finder's search.
type Config struct {
	MaxMatches   int
	MaxMatchTime time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxMatches <= 0 {
		c.MaxMatches = defaultMaxMatches
	}
	if c.MaxMatchTime <= 0 {
		c.MaxMatchTime = defaultMaxMatchTime
	}
	return c
}

// Report summarizes one call to Matches or MatchExists.
type Report struct {
	EndReason EndReason
	Stats     csp.Stats
	Elapsed   time.Duration
}
