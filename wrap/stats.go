package wrap

import (
	"log"
	"os"
	"time"
)

// statsSchemaVersion tags the Stats JSON shape so export consumers can
// detect incompatible changes.
const statsSchemaVersion = 1

// Logger is the printf-style sink Config carries for progress output;
// log.New(os.Stderr, ...) is the default, and WithLogger replaces it.
// Carver itself emits no messages through it: Run's progress is reported
// only through the returned Stats.
type Logger interface {
	Printf(format string, args ...any)
}

func defaultLogger() Logger {
	return log.New(os.Stderr, "alphawrap: ", log.LstdFlags)
}

// Stats accumulates every statistic spec §4.8 enumerates.
type Stats struct {
	Iterations    int
	R1Insertions  int
	R2Insertions  int
	R2Failures    int // DESIGN.md Open Question: R2 strict-failure diagnostic
	VertexCount   int
	EdgeCount     int
	Terminated    bool // true if MaxIterations fired before the queue emptied

	InitDuration      time.Duration
	MainLoopDuration  time.Duration
	R1Duration        time.Duration
	R2Duration        time.Duration
	GatePrepDuration  time.Duration
	ExtractDuration   time.Duration

	InputFile     string
	PolicyName    string
	PolicyParams  map[string]float64
	Timestamp     time.Time
	SchemaVersion int
	IsTest        bool // set by test helpers only; never by Carver itself
}

// stopwatch is a tiny private helper so Carver never needs a package-level
// timer registry (Design Note "Process-wide timer registry").
type stopwatch struct {
	start time.Time
}

func startStopwatch() stopwatch { return stopwatch{start: time.Now()} }

func (s stopwatch) elapsed() time.Duration { return time.Since(s.start) }
