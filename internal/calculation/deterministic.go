package calculation

import "github.com/peasim/brokerage-simulator/pkg/runid"

// runIDFunc returns the identifier stamped on each run (override in tests for determinism).
var runIDFunc = runid.New

// SetRunIDFunc overrides the run ID provider (use only in tests).
func SetRunIDFunc(f func() string) { runIDFunc = f }
