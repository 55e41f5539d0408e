package model

import "time"

// ScanStats aggregates one orchestration pass.
type ScanStats struct {
	Attempted int
	Succeeded int
	Failed    int
	Signals   int
}

// Failure records why a symbol produced no usable evaluation, so failure
// causes stay observable without aborting the scan.
type Failure struct {
	Symbol  string
	Outcome Outcome
}

// Report is the full result of one scan: ranked signals plus run statistics.
// Signals are sorted by confidence descending; ties keep encounter order.
type Report struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Stats      ScanStats
	Signals    []Signal
	Failures   []Failure
}

// Duration returns the wall time of the scan.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
