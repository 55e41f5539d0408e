package model

import "time"

// Outcome classifies the result of evaluating a single symbol. Everything
// except OutcomeSignal is an expected non-error verdict; none of these
// abort a scan.
type Outcome int

const (
	OutcomeSignal Outcome = iota
	OutcomeNoSignal
	OutcomeLowConfidence
	OutcomeMissingData
	OutcomeInvalidBar
	OutcomeInsufficientHistory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSignal:
		return "SIGNAL"
	case OutcomeNoSignal:
		return "NO_SIGNAL"
	case OutcomeLowConfidence:
		return "LOW_CONFIDENCE"
	case OutcomeMissingData:
		return "MISSING_DATA"
	case OutcomeInvalidBar:
		return "INVALID_BAR"
	case OutcomeInsufficientHistory:
		return "INSUFFICIENT_HISTORY"
	default:
		return "UNKNOWN"
	}
}

// Failed reports whether the outcome counts as a data failure at the
// orchestrator level. Gate rejections are successful evaluations.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeMissingData, OutcomeInvalidBar, OutcomeInsufficientHistory:
		return true
	}
	return false
}

// Signal is the engine's output for one symbol. It is never mutated after
// creation; ownership transfers to the scan report and from there to
// whatever presentation sink consumes it.
type Signal struct {
	Symbol      string
	Price       float64
	RSI         float64
	VolumeRatio float64
	Confidence  float64 // 0..10
	Target      float64
	StopLoss    float64
	Label       string
	Reason      string
	Date        time.Time
}
