// Package recorder persists completed scan runs for later analysis. It is a
// presentation-side sink: the scan engine itself stays stateless.
package recorder

import "BounceSentry/internal/model"

// Recorder persists scan reports.
type Recorder interface {
	RecordRun(rep *model.Report) error
	Close() error
}
