package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"BounceSentry/internal/metrics"
	"BounceSentry/internal/notifier"
	"BounceSentry/internal/recorder"
	"BounceSentry/internal/scanner"
)

// Scheduler runs the scan on a cron schedule and wires its report through
// the recorder, metrics, and Telegram.
type Scheduler struct {
	Cron     *cron.Cron
	Scanner  *scanner.Scanner
	Notifier *notifier.TelegramNotifier // nil disables Telegram
	Recorder recorder.Recorder
	Metrics  *metrics.Metrics
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, sc *scanner.Scanner, tn *notifier.TelegramNotifier, rec recorder.Recorder, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Scanner:  sc,
		Notifier: tn,
		Recorder: rec,
		Metrics:  m,
		Ctx:      ctx,
	}
}

// Register registers the scan task on the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (manual trigger).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running scheduled scan")
	rep := s.Scanner.Run(s.Ctx)

	if s.Metrics != nil {
		s.Metrics.ObserveRun(rep)
	}

	if err := s.Recorder.RecordRun(rep); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendReport(s.Ctx, rep); err != nil {
			log.Printf("[ERROR] send report: %v", err)
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/scan":
		go s.RunScanNow()
		return "Scan started, report follows."
	case "/params":
		return notifier.FormatParams(s.Scanner.Params)
	default:
		return "Commands:\n/scan - run a scan now\n/params - show strategy parameters"
	}
}
