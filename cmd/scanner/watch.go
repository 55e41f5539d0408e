package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"BounceSentry/internal/config"
	"BounceSentry/internal/metrics"
	"BounceSentry/internal/notifier"
	"BounceSentry/internal/recorder"
	"BounceSentry/internal/scheduler"
)

func newWatchCmd() *cobra.Command {
	var runNow bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run as a daemon: scheduled scans, Telegram reports, /metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			sc := buildScanner(cfg)
			log.Printf("[INFO] data source: %s, %d symbols, cron %q",
				sc.Fetcher.Name(), len(sc.Symbols), cfg.Scan.Cron)

			var tn *notifier.TelegramNotifier
			if cfg.Telegram.BotToken != "" {
				tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
			} else {
				log.Println("[WARN] telegram not configured, reports go to logs only")
			}

			var rec recorder.Recorder
			if cfg.Database.SQLitePath != "" {
				sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
				if err != nil {
					log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
					rec = recorder.NewNoopRecorder()
				} else {
					rec = sr
					defer sr.Close()
				}
			} else {
				rec = recorder.NewNoopRecorder()
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			m := metrics.New()
			if cfg.Metrics.Listen != "" {
				go m.Serve(ctx, cfg.Metrics.Listen)
			}

			sched := scheduler.NewScheduler(ctx, sc, tn, rec, m)
			if err := sched.Register(cfg.Scan.Cron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if tn != nil {
				go tn.StartPolling(ctx, sched.HandleCommand)
				log.Println("[INFO] Telegram polling started")
			}

			if runNow {
				log.Println("[INFO] --now set, executing scan immediately")
				go sched.RunScanNow()
			}

			log.Println("[INFO] BounceSentry is watching. Press Ctrl+C to stop.")
			<-ctx.Done()
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runNow, "now", false, "run one scan immediately on start")
	return cmd
}
