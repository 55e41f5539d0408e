package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"BounceSentry/internal/config"
	"BounceSentry/internal/model"
	"BounceSentry/internal/provider"
	"BounceSentry/internal/recorder"
	"BounceSentry/internal/scanner"
	"BounceSentry/internal/universe"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Run one scan and print the ranked signals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			sc := buildScanner(cfg)
			log.Printf("[INFO] data source: %s, %d symbols", sc.Fetcher.Name(), len(sc.Symbols))

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			rep := sc.Run(ctx)
			printReport(rep)

			if cfg.Database.SQLitePath != "" {
				rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
				if err != nil {
					log.Printf("[WARN] init sqlite recorder: %v", err)
				} else {
					defer rec.Close()
					if err := rec.RecordRun(rep); err != nil {
						log.Printf("[ERROR] record run: %v", err)
					}
				}
			}
			return nil
		},
	}
}

func buildScanner(cfg *config.Config) *scanner.Scanner {
	var fetcher provider.Fetcher
	switch cfg.DataSource.Provider {
	case "rest":
		fetcher = provider.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		fetcher = provider.NewMockFetcher()
	default:
		fetcher = provider.NewYahooFetcher(cfg.Proxy, cfg.DataSource.Suffix)
	}

	baselines := universe.NewBaselines(cfg.Universe.Baselines, cfg.Universe.DefaultBaseline)
	sc := scanner.New(fetcher, cfg.Universe.Symbols, baselines, cfg.Strategy)
	sc.Workers = cfg.Scan.Workers
	return sc
}

func printReport(rep *model.Report) {
	fmt.Printf("Scan %s | %s\n", rep.ID, rep.StartedAt.Format("2006-01-02 15:04"))
	fmt.Printf("attempted=%d usable=%d failed=%d signals=%d\n\n",
		rep.Stats.Attempted, rep.Stats.Succeeded, rep.Stats.Failed, rep.Stats.Signals)

	if len(rep.Signals) == 0 {
		fmt.Println("No signals.")
	}
	for i, sig := range rep.Signals {
		fmt.Printf("%d. %-8s %8.2f  conf %.1f/10  RSI %.1f  vol %.1fx  target %.2f  stop %.2f\n",
			i+1, sig.Symbol, sig.Price, sig.Confidence, sig.RSI, sig.VolumeRatio, sig.Target, sig.StopLoss)
	}

	if len(rep.Failures) > 0 {
		fmt.Println("\nskipped:")
		for _, f := range rep.Failures {
			fmt.Printf("  %-8s %s\n", f.Symbol, f.Outcome)
		}
	}
}
