// Package scanner iterates a symbol universe, evaluates each symbol against
// the oversold-bounce strategy, and aggregates the results into a report.
package scanner

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"BounceSentry/internal/indicator"
	"BounceSentry/internal/model"
	"BounceSentry/internal/provider"
	"BounceSentry/internal/strategy"
	"BounceSentry/internal/universe"
	"BounceSentry/pkg/id"
)

// Scanner runs one evaluation pass over a symbol universe. A single symbol's
// failure never aborts the scan.
type Scanner struct {
	Fetcher   provider.Fetcher
	Symbols   []string
	Baselines *universe.Baselines
	Params    strategy.Params

	// Workers caps concurrent fetch+evaluate tasks. 1 (the default) keeps
	// the scan strictly sequential, which is what most rate-limited
	// providers want.
	Workers int
}

// New creates a Scanner with sequential execution.
func New(fetcher provider.Fetcher, symbols []string, baselines *universe.Baselines, params strategy.Params) *Scanner {
	return &Scanner{
		Fetcher:   fetcher,
		Symbols:   symbols,
		Baselines: baselines,
		Params:    params,
		Workers:   1,
	}
}

// Run executes one full pass and returns the report. Signals are sorted by
// confidence descending with ties keeping encounter order. The caller may
// abandon the scan via ctx; symbols not yet dispatched are skipped and the
// partial report is returned.
func (s *Scanner) Run(ctx context.Context) *model.Report {
	rep := &model.Report{
		ID:        id.New(),
		StartedAt: time.Now(),
	}

	results := make([]result, len(s.Symbols))
	if s.Workers > 1 {
		s.runParallel(ctx, rep.StartedAt, results)
	} else {
		s.runSequential(ctx, rep.StartedAt, results)
	}

	for _, r := range results {
		if !r.done {
			continue // skipped after cancellation
		}
		rep.Stats.Attempted++
		switch {
		case r.outcome.Failed():
			rep.Stats.Failed++
			rep.Failures = append(rep.Failures, model.Failure{Symbol: r.symbol, Outcome: r.outcome})
		default:
			rep.Stats.Succeeded++
		}
		if r.signal != nil {
			rep.Signals = append(rep.Signals, *r.signal)
		}
	}
	rep.Stats.Signals = len(rep.Signals)

	sort.SliceStable(rep.Signals, func(i, j int) bool {
		return rep.Signals[i].Confidence > rep.Signals[j].Confidence
	})

	rep.FinishedAt = time.Now()
	log.Printf("[INFO] scan %s: attempted=%d succeeded=%d failed=%d signals=%d in %s",
		rep.ID, rep.Stats.Attempted, rep.Stats.Succeeded, rep.Stats.Failed,
		rep.Stats.Signals, rep.Duration().Round(time.Millisecond))
	return rep
}

type result struct {
	symbol  string
	signal  *model.Signal
	outcome model.Outcome
	done    bool
}

func (s *Scanner) runSequential(ctx context.Context, asOf time.Time, results []result) {
	for i, symbol := range s.Symbols {
		select {
		case <-ctx.Done():
			log.Printf("[WARN] scan abandoned after %d of %d symbols", i, len(s.Symbols))
			return
		default:
		}
		sig, outcome := s.evaluate(symbol, asOf)
		results[i] = result{symbol: symbol, signal: sig, outcome: outcome, done: true}
	}
}

// runParallel dispatches fetch+evaluate tasks to a bounded pool. Results are
// written into their input slot, so ranking ties resolve exactly as in the
// sequential path.
func (s *Scanner) runParallel(ctx context.Context, asOf time.Time, results []result) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.Workers)

	for i, symbol := range s.Symbols {
		select {
		case <-ctx.Done():
			log.Printf("[WARN] scan abandoned after dispatching %d of %d symbols", i, len(s.Symbols))
			wg.Wait()
			return
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			defer func() { <-sem }()
			sig, outcome := s.evaluate(symbol, asOf)
			results[i] = result{symbol: symbol, signal: sig, outcome: outcome, done: true}
		}(i, symbol)
	}
	wg.Wait()
}

// evaluate fetches data for one symbol and runs the strategy. Provider
// failures map to MissingData; they are logged and counted, never fatal.
func (s *Scanner) evaluate(symbol string, asOf time.Time) (*model.Signal, model.Outcome) {
	bar, err := s.Fetcher.FetchBar(symbol)
	if err != nil {
		log.Printf("[WARN] %s: fetch bar: %v", symbol, err)
		return nil, model.OutcomeMissingData
	}
	history, err := s.Fetcher.FetchHistory(symbol, indicator.DefaultRSIWindow+1)
	if err != nil {
		log.Printf("[WARN] %s: fetch history: %v", symbol, err)
		return nil, model.OutcomeMissingData
	}
	return strategy.Evaluate(symbol, bar, history, s.Baselines.Lookup(symbol), s.Params, asOf)
}
