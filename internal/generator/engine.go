package generator

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"WalletGen/internal/crypto"
	"WalletGen/internal/wallet"
	"WalletGen/pkg/logx"
)

// Run generates opt.Count wallets over opt.Workers goroutines. Worker i owns
// the i-th range of Partition and the results are concatenated in worker order,
// so the output is index ascending whatever the scheduling.
//
// Configuration problems (prefix, seed, count) are reported before any worker
// starts. Per-index failures are collected in Result.Dropped, or fail the run
// with ErrWalletsDropped when opt.Strict is set.
func Run(ctx context.Context, opt Options) (*Result, error) {
	log := logx.With("generator")

	if opt.Count > MaxWallets {
		return nil, fmt.Errorf("%w: %d, maximum is %d", ErrTooManyWallets, opt.Count, MaxWallets)
	}
	enc, err := crypto.NewEncoder(opt.Variant, opt.Prefix)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// fail fast on a bad seed instead of once per worker
	if _, err := newKeySource(opt.Seed); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = defaultProgressInterval
	}
	logEvery := opt.LogInterval
	if logEvery <= 0 {
		logEvery = defaultLogInterval
	}

	ranges := Partition(opt.Count, workers)
	per := perWorker(opt.Count, workers)

	log.Infow("generation started",
		"count", opt.Count,
		"workers", workers,
		"per_worker", per,
		"key_type", opt.Variant.String(),
		"prefix", enc.Prefix(),
	)

	start := time.Now()
	var counter atomic.Uint64

	done := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		lastLog := time.Now()
		reportProgress(&counter, opt.Count, interval, done, func(p Progress) {
			if opt.OnProgress != nil {
				opt.OnProgress(p)
			}
			if time.Since(lastLog) >= logEvery {
				lastLog = time.Now()
				log.Infow("progress",
					"done", p.Done,
					"total", p.Total,
					"rate_wallets_per_sec", fmt.Sprintf("%.0f", p.Rate),
					"eta", humanDuration(p.ETA()),
				)
			}
		})
	}()

	results := make([]batchResult, len(ranges))
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for i, r := range ranges {
		i, r := i, r
		go func() {
			defer wg.Done()
			if r.Len() == 0 {
				return
			}
			keys, err := newKeySource(opt.Seed)
			if err != nil {
				results[i] = batchResult{err: err}
				return
			}
			a := &assembler{keys: keys, encoder: enc}
			results[i] = runBatch(ctx, a, r, &counter)
		}()
	}

	wg.Wait()
	close(done)
	<-reporterDone

	res := &Result{Workers: workers, PerWorker: per, Elapsed: time.Since(start)}
	total := 0
	for _, br := range results {
		if br.err != nil {
			return nil, br.err
		}
		total += len(br.wallets)
	}

	res.Wallets = make([]wallet.Wallet, 0, total)
	for _, br := range results {
		res.Wallets = append(res.Wallets, br.wallets...)
		res.Dropped = append(res.Dropped, br.dropped...)
	}

	for _, d := range res.Dropped {
		log.Warnw("wallet dropped", "index", d.Index, "path", d.Path, "reason", d.Reason)
	}

	log.Infow("generation finished",
		"generated", len(res.Wallets),
		"dropped", len(res.Dropped),
		"elapsed", humanDuration(res.Elapsed),
	)

	if opt.Strict && len(res.Dropped) > 0 {
		return nil, fmt.Errorf("%w: %d of %d (first at index %d)",
			ErrWalletsDropped, len(res.Dropped), opt.Count, res.Dropped[0].Index)
	}
	return res, nil
}

// ------------------------------- helpers ------------------------------------

func humanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
