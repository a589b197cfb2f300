package generator

import (
	"context"
	"sync/atomic"

	"WalletGen/internal/wallet"
)

// progressStep is how many indices a worker processes between two updates of
// the shared counter and two context checks.
const progressStep = 1000

type batchResult struct {
	wallets []wallet.Wallet
	dropped []wallet.Dropped
	err     error
}

// runBatch assembles the wallets of r in ascending index order. Failed indices
// are recorded in dropped and skipped. The counter ends up increased by exactly
// r.Len() unless ctx is cancelled first.
func runBatch(ctx context.Context, a *assembler, r Range, progress *atomic.Uint64) batchResult {
	n := r.Len()
	res := batchResult{wallets: make([]wallet.Wallet, 0, n)}

	for i := uint64(0); i < n; i++ {
		if i%progressStep == 0 {
			if err := ctx.Err(); err != nil {
				res.err = err
				return res
			}
			// full blocks only, the tail is added after the loop
			if i+progressStep <= n {
				progress.Add(progressStep)
			}
		}

		index := r.Start + i
		w, err := a.assemble(index)
		if err != nil {
			res.dropped = append(res.dropped, wallet.Dropped{
				Index:  index,
				Path:   wallet.PathAt(index).String(),
				Reason: err.Error(),
			})
			continue
		}
		res.wallets = append(res.wallets, w)
	}

	progress.Add(n % progressStep)
	return res
}
