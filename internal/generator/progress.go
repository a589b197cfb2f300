package generator

import (
	"sync/atomic"
	"time"
)

// rateWindow is the minimum span over which the instantaneous rate is
// recomputed, so 100ms polls do not make it jitter.
const rateWindow = 500 * time.Millisecond

// Progress is one observation of the shared counter.
type Progress struct {
	Done    uint64
	Total   uint64
	Rate    float64 // wallets per second over the last window
	Elapsed time.Duration
}

// ETA estimates the remaining time from the current rate.
func (p Progress) ETA() time.Duration {
	if p.Rate <= 0 || p.Done >= p.Total {
		return 0
	}
	return time.Duration(float64(p.Total-p.Done) / p.Rate * float64(time.Second))
}

// Percent returns completion in [0, 100].
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// reportProgress polls counter every interval and hands each observation to
// onTick. It returns once the counter reaches total or done is closed; in the
// latter case one last observation is delivered.
func reportProgress(counter *atomic.Uint64, total uint64, interval time.Duration, done <-chan struct{}, onTick func(Progress)) {
	start := time.Now()
	lastCount := uint64(0)
	lastTime := start
	rate := 0.0

	observe := func(now time.Time) Progress {
		cur := counter.Load()
		if dt := now.Sub(lastTime); dt >= rateWindow {
			rate = float64(cur-lastCount) / dt.Seconds()
			lastCount = cur
			lastTime = now
		}
		return Progress{Done: cur, Total: total, Rate: rate, Elapsed: now.Sub(start)}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			onTick(observe(time.Now()))
			return
		case now := <-ticker.C:
			p := observe(now)
			onTick(p)
			if p.Done >= total {
				return
			}
		}
	}
}
