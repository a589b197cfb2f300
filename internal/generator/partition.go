package generator

// Range is the half-open index interval [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of indices in r.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Partition splits [0, total) into workers contiguous ranges of
// ceil(total/workers) indices each. The last range takes whatever is left and
// may be shorter; ranges past total are empty. workers < 1 is treated as 1.
func Partition(total uint64, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	w := uint64(workers)
	per := perWorker(total, workers)

	out := make([]Range, workers)
	for i := uint64(0); i < w; i++ {
		start := min(i*per, total)
		end := min(start+per, total)
		if i == w-1 {
			end = total
		}
		out[i] = Range{Start: start, End: end}
	}
	return out
}

func perWorker(total uint64, workers int) uint64 {
	if workers < 1 {
		workers = 1
	}
	w := uint64(workers)
	return (total + w - 1) / w
}
