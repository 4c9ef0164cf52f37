package workerpool

// Frontier holds the current level-synchronous BFS frontier and a set of
// per-worker buffers that accumulate the next level's vertices without
// contention. Swap() concatenates and clears the per-worker buffers into
// the next current frontier, matching the "thread-local buffers
// concatenated at end of level" step of the level-synchronous algorithm.
type Frontier struct {
	current []int
	staging [][]int // one buffer per worker, indexed by worker id
}

// NewFrontier returns a Frontier seeded with the given initial vertices and
// staging buffers for workers worker goroutines.
func NewFrontier(initial []int, workers int) *Frontier {
	if workers < 1 {
		workers = 1
	}
	return &Frontier{
		current: append([]int(nil), initial...),
		staging: make([][]int, workers),
	}
}

// Current returns the active level's frontier.
func (f *Frontier) Current() []int {
	return f.current
}

// Stage appends v to worker id's next-level buffer. Only the owning worker
// may call Stage with its own id, so no synchronization is needed between
// distinct staging buffers.
func (f *Frontier) Stage(worker, v int) {
	f.staging[worker] = append(f.staging[worker], v)
}

// Swap concatenates every worker's staging buffer into the next current
// frontier, clears the staging buffers, and reports whether the new
// frontier is non-empty (the level-synchronous termination condition).
func (f *Frontier) Swap() bool {
	total := 0
	for _, s := range f.staging {
		total += len(s)
	}

	next := make([]int, 0, total)
	for i, s := range f.staging {
		next = append(next, s...)
		f.staging[i] = s[:0]
	}

	f.current = next
	return len(next) > 0
}
