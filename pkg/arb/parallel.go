package arb

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"triarb/pkg/pricepath"
	"triarb/pkg/quote"
)

// candidateResult is one path's simulation outcome, carrying its universe
// index so a deterministic tie-break can be applied after a parallel
// reduction.
type candidateResult struct {
	index  int
	path   *pricepath.Path
	amount float64
}

// workerCount returns the configured pool size, defaulting to the host's
// GOMAXPROCS the way an eagerly-created, fixed-size pool would for the
// original's rayon global pool.
func workerCount(workers int) int {
	if workers > 0 {
		return workers
	}
	return runtime.GOMAXPROCS(0)
}

// ParallelFirstEvaluator fans per-candidate simulation out across a worker
// pool and returns as soon as any profitable path is found, cancelling the
// remaining work. "First" is non-deterministic across runs by design.
// Grounded on the original's RayonFirstMatchScanner
// (par_iter().find_map_any(...)).
type ParallelFirstEvaluator struct {
	store   *quote.Store
	index   map[string][]*pricepath.Path
	workers int
}

// NewParallelFirstEvaluator builds a first-match parallel evaluator. workers
// <= 0 selects runtime.GOMAXPROCS(0).
func NewParallelFirstEvaluator(paths []*pricepath.Path, store *quote.Store, workers int) *ParallelFirstEvaluator {
	return &ParallelFirstEvaluator{store: store, index: buildSymbolIndex(paths), workers: workers}
}

func (e *ParallelFirstEvaluator) ProcessUpdate(u quote.Update) (Opportunity, bool) {
	e.store.Put(u)

	candidates := e.index[u.Symbol]
	if len(candidates) == 0 {
		return Opportunity{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(e.workers))

	var (
		mu     sync.Mutex
		winner *candidateResult
	)

	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			amount, ok := simulate(path, e.store)
			if !ok || !profitable(amount) {
				return nil
			}
			mu.Lock()
			if winner == nil {
				winner = &candidateResult{index: i, path: path, amount: amount}
				cancel()
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if winner == nil {
		return Opportunity{}, false
	}
	return Opportunity{
		Path:            winner.path,
		FinalAmount:     winner.amount,
		TriggerSymbol:   u.Symbol,
		TriggerUpdateID: u.UpdateID,
	}, true
}

// ParallelBestEvaluator fans simulation out across a worker pool, collects
// every profitable candidate, and deterministically reduces to the one with
// the maximum final amount, breaking ties by the smallest universe
// construction index. Grounded on the original's RayonBestMatchScanner
// (par_iter().filter_map(...).max_by(...)).
type ParallelBestEvaluator struct {
	store   *quote.Store
	index   map[string][]*pricepath.Path
	workers int
}

// NewParallelBestEvaluator builds a best-match parallel evaluator. workers
// <= 0 selects runtime.GOMAXPROCS(0).
func NewParallelBestEvaluator(paths []*pricepath.Path, store *quote.Store, workers int) *ParallelBestEvaluator {
	return &ParallelBestEvaluator{store: store, index: buildSymbolIndex(paths), workers: workers}
}

func (e *ParallelBestEvaluator) ProcessUpdate(u quote.Update) (Opportunity, bool) {
	e.store.Put(u)

	candidates := e.index[u.Symbol]
	if len(candidates) == 0 {
		return Opportunity{}, false
	}

	results := make([]*candidateResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(workerCount(e.workers))

	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			amount, ok := simulate(path, e.store)
			if !ok || !profitable(amount) {
				return nil
			}
			results[i] = &candidateResult{index: i, path: path, amount: amount}
			return nil
		})
	}
	_ = g.Wait()

	var best *candidateResult
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || r.amount > best.amount || (r.amount == best.amount && r.index < best.index) {
			best = r
		}
	}

	if best == nil {
		return Opportunity{}, false
	}
	return Opportunity{
		Path:            best.path,
		FinalAmount:     best.amount,
		TriggerSymbol:   u.Symbol,
		TriggerUpdateID: u.UpdateID,
	}, true
}
