// Package pipeline wires the feed, quote store, and evaluator together into
// a single consumer loop, grounded on polymarketbot's errgroup-based
// Orchestrator.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"triarb/pkg/arb"
	"triarb/pkg/parse"
)

// Sink receives every opportunity the evaluator reports.
type Sink func(arb.Opportunity)

// Loop consumes parsed updates from a buffered channel, evaluates each one,
// and forwards any opportunity found to a sink. The sink runs synchronously
// on the loop's goroutine, so the next update is not evaluated until the
// sink returns.
type Loop struct {
	evaluator arb.Evaluator
	updates   chan parse.Update
	sink      Sink
	logger    *slog.Logger
}

// NewLoop builds a pipeline loop with the given buffer size for incoming
// updates.
func NewLoop(evaluator arb.Evaluator, bufferSize int, sink Sink, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Loop{
		evaluator: evaluator,
		updates:   make(chan parse.Update, bufferSize),
		sink:      sink,
		logger:    logger,
	}
}

// Submit enqueues a parsed update for evaluation. It blocks if the internal
// buffer is full, applying backpressure to the feed.
func (l *Loop) Submit(ctx context.Context, u parse.Update) error {
	select {
	case l.updates <- u:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains updates and evaluates each until ctx is cancelled, at which
// point it drains no further and returns ctx.Err() via the errgroup. Run is
// intended to be launched inside an errgroup.Group alongside the feed's
// ingestion goroutine.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("pipeline: loop starting")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("pipeline: loop stopped")
			return ctx.Err()
		case u, ok := <-l.updates:
			if !ok {
				return nil
			}
			l.handle(u)
		}
	}
}

func (l *Loop) handle(u parse.Update) {
	quoteUpdate := toQuoteUpdate(u)
	opp, ok := l.evaluator.ProcessUpdate(quoteUpdate)
	if !ok {
		return
	}
	l.logger.Info("pipeline: opportunity found",
		"path", opp.Path.String(),
		"final_amount", opp.FinalAmount,
		"trigger_symbol", opp.TriggerSymbol,
	)
	if l.sink != nil {
		l.sink(opp)
	}
}

// RunWithFeed launches feed ingestion and the evaluation loop under a shared
// errgroup so either side's failure, or ctx cancellation, shuts both down.
func RunWithFeed(ctx context.Context, loop *Loop, ingest func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := ingest(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("feed: %w", err)
	})

	g.Go(func() error {
		err := loop.Run(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("pipeline: %w", err)
	})

	return g.Wait()
}
