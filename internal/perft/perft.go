// Package perft enumerates the move tree of a game to a fixed depth and
// counts what it finds. It performs no search or evaluation; it exists to
// exercise and measure the engine.
package perft

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lgbarn/threatboard/internal/engine"
	"github.com/lgbarn/threatboard/internal/errors"
	"github.com/lgbarn/threatboard/internal/hashing"
	"github.com/lgbarn/threatboard/internal/worker"
)

// Result holds the counts of one enumeration.
type Result struct {
	// Nodes is the number of leaves: positions at full depth plus
	// positions reached earlier in which the game has ended.
	Nodes uint64
	// Checkmates counts leaves in which either king is checkmated.
	Checkmates uint64
	// Stalemates counts leaves in which the side to move is stalemated.
	Stalemates uint64
	// Distinct is the number of distinct leaf positions, when requested.
	Distinct int
}

func (r *Result) add(o Result) {
	r.Nodes += o.Nodes
	r.Checkmates += o.Checkmates
	r.Stalemates += o.Stalemates
}

// String formats the counts on one line.
func (r Result) String() string {
	return fmt.Sprintf("nodes %d, checkmates %d, stalemates %d, distinct %d",
		r.Nodes, r.Checkmates, r.Stalemates, r.Distinct)
}

// BranchFunc receives the counts below each first-ply move as it completes.
type BranchFunc func(mv engine.Move, r Result)

type options struct {
	workers  int
	distinct bool
	onBranch BranchFunc
}

// Option configures Run.
type Option func(*options)

// WithWorkers spreads first-ply branches over n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithDistinct enables counting distinct leaf positions.
func WithDistinct(enabled bool) Option {
	return func(o *options) { o.distinct = enabled }
}

// WithBranchFunc sets a callback run for each completed first-ply branch.
func WithBranchFunc(fn BranchFunc) Option {
	return func(o *options) { o.onBranch = fn }
}

// Run enumerates every legal move sequence of depth plies from g. g is not
// modified; each first-ply branch runs on its own clone.
func Run(ctx context.Context, g *engine.Game, depth int, opts ...Option) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("perft depth %d < 1: %w", depth, errors.ErrInvalidConfig)
	}
	o := options{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	var seen *hashing.ThreadSafePositionSet
	if o.distinct {
		seen = hashing.NewThreadSafePositionSet(0)
	}
	finish := func(r Result) Result {
		if seen != nil {
			r.Distinct = seen.UniqueCount()
		}
		return r
	}

	moves := g.LegalMoves()
	if len(moves) == 0 || g.Board().PositionValue() != 0 {
		r, err := count(ctx, g, 0, seen)
		return finish(r), err
	}

	pool := worker.NewPool(func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Index: item.Index, Move: item.Move}
		if err := item.Game.MakeMove(item.Move.From, item.Move.To); err != nil {
			res.Error = err
			return res
		}
		r, err := count(ctx, item.Game, item.Depth, seen)
		res.Payload, res.Error = r, err
		return res
	}, worker.WithWorkers(o.workers), worker.WithBufferSize(len(moves)), worker.WithContext(ctx))
	pool.Start()

	go func() {
		for i, mv := range moves {
			pool.Submit(worker.WorkItem{Game: g.Clone(), Move: mv, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	var total Result
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(res.Error, "branch %s", res.Move)
				pool.Stop()
			}
			continue
		}
		r := res.Payload.(Result)
		total.add(r)
		if o.onBranch != nil {
			o.onBranch(res.Move, r)
		}
	}
	if firstErr != nil {
		return Result{}, firstErr
	}
	return finish(total), nil
}

// count walks the tree below g sequentially. g may be modified.
func count(ctx context.Context, g *engine.Game, depth int, seen *hashing.ThreadSafePositionSet) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var moves []engine.Move
	ended := g.Board().PositionValue() != 0
	if depth > 0 && !ended {
		moves = g.LegalMoves()
	}
	if len(moves) == 0 {
		return leaf(g, ended, seen), nil
	}

	var total Result
	for _, mv := range moves {
		child := g.Clone()
		if err := child.MakeMove(mv.From, mv.To); err != nil {
			return Result{}, errors.Wrapf(err, "move %s", mv)
		}
		r, err := count(ctx, child, depth-1, seen)
		if err != nil {
			return Result{}, err
		}
		total.add(r)
	}
	return total, nil
}

func leaf(g *engine.Game, checkmate bool, seen *hashing.ThreadSafePositionSet) Result {
	r := Result{Nodes: 1}
	if checkmate {
		r.Checkmates = 1
	} else if g.Status(g.ToMove()) == engine.Stalemate {
		r.Stalemates = 1
	}
	if seen != nil {
		seen.CheckAndAdd(g)
	}
	return r
}
