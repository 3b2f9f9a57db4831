package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf positions reachable in exactly depth plies. It is
// the standard way to verify move generation against known totals.
func Perft(g *GameState, depth int) uint64 {
	return PerftCached(g, depth, nil)
}

// PerftCached is Perft with subtree totals memoized by position key. A nil
// cache disables memoization.
func PerftCached(g *GameState, depth int, cache *hashing.NodeCache) uint64 {
	if depth <= 0 {
		return 1
	}
	if cache != nil && depth > 1 {
		if nodes, ok := cache.Lookup(g.Hash(), depth); ok {
			return nodes
		}
	}

	moves := LegalMoves(g)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		child.apply(m)
		nodes += PerftCached(child, depth-1, cache)
	}
	if cache != nil {
		cache.Store(g.Hash(), depth, nodes)
	}
	return nodes
}

// DivideResult is the node count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft below each legal root move, in LegalMoves order.
func Divide(g *GameState, depth int) []DivideResult {
	moves := LegalMoves(g)
	results := make([]DivideResult, len(moves))
	for i, m := range moves {
		child := g.Clone()
		child.apply(m)
		results[i] = DivideResult{Move: m, Nodes: Perft(child, depth-1)}
	}
	return results
}

// ParallelDivide is Divide with root moves spread over a worker pool. Each
// root move gets its own clone of g, so no state is shared between workers
// other than cache, which may be nil. Results come back in LegalMoves order
// regardless of completion order.
func ParallelDivide(g *GameState, depth, workers int, cache *hashing.NodeCache) ([]DivideResult, error) {
	return divideMoves(g, LegalMoves(g), depth, workers, cache)
}

// divideMoves replays each root move on a clone through AttemptMove, so a
// move that is not legal in g fails its work item and stops the pool.
func divideMoves(g *GameState, moves []chess.Move, depth, workers int, cache *hashing.NodeCache) ([]DivideResult, error) {
	root := g.Clone()

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		child := root.Clone()
		if _, err := child.AttemptMove(item.Move.From, item.Move.To, item.Move.Promotion); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: PerftCached(child, depth-1, cache),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Move: m, Index: i})
		}
		pool.Close()
	}()

	results := make([]DivideResult, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(r.Error, "root move %s", r.Move)
			}
			continue
		}
		results[r.Index] = DivideResult{Move: r.Move, Nodes: r.Nodes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// TotalNodes sums a divide listing.
func TotalNodes(results []DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
