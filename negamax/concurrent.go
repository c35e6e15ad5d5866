package negamax

import (
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/wstrand/oxo/game"
)

// SolveConcurrent splits the root's legal moves across a bounded pool
// of workers, each running the sequential search on its own subtree.
// Every child is searched with the full window so its score is exact;
// the reduction then walks the results in enumeration order, which
// makes the returned (score, move) identical to Solve's.
//
// Worth it only as a demonstration at this problem size: a full solve
// is already sub-millisecond sequentially.
func (s *Solver) SolveConcurrent(pos game.Position) (int16, game.Move) {
	if over, score := pos.IsOver(); over {
		return score, game.NoMove
	}
	s.nodes.Store(0)
	tstart := time.Now()

	moves := pos.LegalMoves()
	scores := make([]int16, len(moves))

	limit := s.parallelism
	if limit < 1 {
		limit = runtime.NumCPU()
	}
	g := errgroup.Group{}
	g.SetLimit(limit)
	for idx, m := range moves {
		idx, m := idx, m
		g.Go(func() error {
			value, _ := s.Search(pos.Apply(m), -WinScore, -LossScore)
			scores[idx] = -value
			return nil
		})
	}
	// Workers only write their own slice slot and never fail.
	_ = g.Wait()

	bestScore := -HugeNumber
	bestMove := game.NoMove
	for idx, score := range scores {
		if score > bestScore {
			bestScore = score
			bestMove = moves[idx]
		}
	}
	log.Debug().
		Int16("score", bestScore).
		Stringer("move", bestMove).
		Int("root-moves", len(moves)).
		Int("workers", limit).
		Uint64("nodes", s.nodes.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("concurrent-solve-returning")
	return bestScore, bestMove
}
