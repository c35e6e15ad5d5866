// Package negamax implements exhaustive adversarial search for
// tic-tac-toe positions: a negamax tree walk with alpha-beta pruning
// over the immutable game.Position value type. The game is small
// enough (at most 9 plies) that every solve is exact; there is no
// heuristic evaluation and no depth limit.
package negamax

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wstrand/oxo/game"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

const (
	// Game values from the perspective of the player to move.
	WinScore  = int16(1)
	DrawScore = int16(0)
	LossScore = int16(-1)

	// HugeNumber lies outside the attainable score range. It seeds
	// the running best before any child has been searched, so the
	// first child always replaces it.
	HugeNumber = int16(2)
)

// Solver runs the searches. The zero value is usable; a single Solver
// may be reused across solves but not shared between concurrent ones,
// except through SolveConcurrent which manages its own workers.
type Solver struct {
	nodes       atomic.Uint64
	parallelism int
	logStream   io.Writer
}

// SetLogStream directs a per-node trace of plays, values and bounds to
// w. Meant for debugging small subtrees; the full tree is noisy.
func (s *Solver) SetLogStream(w io.Writer) {
	s.logStream = w
}

// SetParallelism bounds the number of root workers used by
// SolveConcurrent. Values below 1 mean one worker per root move.
func (s *Solver) SetParallelism(n int) {
	s.parallelism = n
}

// Nodes returns the number of positions visited by the last solve.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Solve returns the game value of pos under optimal play by both
// sides, together with a move achieving it, both from the perspective
// of the player to move. The move is game.NoMove when pos is already
// terminal. Repeated calls on the same position return the same pair.
func (s *Solver) Solve(pos game.Position) (int16, game.Move) {
	s.nodes.Store(0)
	tstart := time.Now()
	score, move := s.Search(pos, LossScore, WinScore)
	log.Debug().
		Int16("score", score).
		Stringer("move", move).
		Uint64("nodes", s.nodes.Load()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return score, move
}

// Search is negamax with alpha-beta pruning over the window
// (lower, upper). Scores are negated and the window swapped at each
// ply, so one function serves both players. On ties the first best
// move in enumeration order is kept (strict ">"), which makes move
// selection deterministic.
func (s *Solver) Search(pos game.Position, lower, upper int16) (int16, game.Move) {
	s.nodes.Add(1)
	if over, score := pos.IsOver(); over {
		// Terminal leaf. No further recursion even if empty squares
		// remain on a decided board.
		return score, game.NoMove
	}

	bestScore := -HugeNumber
	bestMove := game.NoMove
	indent := 2 * pos.Depth()
	if s.logStream != nil {
		fmt.Fprintf(s.logStream, "%vplays:\n", strings.Repeat(" ", indent))
	}
	for _, m := range pos.LegalMoves() {
		value, _ := s.Search(pos.Apply(m), -upper, -lower)
		value = -value
		if s.logStream != nil {
			fmt.Fprintf(s.logStream, "%v- play: %v\n", strings.Repeat(" ", indent), m)
			fmt.Fprintf(s.logStream, "%v  value: %v\n", strings.Repeat(" ", indent), value)
			fmt.Fprintf(s.logStream, "%v  α: %v β: %v\n", strings.Repeat(" ", indent), lower, upper)
		}
		if value > bestScore {
			bestScore = value
			bestMove = m
		}
		if value > lower {
			lower = value
		}
		if lower >= upper {
			break // beta cut-off
		}
	}
	return bestScore, bestMove
}
