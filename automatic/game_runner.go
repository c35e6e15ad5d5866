// Package automatic contains the logic for playing out whole games of
// tic-tac-toe between configurable players, one-off or in series. It
// sits strictly above the core: it validates every chosen move against
// the position before applying it.
package automatic

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/wstrand/oxo/game"
	"github.com/wstrand/oxo/negamax"
)

const (
	PerfectPlayer = "perfect"
	RandomPlayer  = "random"
)

// Mover picks a move for the side to move in pos. The move must be
// legal in pos.
type Mover interface {
	ChooseMove(pos game.Position) game.Move
}

// PerfectMover always plays an optimal move.
type PerfectMover struct {
	solver negamax.Solver
}

func (m *PerfectMover) ChooseMove(pos game.Position) game.Move {
	_, move := m.solver.Solve(pos)
	return move
}

// RandomMover plays a uniformly random legal move.
type RandomMover struct{}

func (m RandomMover) ChooseMove(pos game.Position) game.Move {
	moves := pos.LegalMoves()
	return moves[frand.Intn(len(moves))]
}

// NewMover instantiates a mover by kind name.
func NewMover(kind string) (Mover, error) {
	switch kind {
	case PerfectPlayer:
		return &PerfectMover{}, nil
	case RandomPlayer:
		return RandomMover{}, nil
	}
	return nil, fmt.Errorf("unknown player kind %q", kind)
}

// PlayGame plays a single game with moverX playing crosses and moverO
// playing noughts, returning the winning mark, or game.None on a draw.
func PlayGame(moverX, moverO Mover) (game.Player, error) {
	pos := game.InitialPosition()
	for {
		over, score := pos.IsOver()
		if over {
			if score == 0 {
				return game.None, nil
			}
			// The score is for the side to move, so a negative score
			// means the player who just moved completed a line.
			if score < 0 {
				return pos.Turn().Other(), nil
			}
			return pos.Turn(), nil
		}
		mover := moverX
		if pos.Turn() == game.Nought {
			mover = moverO
		}
		m := mover.ChooseMove(pos)
		if !pos.IsLegal(m) {
			return game.None, fmt.Errorf("mover chose illegal move %v at depth %d", m, pos.Depth())
		}
		pos = pos.Apply(m)
	}
}
