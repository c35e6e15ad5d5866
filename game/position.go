// Package game implements the rules of tic-tac-toe: an immutable
// Position value, move generation, and terminal detection. Positions
// are small values; applying a move yields a fresh Position and never
// mutates the receiver, so search code can hand them around freely
// without undo bookkeeping.
package game

import (
	"fmt"
	"math/bits"
)

// Player is the occupant of a square.
type Player uint8

const (
	None Player = iota
	Cross
	Nought
)

func (p Player) String() string {
	switch p {
	case Cross:
		return "X"
	case Nought:
		return "O"
	}
	return " "
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case Cross:
		return Nought
	case Nought:
		return Cross
	}
	return None
}

const (
	// NumSquares is the board capacity; it also bounds search depth.
	NumSquares = 9
	fullBoard  = uint16(1)<<NumSquares - 1
)

// The eight winning lines as bitboard masks. Bit i corresponds to
// square i, numbered 0..8 in reading order from the top-left.
var winningPatterns = [8]uint16{
	0b000000111, 0b000111000, 0b111000000, // rows
	0b001001001, 0b010010010, 0b100100100, // columns
	0b100010001, 0b001010100, // diagonals
}

// Position is a board configuration together with whose turn it is and
// how many moves have been played. The occupancy of each player is kept
// in its own bitboard; the two are disjoint by construction since Apply
// only ever claims a free square.
//
// Example:
//
//	X|O|X
//	-+-+-          cross        nought
//	O|X|O   = [ 0b101010101, 0b010101010 ]
//	-+-+-
//	X|O|X
type Position struct {
	marks  [2]uint16 // indexed by onturn: 0 = Cross, 1 = Nought
	onturn uint8
	depth  uint8
}

// InitialPosition returns the empty board with Cross to move.
func InitialPosition() Position {
	return Position{}
}

// Turn returns the player to move.
func (p Position) Turn() Player {
	if p.onturn == 0 {
		return Cross
	}
	return Nought
}

// Depth returns the number of moves played so far (0..9).
func (p Position) Depth() int {
	return int(p.depth)
}

// Occupant returns the player occupying square m, or None.
func (p Position) Occupant(m Move) Player {
	if m >= NumSquares {
		return None
	}
	bit := uint16(1) << m
	if p.marks[0]&bit != 0 {
		return Cross
	}
	if p.marks[1]&bit != 0 {
		return Nought
	}
	return None
}

// TerminalScore scans the eight winning lines and scores the position
// from the perspective of the player to move: +1 if they own a
// completed line, -1 if the opponent does, 0 if nobody has won yet.
// This side-to-move convention is what lets the negamax search negate
// a single score across plies instead of tracking absolute players.
func (p Position) TerminalScore() int16 {
	for side := uint8(0); side < 2; side++ {
		for _, pattern := range winningPatterns {
			if p.marks[side]&pattern == pattern {
				if side == p.onturn {
					return 1
				}
				return -1
			}
		}
	}
	return 0
}

// IsOver reports whether the game is decided, along with the score for
// the side to move. The game ends when either player completes a line
// or all nine squares are filled (score 0, a draw).
func (p Position) IsOver() (bool, int16) {
	s := p.TerminalScore()
	return s != 0 || p.depth == NumSquares, s
}

// LegalMoves returns every empty square, in ascending square order.
// The order is deterministic; the solver relies on it to report the
// same best move for the same position every time.
func (p Position) LegalMoves() []Move {
	free := fullBoard &^ (p.marks[0] | p.marks[1])
	moves := make([]Move, 0, NumSquares-p.depth)
	for free != 0 {
		moves = append(moves, Move(bits.TrailingZeros16(free)))
		free &= free - 1
	}
	return moves
}

// IsLegal reports whether m refers to an empty square on the board.
func (p Position) IsLegal(m Move) bool {
	return m < NumSquares && p.marks[0]&(1<<m) == 0 && p.marks[1]&(1<<m) == 0
}

// Apply returns the position after the player to move plays m. The
// square must be empty and in range; callers validate user input with
// IsLegal or LegalMoves first, so a violation here is a programming
// error and panics.
func (p Position) Apply(m Move) Position {
	if !p.IsLegal(m) {
		panic(fmt.Sprintf("illegal move %d in position\n%v", m, p))
	}
	p.marks[p.onturn] |= 1 << m
	p.onturn ^= 1
	p.depth++
	return p
}
