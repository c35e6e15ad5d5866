package game

import (
	"fmt"
	"strconv"
)

// Move identifies a square on the board, numbered 0..8 in reading
// order from the top-left corner.
type Move uint8

// NoMove is returned by the solver when a position is already terminal
// and there is nothing to play.
const NoMove Move = 255

func (m Move) String() string {
	if m == NoMove {
		return "-"
	}
	// Display as 1-9, matching the numbering users type in.
	return strconv.Itoa(int(m) + 1)
}

// ParseMove parses the user-facing square numbering "1".."9" into a
// Move. It does not check occupancy; callers validate against the
// position with IsLegal.
func ParseMove(text string) (Move, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return NoMove, fmt.Errorf("parse move %q: %w", text, err)
	}
	if n < 1 || n > NumSquares {
		return NoMove, fmt.Errorf("move %d out of range 1-%d", n, NumSquares)
	}
	return Move(n - 1), nil
}
