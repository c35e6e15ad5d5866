package game

import "strings"

// ToDisplayText returns a human-readable rendering of the board with
// row separators:
//
//	---+---+---
//	 X | O |
//	---+---+---
func (p Position) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("---+---+---\n")
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = " " + p.Occupant(Move(row*3+col)).String() + " "
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n---+---+---\n")
	}
	return sb.String()
}

func (p Position) String() string {
	return p.ToDisplayText()
}
