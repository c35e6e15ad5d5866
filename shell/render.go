package shell

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/wstrand/oxo/game"
)

// renderBoard draws pos in the grid layout, coloring the marks and
// showing the number to type on each free square.
func (sc *ShellController) renderBoard(pos game.Position) string {
	var sb strings.Builder
	sb.WriteString("---+---+---\n")
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			m := game.Move(row*3 + col)
			switch pos.Occupant(m) {
			case game.Cross:
				cells[col] = " " + sc.out.String("X").Foreground(termenv.ANSIBrightRed).Bold().String() + " "
			case game.Nought:
				cells[col] = " " + sc.out.String("O").Foreground(termenv.ANSIBrightBlue).Bold().String() + " "
			default:
				cells[col] = " " + sc.out.String(m.String()).Faint().String() + " "
			}
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n---+---+---\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
