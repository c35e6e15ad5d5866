package negamax

import (
	"bytes"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/wstrand/oxo/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// applySquares plays squares in order from the empty board.
func applySquares(squares ...game.Move) game.Position {
	p := game.InitialPosition()
	for _, sq := range squares {
		p = p.Apply(sq)
	}
	return p
}

func TestSolveEmptyBoardIsDraw(t *testing.T) {
	is := is.New(t)
	s := new(Solver)
	score, move := s.Solve(game.InitialPosition())
	is.Equal(score, DrawScore) // perfect play from the empty board draws
	// All first moves draw, so the first square in enumeration order
	// is kept by the strict tie-break.
	is.Equal(move, game.Move(0))
}

func TestForcedWin(t *testing.T) {
	is := is.New(t)
	// X X .      X to move completes the top row.
	// O O .
	// . . .
	pos := applySquares(0, 3, 1, 4)
	is.Equal(pos.Turn(), game.Cross)

	s := new(Solver)
	score, move := s.Solve(pos)
	is.Equal(score, WinScore)
	is.Equal(move, game.Move(2))
}

func TestForcedBlock(t *testing.T) {
	is := is.New(t)
	// X . .      X to move; O threatens to complete the middle row at
	// O O .      square 5, and anything but the block there loses.
	// . . X
	pos := applySquares(0, 3, 8, 4)
	is.Equal(pos.Turn(), game.Cross)

	s := new(Solver)
	score, move := s.Solve(pos)
	is.Equal(score, DrawScore)
	is.Equal(move, game.Move(5))
}

func TestTerminalPositionReturnsNoMove(t *testing.T) {
	is := is.New(t)
	// X completed the top row; O is to move and has already lost.
	pos := applySquares(0, 3, 1, 4, 2)
	s := new(Solver)
	score, move := s.Solve(pos)
	is.Equal(score, LossScore)
	is.Equal(move, game.NoMove)
}

func TestZeroSumSymmetryAlongPrincipalLine(t *testing.T) {
	is := is.New(t)
	s := new(Solver)
	pos := game.InitialPosition()
	for {
		over, _ := pos.IsOver()
		if over {
			break
		}
		score, move := s.Solve(pos)
		child := pos.Apply(move)
		childScore, _ := s.Solve(child)
		is.Equal(score, -childScore) // negamax identity at every ply
		pos = child
	}
	is.Equal(pos.Depth(), 9) // perfect play fills the board
}

func TestDeterminism(t *testing.T) {
	is := is.New(t)
	s := new(Solver)
	pos := applySquares(4, 0, 8)
	firstScore, firstMove := s.Solve(pos)
	for i := 0; i < 10; i++ {
		score, move := s.Solve(pos)
		is.Equal(score, firstScore)
		is.Equal(move, firstMove)
	}
}

func TestConcurrentMatchesSequential(t *testing.T) {
	is := is.New(t)
	seq := new(Solver)
	conc := new(Solver)
	conc.SetParallelism(4)

	positions := []game.Position{game.InitialPosition()}
	for _, first := range game.InitialPosition().LegalMoves() {
		child := game.InitialPosition().Apply(first)
		positions = append(positions, child)
		for _, second := range child.LegalMoves() {
			positions = append(positions, child.Apply(second))
		}
	}
	for _, pos := range positions {
		wantScore, wantMove := seq.Solve(pos)
		gotScore, gotMove := conc.SolveConcurrent(pos)
		is.Equal(gotScore, wantScore)
		is.Equal(gotMove, wantMove)
	}
}

func TestConcurrentTerminalPosition(t *testing.T) {
	is := is.New(t)
	s := new(Solver)
	pos := applySquares(0, 3, 1, 4, 2)
	score, move := s.SolveConcurrent(pos)
	is.Equal(score, LossScore)
	is.Equal(move, game.NoMove)
}

func TestLogStreamTrace(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	s := new(Solver)
	s.SetLogStream(&buf)
	// A nearly-full board keeps the trace small.
	pos := applySquares(0, 1, 2, 4, 3, 5, 7)
	s.Solve(pos)
	is.True(bytes.Contains(buf.Bytes(), []byte("plays:")))
	is.True(bytes.Contains(buf.Bytes(), []byte("value:")))
}

func TestNodeCount(t *testing.T) {
	is := is.New(t)
	s := new(Solver)
	s.Solve(game.InitialPosition())
	// At minimum the root and one child per ply must be visited; the
	// exact count depends on pruning but is always below 9! + interior.
	is.True(s.Nodes() > 9)
	is.True(s.Nodes() < 600000)
}

func BenchmarkSolveEmptyBoard(b *testing.B) {
	s := new(Solver)
	pos := game.InitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Solve(pos)
	}
}

func BenchmarkSolveConcurrentEmptyBoard(b *testing.B) {
	s := new(Solver)
	pos := game.InitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SolveConcurrent(pos)
	}
}
