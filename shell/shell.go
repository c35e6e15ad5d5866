// Package shell implements the interactive text front end: a readline
// command loop for playing against the engine, inspecting positions,
// and running automatic series. It talks to the core only through
// game.Position and negamax.Solver, and validates all user input
// before any move reaches Apply.
package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"

	"github.com/wstrand/oxo/automatic"
	"github.com/wstrand/oxo/config"
	"github.com/wstrand/oxo/game"
	"github.com/wstrand/oxo/negamax"
)

type ShellController struct {
	l   *readline.Instance
	out *termenv.Output
	cfg *config.Config

	pos    game.Position
	solver *negamax.Solver
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a new game\n")
	io.WriteString(w, "s - show the board\n")
	io.WriteString(w, "m <1-9> - play a move on the numbered square\n")
	io.WriteString(w, "best - show the value of the position and a best move\n")
	io.WriteString(w, "play - let the engine play its best move\n")
	io.WriteString(w, "auto [n] - play n automatic games between the configured players\n")
	io.WriteString(w, "exit - leave\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31moxo>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	solver := new(negamax.Solver)
	solver.SetParallelism(cfg.Parallelism)
	return &ShellController{
		l:      l,
		out:    termenv.NewOutput(os.Stdout),
		cfg:    cfg,
		pos:    game.InitialPosition(),
		solver: solver,
	}
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func (sc *ShellController) showBoard() {
	showMessage(sc.renderBoard(sc.pos), sc.l.Stdout())
	if over, score := sc.pos.IsOver(); over {
		showMessage(outcomeText(sc.pos, score), sc.l.Stdout())
	}
}

// outcomeText translates a terminal score, which is relative to the
// side to move, into an absolute announcement.
func outcomeText(pos game.Position, score int16) string {
	switch {
	case score == 0:
		return "Draw!"
	case score < 0:
		return fmt.Sprintf("%v wins!", pos.Turn().Other())
	default:
		return fmt.Sprintf("%v wins!", pos.Turn())
	}
}

func valueText(score int16) string {
	switch score {
	case negamax.WinScore:
		return "win for the side to move"
	case negamax.LossScore:
		return "loss for the side to move"
	}
	return "draw"
}

func (sc *ShellController) playMove(m game.Move) error {
	if over, _ := sc.pos.IsOver(); over {
		return fmt.Errorf("the game is over; start a new one with `new`")
	}
	if !sc.pos.IsLegal(m) {
		return fmt.Errorf("square %v is taken", m)
	}
	sc.pos = sc.pos.Apply(m)
	return nil
}

func (sc *ShellController) best() error {
	if over, _ := sc.pos.IsOver(); over {
		return fmt.Errorf("the game is over; nothing to search")
	}
	score, move := sc.solver.Solve(sc.pos)
	showMessage(fmt.Sprintf("best move: %v (%s, %d nodes)",
		move, valueText(score), sc.solver.Nodes()), sc.l.Stdout())
	return nil
}

func (sc *ShellController) enginePlay() error {
	if over, _ := sc.pos.IsOver(); over {
		return fmt.Errorf("the game is over; start a new one with `new`")
	}
	_, move := sc.solver.Solve(sc.pos)
	sc.pos = sc.pos.Apply(move)
	showMessage(fmt.Sprintf("My move: %v", move), sc.l.Stdout())
	return nil
}

func (sc *ShellController) auto(games int) error {
	runner := automatic.NewGameRunner(sc.cfg.Player1, sc.cfg.Player2)
	runner.SetParallelism(sc.cfg.Parallelism)
	res, err := runner.PlaySeries(games)
	if err != nil {
		return err
	}
	showMessage(fmt.Sprintf("%s %.1f - %.1f %s (%d wins, %d losses, %d draws in %d games)",
		sc.cfg.Player1, res.Points(0), res.Points(1), sc.cfg.Player2,
		res.Wins[0], res.Wins[1], res.Draws, res.Games), sc.l.Stdout())
	return nil
}

func (sc *ShellController) modeSwitch(line string, sig chan os.Signal) error {
	switch {
	case line == "new":
		sc.pos = game.InitialPosition()
		sc.showBoard()

	case line == "s":
		sc.showBoard()

	case strings.HasPrefix(line, "m "):
		m, err := game.ParseMove(strings.TrimSpace(line[2:]))
		if err != nil {
			sc.showError(err)
			break
		}
		if err := sc.playMove(m); err != nil {
			sc.showError(err)
			break
		}
		sc.showBoard()

	case line == "best":
		if err := sc.best(); err != nil {
			sc.showError(err)
		}

	case line == "play":
		if err := sc.enginePlay(); err != nil {
			sc.showError(err)
			break
		}
		sc.showBoard()

	case line == "auto" || strings.HasPrefix(line, "auto "):
		games := sc.cfg.AutoGames
		if strings.HasPrefix(line, "auto ") {
			n, err := strconv.Atoi(strings.TrimSpace(line[5:]))
			if err != nil {
				sc.showError(err)
				break
			}
			games = n
		}
		if err := sc.auto(games); err != nil {
			sc.showError(err)
		}

	case line == "help":
		usage(sc.l.Stdout())

	case line == "exit" || line == "quit":
		sig <- syscall.SIGINT

	case line == "":
		// nothing

	default:
		showMessage("I do not understand this command. Type `help` for a list.", sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showBoard()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if err := sc.modeSwitch(line, sig); err != nil {
			log.Error().Err(err).Msg("")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
