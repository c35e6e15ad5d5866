package automatic

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/wstrand/oxo/game"
)

const draw = int8(-1)

// SeriesResult aggregates the outcomes of a series of games between
// two movers. Wins is indexed by mover, in the order the runner was
// given them; which mark a mover plays is re-tossed every game.
type SeriesResult struct {
	Games int
	Wins  [2]int
	Draws int
}

// Points returns the match points for mover i, counting a draw as half
// a point for each side.
func (r SeriesResult) Points(i int) float64 {
	return float64(r.Wins[i]) + 0.5*float64(r.Draws)
}

// GameRunner plays series of games between two player kinds.
type GameRunner struct {
	kinds       [2]string
	parallelism int
}

// NewGameRunner instantiates a runner for the two player kinds.
func NewGameRunner(kind1, kind2 string) *GameRunner {
	return &GameRunner{kinds: [2]string{kind1, kind2}}
}

// SetParallelism bounds the number of games played concurrently.
// Values below 1 leave the series sequential.
func (r *GameRunner) SetParallelism(n int) {
	r.parallelism = n
}

// PlaySeries plays the requested number of games. Games are
// independent, so they fan out over an errgroup when parallelism is
// set; each game gets fresh movers and its own coin toss for who
// plays crosses.
func (r *GameRunner) PlaySeries(games int) (SeriesResult, error) {
	tstart := time.Now()
	winners := make([]int8, games)

	limit := r.parallelism
	if limit < 1 {
		limit = 1
	}
	g := errgroup.Group{}
	g.SetLimit(limit)
	for i := range winners {
		i := i
		g.Go(func() error {
			movers := [2]Mover{}
			for j, kind := range r.kinds {
				mover, err := NewMover(kind)
				if err != nil {
					return err
				}
				movers[j] = mover
			}
			crosses := frand.Intn(2)
			winner, err := PlayGame(movers[crosses], movers[1-crosses])
			if err != nil {
				return err
			}
			switch winner {
			case game.Cross:
				winners[i] = int8(crosses)
			case game.Nought:
				winners[i] = int8(1 - crosses)
			default:
				winners[i] = draw
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SeriesResult{}, err
	}

	res := SeriesResult{
		Games: games,
		Wins:  [2]int{lo.Count(winners, 0), lo.Count(winners, 1)},
		Draws: lo.Count(winners, draw),
	}
	log.Info().
		Str("player1", r.kinds[0]).
		Str("player2", r.kinds[1]).
		Int("games", res.Games).
		Int("p1-wins", res.Wins[0]).
		Int("p2-wins", res.Wins[1]).
		Int("draws", res.Draws).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("series-complete")
	return res, nil
}
