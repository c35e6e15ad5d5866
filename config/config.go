package config

import "github.com/namsral/flag"

type Config struct {
	Debug       bool
	Parallelism int
	Player1     string
	Player2     string
	AutoGames   int
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("oxo", flag.ContinueOnError)
	fs.BoolVar(&c.Debug, "debug", false, "log at debug level")
	fs.IntVar(&c.Parallelism, "parallelism", 0, "worker bound for concurrent solves and series; 0 picks a default")
	fs.StringVar(&c.Player1, "player1", "perfect", "player kind for automatic series: perfect or random")
	fs.StringVar(&c.Player2, "player2", "random", "player kind for automatic series: perfect or random")
	fs.IntVar(&c.AutoGames, "auto-games", 100, "default number of games for the auto command")
	err := fs.Parse(args)
	return err
}
