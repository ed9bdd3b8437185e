package main

import (
	"fmt"

	"boardgame/board"
	"boardgame/checkers"
	"boardgame/engine"
	"boardgame/mancala"
	"boardgame/player"
	"boardgame/searcher"
)

type config struct {
	depth int
	seed  uint64
}

func main() {
	runSelfPlay()
}

func runSelfPlay() {
	configs := []struct {
		agent1 config
		agent2 config
	}{
		{config{depth: 4, seed: 1}, config{depth: 4, seed: 2}},
		{config{depth: 6, seed: 1}, config{depth: 2, seed: 2}},
	}

	fmt.Printf("Running mancala self-play...\n")
	for i, cfg := range configs {
		outcome := runMancala(cfg.agent1, cfg.agent2)
		fmt.Printf("Game %d over in %d turns! Winner: %q (strength %d)\n",
			i+1, outcome.Turns, outcome.Winner, outcome.Strength)
	}

	fmt.Printf("Running checkers self-play...\n")
	for i, cfg := range configs {
		outcome := runCheckers(cfg.agent1, cfg.agent2)
		fmt.Printf("Game %d over in %d turns! Winner: %q (strength %d)\n",
			i+1, outcome.Turns, outcome.Winner, outcome.Strength)
	}
}

func runMancala(cfg1, cfg2 config) engine.Outcome {
	b := mancala.NewDefaultBoard()
	players := player.NewList("Player1", "Player2")
	game := mancala.NewSearchable(b, players)
	e := engine.Local(game, players,
		newAgent(cfg1, mancala.DefaultWeights()),
		newAgent(cfg2, mancala.DefaultWeights()))
	return e.Run()
}

func runCheckers(cfg1, cfg2 config) engine.Outcome {
	b := checkers.NewBoard()
	players := player.NewList("Player1", "Player2")
	game := checkers.NewSearchable(b, players)
	e := engine.Local(game, players,
		newAgent(cfg1, checkers.DefaultWeights()),
		newAgent(cfg2, checkers.DefaultWeights()))
	return e.Run()
}

func newAgent(cfg config, weights board.Weights) *searcher.AlphaBeta {
	return searcher.NewAlphaBeta(weights,
		searcher.WithDepth(cfg.depth),
		searcher.WithSeed(cfg.seed),
		searcher.WithMetrics())
}
