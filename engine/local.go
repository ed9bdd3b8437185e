package engine

import (
	"fmt"

	"boardgame/board"
	"boardgame/meta"
	"boardgame/player"
	"boardgame/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Agent picks a move for one side of the game.
type Agent interface {
	FindBestMove(s board.Searchable, lastMove board.Move) (board.Move, searcher.SearchMetrics)
}

// MoveRecord pairs a played move with the search metrics behind it.
type MoveRecord struct {
	Turn   int
	Player string
	Move   board.Move
	searcher.SearchMetrics
}

// Outcome summarizes a finished game.
type Outcome struct {
	ID       uuid.UUID
	Winner   string // empty if nobody won
	Strength int    // how decisive the win was, 0 for none
	Turns    int
	History  []MoveRecord
}

// Engine drives a local game between two agents on one searchable
// board. The engine exclusively owns the board for the duration of the
// game.
type Engine struct {
	id       uuid.UUID
	game     board.Searchable
	players  *player.List
	agents   [2]Agent // indexed 0 for player 1, 1 for player 2
	maxTurns int
}

// Local creates an engine for a game between agent1 (player 1) and
// agent2 (player 2). Each game gets a UUID for log correlation.
func Local(game board.Searchable, players *player.List, agent1, agent2 Agent) *Engine {
	if game == nil || agent1 == nil || agent2 == nil {
		panic("engine needs a game and two agents")
	}
	return &Engine{
		id:       uuid.New(),
		game:     game,
		players:  players,
		agents:   [2]Agent{agent1, agent2},
		maxTurns: meta.MAX_TURNS,
	}
}

func (e *Engine) agentFor(player1 bool) Agent {
	if player1 {
		return e.agents[0]
	}
	return e.agents[1]
}

// Run executes the game loop until a terminal position or the turn
// cap, alternating sides except where a move grants another turn, and
// returns the outcome.
func (e *Engine) Run() Outcome {
	log.Info().
		Str("game", e.id.String()).
		Str("player1", e.players.Player1().Name).
		Str("player2", e.players.Player2().Name).
		Msg("game started")

	history := make([]MoveRecord, 0, e.game.MaxNumMoves())
	player1 := true
	var last board.Move

	turn := 1
	for ; turn <= e.maxTurns; turn++ {
		name := e.players.BySide(player1).Name

		move, metrics := e.agentFor(player1).FindBestMove(e.game, last)
		if move == nil { // Terminal position
			break
		}
		if err := e.game.MakeMove(move); err != nil {
			panic(fmt.Sprintf("agent for %s chose illegal move: %v", name, err))
		}
		history = append(history, MoveRecord{
			Turn:          turn,
			Player:        name,
			Move:          move,
			SearchMetrics: metrics,
		})

		log.Debug().
			Str("game", e.id.String()).
			Int("turn", turn).
			Str("player", name).
			Str("move", fmt.Sprintf("%v", move)).
			Int64("nodes", metrics.Nodes).
			Msg("move played")

		if !e.game.MoveAgain(move) {
			player1 = !player1
		}
		last = move
	}

	outcome := Outcome{
		ID:       e.id,
		Strength: e.game.StrengthOfWin(),
		Turns:    len(history),
		History:  history,
	}
	switch {
	case outcome.Strength > 0:
		outcome.Winner = e.players.Player1().Name
	case outcome.Strength < 0:
		outcome.Winner = e.players.Player2().Name
	}

	log.Info().
		Str("game", e.id.String()).
		Str("winner", outcome.Winner).
		Int("strength", outcome.Strength).
		Int("turns", outcome.Turns).
		Msg("game over")
	return outcome
}
