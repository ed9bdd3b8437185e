// Command play runs a self-play game in the terminal, rendering the
// board after every move.
package main

import (
	"flag"
	"fmt"
	"os"

	"boardgame/board"
	"boardgame/checkers"
	"boardgame/chess"
	"boardgame/mancala"
	"boardgame/meta"
	"boardgame/player"
	"boardgame/searcher"

	"github.com/muesli/termenv"
)

// gridView is the read-only slice of a variant board the renderer
// needs: occupancy, owning side and coordinates, nothing more.
type gridView interface {
	NumRows() int
	NumCols() int
	Position(row, col int) *board.Position
}

func main() {
	game := flag.String("game", "mancala", "game variant: mancala, checkers or chess")
	depth := flag.Int("depth", meta.SEARCH_DEPTH, "search depth in plies")
	flag.Parse()

	players := player.NewList("Player1", "Player2")

	var searchable board.Searchable
	var view gridView
	var weights board.Weights
	switch *game {
	case "mancala":
		b := mancala.NewDefaultBoard()
		searchable, view, weights = mancala.NewSearchable(b, players), b, mancala.DefaultWeights()
	case "checkers":
		b := checkers.NewBoard()
		searchable, view, weights = checkers.NewSearchable(b, players), b, checkers.DefaultWeights()
	case "chess":
		b := chess.NewBoard()
		searchable, view, weights = chess.NewSearchable(b, players), b, chess.DefaultWeights()
	default:
		fmt.Fprintf(os.Stderr, "unknown game %q\n", *game)
		os.Exit(1)
	}

	output := termenv.NewOutput(os.Stdout)
	agents := map[bool]*searcher.AlphaBeta{
		true:  searcher.NewAlphaBeta(weights, searcher.WithDepth(*depth), searcher.WithSeed(1)),
		false: searcher.NewAlphaBeta(weights, searcher.WithDepth(*depth), searcher.WithSeed(2)),
	}

	render(output, view)
	player1 := true
	var last board.Move
	for turn := 1; turn <= meta.MAX_TURNS; turn++ {
		move, _ := agents[player1].FindBestMove(searchable, last)
		if move == nil {
			break
		}
		if err := searchable.MakeMove(move); err != nil {
			fmt.Fprintf(os.Stderr, "illegal move: %v\n", err)
			os.Exit(1)
		}

		name := players.BySide(player1).Name
		fmt.Printf("%d. %s: %v\n", turn, styledName(output, name, player1), move)
		render(output, view)

		if !searchable.MoveAgain(move) {
			player1 = !player1
		}
		last = move
	}

	strength := searchable.StrengthOfWin()
	switch {
	case strength > 0:
		fmt.Printf("%s wins (strength %d)\n", players.Player1().Name, strength)
	case strength < 0:
		fmt.Printf("%s wins (strength %d)\n", players.Player2().Name, -strength)
	default:
		fmt.Println("no winner")
	}
}

func render(output *termenv.Output, view gridView) {
	for row := 1; row <= view.NumRows(); row++ {
		for col := 1; col <= view.NumCols(); col++ {
			pos := view.Position(row, col)
			if !pos.IsOccupied() {
				fmt.Print("   .")
				continue
			}
			cell := fmt.Sprintf("%4s", pos.Piece().Description())
			fmt.Print(styledCell(output, cell, pos.Piece().OwnedByPlayer1()))
		}
		fmt.Println()
	}
	fmt.Println()
}

func styledCell(output *termenv.Output, s string, player1 bool) string {
	color := "2" // green
	if !player1 {
		color = "4" // blue
	}
	return output.String(s).Foreground(output.Color(color)).String()
}

func styledName(output *termenv.Output, name string, player1 bool) string {
	return styledCell(output, name, player1)
}
