package main

import (
	"fmt"

	"github.com/lox/showdown/poker"
)

// EvalCmd picks the best five of five to seven cards.
type EvalCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. 'AhKh'"`
	Board string `arg:"" optional:"" help:"Board cards, e.g. 'Qh Jh Th 2c 3d'"`
}

func (cmd *EvalCmd) Run(g *Globals) error {
	_, logger, err := g.load()
	if err != nil {
		return err
	}

	hole, err := poker.ParseCards(cmd.Hole)
	if err != nil {
		return fmt.Errorf("hole: %w", err)
	}
	var board []poker.Card
	if cmd.Board != "" {
		if board, err = poker.ParseCards(cmd.Board); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	cards := append(append([]poker.Card(nil), hole...), board...)
	res, best, err := poker.Best(cards)
	if err != nil {
		return err
	}
	logger.Debug("Evaluated hand", "cards", len(cards), "category", res.Category())

	g.printer().Evaluation(hole, board, res, best)
	return nil
}
