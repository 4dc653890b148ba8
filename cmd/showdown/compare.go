package main

import (
	"fmt"

	"github.com/lox/showdown/internal/display"
	"github.com/lox/showdown/poker"
)

// CompareCmd ranks hole-card pairs against a complete board.
type CompareCmd struct {
	Hands []string `arg:"" help:"Hole cards per player, e.g. 'AcKd' 'QhQs'"`
	Board string   `short:"b" required:"" help:"Five board cards"`
}

func (cmd *CompareCmd) Run(g *Globals) error {
	_, logger, err := g.load()
	if err != nil {
		return err
	}

	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if len(board) != 5 {
		return fmt.Errorf("board: %w: need 5 cards, got %d", poker.ErrCardCount, len(board))
	}
	if err := validateNoDuplicates(hands, board); err != nil {
		return err
	}

	contenders := make([]display.Contender, len(hands))
	results := make([]poker.Result, len(hands))
	for i, h := range hands {
		seven := [7]poker.Card{h[0], h[1], board[0], board[1], board[2], board[3], board[4]}
		res, best := poker.BestFive(seven)
		results[i] = res
		contenders[i] = display.Contender{
			Name:   fmt.Sprintf("hand %d", i+1),
			Hole:   h[:],
			Result: res,
			Best:   best,
		}
	}
	winners := poker.Winners(results)
	logger.Debug("Compared hands", "hands", len(hands), "winners", winners)

	g.printer().Showdown(board, contenders, winners)
	return nil
}
