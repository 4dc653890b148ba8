package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/coder/quartz"

	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/poker"
)

// OddsCmd estimates each hand's share of the pot. Iterations, workers and
// seed fall back to the config file's equity block and seed.
type OddsCmd struct {
	Hands         []string `arg:"" help:"Hole cards per player, e.g. 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show detailed hand type probabilities"`
	Iterations    *int     `short:"i" help:"Number of Monte Carlo iterations"`
	Workers       *int     `short:"w" help:"Number of sampling goroutines"`
	Seed          *int64   `help:"Random seed for reproducible results"`
}

func (cmd *OddsCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}

	hands, err := parseHands(cmd.Hands)
	if err != nil {
		return err
	}
	var board []poker.Card
	if cmd.Board != "" {
		if board, err = poker.ParseCards(cmd.Board); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}
	if err := validateNoDuplicates(hands, board); err != nil {
		return err
	}

	for i, h := range hands {
		logger.Debug("Hand", "n", i+1, "key", poker.HoleKey(h[0], h[1]), "tier", poker.ClassifyHole(h[0], h[1]))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := equity.New(quartz.NewReal(), logger).Calculate(ctx, cmd.request(cfg, hands, board))
	if err != nil {
		return err
	}

	g.printer().Equity(report, board, cmd.Possibilities)
	return nil
}

// request builds the equity request, preferring flags over config values.
func (cmd *OddsCmd) request(cfg *config.Config, hands [][2]poker.Card, board []poker.Card) equity.Request {
	req := equity.Request{
		Hands:      hands,
		Board:      board,
		Iterations: cfg.Equity.Iterations,
		Workers:    cfg.Equity.Workers,
		Seed:       cfg.Seed,
	}
	if cmd.Iterations != nil {
		req.Iterations = *cmd.Iterations
	}
	if cmd.Workers != nil {
		req.Workers = *cmd.Workers
	}
	if cmd.Seed != nil {
		req.Seed = cmd.Seed
	}
	return req
}
