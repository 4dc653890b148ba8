package main

import (
	"fmt"

	"github.com/sanity-io/litter"

	"github.com/lox/showdown/internal/holdem"
	"github.com/lox/showdown/internal/randutil"
)

// DealCmd plays hands without betting: blinds, deal, showdown.
type DealCmd struct {
	Hands int    `short:"n" default:"1" help:"Number of hands to deal"`
	Seed  *int64 `help:"Random seed for reproducible deals; overrides the config file"`
	Dump  bool   `help:"Dump the raw hand outcome after each hand"`
}

func (cmd *DealCmd) Run(g *Globals) error {
	if cmd.Hands < 1 {
		return fmt.Errorf("hands must be positive")
	}

	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	if cmd.Seed != nil {
		cfg.Seed = cmd.Seed
	}
	logger.Debug("Table", "small_blind", cfg.Table.SmallBlind, "big_blind", cfg.Table.BigBlind)

	seats := make([]holdem.Seat, len(cfg.Players))
	for i, p := range cfg.Players {
		seats[i] = holdem.Seat{Name: p.Name, Chips: p.Chips}
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = randutil.NewEntropy().Int64()
	}
	logger.Info("Dealing", "hands", cmd.Hands, "seed", seed)

	game, err := holdem.NewGame(seats,
		holdem.Blinds{Small: cfg.Table.SmallBlind, Big: cfg.Table.BigBlind},
		randutil.New(seed), logger)
	if err != nil {
		return err
	}

	w := g.out()
	printer := g.printer()
	for i := range cmd.Hands {
		out, err := game.PlayHand()
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		printer.Outcome(out)
		if cmd.Dump {
			fmt.Fprintln(w, litter.Sdump(out))
		}
	}
	return nil
}
