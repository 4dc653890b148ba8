// Package equity estimates how often each of several hold'em hands wins,
// either by enumerating every board run-out or by Monte Carlo sampling.
package equity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	// maxExhaustiveMissing is the largest number of missing board cards that
	// is enumerated instead of sampled. Two missing cards is at most C(48,2)
	// run-outs heads-up.
	maxExhaustiveMissing = 2

	cancelCheckInterval = 1024
)

var ErrInvalidRequest = errors.New("invalid equity request")

// Request describes an equity calculation.
type Request struct {
	Hands      [][2]poker.Card
	Board      []poker.Card
	Iterations int
	Workers    int
	// Seed makes sampling reproducible. Nil seeds from entropy.
	Seed *int64
}

// PlayerStats is the tally for one hand.
type PlayerStats struct {
	Hole [2]poker.Card
	Wins int
	Ties int
	// Share is the number of pots won, counting a k-way tie as 1/k.
	Share      float64
	Categories [poker.RoyalFlush + 1]int
}

// Report is the result of a calculation.
type Report struct {
	Players    []PlayerStats
	Trials     int
	Exhaustive bool
	Elapsed    time.Duration
}

// WinRate returns the fraction of trials player i won outright.
func (r *Report) WinRate(i int) float64 {
	return r.fraction(r.Players[i].Wins)
}

// TieRate returns the fraction of trials player i shared the pot.
func (r *Report) TieRate(i int) float64 {
	return r.fraction(r.Players[i].Ties)
}

// Equity returns player i's expected share of the pot.
func (r *Report) Equity(i int) float64 {
	if r.Trials == 0 {
		return 0
	}
	return r.Players[i].Share / float64(r.Trials)
}

// CategoryRate returns how often player i finished with category c.
func (r *Report) CategoryRate(i int, c poker.Category) float64 {
	return r.fraction(r.Players[i].Categories[c])
}

func (r *Report) fraction(n int) float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(n) / float64(r.Trials)
}

// Calculator runs equity calculations.
type Calculator struct {
	clock  quartz.Clock
	logger *log.Logger
}

// New creates a Calculator. A nil clock uses the real clock and a nil logger
// discards output.
func New(clock quartz.Clock, logger *log.Logger) *Calculator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Calculator{clock: clock, logger: logger}
}

// Calculate runs the request. Run-outs with at most two missing board cards
// are enumerated exactly; anything else is sampled Iterations times across
// Workers goroutines.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*Report, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	start := c.clock.Now()
	used := poker.NewCardSet(req.Board...)
	for _, h := range req.Hands {
		used = used.Add(h[0]).Add(h[1])
	}
	deck := poker.Remaining(used)
	missing := 5 - len(req.Board)

	var (
		t   *tally
		err error
	)
	report := &Report{}
	if missing <= maxExhaustiveMissing {
		report.Exhaustive = true
		c.logger.Debug("Enumerating run-outs", "missing", missing, "remaining", len(deck))
		t, err = enumerate(ctx, req, deck, missing)
	} else {
		c.logger.Debug("Sampling run-outs", "iterations", req.Iterations, "workers", req.Workers)
		t, err = c.sample(ctx, req, deck, missing)
	}
	if err != nil {
		return nil, err
	}

	report.Players = t.players
	report.Trials = t.trials
	report.Elapsed = c.clock.Since(start)
	for i := range report.Players {
		report.Players[i].Hole = req.Hands[i]
	}
	c.logger.Info("Equity calculated", "players", len(req.Hands), "trials", report.Trials,
		"exhaustive", report.Exhaustive, "elapsed", report.Elapsed)
	return report, nil
}

func validate(req Request) error {
	if len(req.Hands) < MinPlayers || len(req.Hands) > MaxPlayers {
		return fmt.Errorf("%w: need %d to %d hands, got %d", ErrInvalidRequest, MinPlayers, MaxPlayers, len(req.Hands))
	}
	if len(req.Board) > 5 {
		return fmt.Errorf("%w: board has %d cards", ErrInvalidRequest, len(req.Board))
	}
	if req.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidRequest)
	}
	if req.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive", ErrInvalidRequest)
	}

	all := append([]poker.Card(nil), req.Board...)
	for _, h := range req.Hands {
		all = append(all, h[0], h[1])
	}
	for _, c := range all {
		if !c.Valid() {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, poker.ErrInvalidCard)
		}
	}
	if err := poker.CheckDistinct(all...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// tally accumulates trial outcomes for every player.
type tally struct {
	players []PlayerStats
	trials  int
	results []poker.Result
	seven   [7]poker.Card
}

func newTally(players int) *tally {
	return &tally{
		players: make([]PlayerStats, players),
		results: make([]poker.Result, players),
	}
}

// record evaluates one complete board.
func (t *tally) record(hands [][2]poker.Card, board *[5]poker.Card) {
	copy(t.seven[2:], board[:])
	for i, h := range hands {
		t.seven[0], t.seven[1] = h[0], h[1]
		t.results[i] = poker.BestHand(t.seven)
		t.players[i].Categories[t.results[i].Category()]++
	}

	winners := poker.Winners(t.results)
	share := 1 / float64(len(winners))
	for _, w := range winners {
		if len(winners) == 1 {
			t.players[w].Wins++
		} else {
			t.players[w].Ties++
		}
		t.players[w].Share += share
	}
	t.trials++
}

func (t *tally) merge(o *tally) {
	for i := range t.players {
		p, q := &t.players[i], &o.players[i]
		p.Wins += q.Wins
		p.Ties += q.Ties
		p.Share += q.Share
		for c := range p.Categories {
			p.Categories[c] += q.Categories[c]
		}
	}
	t.trials += o.trials
}

func enumerate(ctx context.Context, req Request, deck []poker.Card, missing int) (*tally, error) {
	t := newTally(len(req.Hands))
	var board [5]poker.Card
	known := copy(board[:], req.Board)

	switch missing {
	case 0:
		t.record(req.Hands, &board)
	case 1:
		for _, c := range deck {
			board[known] = c
			t.record(req.Hands, &board)
		}
	case 2:
		for i := 0; i < len(deck); i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			board[known] = deck[i]
			for j := i + 1; j < len(deck); j++ {
				board[known+1] = deck[j]
				t.record(req.Hands, &board)
			}
		}
	default:
		return nil, fmt.Errorf("cannot enumerate %d missing cards", missing)
	}
	return t, nil
}

func (c *Calculator) sample(ctx context.Context, req Request, deck []poker.Card, missing int) (*tally, error) {
	seed := randutil.NewEntropy().Int64()
	if req.Seed != nil {
		seed = *req.Seed
	}

	workers := min(req.Workers, req.Iterations)
	perWorker := req.Iterations / workers
	remainder := req.Iterations % workers

	// Each worker owns its slot, so no locking is needed.
	tallies := make([]*tally, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := perWorker
		if w < remainder {
			n++
		}
		g.Go(func() error {
			rng := randutil.New(randutil.Derive(seed, w))
			local := append([]poker.Card(nil), deck...)
			t := newTally(len(req.Hands))
			var board [5]poker.Card
			known := copy(board[:], req.Board)

			for i := range n {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				// Partial Fisher-Yates: the last missing cards become the run-out.
				for k := range missing {
					last := len(local) - 1 - k
					j := rng.IntN(last + 1)
					local[j], local[last] = local[last], local[j]
					board[known+k] = local[last]
				}
				t.record(req.Hands, &board)
			}
			tallies[w] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newTally(len(req.Hands))
	for _, t := range tallies {
		total.merge(t)
	}
	return total, nil
}
