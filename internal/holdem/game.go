// Package holdem runs a single Texas Hold'em hand from blinds to showdown.
// Betting rounds are not modelled: every funded seat sees the river.
package holdem

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/showdown/poker"
)

// ErrNotEnoughPlayers is returned when fewer than two seats have chips.
var ErrNotEnoughPlayers = errors.New("not enough players with chips")

// Seat is a named player and their stack.
type Seat struct {
	Name  string
	Chips int
}

// Blinds are the forced bets posted before the deal.
type Blinds struct {
	Small int
	Big   int
}

// PlayerResult is one seat's view of a finished hand.
type PlayerResult struct {
	Seat        int
	Name        string
	Hole        [2]poker.Card
	Hand        poker.Result
	Best        [5]poker.Card
	ChipsBefore int
	Posted      int
	Won         int
	ChipsAfter  int
}

// Outcome records a finished hand.
type Outcome struct {
	HandID  string
	Board   [5]poker.Card
	Pot     int
	Players []PlayerResult
	// Winners indexes into Players.
	Winners []int
}

// Split reports whether more than one player shared the pot.
func (o *Outcome) Split() bool {
	return len(o.Winners) > 1
}

// Game deals hands to a fixed set of seats, carrying chip counts from one hand
// to the next and moving the small blind one funded seat to the left each hand.
type Game struct {
	seats  []Seat
	blinds Blinds
	rng    *rand.Rand
	logger *log.Logger
	button int
}

// NewGame creates a game. A nil rng deals from entropy-backed decks.
func NewGame(seats []Seat, blinds Blinds, rng *rand.Rand, logger *log.Logger) (*Game, error) {
	if blinds.Small <= 0 || blinds.Big <= blinds.Small {
		return nil, fmt.Errorf("invalid blinds %d/%d", blinds.Small, blinds.Big)
	}
	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	// 5 board cards plus two per seat must fit in one deck.
	if 5+2*len(seats) > 52 {
		return nil, fmt.Errorf("too many seats: %d", len(seats))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		seats:  append([]Seat(nil), seats...),
		blinds: blinds,
		rng:    rng,
		logger: logger,
		button: -1,
	}, nil
}

// Seats returns the current chip counts.
func (g *Game) Seats() []Seat {
	return append([]Seat(nil), g.seats...)
}

// PlayHand posts blinds, deals hole cards, flop, turn and river, then settles
// the pot at showdown.
func (g *Game) PlayHand() (*Outcome, error) {
	active := g.activeSeats()
	if len(active) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	g.button = g.nextActive(g.button)
	out := &Outcome{HandID: uuid.NewString()}
	logger := g.logger.With("hand", out.HandID)
	logger.Info("Hand started", "players", len(active), "small_blind", g.blinds.Small, "big_blind", g.blinds.Big)

	// Seat order for the hand starts at the small blind.
	order := make([]int, 0, len(active))
	for i := range len(g.seats) {
		idx := (g.button + i) % len(g.seats)
		if g.seats[idx].Chips > 0 {
			order = append(order, idx)
		}
	}

	out.Players = make([]PlayerResult, len(order))
	for i, idx := range order {
		out.Players[i] = PlayerResult{Seat: idx, Name: g.seats[idx].Name, ChipsBefore: g.seats[idx].Chips}
	}

	out.Pot += g.post(&out.Players[0], g.blinds.Small, logger, "small")
	out.Pot += g.post(&out.Players[1], g.blinds.Big, logger, "big")
	// A blind all-in for less than the other leaves the difference uncalled.
	switch sb, bb := &out.Players[0], &out.Players[1]; {
	case bb.Posted < sb.Posted:
		out.Pot -= g.refund(sb, sb.Posted-bb.Posted, logger)
	case sb.Posted < bb.Posted && g.seats[sb.Seat].Chips == 0:
		out.Pot -= g.refund(bb, bb.Posted-sb.Posted, logger)
	}

	deck := poker.NewDeck(g.rng)
	for i := range out.Players {
		p := &out.Players[i]
		hole, err := deck.DrawN(2)
		if err != nil {
			return nil, fmt.Errorf("dealing to %s: %w", p.Name, err)
		}
		p.Hole = [2]poker.Card(hole)
		logger.Debug("Dealt hole cards", "player", p.Name, "cards", hole)
	}

	dealt := 0
	for _, street := range []struct {
		name  string
		count int
	}{{"flop", 3}, {"turn", 1}, {"river", 1}} {
		cards, err := deck.DrawN(street.count)
		if err != nil {
			return nil, fmt.Errorf("dealing %s: %w", street.name, err)
		}
		dealt += copy(out.Board[dealt:], cards)
		logger.Info("Dealt "+street.name, "cards", cards, "board", out.Board[:dealt])
	}

	g.showdown(out, logger)
	return out, nil
}

// post takes a blind, or the whole stack if it is shorter.
func (g *Game) post(p *PlayerResult, amount int, logger *log.Logger, which string) int {
	seat := &g.seats[p.Seat]
	if amount >= seat.Chips {
		amount = seat.Chips
		logger.Info("Posted blind all-in", "player", p.Name, "blind", which, "amount", amount)
	} else {
		logger.Debug("Posted blind", "player", p.Name, "blind", which, "amount", amount)
	}
	seat.Chips -= amount
	p.Posted = amount
	return amount
}

// refund returns uncalled chips to p and reports the amount.
func (g *Game) refund(p *PlayerResult, amount int, logger *log.Logger) int {
	p.Posted -= amount
	g.seats[p.Seat].Chips += amount
	logger.Debug("Returned uncalled chips", "player", p.Name, "amount", amount)
	return amount
}

func (g *Game) showdown(out *Outcome, logger *log.Logger) {
	results := make([]poker.Result, len(out.Players))
	for i := range out.Players {
		p := &out.Players[i]
		var seven [7]poker.Card
		copy(seven[:2], p.Hole[:])
		copy(seven[2:], out.Board[:])
		p.Hand, p.Best = poker.BestFive(seven)
		results[i] = p.Hand
		logger.Info("Showdown", "player", p.Name, "hole", p.Hole, "hand", p.Hand)
	}

	out.Winners = poker.Winners(results)
	share, remainder := poker.SplitPot(out.Pot, len(out.Winners))
	for n, i := range out.Winners {
		won := share
		// The odd chips go to the first winner after the small blind.
		if n == 0 {
			won += remainder
		}
		out.Players[i].Won = won
		g.seats[out.Players[i].Seat].Chips += won
	}

	for i := range out.Players {
		out.Players[i].ChipsAfter = g.seats[out.Players[i].Seat].Chips
	}

	if out.Split() {
		logger.Info("Pot split", "pot", out.Pot, "winners", len(out.Winners), "share", share, "remainder", remainder)
	} else {
		w := out.Players[out.Winners[0]]
		logger.Info("Pot won", "player", w.Name, "pot", out.Pot, "hand", w.Hand)
	}
}

func (g *Game) activeSeats() []int {
	var active []int
	for i, s := range g.seats {
		if s.Chips > 0 {
			active = append(active, i)
		}
	}
	return active
}

func (g *Game) nextActive(from int) int {
	for i := 1; i <= len(g.seats); i++ {
		idx := (from + i) % len(g.seats)
		if g.seats[idx].Chips > 0 {
			return idx
		}
	}
	return from
}
