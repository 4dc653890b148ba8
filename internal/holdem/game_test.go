package holdem

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/poker"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func headsUp() []Seat {
	return []Seat{{Name: "Sen", Chips: 1000}, {Name: "AI_Bot", Chips: 1000}}
}

func totalChips(seats []Seat) int {
	total := 0
	for _, s := range seats {
		total += s.Chips
	}
	return total
}

func TestNewGameValidation(t *testing.T) {
	t.Parallel()

	_, err := NewGame(headsUp(), Blinds{Small: 0, Big: 20}, nil, nil)
	assert.Error(t, err)

	_, err = NewGame(headsUp(), Blinds{Small: 20, Big: 20}, nil, nil)
	assert.Error(t, err)

	_, err = NewGame(headsUp()[:1], Blinds{Small: 10, Big: 20}, nil, nil)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)

	many := make([]Seat, 24)
	for i := range many {
		many[i] = Seat{Name: string(rune('A' + i)), Chips: 100}
	}
	_, err = NewGame(many, Blinds{Small: 10, Big: 20}, nil, nil)
	assert.ErrorContains(t, err, "too many seats")
}

func TestPlayHandHeadsUp(t *testing.T) {
	t.Parallel()

	g, err := NewGame(headsUp(), Blinds{Small: 10, Big: 20}, randutil.New(42), quietLogger())
	require.NoError(t, err)

	out, err := g.PlayHand()
	require.NoError(t, err)

	assert.NotEmpty(t, out.HandID)
	assert.Equal(t, 30, out.Pot)
	require.Len(t, out.Players, 2)
	assert.Equal(t, "Sen", out.Players[0].Name)
	assert.Equal(t, 10, out.Players[0].Posted)
	assert.Equal(t, 20, out.Players[1].Posted)

	// Every dealt card is distinct.
	cards := out.Board[:]
	for _, p := range out.Players {
		cards = append(cards, p.Hole[:]...)
	}
	assert.NoError(t, poker.CheckDistinct(cards...))

	// Recorded hands agree with the evaluator.
	results := make([]poker.Result, len(out.Players))
	for i, p := range out.Players {
		seven := [7]poker.Card{p.Hole[0], p.Hole[1], out.Board[0], out.Board[1], out.Board[2], out.Board[3], out.Board[4]}
		assert.Equal(t, poker.BestHand(seven), p.Hand)
		assert.Equal(t, p.Hand, poker.Evaluate(p.Best))
		results[i] = p.Hand
	}
	assert.Equal(t, poker.Winners(results), out.Winners)

	won := 0
	for _, p := range out.Players {
		won += p.Won
		assert.Equal(t, p.ChipsBefore-p.Posted+p.Won, p.ChipsAfter)
	}
	assert.Equal(t, out.Pot, won)
	assert.Equal(t, 2000, totalChips(g.Seats()))
}

func TestPlayHandIsReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	play := func() *Outcome {
		g, err := NewGame(headsUp(), Blinds{Small: 10, Big: 20}, randutil.New(7), quietLogger())
		require.NoError(t, err)
		out, err := g.PlayHand()
		require.NoError(t, err)
		return out
	}

	a, b := play(), play()
	assert.Equal(t, a.Board, b.Board)
	assert.Equal(t, a.Winners, b.Winners)
	assert.NotEqual(t, a.HandID, b.HandID)
}

func TestBlindsRotate(t *testing.T) {
	t.Parallel()

	seats := []Seat{{Name: "a", Chips: 500}, {Name: "b", Chips: 500}, {Name: "c", Chips: 500}}
	g, err := NewGame(seats, Blinds{Small: 5, Big: 10}, randutil.New(1), quietLogger())
	require.NoError(t, err)

	var smallBlinds []string
	for range 4 {
		out, err := g.PlayHand()
		require.NoError(t, err)
		smallBlinds = append(smallBlinds, out.Players[0].Name)
		assert.Equal(t, 1500, totalChips(g.Seats()))
	}
	assert.Equal(t, []string{"a", "b", "c", "a"}, smallBlinds)
}

func TestShortStackPostsAllIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		seats  []Seat
		posted [2]int
		pot    int
		total  int
	}{
		{
			name:   "short big blind",
			seats:  []Seat{{Name: "sb", Chips: 100}, {Name: "bb", Chips: 5}},
			posted: [2]int{5, 5},
			pot:    10,
			total:  105,
		},
		{
			name:   "short small blind",
			seats:  []Seat{{Name: "sb", Chips: 5}, {Name: "bb", Chips: 100}},
			posted: [2]int{5, 5},
			pot:    10,
			total:  105,
		},
		{
			name:   "small blind covers only part of the big blind",
			seats:  []Seat{{Name: "sb", Chips: 15}, {Name: "bb", Chips: 100}},
			posted: [2]int{10, 20},
			pot:    30,
			total:  115,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGame(tt.seats, Blinds{Small: 10, Big: 20}, randutil.New(3), quietLogger())
			require.NoError(t, err)

			out, err := g.PlayHand()
			require.NoError(t, err)

			assert.Equal(t, tt.posted[0], out.Players[0].Posted)
			assert.Equal(t, tt.posted[1], out.Players[1].Posted)
			assert.Equal(t, tt.pot, out.Pot)
			assert.Equal(t, tt.total, totalChips(g.Seats()))
			for _, p := range out.Players {
				assert.Equal(t, p.ChipsBefore-p.Posted+p.Won, p.ChipsAfter)
			}
		})
	}
}

func TestBustedSeatsSitOut(t *testing.T) {
	t.Parallel()

	seats := []Seat{{Name: "a", Chips: 100}, {Name: "b", Chips: 0}, {Name: "c", Chips: 100}}
	g, err := NewGame(seats, Blinds{Small: 10, Big: 20}, randutil.New(9), quietLogger())
	require.NoError(t, err)

	out, err := g.PlayHand()
	require.NoError(t, err)
	require.Len(t, out.Players, 2)
	for _, p := range out.Players {
		assert.NotEqual(t, "b", p.Name)
	}

	g2, err := NewGame([]Seat{{Name: "a", Chips: 100}, {Name: "b", Chips: 0}}, Blinds{Small: 10, Big: 20}, nil, nil)
	require.NoError(t, err)
	_, err = g2.PlayHand()
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
}

func TestSplitPotGivesOddChipToFirstWinner(t *testing.T) {
	t.Parallel()

	g := &Game{
		seats:  []Seat{{Name: "a", Chips: 90}, {Name: "b", Chips: 80}},
		logger: quietLogger(),
	}
	out := &Outcome{
		Board: [5]poker.Card(poker.MustParseCards("As Ks Qd Jh Tc")),
		Pot:   31,
		Players: []PlayerResult{
			{Seat: 0, Name: "a", Hole: [2]poker.Card(poker.MustParseCards("2c 3c"))},
			{Seat: 1, Name: "b", Hole: [2]poker.Card(poker.MustParseCards("4d 5d"))},
		},
	}

	g.showdown(out, g.logger)

	assert.True(t, out.Split())
	assert.Equal(t, []int{0, 1}, out.Winners)
	assert.Equal(t, 16, out.Players[0].Won)
	assert.Equal(t, 15, out.Players[1].Won)
	assert.Equal(t, 106, out.Players[0].ChipsAfter)
	assert.Equal(t, 95, out.Players[1].ChipsAfter)
}
