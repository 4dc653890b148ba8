package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "A♠", aceSpades.String())
	assert.Equal(t, "As", aceSpades.ASCII())

	tenHearts := NewCard(Ten, Hearts)
	assert.Equal(t, "T♥", tenHearts.String())
	assert.True(t, tenHearts.Suit().IsRed())
	assert.False(t, aceSpades.Suit().IsRed())

	assert.False(t, Card{}.Valid())
	assert.True(t, NewCard(Two, Clubs).Valid())
}

func TestNewCardRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewCard(Rank(20), Spades) })
	assert.Panics(t, func() { NewCard(Rank(1), Hearts) })
	assert.Panics(t, func() { NewCard(Ace, Suit(7)) })
	assert.NotPanics(t, func() { NewCard(Ace, Spades) })
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: NewCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", want: NewCard(Two, Hearts)},
		{name: "ten with T", input: "Tc", want: NewCard(Ten, Clubs)},
		{name: "ten with 10", input: "10d", want: NewCard(Ten, Diamonds)},
		{name: "lower case", input: "kd", want: NewCard(King, Diamonds)},
		{name: "upper case suit", input: "QS", want: NewCard(Queen, Spades)},
		{name: "unicode suit", input: "J♥", want: NewCard(Jack, Hearts)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "one is not a rank", input: "1s", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCard))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "concatenated", input: "AsKsQsJsTs", want: "AsKsQsJsTs"},
		{name: "spaces", input: "Ah Kd  Qc", want: "AhKdQc"},
		{name: "commas", input: "Ah,Kd, Qc", want: "AhKdQc"},
		{name: "tens mixed in", input: "10h9h", want: "Th9h"},
		{name: "unicode", input: "A♠ K♠", want: "AsKs"},
		{name: "empty", input: "", want: ""},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "bad card", input: "As Zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			var s string
			for _, c := range got {
				s += c.ASCII()
			}
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()

	assert.Len(t, MustParseCards("AsKs"), 2)
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCheckDistinct(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckDistinct(MustParseCards("As Ks Qs")...))

	err := CheckDistinct(MustParseCards("As Ks As")...)
	require.ErrorIs(t, err, ErrDuplicateCard)
	assert.Contains(t, err.Error(), "A♠")
}

func TestFullDeckAndRemaining(t *testing.T) {
	t.Parallel()

	deck := FullDeck()
	require.Len(t, deck, 52)
	assert.NoError(t, CheckDistinct(deck...))

	used := NewCardSet(MustParseCards("As Kd 2c")...)
	rest := Remaining(used)
	assert.Len(t, rest, 49)
	for _, c := range rest {
		assert.False(t, used.Contains(c), c.String())
	}
}
