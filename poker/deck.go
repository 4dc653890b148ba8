package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lox/showdown/internal/randutil"
)

// ErrDeckExhausted is returned when drawing from a deck without enough cards.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a shuffled standard 52-card deck. Cards are drawn from the top and
// never returned. A Deck is not safe for concurrent use.
type Deck struct {
	cards [52]Card // Fixed size array
	next  int
}

// NewDeck creates a new shuffled deck using rng. A nil rng shuffles with an
// entropy-backed source, which is what production callers want; tests pass a
// seeded source from randutil.New for reproducible deals.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = randutil.NewEntropy()
	}

	d := &Deck{}
	copy(d.cards[:], FullDeck())

	// Fisher-Yates
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// DrawN draws n cards. Either all n are drawn or none are.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrDeckExhausted, n, d.Remaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
