package poker

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidCard is returned when a card string cannot be parsed.
	ErrInvalidCard = errors.New("invalid card")

	// ErrDuplicateCard is returned when the same card appears more than once.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Rank is the face value of a card, from Two (2) through Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the single character symbol for the rank ("T" for ten).
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Name returns the rank spelled out, e.g. "King".
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// Plural returns the plural rank name used in hand descriptions.
func (r Rank) Plural() string {
	if r == Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

// Valid reports whether r is within Two..Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck construction order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// String returns the suit symbol.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the lowercase ASCII letter for the suit.
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank and suit. It panics if rank is outside
// Two..Ace or suit is not one of the four suits; use ParseCard for input that
// has not been checked.
func NewCard(rank Rank, suit Suit) Card {
	c := Card{rank: rank, suit: suit}
	if !c.Valid() {
		panic(fmt.Sprintf("poker: invalid card rank %d suit %d", rank, suit))
	}
	return c
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit <= Spades
}

// String returns the display form of the card, e.g. "A♠".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// ASCII returns the two character form of the card, e.g. "As".
func (c Card) ASCII() string {
	return c.rank.String() + c.suit.Letter()
}

// ParseCard parses a single card such as "As", "Td", "10h" or "K♣".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, ok := parseRank(string(runes[:len(runes)-1]))
	if !ok {
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}
	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a list of cards. Cards may be separated by spaces or
// commas, or concatenated ("AsKsQs").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	cards := []Card{}
	for _, field := range fields {
		tokens, err := splitCardTokens(field)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			card, err := ParseCard(tok)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// CheckDistinct returns ErrDuplicateCard if any card appears twice.
func CheckDistinct(cards ...Card) error {
	var seen CardSet
	for _, c := range cards {
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen = seen.Add(c)
	}
	return nil
}

// splitCardTokens splits a concatenated run like "AsKs10h" into cards.
func splitCardTokens(field string) ([]string, error) {
	runes := []rune(field)
	var tokens []string
	for i := 0; i < len(runes); {
		n := 2
		if runes[i] == '1' {
			n = 3
		}
		if i+n > len(runes) {
			return nil, fmt.Errorf("%w: trailing %q", ErrInvalidCard, string(runes[i:]))
		}
		tokens = append(tokens, string(runes[i:i+n]))
		i += n
	}
	return tokens, nil
}

func parseRank(s string) (Rank, bool) {
	if s == "10" {
		return Ten, true
	}
	if len(s) != 1 {
		return 0, false
	}
	idx := strings.IndexByte(rankChars, byte(unicode.ToUpper(rune(s[0]))))
	if idx < 0 {
		return 0, false
	}
	return Two + Rank(idx), true
}

func parseSuit(r rune) (Suit, bool) {
	switch unicode.ToLower(r) {
	case 'c', '♣':
		return Clubs, true
	case 'd', '♦':
		return Diamonds, true
	case 'h', '♥':
		return Hearts, true
	case 's', '♠':
		return Spades, true
	default:
		return 0, false
	}
}

// CardSet is a bitset of cards, one bit per card.
type CardSet uint64

func cardIndex(c Card) uint {
	return uint(c.rank-Two)*4 + uint(c.suit)
}

// NewCardSet builds a set from cards.
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs = cs.Add(c)
	}
	return cs
}

// Add returns the set with c included.
func (cs CardSet) Add(c Card) CardSet {
	return cs | 1<<cardIndex(c)
}

// Contains reports whether c is in the set.
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<cardIndex(c)) != 0
}

// FullDeck returns the 52 standard cards in suit then rank order.
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Remaining returns the standard cards not present in used, in FullDeck order.
func Remaining(used CardSet) []Card {
	cards := make([]Card, 0, 52)
	for _, c := range FullDeck() {
		if !used.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}
