package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the hand categories from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Result is a classified five-card hand: its category plus the ranks used to
// break ties within that category, most significant first.
//
// Result is a comparable value; two results are an exact tie iff they are ==.
type Result struct {
	category Category
	n        uint8
	tieBreak [5]Rank
}

func newResult(cat Category, ranks ...Rank) Result {
	r := Result{category: cat, n: uint8(len(ranks))}
	copy(r.tieBreak[:], ranks)
	return r
}

// Category returns the hand category.
func (r Result) Category() Category { return r.category }

// TieBreak returns a copy of the tie-break ranks.
func (r Result) TieBreak() []Rank {
	out := make([]Rank, r.n)
	copy(out, r.tieBreak[:r.n])
	return out
}

// Compare orders r against other: 1 if r is stronger, -1 if weaker, 0 for an exact tie.
func (r Result) Compare(other Result) int {
	return Compare(r, other)
}

// Beats reports whether r is strictly stronger than other.
func (r Result) Beats(other Result) bool {
	return Compare(r, other) > 0
}

// String describes the hand, e.g. "Full House, Kings full of Nines".
func (r Result) String() string {
	tb := r.tieBreak
	switch r.category {
	case RoyalFlush:
		return r.category.String()
	case StraightFlush, Straight:
		return fmt.Sprintf("%s, %s high", r.category, tb[0].Name())
	case FourOfAKind:
		return fmt.Sprintf("%s, %s", r.category, tb[0].Plural())
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", r.category, tb[0].Plural(), tb[1].Plural())
	case ThreeOfAKind:
		return fmt.Sprintf("%s, %s", r.category, tb[0].Plural())
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", r.category, tb[0].Plural(), tb[1].Plural())
	case OnePair:
		return fmt.Sprintf("%s, %s", r.category, tb[0].Plural())
	case Flush, HighCard:
		return fmt.Sprintf("%s, %s high", r.category, tb[0].Name())
	default:
		return r.category.String()
	}
}

// Kickers returns the tie-break ranks as a compact string, e.g. "K 9".
func (r Result) Kickers() string {
	parts := make([]string, r.n)
	for i := range parts {
		parts[i] = r.tieBreak[i].String()
	}
	return strings.Join(parts, " ")
}
