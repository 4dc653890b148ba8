package poker

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrCardCount is returned when a hand has the wrong number of cards.
var ErrCardCount = errors.New("wrong number of cards")

// Evaluate classifies exactly five cards.
func Evaluate(hand [5]Card) Result {
	var ranks [5]Rank
	for i, c := range hand {
		ranks[i] = c.rank
	}
	slices.SortFunc(ranks[:], func(a, b Rank) int { return cmp.Compare(b, a) })

	flush := isFlush(hand)
	straight, high := straightHigh(ranks)

	if flush && straight {
		// Royal only once straight and flush are both established.
		if ranks[0] == Ace && ranks[4] == Ten {
			return newResult(RoyalFlush, Ace)
		}
		return newResult(StraightFlush, high)
	}

	groups := rankGroups(ranks)

	switch {
	case groups[0].count == 4:
		return newResult(FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return newResult(FullHouse, groups[0].rank, groups[1].rank)
	case flush:
		return newResult(Flush, ranks[:]...)
	case straight:
		return newResult(Straight, high)
	case groups[0].count == 3:
		return newResult(ThreeOfAKind, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return newResult(TwoPair, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return newResult(OnePair, groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank)
	default:
		return newResult(HighCard, ranks[:]...)
	}
}

func isFlush(hand [5]Card) bool {
	for _, c := range hand[1:] {
		if c.suit != hand[0].suit {
			return false
		}
	}
	return true
}

// straightHigh reports whether ranks (sorted descending) form a straight and
// returns its high card. The wheel A-5-4-3-2 plays five high.
func straightHigh(ranks [5]Rank) (bool, Rank) {
	consecutive := true
	for i := 0; i < 4; i++ {
		if ranks[i] != ranks[i+1]+1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, ranks[0]
	}
	if ranks == [5]Rank{Ace, Five, Four, Three, Two} {
		return true, Five
	}
	return false, 0
}

type rankGroup struct {
	rank  Rank
	count uint8
}

// rankGroups returns (rank, count) pairs ordered by count then rank, both
// descending. Unused trailing entries are zero.
func rankGroups(ranks [5]Rank) [5]rankGroup {
	var counts [Ace + 1]uint8
	for _, r := range ranks {
		counts[r]++
	}

	var groups [5]rankGroup
	i := 0
	for n := uint8(4); n >= 1; n-- {
		for r := Ace; r >= Two; r-- {
			if counts[r] == n {
				groups[i] = rankGroup{rank: r, count: n}
				i++
			}
		}
	}
	return groups
}

// Compare orders two results: 1 if a is stronger, -1 if b is stronger and 0
// for an exact tie. Category decides first; within a category the tie-break
// ranks are compared element by element.
func Compare(a, b Result) int {
	if c := cmp.Compare(a.category, b.category); c != 0 {
		return c
	}
	n := min(a.n, b.n)
	for i := range n {
		if c := cmp.Compare(a.tieBreak[i], b.tieBreak[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.n, b.n)
}

// subsets[n] lists every five-card index combination of n cards.
var subsets = [8][][5]int{
	5: combinations(5),
	6: combinations(6),
	7: combinations(7),
}

func combinations(n int) [][5]int {
	var out [][5]int
	var pick [5]int
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			out = append(out, pick)
			return
		}
		for i := start; i <= n-(5-k); i++ {
			pick[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
	return out
}

// BestHand returns the strongest five-card hand among the 21 subsets of seven cards.
func BestHand(cards [7]Card) Result {
	best, _ := bestOf(cards[:])
	return best
}

// BestFive is like BestHand but also returns the five cards that make the hand.
func BestFive(cards [7]Card) (Result, [5]Card) {
	return bestOf(cards[:])
}

// Best evaluates five, six or seven cards, as on the flop, turn and river.
func Best(cards []Card) (Result, [5]Card, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Result{}, [5]Card{}, fmt.Errorf("%w: need 5 to 7, got %d", ErrCardCount, len(cards))
	}
	best, five := bestOf(cards)
	return best, five, nil
}

func bestOf(cards []Card) (Result, [5]Card) {
	var best Result
	var bestCards [5]Card
	for i, idx := range subsets[len(cards)] {
		var five [5]Card
		for j, k := range idx {
			five[j] = cards[k]
		}
		res := Evaluate(five)
		if i == 0 || Compare(res, best) > 0 {
			best, bestCards = res, five
		}
	}
	return best, bestCards
}

// Winners returns the indexes of every result tied for the strongest hand.
func Winners(results []Result) []int {
	var winners []int
	for i, r := range results {
		if len(winners) == 0 {
			winners = append(winners, i)
			continue
		}
		switch Compare(r, results[winners[0]]) {
		case 1:
			winners = append(winners[:0], i)
		case 0:
			winners = append(winners, i)
		}
	}
	return winners
}

// SplitPot divides pot evenly between winners and returns the per-winner
// share and the odd chips left over.
func SplitPot(pot, winners int) (share, remainder int) {
	if winners <= 0 {
		return 0, pot
	}
	return pot / winners, pot % winners
}
