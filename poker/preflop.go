package poker

// Tier is a coarse preflop strength class for a pair of hole cards.
type Tier string

const (
	TierPremium Tier = "Premium"
	TierStrong  Tier = "Strong"
	TierMedium  Tier = "Medium"
	TierWeak    Tier = "Weak"
	TierTrash   Tier = "Trash"
	TierUnknown Tier = "Unknown"
)

// ClassifyHole places two hole cards in a preflop tier:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited connectors and one-gappers), Trash (everything else).
func ClassifyHole(a, b Card) Tier {
	if !a.Valid() || !b.Valid() || a == b {
		return TierUnknown
	}

	lo, hi := a.rank, b.rank
	if lo > hi {
		lo, hi = hi, lo
	}
	pair := lo == hi
	suited := a.suit == b.suit

	switch {
	case pair && lo >= Jack, lo == King && hi == Ace:
		return TierPremium
	case pair && lo == Ten, hi == Ace && (lo == Queen || lo == Jack):
		return TierStrong
	case pair && lo >= Seven, suited && lo >= Ten:
		return TierMedium
	case pair, suited && hi-lo <= 2:
		return TierWeak
	default:
		return TierTrash
	}
}

// HoleKey returns the canonical starting-hand shorthand, e.g. "AKs", "72o", "TT".
func HoleKey(a, b Card) string {
	lo, hi := a.rank, b.rank
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return hi.String() + lo.String()
	}
	if a.suit == b.suit {
		return hi.String() + lo.String() + "s"
	}
	return hi.String() + lo.String() + "o"
}
