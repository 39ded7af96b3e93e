package engine

// Kind classifies a legal card combination.
type Kind uint8

const (
	KindSingle     Kind = iota // 1 card
	KindPair                   // 2 cards, one rank
	KindTriple                 // 3 cards, one rank
	KindRevolution             // 4 cards, one rank
	KindStraight               // 3+ consecutive cards of one suit
)

var kindNames = [...]string{"single", "pair", "triple", "revolution", "straight"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Combination is a classified set of cards as played to the field.
type Combination struct {
	Kind  Kind
	Cards []Card
}

// Classify determines whether cards form a legal combination.
//
// One card is always a valid single. Two to four cards are valid when
// every non-joker shares one rank (jokers stand in for that rank);
// a set with no non-joker at all is invalid. Three or more cards of a
// single suit in strictly consecutive rank order form a straight;
// jokers never participate in straights.
func Classify(cards []Card) (Combination, bool) {
	switch n := len(cards); {
	case n == 0:
		return Combination{}, false
	case n == 1:
		return Combination{Kind: KindSingle, Cards: cards}, true
	case n >= 2 && n <= 4:
		if sameRankSet(cards) {
			return Combination{Kind: Kind(n - 1), Cards: cards}, true
		}
		if n >= 3 && isStraight(cards) {
			return Combination{Kind: KindStraight, Cards: cards}, true
		}
		return Combination{}, false
	default:
		if isStraight(cards) {
			return Combination{Kind: KindStraight, Cards: cards}, true
		}
		return Combination{}, false
	}
}

// sameRankSet reports whether all non-jokers share a single rank.
// At least one non-joker is required: jokers substitute into a rank,
// they never form a set by themselves.
func sameRankSet(cards []Card) bool {
	rank := uint8(0)
	for _, c := range cards {
		if c.IsJoker() {
			continue
		}
		if rank == 0 {
			rank = c.Rank()
		} else if c.Rank() != rank {
			return false
		}
	}
	return rank != 0
}

// isStraight reports whether cards form a single-suit run of strictly
// consecutive ranks. Jokers disqualify the set.
func isStraight(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	suit := cards[0].Suit()
	var ranks [16]bool
	lo, hi := uint8(15), uint8(0)
	for _, c := range cards {
		if c.IsJoker() || c.Suit() != suit {
			return false
		}
		r := c.Rank()
		if ranks[r] {
			return false
		}
		ranks[r] = true
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	return int(hi-lo)+1 == len(cards)
}

// CombinationStrength returns the strength of the set's representative
// card: jokers are transparent placeholders, so the strongest non-joker
// decides. A joker-only set compares at joker strength.
func CombinationStrength(cards []Card, revolution bool) int {
	best := 0
	for _, c := range cards {
		if c.IsJoker() {
			continue
		}
		if s := c.Strength(revolution); s > best {
			best = s
		}
	}
	if best == 0 {
		// Only jokers in the set.
		return jokerStrength(revolution)
	}
	return best
}

func jokerStrength(revolution bool) int {
	if revolution {
		return 1
	}
	return 16
}

// RepresentativeSuit returns the suit of the first non-joker card.
// ok is false for joker-only sets, which have no suit identity.
func RepresentativeSuit(cards []Card) (uint8, bool) {
	for _, c := range cards {
		if !c.IsJoker() {
			return c.Suit(), true
		}
	}
	return 0, false
}

// RepresentativeRank returns the rank the set plays as (the shared
// non-joker rank), or RankJoker for joker-only sets.
func RepresentativeRank(cards []Card) uint8 {
	for _, c := range cards {
		if !c.IsJoker() {
			return c.Rank()
		}
	}
	return RankJoker
}

// ContainsRank reports whether any card in the set has the given rank.
func ContainsRank(cards []Card, rank uint8) bool {
	for _, c := range cards {
		if c.Rank() == rank {
			return true
		}
	}
	return false
}
