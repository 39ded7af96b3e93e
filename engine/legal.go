package engine

import "fmt"

// validateCards checks a play for the acting seat: combination shape,
// ownership, and whether it beats the current field under suit lock
// and revolution. spadeCounter reports that the categorical 3♠-beats-
// joker override applied instead of the ordinary comparison.
func (g *GameState) validateCards(actor uint8, cards []Card) (combo Combination, spadeCounter bool, err error) {
	combo, ok := Classify(cards)
	if !ok {
		return Combination{}, false, fmt.Errorf("%w: cards do not form a valid combination", ErrIllegalAction)
	}
	if !g.ownsAll(actor, cards) {
		return Combination{}, false, fmt.Errorf("%w: seat %d does not hold all played cards", ErrIllegalAction, actor)
	}

	if !g.Field.Holding {
		// Empty field: any valid combination leads. The suit lock is
		// released on every clear, but is honored if ever present.
		if err := g.checkSuitLock(cards); err != nil {
			return Combination{}, false, err
		}
		return combo, false, nil
	}

	field := g.Field.Set()
	if g.Rules.EnableSpadeThreeCounter &&
		g.Field.Kind == KindSingle && field[0].IsJoker() &&
		len(cards) == 1 && cards[0] == NewCard(SuitSpades, RankThree) {
		return combo, true, nil
	}

	if len(cards) != int(g.Field.Len) {
		return Combination{}, false, fmt.Errorf("%w: need %d cards to follow, got %d", ErrIllegalAction, g.Field.Len, len(cards))
	}
	if combo.Kind != g.Field.Kind {
		return Combination{}, false, fmt.Errorf("%w: %s cannot follow %s", ErrIllegalAction, combo.Kind, g.Field.Kind)
	}
	if combo.Kind == KindStraight {
		if suit, ok := RepresentativeSuit(cards); !ok || suit != g.Field.Suit {
			return Combination{}, false, fmt.Errorf("%w: straight must follow in the field suit", ErrIllegalAction)
		}
	}
	if err := g.checkSuitLock(cards); err != nil {
		return Combination{}, false, err
	}
	if CombinationStrength(cards, g.Revolution) <= CombinationStrength(field, g.Revolution) {
		return Combination{}, false, fmt.Errorf("%w: combination does not beat the field", ErrIllegalAction)
	}
	return combo, false, nil
}

// checkSuitLock rejects suited sets that break an active lock.
// Joker-only sets carry no suit and always pass.
func (g *GameState) checkSuitLock(cards []Card) error {
	if g.SuitLock < 0 {
		return nil
	}
	if suit, ok := RepresentativeSuit(cards); ok && suit != uint8(g.SuitLock) {
		return fmt.Errorf("%w: field is locked to %s", ErrIllegalAction, suitSymbols[g.SuitLock])
	}
	return nil
}

// ValidatePlay is the exported form of play validation; it classifies
// the set and reports the rule error a play would fail with, without
// mutating state.
func (g *GameState) ValidatePlay(actor uint8, cards []Card) (Combination, error) {
	combo, _, err := g.validateCards(actor, cards)
	return combo, err
}

// CanPass reports whether a pass is currently legal for the turn
// holder. Passing on an empty field is forbidden.
func (g *GameState) CanPass() bool {
	return g.Field.Holding
}

// LegalMoves enumerates every legal play for the given seat against
// the current field: singles, rank sets (with jokers standing in),
// and same-suit straights. Pass is not included; see CanPass.
func (g *GameState) LegalMoves(player uint8) []Combination {
	hand := g.HandOf(player)
	var out []Combination

	// Candidate sets alias scratch storage; legal ones are copied so
	// the result stays valid after the hand mutates.
	consider := func(cards []Card) {
		if combo, _, err := g.validateCards(player, cards); err == nil {
			combo.Cards = append([]Card(nil), cards...)
			out = append(out, combo)
		}
	}

	// Singles.
	for i := range hand {
		consider(hand[i : i+1])
	}

	// Rank groups with joker substitution.
	var jokers []Card
	byRank := make(map[uint8][]Card)
	for _, c := range hand {
		if c.IsJoker() {
			jokers = append(jokers, c)
		} else {
			byRank[c.Rank()] = append(byRank[c.Rank()], c)
		}
	}
	for _, group := range byRank {
		for size := 2; size <= 4; size++ {
			if len(group) >= size {
				consider(group[:size])
			}
			// Top up with jokers when the natural cards fall short.
			for nj := 1; nj <= len(jokers) && nj < size; nj++ {
				if len(group) >= size-nj {
					set := append(append([]Card(nil), group[:size-nj]...), jokers[:nj]...)
					consider(set)
				}
			}
		}
	}
	// Straights: per-suit consecutive windows of 3+.
	bySuit := make(map[uint8][]Card)
	for _, c := range hand {
		if !c.IsJoker() {
			bySuit[c.Suit()] = append(bySuit[c.Suit()], c)
		}
	}
	for _, suited := range bySuit {
		sortByRank(suited)
		for start := 0; start < len(suited); start++ {
			for end := start + 1; end < len(suited); end++ {
				if suited[end].Rank() != suited[end-1].Rank()+1 {
					break
				}
				if end-start+1 >= 3 {
					consider(suited[start : end+1])
				}
			}
		}
	}
	return out
}

// sortByRank orders cards ascending by rank. Hands are small, so an
// insertion sort keeps this allocation-free.
func sortByRank(cards []Card) {
	for i := 1; i < len(cards); i++ {
		for j := i; j > 0 && cards[j].Rank() < cards[j-1].Rank(); j-- {
			cards[j], cards[j-1] = cards[j-1], cards[j]
		}
	}
}
