package engine

import "testing"

func TestLegalMovesEmptyFieldNeverEmpty(t *testing.T) {
	g := newTestGame(t, [NumPlayers][]Card{
		{NewCard(SuitSpades, RankThree), NewCard(SuitHearts, RankFive), NewCard(SuitDiamonds, RankKing)},
		{NewCard(SuitSpades, RankFour)},
		{NewCard(SuitSpades, RankFive)},
		{NewCard(SuitSpades, RankSix)},
	})
	moves := g.LegalMoves(0)
	if len(moves) != 3 {
		t.Fatalf("expected the three singles, got %d moves", len(moves))
	}
	for _, m := range moves {
		if m.Kind != KindSingle {
			t.Errorf("unexpected %v on a three-singles hand", m.Kind)
		}
	}
}

func TestLegalMovesRespectField(t *testing.T) {
	g := newTestGame(t, [NumPlayers][]Card{
		{NewCard(SuitHearts, RankTen), NewCard(SuitSpades, RankThree)},
		{NewCard(SuitSpades, RankFour), NewCard(SuitClubs, RankKing), NewCard(SuitDiamonds, RankKing), NewCard(SuitHearts, RankTwo)},
		{NewCard(SuitSpades, RankFive)},
		{NewCard(SuitSpades, RankSix)},
	})
	mustApply(t, g, 0, play(NewCard(SuitHearts, RankTen)))
	moves := g.LegalMoves(1)
	// Only the singles above a 10 follow; the pair of kings is the
	// wrong size and the 4 is too weak.
	want := map[Card]bool{
		NewCard(SuitClubs, RankKing):    true,
		NewCard(SuitDiamonds, RankKing): true,
		NewCard(SuitHearts, RankTwo):    true,
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d: %v", len(moves), len(want), moves)
	}
	for _, m := range moves {
		if m.Kind != KindSingle || !want[m.Cards[0]] {
			t.Errorf("unexpected move %v", m)
		}
	}
}

func TestLegalMovesJokerSubstitution(t *testing.T) {
	joker := NewCard(SuitRedJoker, RankJoker)
	g := newTestGame(t, [NumPlayers][]Card{
		{NewCard(SuitSpades, RankNine), joker, NewCard(SuitClubs, RankFour)},
		{NewCard(SuitSpades, RankFour)},
		{NewCard(SuitSpades, RankFive)},
		{NewCard(SuitSpades, RankSix)},
	})
	moves := g.LegalMoves(0)
	var pairs, singles int
	for _, m := range moves {
		switch m.Kind {
		case KindPair:
			pairs++
			if !ContainsRank(m.Cards, RankJoker) {
				t.Errorf("pair without the joker: %v", m.Cards)
			}
		case KindSingle:
			singles++
		}
	}
	if singles != 3 {
		t.Errorf("%d singles, want 3", singles)
	}
	// 9+joker and 4+joker.
	if pairs != 2 {
		t.Errorf("%d joker pairs, want 2", pairs)
	}
}

func TestLegalMovesFollowPair(t *testing.T) {
	g := newTestGame(t, [NumPlayers][]Card{
		{NewCard(SuitClubs, RankSeven), NewCard(SuitDiamonds, RankSeven), NewCard(SuitSpades, RankFour)},
		{NewCard(SuitSpades, RankNine), NewCard(SuitHearts, RankNine), NewCard(SuitClubs, RankTwo)},
		{NewCard(SuitSpades, RankFive)},
		{NewCard(SuitSpades, RankSix)},
	})
	mustApply(t, g, 0, play(NewCard(SuitClubs, RankSeven), NewCard(SuitDiamonds, RankSeven)))
	moves := g.LegalMoves(1)
	// The lone 2 is the wrong size for a pair field; only the 9s follow.
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want just the pair of 9s: %v", len(moves), moves)
	}
	m := moves[0]
	if m.Kind != KindPair || m.Cards[0].Rank() != RankNine || m.Cards[1].Rank() != RankNine {
		t.Errorf("unexpected move %v", m)
	}
}

func TestLegalMovesRejectAllJokerSets(t *testing.T) {
	jokers := []Card{NewCard(SuitRedJoker, RankJoker), NewCard(SuitBlackJoker, RankJoker)}
	g := newTestGame(t, [NumPlayers][]Card{
		{NewCard(SuitSpades, RankTwo), NewCard(SuitHearts, RankTwo), NewCard(SuitClubs, RankThree)},
		{jokers[0], jokers[1], NewCard(SuitDiamonds, RankFour)},
		{NewCard(SuitSpades, RankFive)},
		{NewCard(SuitSpades, RankSix)},
	})
	mustApply(t, g, 0, play(NewCard(SuitSpades, RankTwo), NewCard(SuitHearts, RankTwo)))
	// Two jokers are not a pair; nothing in the hand beats the 2s.
	if moves := g.LegalMoves(1); len(moves) != 0 {
		t.Errorf("expected no follow over a pair of 2s, got %v", moves)
	}
	if _, err := g.ValidatePlay(1, jokers); err == nil {
		t.Error("a two-joker set should not validate as a pair")
	}
}

func TestLegalMovesStraightWindows(t *testing.T) {
	g := newTestGame(t, [NumPlayers][]Card{
		{
			NewCard(SuitHearts, RankFive), NewCard(SuitHearts, RankSix),
			NewCard(SuitHearts, RankSeven), NewCard(SuitHearts, RankEight),
		},
		{NewCard(SuitSpades, RankFour)},
		{NewCard(SuitSpades, RankFive)},
		{NewCard(SuitSpades, RankSix)},
	})
	moves := g.LegalMoves(0)
	var straights [][]Card
	for _, m := range moves {
		if m.Kind == KindStraight {
			straights = append(straights, m.Cards)
		}
	}
	// 5-6-7, 6-7-8, 5-6-7-8.
	if len(straights) != 3 {
		t.Fatalf("got %d straights, want 3: %v", len(straights), straights)
	}
}

func TestLegalMovesSuitLockFilters(t *testing.T) {
	g := newTestGame(t, [NumPlayers][]Card{
		{NewCard(SuitHearts, RankFive), NewCard(SuitSpades, RankThree)},
		{NewCard(SuitHearts, RankNine), NewCard(SuitSpades, RankFour)},
		{NewCard(SuitDiamonds, RankKing), NewCard(SuitHearts, RankTen)},
		{NewCard(SuitSpades, RankSix)},
	})
	mustApply(t, g, 0, play(NewCard(SuitHearts, RankFive)))
	mustApply(t, g, 1, play(NewCard(SuitHearts, RankNine)))
	moves := g.LegalMoves(2)
	if len(moves) != 1 || moves[0].Cards[0] != NewCard(SuitHearts, RankTen) {
		t.Fatalf("lock should leave only ♥10: %v", moves)
	}
}
