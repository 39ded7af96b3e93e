// Package engine implements the Daifugo card game rules.
//
// This package provides a self-contained, allocation-light rules engine
// driven entirely through ApplyAction. It holds no goroutines, no
// timers and no player intelligence; callers (the AI and the arena
// runner) decide, the engine validates and mutates.
package engine

import "math/bits"

const (
	NumPlayers  = 4
	DeckSize    = 54
	MaxHandSize = 14 // 54 cards round-robin over 4 seats
)

// PlayerState holds one player's hand and finish condition.
type PlayerState struct {
	Hand         [MaxHandSize]Card
	HandLen      uint8
	FoulFinished bool
}

// FieldState is the combination currently holding the field. Holding
// is false when the field is empty and the next play leads freely.
type FieldState struct {
	Holding bool
	Kind    Kind
	Cards   [MaxHandSize]Card
	Len     uint8
	Suit    uint8 // representative suit; SuitRedJoker region for joker-only sets
}

// Set returns the field cards as a slice, or nil when empty.
func (f *FieldState) Set() []Card {
	if !f.Holding {
		return nil
	}
	return f.Cards[:f.Len]
}

// EightCutState marks a deferred field clear: an 8 has been played and
// the field stays frozen until CompleteEightCut resolves it. Cards
// records the triggering play for display.
type EightCutState struct {
	Active bool
	Player uint8
	Cards  []Card
}

// PlayRecord is one entry of the public play history. Pass entries
// carry no cards.
type PlayRecord struct {
	Player uint8
	Pass   bool
	Kind   Kind
	Cards  []Card
}

const (
	FlagFinished uint16 = 1 << 0
)

// GameState holds the complete, self-contained state of one game.
type GameState struct {
	Players     [NumPlayers]PlayerState
	Turn        uint8
	Field       FieldState
	LastPlayer  int8 // seat that owns the current field; -1 when nobody has led
	Passed      [NumPlayers]bool
	Revolution  bool
	SuitLock    int8 // locked suit, -1 when unlocked
	ActiveMask  uint8
	FinishOrder []uint8
	EightCut    EightCutState
	History     []PlayRecord
	Version     uint32
	Flags       uint16
	Rules       HouseRules
	RNG         uint64
}

// ---------------------------------------------------------------------------
// xorshift64 RNG — inline, no interface
// ---------------------------------------------------------------------------

func (g *GameState) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (g *GameState) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// ---------------------------------------------------------------------------
// NewGame and Deal
// ---------------------------------------------------------------------------

// NewGame initializes a shuffled, fully dealt four-player game. Every
// one of the 54 cards (two jokers included) is dealt round-robin, so
// seats 0 and 1 hold 14 cards and seats 2 and 3 hold 13. The holder of
// the 3 of spades leads the first field.
func NewGame(seed uint64, rules HouseRules) GameState {
	var g GameState
	g.RNG = seed
	if g.RNG == 0 {
		g.RNG = 1 // xorshift can't start at 0
	}
	g.Rules = rules
	g.SuitLock = -1
	g.LastPlayer = -1
	g.ActiveMask = (1 << NumPlayers) - 1
	g.Version = 1

	var deck [DeckSize]Card
	idx := 0
	for suit := uint8(SuitSpades); suit <= SuitClubs; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			deck[idx] = NewCard(suit, rank)
			idx++
		}
	}
	deck[52] = NewCard(SuitRedJoker, RankJoker)
	deck[53] = NewCard(SuitBlackJoker, RankJoker)

	// Fisher-Yates shuffle.
	for i := DeckSize - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		deck[i], deck[j] = deck[j], deck[i]
	}

	for i, c := range deck {
		p := &g.Players[i%NumPlayers]
		p.Hand[p.HandLen] = c
		p.HandLen++
	}

	// The 3♠ holder starts.
	starter := NewCard(SuitSpades, RankThree)
	for seat := uint8(0); seat < NumPlayers; seat++ {
		if g.handContains(seat, starter) {
			g.Turn = seat
			break
		}
	}
	return g
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// IsTerminal reports whether the full finish order is decided.
func (g *GameState) IsTerminal() bool { return g.Flags&FlagFinished != 0 }

// HandOf returns player p's current hand as a slice view.
func (g *GameState) HandOf(p uint8) []Card {
	return g.Players[p].Hand[:g.Players[p].HandLen]
}

// IsActive reports whether seat p still holds cards and a turn slot.
func (g *GameState) IsActive(p uint8) bool {
	return g.ActiveMask&(1<<p) != 0
}

// NumActive counts the seats still in play.
func (g *GameState) NumActive() int {
	return bits.OnesCount8(g.ActiveMask)
}

// handContains reports whether the exact card sits in p's hand.
func (g *GameState) handContains(p uint8, c Card) bool {
	for _, h := range g.HandOf(p) {
		if h == c {
			return true
		}
	}
	return false
}

// ownsAll reports whether every card of the set sits in p's hand,
// counting duplicates (which cannot occur in a single deck) once.
func (g *GameState) ownsAll(p uint8, cards []Card) bool {
	var used [MaxHandSize]bool
	hand := g.HandOf(p)
outer:
	for _, c := range cards {
		for i, h := range hand {
			if h == c && !used[i] {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// removeFromHand strips the played set from p's hand, preserving the
// order of the remaining cards. Callers validate ownership first.
func (g *GameState) removeFromHand(p uint8, cards []Card) {
	ps := &g.Players[p]
	for _, c := range cards {
		for i := uint8(0); i < ps.HandLen; i++ {
			if ps.Hand[i] == c {
				copy(ps.Hand[i:ps.HandLen-1], ps.Hand[i+1:ps.HandLen])
				ps.HandLen--
				break
			}
		}
	}
}

// nextActiveAfter walks seats clockwise from seat+1 and returns the
// first active one. ok is false when no seats remain active.
func (g *GameState) nextActiveAfter(seat uint8) (uint8, bool) {
	for i := uint8(1); i <= NumPlayers; i++ {
		p := (seat + i) % NumPlayers
		if g.IsActive(p) {
			return p, true
		}
	}
	return 0, false
}

// nextUnpassedAfter is nextActiveAfter restricted to seats that have
// not passed on the current field.
func (g *GameState) nextUnpassedAfter(seat uint8) (uint8, bool) {
	for i := uint8(1); i <= NumPlayers; i++ {
		p := (seat + i) % NumPlayers
		if g.IsActive(p) && !g.Passed[p] {
			return p, true
		}
	}
	return 0, false
}

// passedActiveCount counts active seats currently flagged as passed.
func (g *GameState) passedActiveCount() int {
	n := 0
	for p := uint8(0); p < NumPlayers; p++ {
		if g.IsActive(p) && g.Passed[p] {
			n++
		}
	}
	return n
}

// Rankings returns seats in final placement order: clean finishers in
// finish order first, foul finishers pushed to the back (their
// relative order preserved). Meaningful once IsTerminal is true.
func (g *GameState) Rankings() []uint8 {
	out := make([]uint8, 0, len(g.FinishOrder))
	for _, p := range g.FinishOrder {
		if !g.Players[p].FoulFinished {
			out = append(out, p)
		}
	}
	for _, p := range g.FinishOrder {
		if g.Players[p].FoulFinished {
			out = append(out, p)
		}
	}
	return out
}
