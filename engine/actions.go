package engine

import "fmt"

// ActionType distinguishes the two submittable actions.
type ActionType uint8

const (
	ActionPlay ActionType = iota
	ActionPass
)

// Action is a submitted move: a set of cards to play, or a pass.
type Action struct {
	Type  ActionType
	Cards []Card
}

// FinishEvent reports a player emptying their hand.
type FinishEvent struct {
	Player uint8
	Foul   bool
	Place  int // 1-based position in the finish order
}

// Effects carries the side-effect metadata of a successful action so
// the caller can drive display and scheduling without re-deriving it.
type Effects struct {
	Revolution   bool // strength order toggled by this play
	EightCut     bool // deferred field clear is now pending
	SuitLocked   bool // this play set the suit lock
	FieldCleared bool
	Finish       *FinishEvent
	GameOver     bool
}

// ApplyDecision is ApplyAction guarded by a state version: decisions
// computed against an older Version are rejected with ErrStaleState
// and never mutate the game.
func (g *GameState) ApplyDecision(actor uint8, a Action, version uint32) (Effects, error) {
	if version != g.Version {
		return Effects{}, fmt.Errorf("%w: decided at v%d, state at v%d", ErrStaleState, version, g.Version)
	}
	return g.ApplyAction(actor, a)
}

// ApplyAction validates and applies one action for the given seat.
// On any error the state is left untouched.
func (g *GameState) ApplyAction(actor uint8, a Action) (Effects, error) {
	if g.IsTerminal() {
		return Effects{}, ErrGameFinished
	}
	if g.EightCut.Active {
		return Effects{}, ErrEightCutPending
	}
	if actor != g.Turn {
		return Effects{}, fmt.Errorf("%w: seat %d acted on seat %d's turn", ErrNotYourTurn, actor, g.Turn)
	}
	if a.Type == ActionPass {
		return g.applyPass(actor)
	}
	return g.applyPlay(actor, a.Cards)
}

func (g *GameState) applyPass(actor uint8) (Effects, error) {
	if !g.Field.Holding {
		return Effects{}, fmt.Errorf("%w: pass on empty field", ErrIllegalAction)
	}
	g.Passed[actor] = true
	g.History = append(g.History, PlayRecord{Player: actor, Pass: true})
	g.Version++

	var eff Effects
	n := g.NumActive()
	passed := g.passedActiveCount()
	cleared := (n == 2 && passed >= 1) || (n > 2 && passed >= n-1)
	if cleared {
		g.clearField()
		eff.FieldCleared = true
		return eff, nil
	}
	if next, ok := g.nextUnpassedAfter(actor); ok {
		g.Turn = next
	}
	return eff, nil
}

func (g *GameState) applyPlay(actor uint8, cards []Card) (Effects, error) {
	combo, spadeCounter, err := g.validateCards(actor, cards)
	if err != nil {
		return Effects{}, err
	}

	revBefore := g.Revolution
	played := append([]Card(nil), cards...)
	g.removeFromHand(actor, played)
	g.History = append(g.History, PlayRecord{Player: actor, Kind: combo.Kind, Cards: played})
	g.Version++

	var eff Effects
	if combo.Kind == KindRevolution && g.Rules.EnableRevolution {
		g.Revolution = !g.Revolution
		eff.Revolution = true
	}

	// Suit lock is checked against the field being beaten, before it
	// is replaced.
	if g.Rules.EnableSuitLock && g.Field.Holding && g.SuitLock < 0 && !spadeCounter {
		if prev, ok := RepresentativeSuit(g.Field.Set()); ok {
			if next, ok := RepresentativeSuit(played); ok && prev == next {
				g.SuitLock = int8(next)
				eff.SuitLocked = true
			}
		}
	}

	// Finishing is judged under the strength order the cards were
	// played under, before any revolution they themselves triggered.
	if g.Players[actor].HandLen == 0 {
		eff.Finish = g.finishPlayer(actor, played, revBefore)
	}

	if spadeCounter {
		// Categorical counter: the field clears immediately and the
		// countering player leads the next one.
		g.LastPlayer = int8(actor)
		g.clearField()
		eff.FieldCleared = true
	} else {
		f := &g.Field
		f.Holding = true
		f.Kind = combo.Kind
		f.Len = uint8(copy(f.Cards[:], played))
		if suit, ok := RepresentativeSuit(played); ok {
			f.Suit = suit
		} else {
			f.Suit = SuitRedJoker
		}
		g.LastPlayer = int8(actor)
		for p := range g.Passed {
			g.Passed[p] = false
		}

		if g.Rules.EnableEightCut && ContainsRank(played, RankEight) && !g.IsTerminal() {
			g.EightCut = EightCutState{Active: true, Player: actor, Cards: played}
			eff.EightCut = true
		} else if next, ok := g.nextUnpassedAfter(actor); ok {
			g.Turn = next
		}
	}

	if g.IsTerminal() {
		eff.GameOver = true
	}
	return eff, nil
}

// finishPlayer removes an emptied seat from play and records its
// placement. When only one seat remains it is appended too and the
// game ends.
func (g *GameState) finishPlayer(actor uint8, lastPlay []Card, revolution bool) *FinishEvent {
	foul := g.Rules.EnableFoulFinish && !CanFinishWith(lastPlay, revolution)
	g.Players[actor].FoulFinished = foul
	g.ActiveMask &^= 1 << actor
	g.Passed[actor] = false
	g.FinishOrder = append(g.FinishOrder, actor)
	ev := &FinishEvent{Player: actor, Foul: foul, Place: len(g.FinishOrder)}

	if g.NumActive() == 1 {
		for p := uint8(0); p < NumPlayers; p++ {
			if g.IsActive(p) {
				g.ActiveMask &^= 1 << p
				g.FinishOrder = append(g.FinishOrder, p)
			}
		}
		g.Flags |= FlagFinished
	}
	return ev
}

// CanFinishWith reports whether ending the game on this exact set is a
// clean finish: no card of the set may be a penalty card under the
// given strength order.
func CanFinishWith(cards []Card, revolution bool) bool {
	for _, c := range cards {
		if c.IsPenaltyCard(revolution) {
			return false
		}
	}
	return true
}

// clearField empties the field, releases the suit lock, resets pass
// flags and hands the lead back to the field's owner (or the next
// active seat after a departed owner).
func (g *GameState) clearField() {
	owner := g.LastPlayer
	g.Field = FieldState{}
	g.SuitLock = -1
	for p := range g.Passed {
		g.Passed[p] = false
	}
	g.LastPlayer = -1
	if g.IsTerminal() || owner < 0 {
		return
	}
	if g.IsActive(uint8(owner)) {
		g.Turn = uint8(owner)
	} else if next, ok := g.nextActiveAfter(uint8(owner)); ok {
		g.Turn = next
	}
}

// CompleteEightCut resolves a pending eight-cut: the field clears as
// if all opponents passed and play resumes at the cutting seat.
func (g *GameState) CompleteEightCut() (Effects, error) {
	if !g.EightCut.Active {
		return Effects{}, fmt.Errorf("%w: no eight-cut pending", ErrIllegalAction)
	}
	g.LastPlayer = int8(g.EightCut.Player)
	g.EightCut = EightCutState{}
	g.clearField()
	g.Version++
	eff := Effects{FieldCleared: true}
	if g.IsTerminal() {
		eff.GameOver = true
	}
	return eff, nil
}

// EmergencyAdvance force-rotates the turn to unwedge a stalled game.
// Any pending eight-cut is resolved first so state invariants hold.
// It is the arena watchdog's last resort and never fails on a live
// game.
func (g *GameState) EmergencyAdvance() error {
	if g.IsTerminal() {
		return ErrGameFinished
	}
	if g.EightCut.Active {
		_, err := g.CompleteEightCut()
		return err
	}
	if next, ok := g.nextUnpassedAfter(g.Turn); ok {
		g.Turn = next
	} else if next, ok := g.nextActiveAfter(g.Turn); ok {
		g.Turn = next
	}
	g.Version++
	return nil
}
