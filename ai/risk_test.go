package ai

import (
	"testing"

	"github.com/2626mitsuru-svg/daifugo/engine"
)

func neutralCharacter() *Character {
	return &Character{ID: 98, Name: "neutral", RiskModifier: 1.0}
}

// fatHands fills the other three seats with enough cards that nobody
// reads as close to finishing.
func fatHands(mine []engine.Card) [engine.NumPlayers][]engine.Card {
	filler := func(suit uint8) []engine.Card {
		return []engine.Card{
			engine.NewCard(suit, engine.RankFour),
			engine.NewCard(suit, engine.RankFive),
			engine.NewCard(suit, engine.RankSix),
			engine.NewCard(suit, engine.RankNine),
			engine.NewCard(suit, engine.RankTen),
			engine.NewCard(suit, engine.RankJack),
		}
	}
	return [engine.NumPlayers][]engine.Card{
		mine,
		filler(engine.SuitHearts),
		filler(engine.SuitDiamonds),
		filler(engine.SuitClubs),
	}
}

func TestFoulRiskCleanHand(t *testing.T) {
	g := testGame(fatHands([]engine.Card{
		engine.NewCard(engine.SuitSpades, engine.RankFour),
		engine.NewCard(engine.SuitSpades, engine.RankKing),
	}))
	r := EvaluateFoulRisk(g, 0, neutralCharacter())
	if r.Level != 0 || r.ShouldPass {
		t.Errorf("clean hand assessed as risky: %+v", r)
	}
}

func TestFoulRiskAllPenaltyShortHand(t *testing.T) {
	g := testGame(fatHands([]engine.Card{
		engine.NewCard(engine.SuitSpades, engine.RankEight),
		engine.NewCard(engine.SuitHearts, engine.RankEight),
		engine.NewCard(engine.SuitClubs, engine.RankTwo),
	}))
	r := EvaluateFoulRisk(g, 0, neutralCharacter())
	if r.Level != 100 {
		t.Errorf("level = %d, want saturated 100", r.Level)
	}
	if !r.ShouldPass || !r.WorstCase {
		t.Errorf("assessment = %+v, want pass with worst case flagged", r)
	}
}

func TestFoulRiskModerateRatio(t *testing.T) {
	g := testGame(fatHands([]engine.Card{
		engine.NewCard(engine.SuitSpades, engine.RankEight),
		engine.NewCard(engine.SuitHearts, engine.RankTwo),
		engine.NewCard(engine.SuitClubs, engine.RankFour),
		engine.NewCard(engine.SuitClubs, engine.RankFive),
		engine.NewCard(engine.SuitDiamonds, engine.RankSix),
		engine.NewCard(engine.SuitSpades, engine.RankKing),
	}))
	r := EvaluateFoulRisk(g, 0, neutralCharacter())
	if r.Level != 25 {
		t.Errorf("level = %d, want 25 for a third penalty cards in six", r.Level)
	}
	if r.ShouldPass {
		t.Errorf("moderate risk should not force a pass: %+v", r)
	}
}

func TestFoulRiskScalesWithModifier(t *testing.T) {
	hand := []engine.Card{
		engine.NewCard(engine.SuitSpades, engine.RankEight),
		engine.NewCard(engine.SuitHearts, engine.RankTwo),
		engine.NewCard(engine.SuitClubs, engine.RankFour),
		engine.NewCard(engine.SuitClubs, engine.RankFive),
		engine.NewCard(engine.SuitDiamonds, engine.RankSix),
		engine.NewCard(engine.SuitSpades, engine.RankKing),
	}
	g := testGame(fatHands(hand))

	bold := &Character{ID: 97, RiskModifier: 0.6}
	timid := &Character{ID: 96, RiskModifier: 1.4}
	rb := EvaluateFoulRisk(g, 0, bold)
	rt := EvaluateFoulRisk(g, 0, timid)
	if rb.Level >= rt.Level {
		t.Errorf("bold level %d not below timid level %d", rb.Level, rt.Level)
	}
}

func TestFoulRiskEightsUnderRevolution(t *testing.T) {
	hand := []engine.Card{
		engine.NewCard(engine.SuitSpades, engine.RankEight),
		engine.NewCard(engine.SuitHearts, engine.RankKing),
		engine.NewCard(engine.SuitClubs, engine.RankQueen),
		engine.NewCard(engine.SuitClubs, engine.RankJack),
		engine.NewCard(engine.SuitDiamonds, engine.RankTen),
		engine.NewCard(engine.SuitSpades, engine.RankNine),
	}
	g := testGame(fatHands(hand))
	base := EvaluateFoulRisk(g, 0, neutralCharacter())
	g.Revolution = true
	rev := EvaluateFoulRisk(g, 0, neutralCharacter())
	if rev.Level <= base.Level {
		t.Errorf("revolution level %d not above normal level %d", rev.Level, base.Level)
	}
}

func TestOpponentsInReach(t *testing.T) {
	g := testGame([engine.NumPlayers][]engine.Card{
		{engine.NewCard(engine.SuitSpades, engine.RankFour)},
		{engine.NewCard(engine.SuitHearts, engine.RankFour), engine.NewCard(engine.SuitHearts, engine.RankFive)},
		fatHands(nil)[2],
		{engine.NewCard(engine.SuitClubs, engine.RankFour)},
	})
	if got := opponentsInReach(g, 0); got != 2 {
		t.Errorf("opponentsInReach = %d, want 2", got)
	}
	// A departed seat is out of the count even with an empty hand.
	g.ActiveMask &^= 1 << 3
	if got := opponentsInReach(g, 0); got != 1 {
		t.Errorf("opponentsInReach after departure = %d, want 1", got)
	}
}
