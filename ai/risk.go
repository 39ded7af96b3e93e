package ai

import (
	"math"

	"github.com/2626mitsuru-svg/daifugo/engine"
)

// RiskAssessment is the outcome of the foul-avoidance evaluation:
// how likely the player is to get stuck holding only penalty cards,
// and whether the safe answer is to pass.
type RiskAssessment struct {
	Level      int // 0..100
	ShouldPass bool
	WorstCase  bool
	Reason     string
}

// EvaluateFoulRisk estimates the chance the seat ends the game stuck
// with nothing but penalty cards (jokers, 8s, 2s in normal order, 3s
// under revolution). A guaranteed winning play always overrides a
// pass recommendation.
func EvaluateFoulRisk(g *engine.GameState, seat uint8, ch *Character) RiskAssessment {
	return evaluateFoulRiskHand(g, seat, ch, g.HandOf(seat))
}

// evaluateFoulRiskHand runs the assessment against an explicit hand,
// which may be the hypothetical remainder after a candidate play.
func evaluateFoulRiskHand(g *engine.GameState, seat uint8, ch *Character, hand []engine.Card) RiskAssessment {
	rev := g.Revolution

	var penalty, safe []engine.Card
	for _, c := range hand {
		if c.IsPenaltyCard(rev) {
			penalty = append(penalty, c)
		} else {
			safe = append(safe, c)
		}
	}
	if len(penalty) == 0 {
		return RiskAssessment{Reason: "no penalty cards in hand"}
	}

	total := len(hand)
	fieldStrength := 0
	if g.Field.Holding {
		fieldStrength = engine.CombinationStrength(g.Field.Set(), rev)
	}
	playableSafe := 0
	for _, c := range safe {
		if !g.Field.Holding || c.Strength(rev) > fieldStrength {
			playableSafe++
		}
	}

	pairOptions, straightOptions := comboOptions(safe)

	level := 0
	reason := ""
	addRisk := func(points int, why string) {
		level += points
		if reason == "" {
			reason = why
		}
	}

	ratio := float64(len(penalty)) / float64(total)
	switch {
	case total <= 4 && ratio >= 0.5:
		addRisk(40, "penalty-heavy short hand")
	case total <= 6 && ratio >= 0.33:
		addRisk(25, "moderate penalty ratio")
	}

	switch {
	case playableSafe == 0 && total <= 3:
		addRisk(50, "no playable safe cards left")
	case playableSafe <= 1 && total <= 4:
		addRisk(30, "almost no playable safe cards")
	}

	worstCase := false
	if total <= 3 && total-len(safe) == len(penalty) {
		worstCase = true
		addRisk(60, "only penalty cards would remain")
	}

	if pairOptions == 0 && straightOptions == 0 && total <= 5 {
		addRisk(20, "no combo outs")
	}

	if rev && engine.ContainsRank(hand, engine.RankEight) {
		addRisk(15, "eights riskier under revolution")
	}

	inReach := opponentsInReach(g, seat)
	if inReach > 0 && total <= 4 {
		addRisk(inReach*10, "opponents near finishing")
	}

	level = int(math.Round(float64(level) * ch.RiskModifier))
	if level > 100 {
		level = 100
	}

	shouldPass := level >= 50 ||
		(level >= 35 && total <= 3) ||
		worstCase

	// A certain win trumps every pass instinct.
	if shouldPass && total == 1 && len(safe) == 1 {
		if _, err := g.ValidatePlay(seat, safe); err == nil && engine.CanFinishWith(safe, rev) {
			shouldPass = false
			reason = "winning move available"
		}
	}

	return RiskAssessment{Level: level, ShouldPass: shouldPass, WorstCase: worstCase, Reason: reason}
}

// comboOptions counts pair and straight raw material among the safe
// cards: ranks held at least twice, and suits held at least thrice.
func comboOptions(cards []engine.Card) (pairs, straights int) {
	var rankCount, suitCount [16]int
	for _, c := range cards {
		rankCount[c.Rank()]++
		if !c.IsJoker() {
			suitCount[c.Suit()]++
		}
	}
	for _, n := range rankCount {
		if n >= 2 {
			pairs++
		}
	}
	for s := engine.SuitSpades; s <= engine.SuitClubs; s++ {
		if suitCount[s] >= 3 {
			straights++
		}
	}
	return pairs, straights
}

// opponentsInReach counts other seats down to three cards or fewer.
func opponentsInReach(g *engine.GameState, seat uint8) int {
	n := 0
	for p := uint8(0); p < engine.NumPlayers; p++ {
		if p != seat && g.IsActive(p) && len(g.HandOf(p)) <= 3 {
			n++
		}
	}
	return n
}
