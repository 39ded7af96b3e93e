package ai

import "github.com/2626mitsuru-svg/daifugo/engine"

// EightCutVerdict reports whether spending an 8 right now is sound
// strategy rather than merely legal play.
type EightCutVerdict struct {
	CanExecute     bool
	Emergency      bool
	WinProbability int // only meaningful in the early game
	Reason         string
}

// CanExecuteEightCut gates an eight-cut. Small hands are always let
// through; the early game demands a projected post-cut win chance;
// mid-game requires genuine follow-up potential plus the character's
// own appetite for cutting.
func CanExecuteEightCut(g *engine.GameState, seat uint8, ch *Character) EightCutVerdict {
	hand := g.HandOf(seat)
	if !engine.ContainsRank(hand, engine.RankEight) {
		return EightCutVerdict{Reason: "no eights in hand"}
	}

	risk := EvaluateFoulRisk(g, seat, ch)
	if risk.ShouldPass && risk.Level >= 40 {
		return EightCutVerdict{Reason: "blocked by foul avoidance"}
	}

	n := len(hand)
	if n <= 5 {
		return EightCutVerdict{CanExecute: true, Emergency: true, Reason: "short hand"}
	}
	if n <= 7 && hasBasicFollowUp(hand) {
		return EightCutVerdict{CanExecute: true, Emergency: true, Reason: "danger zone with options"}
	}

	if len(g.History) <= 3 {
		p := winProbabilityAfterCut(g, seat)
		if p < 70 {
			return EightCutVerdict{WinProbability: p, Reason: "early game, win chance too low"}
		}
		return EightCutVerdict{CanExecute: true, WinProbability: p, Reason: "early game, strong position"}
	}

	if n > 10 {
		return EightCutVerdict{Reason: "hand too large for a mid-game cut"}
	}

	follow := evaluateFollowUps(hand)
	if !follow.viable() {
		return EightCutVerdict{Reason: "no follow-up potential"}
	}
	if !characterAllowsCut(g, seat, ch, n) {
		return EightCutVerdict{Reason: "character holds back the cut"}
	}
	return EightCutVerdict{CanExecute: true, Reason: "mid-game cut with follow-ups"}
}

// characterAllowsCut applies the per-character appetite for cutting:
// a hand-size ceiling, extra patience from strategic characters while
// the table is still full, and caution from non-aggressive ones when
// an opponent is close to finishing.
func characterAllowsCut(g *engine.GameState, seat uint8, ch *Character, handCount int) bool {
	if handCount > ch.EightCut.MinHandRelaxed {
		return false
	}
	if ch.EightCut.Strategic && g.NumActive() > 2 && handCount > ch.EightCut.MinHand {
		return false
	}
	if !ch.EightCut.Aggressive && opponentsInReach(g, seat) > 0 && handCount > 7 {
		return false
	}
	return true
}

// winProbabilityAfterCut scores the hand left behind once every 8 is
// spent, clamped to 0..100.
func winProbabilityAfterCut(g *engine.GameState, seat uint8) int {
	var after []engine.Card
	for _, c := range g.HandOf(seat) {
		if c.Rank() != engine.RankEight {
			after = append(after, c)
		}
	}

	score := 0
	switch n := len(after); {
	case n <= 2:
		score += 70
	case n <= 4:
		score += 50
	case n <= 6:
		score += 30
	case n <= 8:
		score += 15
	default:
		score += 5
	}

	for _, c := range after {
		if isStrongCard(c) {
			score += 20
		}
	}

	var rankCount [16]int
	for _, c := range after {
		rankCount[c.Rank()]++
	}
	for _, n := range rankCount {
		if n >= 2 {
			score += n * 12
		}
	}

	for p := uint8(0); p < engine.NumPlayers; p++ {
		if p == seat || !g.IsActive(p) {
			continue
		}
		switch n := len(g.HandOf(p)); {
		case n <= 3:
			score -= 10
		case n <= 5:
			score -= 5
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// hasBasicFollowUp is the relaxed danger-zone check: anything at all
// to continue with once the 8s are gone.
func hasBasicFollowUp(hand []engine.Card) bool {
	var after []engine.Card
	for _, c := range hand {
		if c.Rank() != engine.RankEight {
			after = append(after, c)
		}
	}
	if len(after) <= 3 {
		return true
	}
	var rankCount [16]int
	for _, c := range after {
		if isStrongCard(c) {
			return true
		}
		rankCount[c.Rank()]++
	}
	for _, n := range rankCount {
		if n >= 2 {
			return true
		}
	}
	return false
}

// followUpPotential grades what the hand can do after a cut hands the
// player the lead.
type followUpPotential struct {
	suitLock   bool
	straight   bool
	strongCard bool
	nearWin    bool
	comboSetup bool
	weakCards  bool
	handAfter  int
}

func (f followUpPotential) viable() bool {
	return f.score() >= 30 || f.suitLock || f.straight || f.strongCard || f.nearWin || f.comboSetup
}

func (f followUpPotential) score() int {
	s := 0
	if f.suitLock {
		s += 25
	}
	if f.straight {
		s += 30
	}
	if f.strongCard {
		s += 25
	} else {
		s += 5
	}
	if f.nearWin {
		s += 40
	}
	if f.comboSetup {
		s += 20
	} else {
		s += 5
	}
	if f.weakCards {
		s += 15
	}
	if f.handAfter <= 5 {
		s += 10
	}
	return s
}

func evaluateFollowUps(hand []engine.Card) followUpPotential {
	var after []engine.Card
	for _, c := range hand {
		if c.Rank() != engine.RankEight {
			after = append(after, c)
		}
	}

	var f followUpPotential
	f.handAfter = len(after)
	f.nearWin = len(after) <= 4

	suits := map[uint8][]engine.Card{}
	var rankCount [16]int
	weak := 0
	for _, c := range after {
		rankCount[c.Rank()]++
		if !c.IsJoker() {
			suits[c.Suit()] = append(suits[c.Suit()], c)
		}
		if isStrongCard(c) {
			f.strongCard = true
		}
		if r := c.Rank(); r >= engine.RankThree && r <= engine.RankSeven {
			weak++
		}
	}
	f.weakCards = weak >= 2

	multi, single := 0, 0
	for _, group := range suits {
		switch {
		case len(group) >= 2:
			multi++
		case len(group) == 1:
			single++
		}
		if len(group) >= 2 && hasAdjacentRanks(group) {
			f.straight = true
		}
	}
	f.suitLock = multi > 0 || single >= 3

	for _, n := range rankCount[:engine.RankJoker] {
		if n >= 2 {
			f.comboSetup = true
			break
		}
	}
	return f
}

// hasAdjacentRanks reports whether any two cards of the (single-suit)
// group sit one rank apart.
func hasAdjacentRanks(group []engine.Card) bool {
	var have [16]bool
	for _, c := range group {
		have[c.Rank()] = true
	}
	for r := 1; r < 15; r++ {
		if have[r] && have[r+1] {
			return true
		}
	}
	return false
}
