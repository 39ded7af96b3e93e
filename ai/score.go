package ai

import "github.com/2626mitsuru-svg/daifugo/engine"

// ScoredMove is a legal play with its heuristic evaluation attached.
type ScoredMove struct {
	engine.Combination
	Score float64
}

// scoreMove evaluates one candidate play for the acting character:
// the low-card-first doctrine scaled by how much this character
// follows it, memory and table-compatibility adjustments, and hard
// penalties for finishing foul or stranding eights.
func scoreMove(g *engine.GameState, seat uint8, chars [engine.NumPlayers]*Character, mem *Memory, move engine.Combination) float64 {
	ch := chars[seat]
	hand := g.HandOf(seat)
	cards := move.Cards

	score := baseMoveScore(g, seat, ch, cards) * ch.LowCardFirstRate
	score += memoryBonus(cards, mem, ch)
	score += compatibilityBonus(g, seat, chars)
	score += affinityScore(g, seat, ch, move)

	handAfter := len(hand) - len(cards)
	if handAfter == 0 && !engine.CanFinishWith(cards, g.Revolution) {
		score -= 1000
	}

	if engine.ContainsRank(cards, engine.RankEight) {
		remaining := countRank(hand, engine.RankEight) - countRank(cards, engine.RankEight)
		if remaining > 0 && handAfter <= 3 {
			score -= float64(remaining * handAfter * 50)
		}
	}
	return score
}

// baseMoveScore is the low-card-first doctrine: spend weak cards
// early, hold A/2/joker, and treat any 8 as an eight-cut decision of
// its own.
func baseMoveScore(g *engine.GameState, seat uint8, ch *Character, cards []engine.Card) float64 {
	if engine.ContainsRank(cards, engine.RankEight) {
		return eightCutScore(g, seat, ch)
	}

	hand := g.HandOf(seat)
	score := jokerStrategyScore(g, seat, cards)
	score += spadeThreeScore(g, seat, cards)

	pureStrong := 0
	for _, c := range cards {
		if !c.IsJoker() && (c.Rank() == engine.RankAce || c.Rank() == engine.RankTwo) {
			pureStrong++
		}
	}
	score -= float64(pureStrong * 50)

	weak := 0
	for _, c := range cards {
		if r := c.Rank(); (r >= engine.RankThree && r <= engine.RankSeven) ||
			r == engine.RankNine || r == engine.RankTen {
			weak++
		}
	}
	score += float64(weak * 40)

	// The weaker the average of what leaves the hand, the better.
	sum, n := 0, 0
	for _, c := range cards {
		if !c.IsJoker() {
			sum += c.Strength(g.Revolution)
			n++
		}
	}
	if n > 0 {
		avg := float64(sum) / float64(n)
		if bonus := (7 - avg) * 10; bonus > 0 {
			score += bonus
		}
	}

	if strongLeftAfter(hand, cards) >= 2 {
		score += 30
	}
	return score
}

// jokerStrategyScore prices joker usage: lone jokers risk the 3♠
// counter, jokers padding weak sets launder dead cards, and every
// joker kept in hand retains threat value.
func jokerStrategyScore(g *engine.GameState, seat uint8, cards []engine.Card) float64 {
	jokers, nonJokers := 0, 0
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
		} else {
			nonJokers++
		}
	}
	if jokers == 0 {
		return 0
	}

	hand := g.HandOf(seat)
	score := 0.0

	if len(cards) == 1 {
		if g.NumActive() > 1 {
			score -= 30 // invites the 3♠ counter
		}
		if len(hand) <= 3 {
			score += 50
		}
	}

	if nonJokers > 0 {
		switch r := engine.RepresentativeRank(cards); {
		case r >= engine.RankThree && r <= engine.RankSeven:
			score += float64(jokers * 60)
		case r >= engine.RankEight && r <= engine.RankTen:
			score += float64(jokers * 40)
		case r >= engine.RankJack || r == engine.RankAce || r == engine.RankTwo:
			score += float64(jokers * 20)
		}
		if combo, ok := engine.Classify(cards); ok && combo.Kind == engine.KindRevolution {
			score += 100
		}
	}

	if kept := countRank(hand, engine.RankJoker) - jokers; kept > 0 {
		score += float64(kept * 25)
	}
	return score
}

// spadeThreeScore rewards countering a lone joker with the 3♠ and
// values keeping the 3♠ in reserve while jokers are unaccounted for.
func spadeThreeScore(g *engine.GameState, seat uint8, cards []engine.Card) float64 {
	spadeThree := engine.NewCard(engine.SuitSpades, engine.RankThree)
	score := 0.0

	if len(cards) == 1 && cards[0] == spadeThree &&
		g.Field.Holding && g.Field.Len == 1 && g.Field.Set()[0].IsJoker() {
		score += 150 // the counter itself
		score += 50  // and the lead it wins
	}

	playsIt := false
	for _, c := range cards {
		if c == spadeThree {
			playsIt = true
		}
	}
	if !playsIt {
		for _, c := range g.HandOf(seat) {
			if c == spadeThree {
				score += 20
				break
			}
		}
	}
	return score
}

// eightCutScore turns the eight-cut verdict into a move score: a
// sound cut is strongly encouraged and an unsound one discouraged in
// proportion to how long the hand still is.
func eightCutScore(g *engine.GameState, seat uint8, ch *Character) float64 {
	verdict := CanExecuteEightCut(g, seat, ch)
	handLen := len(g.HandOf(seat))

	if !verdict.CanExecute {
		switch {
		case handLen <= 7:
			return -50
		case handLen <= 9:
			return -75
		default:
			return -100
		}
	}

	score := 150.0
	if verdict.Emergency {
		score += 100
	}
	switch p := verdict.WinProbability; {
	case p >= 60:
		score += 60
	case p >= 40:
		score += 40
	case p >= 20:
		score += 20
	}
	switch {
	case handLen <= 5:
		score += 80
	case handLen <= 7:
		score += 50
	}
	return score
}

// compatibilityBonus nudges certain characters while character 2 is
// still seated and alive: they hoard strong cards and play more by
// the book, and one of them stops fishing for suit locks.
func compatibilityBonus(g *engine.GameState, seat uint8, chars [engine.NumPlayers]*Character) float64 {
	ch := chars[seat]
	if ch.Compat == nil {
		return 0
	}
	rivalSeated := false
	for p := uint8(0); p < engine.NumPlayers; p++ {
		if p != seat && chars[p] != nil && chars[p].ID == 2 && g.IsActive(p) {
			rivalSeated = true
			break
		}
	}
	if !rivalSeated {
		return 0
	}

	strong := 0
	for _, c := range g.HandOf(seat) {
		if isStrongCard(c) {
			strong++
		}
	}
	bonus := float64(strong) * ch.Compat.Preservation * 20
	bonus += ch.Compat.Strategy * 30
	if ch.Compat.SuitLock != 0 && g.SuitLock >= 0 {
		bonus += ch.Compat.SuitLock * 25
	}
	return bonus
}

// affinityScore nudges moves that express the special rules a
// character leans into.
func affinityScore(g *engine.GameState, seat uint8, ch *Character, move engine.Combination) float64 {
	if ch.Affinity == 0 {
		return 0
	}
	cards := move.Cards
	score := 0.0

	if ch.Affinity&AffinityRevolution != 0 && move.Kind == engine.KindRevolution {
		score += 30
	}
	if ch.Affinity&AffinityEightCut != 0 && engine.ContainsRank(cards, engine.RankEight) {
		score += 25
	}
	if ch.Affinity&AffinitySuitLock != 0 && wouldSuitLock(g, cards) {
		score += 20
	}

	spendsStrong := 0
	for _, c := range cards {
		if !c.IsJoker() && (c.Rank() == engine.RankAce || c.Rank() == engine.RankTwo) {
			spendsStrong++
		}
	}
	if ch.Affinity&AffinityConserveStrong != 0 {
		score -= float64(spendsStrong * 20)
	}
	if ch.Affinity&AffinityAggressiveEarly != 0 && len(g.History) <= 8 && spendsStrong > 0 {
		score += 25
	}
	return score
}

// wouldSuitLock reports whether following the current field with
// these cards would set the suit lock.
func wouldSuitLock(g *engine.GameState, cards []engine.Card) bool {
	if !g.Rules.EnableSuitLock || !g.Field.Holding || g.SuitLock >= 0 {
		return false
	}
	prev, ok := engine.RepresentativeSuit(g.Field.Set())
	if !ok {
		return false
	}
	next, ok := engine.RepresentativeSuit(cards)
	return ok && next == prev
}

// strongLeftAfter counts the A/2/joker cards the hand would retain.
func strongLeftAfter(hand, cards []engine.Card) int {
	n := 0
	for _, c := range hand {
		if !isStrongCard(c) {
			continue
		}
		played := false
		for _, p := range cards {
			if p == c {
				played = true
				break
			}
		}
		if !played {
			n++
		}
	}
	return n
}

func countRank(cards []engine.Card, rank uint8) int {
	n := 0
	for _, c := range cards {
		if c.Rank() == rank {
			n++
		}
	}
	return n
}
