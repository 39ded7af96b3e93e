package ai

import (
	"math/rand/v2"

	"github.com/2626mitsuru-svg/daifugo/engine"
)

// Decision is the outcome of one character's turn deliberation. The
// Version pins the state the decision was computed against; appliers
// must discard decisions whose version no longer matches.
type Decision struct {
	Action   engine.Action
	Version  uint32
	Score    float64
	Risk     RiskAssessment
	Reason   string
	Playouts int // refinement depth used, 0 when the character skips playouts
}

// Decide runs the full pipeline for the seat holding the turn:
// foul-risk gate, imperfect recall, legal move enumeration, scoring,
// optional playout refinement, a final post-move safety re-check, and
// personality-weighted selection. chars maps seats to characters; the
// rng drives recall and selection only, never legality.
func Decide(g *engine.GameState, seat uint8, chars [engine.NumPlayers]*Character, rng *rand.Rand) Decision {
	ch := chars[seat]
	version := g.Version
	passAction := Decision{
		Action:  engine.Action{Type: engine.ActionPass},
		Version: version,
	}

	risk := EvaluateFoulRisk(g, seat, ch)
	if risk.ShouldPass && g.CanPass() {
		passAction.Risk = risk
		passAction.Reason = "foul avoidance"
		return passAction
	}

	mem := Recall(g, seat, ch, rng)

	moves := g.LegalMoves(seat)
	if len(moves) == 0 {
		// Cannot happen on an empty field: a non-empty hand always
		// has a single-card lead.
		passAction.Risk = risk
		passAction.Reason = "no legal move"
		return passAction
	}

	scored := make([]ScoredMove, len(moves))
	for i, m := range moves {
		scored[i] = ScoredMove{
			Combination: m,
			Score:       scoreMove(g, seat, chars, &mem, m),
		}
	}
	sortMoves(scored)

	playouts := 0
	if ch.UsesPlayouts {
		playouts = ch.PlayoutCount
		refineWithPlayouts(scored, len(g.HandOf(seat)))
		sortMoves(scored)
	}

	// Last line of defense: if even the best move leaves the hand in
	// serious foul danger, pass instead.
	if g.CanPass() {
		after := handWithout(g.HandOf(seat), scored[0].Cards)
		if post := evaluateFoulRiskHand(g, seat, ch, after); post.ShouldPass && post.Level >= 60 {
			passAction.Risk = post
			passAction.Reason = "post-move safety check"
			return passAction
		}
	}

	pick := selectMove(scored, ch, rng)
	return Decision{
		Action:   engine.Action{Type: engine.ActionPlay, Cards: pick.Cards},
		Version:  version,
		Score:    pick.Score,
		Risk:     risk,
		Reason:   pick.Kind.String(),
		Playouts: playouts,
	}
}

// handWithout returns hand minus the given cards.
func handWithout(hand, cards []engine.Card) []engine.Card {
	out := make([]engine.Card, 0, len(hand))
outer:
	for _, h := range hand {
		for _, c := range cards {
			if c == h {
				continue outer
			}
		}
		out = append(out, h)
	}
	return out
}
