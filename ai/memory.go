package ai

import (
	"math/rand/v2"

	"github.com/2626mitsuru-svg/daifugo/engine"
)

// PlayStyle is a remembered read on an opponent's habits.
type PlayStyle uint8

const (
	StyleUnknown PlayStyle = iota
	StyleAggressive
	StyleConservative
)

// Memory is what one character managed to recall from the public play
// history before deciding. Failed recall leaves every field empty; a
// character with no retained channel perceives the same nothing.
type Memory struct {
	HighCards       []engine.Card
	MidCards        []engine.Card
	SuitFlow        []uint8
	RevolutionSigns int
	PlayerStyles    [engine.NumPlayers]PlayStyle
}

// Recall rebuilds a character's memory from the play history. The
// whole recall succeeds with the character's memory probability; on
// failure the decision proceeds memory-blind.
func Recall(g *engine.GameState, seat uint8, ch *Character, rng *rand.Rand) Memory {
	var mem Memory
	if rng.Float64() >= ch.Memory.Probability {
		return mem
	}
	retains := ch.Memory.Retains

	if retains&TendencyHighCard != 0 {
		for _, h := range g.History {
			for _, c := range h.Cards {
				if isStrongCard(c) {
					mem.HighCards = append(mem.HighCards, c)
				}
			}
		}
	}
	if retains&TendencyMidCard != 0 {
		for _, h := range g.History {
			for _, c := range h.Cards {
				if r := c.Rank(); r >= engine.RankFive && r <= engine.RankTen {
					mem.MidCards = append(mem.MidCards, c)
				}
			}
		}
	}
	if retains&TendencySuitFlow != 0 {
		for _, h := range g.History {
			if len(h.Cards) > 0 && !h.Cards[0].IsJoker() {
				mem.SuitFlow = append(mem.SuitFlow, h.Cards[0].Suit())
			}
		}
	}
	if retains&TendencyRevolutionSigns != 0 {
		for _, h := range g.History {
			if len(h.Cards) >= 2 {
				first := h.Cards[0].Rank()
				same := 0
				for _, c := range h.Cards {
					if c.Rank() == first {
						same++
					}
				}
				if same >= 2 {
					mem.RevolutionSigns++
				}
			}
		}
	}
	if retains&TendencyPlayerStyle != 0 {
		for p := uint8(0); p < engine.NumPlayers; p++ {
			if p == seat {
				continue
			}
			var actions, aggressive int
			for _, h := range g.History {
				if h.Player != p || h.Pass {
					continue
				}
				actions++
				if len(h.Cards) >= 2 || anyStrongCard(h.Cards) {
					aggressive++
				}
			}
			if actions >= 2 {
				if aggressive > actions/2 {
					mem.PlayerStyles[p] = StyleAggressive
				} else {
					mem.PlayerStyles[p] = StyleConservative
				}
			}
		}
	}
	return mem
}

// memoryBonus converts recalled observations into a score adjustment
// for one candidate play, gated on the channels this character knows
// how to exploit.
func memoryBonus(cards []engine.Card, mem *Memory, ch *Character) float64 {
	bonus := 0.0
	exploits := ch.Memory.Exploits

	// Enough strong cards seen means the survivors are safer to spend.
	if exploits&TendencyHighCard != 0 && len(mem.HighCards) > 6 {
		strong, jokers := 0, 0
		for _, c := range cards {
			if c.IsJoker() {
				jokers++
			}
			if c.IsJoker() || c.Rank() == engine.RankTwo {
				strong++
			}
		}
		if strong > 0 {
			if jokers > 0 && strong > jokers {
				bonus += 20
			} else {
				bonus += 30
			}
		}
		if len(cards) == 1 && cards[0] == engine.NewCard(engine.SuitSpades, engine.RankThree) {
			bonus += 25
		}
	}

	// Repeated multi-card plays hint that a revolution race is on.
	if exploits&TendencyRevolutionSigns != 0 && mem.RevolutionSigns >= 2 {
		if combo, ok := engine.Classify(cards); ok && combo.Kind == engine.KindRevolution {
			bonus += 40
		}
	}

	// Two same-suit leads in a row invite a lock on that suit.
	if exploits&TendencySuitFlow != 0 && len(mem.SuitFlow) >= 3 {
		n := len(mem.SuitFlow)
		if mem.SuitFlow[n-1] == mem.SuitFlow[n-2] && len(cards) > 0 && cards[0].Suit() == mem.SuitFlow[n-1] {
			bonus += 25
		}
	}
	return bonus
}

// isStrongCard marks the cards everyone tracks: jokers, 2s and aces.
func isStrongCard(c engine.Card) bool {
	return c.IsJoker() || c.Rank() == engine.RankTwo || c.Rank() == engine.RankAce
}

func anyStrongCard(cards []engine.Card) bool {
	for _, c := range cards {
		if c.IsJoker() || c.Rank() == engine.RankTwo {
			return true
		}
	}
	return false
}
