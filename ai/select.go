package ai

import (
	"math"
	"math/rand/v2"
	"sort"
)

// sortMoves orders candidates best-first, keeping the generator's
// order among ties so selection stays deterministic under a fixed
// rng.
func sortMoves(moves []ScoredMove) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
}

// refineWithPlayouts sharpens the top candidates the way the heavier
// thinkers do: moves that empty the hand outright or leave it nearly
// empty get pulled up before selection. Only the top five are
// re-evaluated; the tail keeps its heuristic score.
func refineWithPlayouts(moves []ScoredMove, handLen int) {
	top := len(moves)
	if top > 5 {
		top = 5
	}
	for i := 0; i < top; i++ {
		switch after := handLen - len(moves[i].Cards); {
		case after == 0:
			moves[i].Score += 500
		case after <= 2:
			moves[i].Score += 200
		}
	}
}

// selectMove picks from best-first candidates using the character's
// policy: epsilon-greedy wanders within the top three, softmax
// samples the Boltzmann distribution over scores at the character's
// temperature.
func selectMove(moves []ScoredMove, ch *Character, rng *rand.Rand) ScoredMove {
	if len(moves) == 1 {
		return moves[0]
	}

	if ch.Selection.Method == SelectEpsilonGreedy {
		if rng.Float64() < ch.Selection.Param {
			top := len(moves)
			if top > 3 {
				top = 3
			}
			return moves[rng.IntN(top)]
		}
		return moves[0]
	}

	// Softmax. Scores are shifted by the maximum before
	// exponentiation so large magnitudes cannot overflow.
	temp := ch.Selection.Param
	max := moves[0].Score
	weights := make([]float64, len(moves))
	var sum float64
	for i, m := range moves {
		w := math.Exp((m.Score - max) / temp)
		weights[i] = w
		sum += w
	}
	r := rng.Float64() * sum
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return moves[i]
		}
	}
	return moves[0]
}
