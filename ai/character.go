// Package ai implements the per-character decision system: perception
// with imperfect memory, foul-risk analysis, heuristic move scoring
// and personality-weighted selection. It consumes engine state
// read-only and emits Actions; it never mutates a game.
package ai

import "math/rand/v2"

// SelectionMethod picks how a character converts move scores into a
// choice.
type SelectionMethod uint8

const (
	SelectSoftmax SelectionMethod = iota
	SelectEpsilonGreedy
)

// Tendency is a bitmask of the observation channels a character's
// memory can retain.
type Tendency uint8

const (
	TendencyHighCard Tendency = 1 << iota
	TendencyMidCard
	TendencySuitFlow
	TendencyRevolutionSigns
	TendencyPlayerStyle
)

// MemoryProfile controls imperfect recall: each decision the whole
// recall succeeds with Probability, and only the listed channels are
// retained. Exploits marks the channels the character converts into
// scoring bonuses (retaining an observation and acting on it are
// separate skills).
type MemoryProfile struct {
	Probability float64
	Retains     Tendency
	Exploits    Tendency
}

// EightCutTendency gates how freely a character spends 8s.
type EightCutTendency struct {
	MinHand        int // strictest hand size that still allows a cut
	MinHandRelaxed int
	Aggressive     bool
	Strategic      bool
}

// Selection is the character's score-to-choice policy: temperature
// for softmax, epsilon for epsilon-greedy.
type Selection struct {
	Method SelectionMethod
	Param  float64
}

// Affinity is a bitmask of the special rules a character leans into;
// scoring nudges moves that express them.
type Affinity uint8

const (
	AffinityRevolution Affinity = 1 << iota
	AffinityEightCut
	AffinitySuitLock
	AffinityConserveStrong
	AffinityAggressiveEarly
)

// CompatProfile adjusts a character's play while character 2 is still
// in the game: extra card preservation and by-the-book play, and for
// one character a reduced appetite for suit locks.
type CompatProfile struct {
	Preservation float64
	Strategy     float64
	SuitLock     float64
}

// Character is the full behavioral profile of one AI player.
type Character struct {
	ID          int
	Name        string
	Personality string
	Color       string

	LowCardFirstRate float64
	RiskModifier     float64
	Memory           MemoryProfile
	EightCut         EightCutTendency
	Selection        Selection
	Affinity         Affinity
	PlayoutCount     int
	UsesPlayouts     bool
	Compat           *CompatProfile
}

// Roster is the fixed cast of eleven characters a game seats four of.
var Roster = []Character{
	{
		ID: 1, Name: "P1", Personality: "strategic_aggressive", Color: "#191970",
		LowCardFirstRate: 0.70, RiskModifier: 0.8,
		Memory: MemoryProfile{
			Probability: 0.5,
			Retains:     TendencyHighCard | TendencySuitFlow,
			Exploits:    TendencyHighCard | TendencySuitFlow,
		},
		EightCut:     EightCutTendency{MinHand: 8, MinHandRelaxed: 9, Strategic: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.8},
		Affinity:     AffinityRevolution | AffinityEightCut | AffinitySuitLock | AffinityConserveStrong,
		PlayoutCount: 30, UsesPlayouts: true,
		Compat: &CompatProfile{Preservation: 0.2, Strategy: 0.1},
	},
	{
		ID: 2, Name: "P2", Personality: "chaotic_early", Color: "#1e90ff",
		LowCardFirstRate: 0.30, RiskModifier: 1.3,
		Memory: MemoryProfile{
			Probability: 0.2,
			Retains:     TendencyRevolutionSigns,
			Exploits:    TendencyRevolutionSigns,
		},
		EightCut:     EightCutTendency{MinHand: 9, MinHandRelaxed: 10, Aggressive: true},
		Selection:    Selection{Method: SelectEpsilonGreedy, Param: 0.3},
		Affinity:     AffinityRevolution | AffinityEightCut | AffinitySuitLock | AffinityAggressiveEarly,
		PlayoutCount: 20,
	},
	{
		ID: 3, Name: "P3", Personality: "analytical_patient", Color: "#0000cd",
		LowCardFirstRate: 0.90, RiskModifier: 0.6,
		Memory: MemoryProfile{
			Probability: 0.95,
			Retains:     TendencyHighCard | TendencyRevolutionSigns | TendencySuitFlow | TendencyPlayerStyle,
			Exploits:    TendencyHighCard | TendencySuitFlow,
		},
		EightCut:     EightCutTendency{MinHand: 7, MinHandRelaxed: 8, Strategic: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.6},
		Affinity:     AffinityConserveStrong,
		PlayoutCount: 50, UsesPlayouts: true,
		Compat: &CompatProfile{Preservation: 0.1, Strategy: 0.2},
	},
	{
		ID: 4, Name: "P4", Personality: "cautious_defensive", Color: "#3cb371",
		LowCardFirstRate: 0.70, RiskModifier: 0.7,
		Memory: MemoryProfile{
			Probability: 0.75,
			Retains:     TendencyHighCard | TendencyRevolutionSigns,
			Exploits:    TendencyHighCard | TendencyRevolutionSigns,
		},
		EightCut:     EightCutTendency{MinHand: 8, MinHandRelaxed: 9, Strategic: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.7},
		Affinity:     AffinityConserveStrong,
		PlayoutCount: 25,
		Compat:       &CompatProfile{Preservation: 0.2, Strategy: 0.1, SuitLock: -0.1},
	},
	{
		ID: 5, Name: "P5", Personality: "strategic_aggressive", Color: "#7b68ee",
		LowCardFirstRate: 0.60, RiskModifier: 1.1,
		Memory: MemoryProfile{
			Probability: 0.4,
			Retains:     TendencySuitFlow | TendencyMidCard,
			Exploits:    TendencySuitFlow,
		},
		EightCut:     EightCutTendency{MinHand: 8, MinHandRelaxed: 9, Aggressive: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 1.0},
		Affinity:     AffinityRevolution | AffinitySuitLock | AffinityConserveStrong,
		PlayoutCount: 15,
	},
	{
		ID: 6, Name: "P6", Personality: "energetic_momentum", Color: "#00bfff",
		LowCardFirstRate: 0.10, RiskModifier: 1.4,
		Memory:       MemoryProfile{Probability: 0.1},
		EightCut:     EightCutTendency{MinHand: 9, MinHandRelaxed: 10, Aggressive: true},
		Selection:    Selection{Method: SelectEpsilonGreedy, Param: 0.4},
		Affinity:     AffinityRevolution | AffinityEightCut | AffinitySuitLock | AffinityAggressiveEarly,
		PlayoutCount: 20,
	},
	{
		ID: 7, Name: "P7", Personality: "studious_basic", Color: "#20b2aa",
		LowCardFirstRate: 0.80, RiskModifier: 0.9,
		Memory: MemoryProfile{
			Probability: 0.4,
			Retains:     TendencySuitFlow,
			Exploits:    TendencyRevolutionSigns,
		},
		EightCut:     EightCutTendency{MinHand: 8, MinHandRelaxed: 9},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.85},
		Affinity:     AffinityConserveStrong,
		PlayoutCount: 25,
	},
	{
		ID: 8, Name: "P8", Personality: "lucky_instinct", Color: "#ff8c00",
		LowCardFirstRate: 0.90, RiskModifier: 0.7,
		Memory: MemoryProfile{
			Probability: 0.8,
			Retains:     TendencyHighCard | TendencySuitFlow | TendencyMidCard,
			Exploits:    TendencyHighCard | TendencySuitFlow,
		},
		EightCut:     EightCutTendency{MinHand: 7, MinHandRelaxed: 8, Strategic: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.7},
		Affinity:     AffinityRevolution | AffinityEightCut | AffinityAggressiveEarly,
		PlayoutCount: 15,
		Compat:       &CompatProfile{Preservation: 0.2, Strategy: 0.1},
	},
	{
		ID: 9, Name: "P9", Personality: "experimental_bold", Color: "#da70d6",
		LowCardFirstRate: 0.30, RiskModifier: 1.2,
		Memory: MemoryProfile{
			Probability: 0.3,
			Retains:     TendencyRevolutionSigns | TendencyHighCard,
			Exploits:    TendencyRevolutionSigns,
		},
		EightCut:     EightCutTendency{MinHand: 9, MinHandRelaxed: 10, Aggressive: true},
		Selection:    Selection{Method: SelectEpsilonGreedy, Param: 0.3},
		Affinity:     AffinityRevolution | AffinityEightCut | AffinitySuitLock | AffinityAggressiveEarly,
		PlayoutCount: 30,
	},
	{
		ID: 10, Name: "P10", Personality: "master_tactical", Color: "#b22222",
		LowCardFirstRate: 0.85, RiskModifier: 0.6,
		Memory: MemoryProfile{
			Probability: 0.85,
			Retains:     TendencyHighCard | TendencySuitFlow | TendencyPlayerStyle | TendencyMidCard,
			Exploits:    TendencyHighCard | TendencySuitFlow,
		},
		EightCut:     EightCutTendency{MinHand: 7, MinHandRelaxed: 8, Strategic: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.65},
		Affinity:     AffinityConserveStrong,
		PlayoutCount: 45, UsesPlayouts: true,
	},
	{
		ID: 11, Name: "P11", Personality: "quiet_endgame", Color: "#9932cc",
		LowCardFirstRate: 0.80, RiskModifier: 0.8,
		Memory: MemoryProfile{
			Probability: 0.5,
			Retains:     TendencyHighCard | TendencyPlayerStyle,
			Exploits:    TendencyHighCard,
		},
		EightCut:     EightCutTendency{MinHand: 8, MinHandRelaxed: 9, Strategic: true},
		Selection:    Selection{Method: SelectSoftmax, Param: 0.75},
		Affinity:     AffinityConserveStrong,
		PlayoutCount: 50, UsesPlayouts: true,
	},
}

// CharacterByID looks a character up in the roster.
func CharacterByID(id int) (*Character, bool) {
	for i := range Roster {
		if Roster[i].ID == id {
			return &Roster[i], true
		}
	}
	return nil, false
}

// PickFour draws four distinct characters from the roster.
func PickFour(rng *rand.Rand) [4]*Character {
	perm := rng.Perm(len(Roster))
	var picked [4]*Character
	for i := 0; i < 4; i++ {
		picked[i] = &Roster[perm[i]]
	}
	return picked
}
