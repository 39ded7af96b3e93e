package engine

// Suit constants — packed into upper 4 bits of Card.
// The two jokers carry distinct suits so every card in the 54-card
// deck stays identifiable after shuffling.
const (
	SuitSpades     uint8 = 0
	SuitHearts     uint8 = 1
	SuitDiamonds   uint8 = 2
	SuitClubs      uint8 = 3
	SuitRedJoker   uint8 = 4
	SuitBlackJoker uint8 = 5
)

// Rank constants — packed into lower 4 bits of Card.
// Number cards keep their face value (Ace = 1).
const (
	RankAce   uint8 = 1
	RankTwo   uint8 = 2
	RankThree uint8 = 3
	RankFour  uint8 = 4
	RankFive  uint8 = 5
	RankSix   uint8 = 6
	RankSeven uint8 = 7
	RankEight uint8 = 8
	RankNine  uint8 = 9
	RankTen   uint8 = 10
	RankJack  uint8 = 11
	RankQueen uint8 = 12
	RankKing  uint8 = 13
	RankJoker uint8 = 14
)

// Card is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
type Card uint8

// EmptyCard represents the absence of a card.
const EmptyCard Card = 0xFF

// NewCard constructs a Card from suit and rank.
func NewCard(suit, rank uint8) Card {
	return Card((suit << 4) | (rank & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c Card) Suit() uint8 { return uint8(c) >> 4 }

// Rank returns the rank bits (lower 4).
func (c Card) Rank() uint8 { return uint8(c) & 0x0F }

// IsJoker reports whether the card is one of the two jokers.
func (c Card) IsJoker() bool { return c.Rank() == RankJoker }

// Strength returns the card's combat strength under the current
// revolution state. Higher beats lower.
//
// Normal order: 3 < 4 < ... < 10 < J < Q < K < A < 2 < Joker.
// Under revolution the order inverts, with the joker weakest:
// Joker < 2 < A < K,Q,J,10,... (3 strongest).
func (c Card) Strength(revolution bool) int {
	if c.IsJoker() {
		if revolution {
			return 1
		}
		return 16
	}
	r := c.Rank()
	normal := int(r)
	switch r {
	case RankAce:
		normal = 14
	case RankTwo:
		normal = 15
	}
	if !revolution {
		return normal
	}
	switch r {
	case RankTwo:
		return 2
	case RankAce:
		return 3
	default:
		return 16 - normal
	}
}

// IsPenaltyCard reports whether finishing the game with this card is a
// foul: jokers and 8s always, 2 under normal order, 3 under revolution.
func (c Card) IsPenaltyCard(revolution bool) bool {
	switch c.Rank() {
	case RankJoker, RankEight:
		return true
	case RankTwo:
		return !revolution
	case RankThree:
		return revolution
	}
	return false
}

var suitSymbols = [6]string{"♠", "♥", "♦", "♣", "JKR", "JKB"}
var rankSymbols = [15]string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "Joker"}

// String renders the card for logs, e.g. "♠3" or "Joker".
func (c Card) String() string {
	if c == EmptyCard {
		return "--"
	}
	if c.IsJoker() {
		return rankSymbols[RankJoker]
	}
	s, r := c.Suit(), c.Rank()
	if s > SuitClubs || r == 0 || r > RankKing {
		return "??"
	}
	return suitSymbols[s] + rankSymbols[r]
}
