package engine

import "errors"

// Sentinel errors returned by state-mutating operations. Callers match
// with errors.Is; ApplyAction wraps these with per-case detail.
var (
	// ErrIllegalAction means the attempted play or pass fails rule
	// validation. State is never mutated on this error.
	ErrIllegalAction = errors.New("illegal action")

	// ErrNotYourTurn means the acting player does not hold the turn.
	ErrNotYourTurn = errors.New("not actor's turn")

	// ErrStaleState means a decision was computed against an older
	// state version and must be discarded.
	ErrStaleState = errors.New("stale state version")

	// ErrEightCutPending means the field is awaiting its deferred
	// eight-cut clear and no play may land before CompleteEightCut.
	ErrEightCutPending = errors.New("eight-cut clear pending")

	// ErrGameFinished means the game has already produced a full
	// finish order.
	ErrGameFinished = errors.New("game already finished")
)
