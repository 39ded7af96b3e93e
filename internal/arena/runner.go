// Package arena drives spectator matches: four AI characters seated
// around one engine game, decisions applied strictly serialized on a
// single goroutine, with pacing delays and structured logs standing
// in for a UI.
package arena

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/2626mitsuru-svg/daifugo/ai"
	"github.com/2626mitsuru-svg/daifugo/engine"
)

// staleRetryLimit bounds recomputation after stale decisions before
// the watchdog fires. Stale decisions cannot happen while the runner
// is the sole writer; this guards against an internal regression.
const staleRetryLimit = 3

// ErrStalled means a game hit the step ceiling without producing a
// full finish order.
var ErrStalled = errors.New("game stalled")

// Result is the outcome of one finished game.
type Result struct {
	GameID      uuid.UUID
	FinishOrder []uint8 // chronological hand-emptying order
	Rankings    []uint8 // final standings, fouls pushed back
	Foul        [engine.NumPlayers]bool
	Steps       int
}

// Runner plays one game to completion. It owns the state exclusively;
// nothing else may mutate the game while Run is in flight.
type Runner struct {
	id   uuid.UUID
	log  *logrus.Entry
	game *engine.GameState
	cast [engine.NumPlayers]*ai.Character
	rng  *rand.Rand
	cfg  Config
}

// NewRunner seats a full cast over a freshly dealt game.
func NewRunner(logger *logrus.Logger, cfg Config, cast [engine.NumPlayers]*ai.Character, seed uint64, rng *rand.Rand) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for seat, ch := range cast {
		if ch == nil {
			return nil, fmt.Errorf("%w: seat %d has no character", ErrConfig, seat)
		}
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rng", ErrConfig)
	}
	id := uuid.New()
	g := engine.NewGame(seed, engine.DefaultHouseRules())
	return &Runner{
		id:   id,
		log:  logger.WithField("game", id),
		game: &g,
		cast: cast,
		rng:  rng,
		cfg:  cfg,
	}, nil
}

// Game exposes the underlying state read-only for observers.
func (r *Runner) Game() *engine.GameState { return r.game }

// Run plays the game until a full finish order exists, the step
// ceiling trips, or the context is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	for seat, ch := range r.cast {
		r.log.WithFields(logrus.Fields{
			"seat":      seat,
			"character": ch.Name,
			"hand":      len(r.game.HandOf(uint8(seat))),
		}).Info("seated")
	}

	stale := 0
	steps := 0
	for !r.game.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return r.result(steps), err
		}
		steps++
		if steps > r.cfg.MaxSteps {
			r.log.WithField("steps", steps).Error("step ceiling reached, abandoning game")
			return r.result(steps), fmt.Errorf("%w after %d steps", ErrStalled, steps)
		}

		if r.game.EightCut.Active {
			if err := r.pause(ctx, r.cfg.EightCutDelay); err != nil {
				return r.result(steps), err
			}
			if err := r.completeEightCut(); err != nil {
				return r.result(steps), err
			}
			continue
		}

		seat := r.game.Turn
		decision := ai.Decide(r.game, seat, r.cast, r.rng)
		if err := r.pause(ctx, r.cfg.ActionDelay); err != nil {
			return r.result(steps), err
		}

		effects, err := r.game.ApplyDecision(seat, decision.Action, decision.Version)
		switch {
		case err == nil:
			stale = 0
			r.logAction(seat, decision, effects)
		case errors.Is(err, engine.ErrStaleState):
			stale++
			r.log.WithFields(logrus.Fields{
				"seat": seat,
				"err":  err,
			}).Warn("stale decision discarded")
			if stale >= staleRetryLimit {
				stale = 0
				if err := r.game.EmergencyAdvance(); err != nil {
					return r.result(steps), err
				}
			}
		default:
			// An illegal decision is an internal invariant breach;
			// keep the match alive with a guaranteed-legal action.
			stale = 0
			r.log.WithFields(logrus.Fields{
				"seat":   seat,
				"action": decision.Action.Type,
				"cards":  cardList(decision.Action.Cards),
				"err":    err,
			}).Error("decision rejected, falling back")
			if err := r.fallback(seat); err != nil {
				return r.result(steps), err
			}
		}
	}

	res := r.result(steps)
	r.log.WithFields(logrus.Fields{
		"steps":    res.Steps,
		"order":    res.FinishOrder,
		"rankings": res.Rankings,
		"winner":   r.cast[res.Rankings[0]].Name,
	}).Info("game finished")
	return res, nil
}

func (r *Runner) completeEightCut() error {
	cutter := r.game.EightCut.Player
	if _, err := r.game.CompleteEightCut(); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{
		"seat":      cutter,
		"character": r.cast[cutter].Name,
	}).Info("eight-cut cleared the field")
	return nil
}

// fallback submits a pass when legal, otherwise the first legal move.
func (r *Runner) fallback(seat uint8) error {
	if r.game.CanPass() {
		_, err := r.game.ApplyAction(seat, engine.Action{Type: engine.ActionPass})
		return err
	}
	moves := r.game.LegalMoves(seat)
	if len(moves) == 0 {
		return r.game.EmergencyAdvance()
	}
	_, err := r.game.ApplyAction(seat, engine.Action{Type: engine.ActionPlay, Cards: moves[0].Cards})
	return err
}

func (r *Runner) logAction(seat uint8, d ai.Decision, fx engine.Effects) {
	fields := logrus.Fields{
		"seat":      seat,
		"character": r.cast[seat].Name,
		"reason":    d.Reason,
		"hand":      len(r.game.HandOf(seat)),
	}
	if d.Action.Type == engine.ActionPass {
		fields["action"] = "pass"
	} else {
		fields["action"] = "play"
		fields["cards"] = cardList(d.Action.Cards)
		fields["score"] = d.Score
	}
	if d.Playouts > 0 {
		fields["playouts"] = d.Playouts
	}
	if fx.Revolution {
		fields["revolution"] = true
	}
	if fx.EightCut {
		fields["eight_cut"] = true
	}
	if fx.SuitLocked {
		fields["suit_lock"] = true
	}
	if fx.FieldCleared {
		fields["field_cleared"] = true
	}
	if fx.Finish != nil {
		fields["finished_place"] = fx.Finish.Place
		fields["foul"] = fx.Finish.Foul
	}
	r.log.WithFields(fields).Info("action")
}

func (r *Runner) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Runner) result(steps int) Result {
	res := Result{
		GameID:      r.id,
		FinishOrder: append([]uint8(nil), r.game.FinishOrder...),
		Rankings:    r.game.Rankings(),
		Steps:       steps,
	}
	for p := 0; p < engine.NumPlayers; p++ {
		res.Foul[p] = r.game.Players[p].FoulFinished
	}
	return res
}

func cardList(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
