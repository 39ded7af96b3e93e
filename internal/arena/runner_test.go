package arena

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2626mitsuru-svg/daifugo/ai"
	"github.com/2626mitsuru-svg/daifugo/engine"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.ActionDelay = 0
	cfg.EightCutDelay = 0
	return cfg
}

func castByID(t *testing.T, ids ...int) [engine.NumPlayers]*ai.Character {
	t.Helper()
	require.Len(t, ids, engine.NumPlayers)
	var cast [engine.NumPlayers]*ai.Character
	for i, id := range ids {
		ch, ok := ai.CharacterByID(id)
		require.True(t, ok, "character %d", id)
		cast[i] = ch
	}
	return cast
}

func TestNewRunnerValidation(t *testing.T) {
	logger := quietLogger()
	cast := castByID(t, 1, 2, 3, 4)
	rng := rand.New(rand.NewPCG(1, 1))

	_, err := NewRunner(logger, fastConfig(), cast, 1, rng)
	require.NoError(t, err)

	var incomplete [engine.NumPlayers]*ai.Character
	copy(incomplete[:], cast[:3])
	_, err = NewRunner(logger, fastConfig(), incomplete, 1, rng)
	require.ErrorIs(t, err, ErrConfig)

	_, err = NewRunner(logger, fastConfig(), cast, 1, nil)
	require.ErrorIs(t, err, ErrConfig)

	bad := fastConfig()
	bad.Games = 0
	_, err = NewRunner(logger, bad, cast, 1, rng)
	require.ErrorIs(t, err, ErrConfig)
}

func TestRunnerPlaysGameToCompletion(t *testing.T) {
	logger := quietLogger()
	cast := castByID(t, 1, 5, 8, 10)

	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		r, err := NewRunner(logger, fastConfig(), cast, seed, rng)
		require.NoError(t, err)

		res, err := r.Run(context.Background())
		require.NoError(t, err, "seed %d", seed)

		assert.Len(t, res.FinishOrder, engine.NumPlayers)
		assert.Len(t, res.Rankings, engine.NumPlayers)
		assert.True(t, r.Game().IsTerminal())
		assert.Positive(t, res.Steps)

		seen := map[uint8]bool{}
		for _, seat := range res.Rankings {
			assert.False(t, seen[seat], "seat %d ranked twice", seat)
			seen[seat] = true
		}
		// Any foul finisher must rank behind every clean finisher.
		lastClean := -1
		firstFoul := len(res.Rankings)
		for i, seat := range res.Rankings {
			if res.Foul[seat] {
				if i < firstFoul {
					firstFoul = i
				}
			} else {
				lastClean = i
			}
		}
		if firstFoul < len(res.Rankings) {
			assert.Less(t, lastClean, firstFoul, "foul finisher ranked above a clean one")
		}
	}
}

func TestRunnerDeterministicUnderFixedSeeds(t *testing.T) {
	logger := quietLogger()
	cast := castByID(t, 2, 3, 6, 11)

	run := func() Result {
		rng := rand.New(rand.NewPCG(42, 7))
		r, err := NewRunner(logger, fastConfig(), cast, 42, rng)
		require.NoError(t, err)
		res, err := r.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.FinishOrder, b.FinishOrder)
	assert.Equal(t, a.Rankings, b.Rankings)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestRunnerHonorsContextCancellation(t *testing.T) {
	logger := quietLogger()
	cast := castByID(t, 1, 2, 3, 4)
	rng := rand.New(rand.NewPCG(3, 3))

	cfg := fastConfig()
	cfg.ActionDelay = time.Hour // never elapses
	r, err := NewRunner(logger, cfg, cast, 3, rng)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx)
		done <- err
	}()
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop on cancellation")
	}
}

func TestRunnerStepCeiling(t *testing.T) {
	logger := quietLogger()
	cast := castByID(t, 1, 2, 3, 4)
	rng := rand.New(rand.NewPCG(5, 5))

	cfg := fastConfig()
	cfg.MaxSteps = 3
	r, err := NewRunner(logger, cfg, cast, 5, rng)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, ErrStalled)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ARENA_GAMES", "7")
	t.Setenv("ARENA_SEED", "123")
	t.Setenv("ARENA_DELAY_MS", "50")
	t.Setenv("ARENA_EIGHT_CUT_DELAY_MS", "10")
	t.Setenv("ARENA_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Games)
	assert.Equal(t, uint64(123), cfg.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.ActionDelay)
	assert.Equal(t, 10*time.Millisecond, cfg.EightCutDelay)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("ARENA_GAMES", "lots")
	_, err := FromEnv()
	require.ErrorIs(t, err, ErrConfig)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Games = 0
	require.ErrorIs(t, cfg.Validate(), ErrConfig)

	cfg = DefaultConfig()
	cfg.ActionDelay = -time.Second
	require.ErrorIs(t, cfg.Validate(), ErrConfig)

	cfg = DefaultConfig()
	cfg.MaxSteps = 0
	require.ErrorIs(t, cfg.Validate(), ErrConfig)
}
