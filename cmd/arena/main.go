// Command arena runs spectator Daifugo matches: four AI characters
// drawn from the roster play full games while structured logs narrate
// every action. Configuration comes from the environment (optionally
// a .env file): ARENA_GAMES, ARENA_SEED, ARENA_DELAY_MS,
// ARENA_EIGHT_CUT_DELAY_MS, ARENA_LOG_LEVEL.
package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/2626mitsuru-svg/daifugo/ai"
	"github.com/2626mitsuru-svg/daifugo/engine"
	"github.com/2626mitsuru-svg/daifugo/internal/arena"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not load .env")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := arena.FromEnv()
	if err != nil {
		logger.WithError(err).Fatal("configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}
	logger.WithFields(logrus.Fields{
		"games": cfg.Games,
		"seed":  baseSeed,
	}).Info("arena starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pickRNG := rand.New(rand.NewPCG(baseSeed, 0x9e3779b97f4a7c15))
	wins := map[string]int{}
	fouls := map[string]int{}
	played := 0

	for i := 0; i < cfg.Games; i++ {
		gameSeed := baseSeed + uint64(i)
		cast := ai.PickFour(pickRNG)
		rng := rand.New(rand.NewPCG(gameSeed, uint64(i)+1))

		runner, err := arena.NewRunner(logger, cfg, cast, gameSeed, rng)
		if err != nil {
			logger.WithError(err).Fatal("runner setup")
		}
		res, err := runner.Run(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("interrupted")
				break
			}
			logger.WithError(err).WithField("game", res.GameID).Error("game abandoned")
			continue
		}
		played++
		wins[cast[res.Rankings[0]].Name]++
		for seat := 0; seat < engine.NumPlayers; seat++ {
			if res.Foul[seat] {
				fouls[cast[seat].Name]++
			}
		}
	}

	names := make([]string, 0, len(wins))
	for name := range wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if wins[names[i]] != wins[names[j]] {
			return wins[names[i]] > wins[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		logger.WithFields(logrus.Fields{
			"character": name,
			"wins":      wins[name],
			"fouls":     fouls[name],
		}).Info("standings")
	}
	logger.WithField("played", played).Info("arena finished")
}
