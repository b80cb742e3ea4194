package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wedgewood/wolfgoatpig/internal/course"
	"github.com/wedgewood/wolfgoatpig/internal/game"
	"github.com/wedgewood/wolfgoatpig/internal/sim"
)

// SimulateCmd runs seeded games end to end and reports point totals.
type SimulateCmd struct {
	Games       int    `default:"100" help:"Number of games to simulate"`
	Players     int    `default:"4" help:"Players per game (4-6)"`
	Seed        int64  `default:"0" help:"RNG seed (0 for random)"`
	BaseWager   int    `default:"1" help:"Base wager in quarters"`
	Parallelism int    `default:"4" help:"Concurrent games"`
	Config      string `default:"wgp.hcl" help:"Course configuration file"`
	Course      string `help:"Course name from the config file"`
	Debug       bool   `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupLogger(c.Debug)

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	cfg, err := course.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	layout, err := cfg.Course(c.Course)
	if err != nil {
		return err
	}

	baseWager := c.BaseWager
	if baseWager <= 0 {
		baseWager = cfg.Game.BaseWager
	}

	logger.Info("starting simulation",
		"games", c.Games,
		"players", c.Players,
		"seed", c.Seed,
		"course", layout.Name,
		"base_wager", baseWager)

	simulator := sim.New(sim.Config{
		Games:       c.Games,
		Players:     c.Players,
		Seed:        c.Seed,
		BaseWager:   baseWager,
		Parallelism: c.Parallelism,
		Logger:      logger,
		Holes:       layout.HoleInfos(),
	})

	start := time.Now()
	results, err := simulator.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Simulated %d games in %v (seed %d)\n\n", results.Games, elapsed.Round(time.Millisecond), c.Seed)
	fmt.Printf("Halved holes: %d\n", results.HalvedHoles)
	fmt.Printf("Solo holes:   %d\n", results.SoloHoles)
	fmt.Printf("\nCumulative quarters by seat:\n")

	ids := make([]string, 0, len(results.Totals))
	for id := range results.Totals {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	check := 0
	for _, id := range ids {
		total := results.Totals[game.PlayerID(id)]
		check += total
		fmt.Printf("  %-4s %+d\n", id, total)
	}
	fmt.Printf("\nZero-sum check: %+d\n", check)
	return nil
}

func setupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
