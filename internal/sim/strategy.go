// Package sim plays full simulated games against the engine. Shot outcomes
// come from a pluggable probability strategy; the curves here are tuning,
// not rules, and can be swapped without touching the engine.
package sim

import (
	rand "math/rand/v2"

	"github.com/wedgewood/wolfgoatpig/internal/game"
)

// ShotOutcome is one simulated stroke.
type ShotOutcome struct {
	DistanceToPin float64
	Lie           game.Lie
	Made          bool
	Penalty       int
}

// ShotStrategy produces the next stroke for a ball. Implementations must be
// deterministic given the rng.
type ShotStrategy interface {
	NextShot(rng *rand.Rand, ball game.BallPosition, par int, handicap float64) ShotOutcome
}

// CurveStrategy advances the ball by a handicap-weighted fraction of the
// remaining distance, with short-game holing odds that rise as the ball gets
// close.
type CurveStrategy struct {
	// Aggression widens the advancement spread; 0 uses the default.
	Aggression float64
}

func (s CurveStrategy) NextShot(rng *rand.Rand, ball game.BallPosition, par int, handicap float64) ShotOutcome {
	dist := ball.DistanceToPin

	// Inside holing range: make probability scales with proximity and
	// skill. A gimme from 3 feet still misses occasionally.
	if dist <= 30 {
		makeProb := (1 - dist/34) * (1 - handicap/120)
		if rng.Float64() < makeProb {
			return ShotOutcome{Made: true}
		}
		leave := dist * (0.15 + rng.Float64()*0.25)
		return ShotOutcome{DistanceToPin: leave, Lie: game.LieGreen}
	}

	spread := 0.18 + s.Aggression
	quality := 0.55 - handicap/150 + (rng.Float64()-0.5)*spread
	if quality < 0.05 {
		// A foozle: barely advances, sometimes into trouble.
		out := ShotOutcome{DistanceToPin: dist * 0.95, Lie: game.LieRough}
		if rng.Float64() < 0.25 {
			out.Penalty = 1
		}
		return out
	}
	if quality > 0.95 {
		quality = 0.95
	}

	remaining := dist * (1 - quality)
	out := ShotOutcome{DistanceToPin: remaining}
	switch {
	case remaining <= 30:
		out.Lie = game.LieGreen
	case rng.Float64() < 0.2:
		out.Lie = game.LieRough
	case rng.Float64() < 0.08:
		out.Lie = game.LieBunker
	default:
		out.Lie = game.LieFairway
	}
	return out
}
