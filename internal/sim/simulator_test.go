package sim

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedgewood/wolfgoatpig/internal/game"
	"github.com/wedgewood/wolfgoatpig/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulatorZeroSum(t *testing.T) {
	t.Parallel()

	s := New(Config{
		Games:   4,
		Players: 4,
		Seed:    7,
		Logger:  quietLogger(),
	})
	results, err := s.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, results.Games)

	total := 0
	for _, pts := range results.Totals {
		total += pts
	}
	assert.Zero(t, total, "quarters must conserve across every game")
}

func TestSimulatorDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{Games: 3, Players: 5, Seed: 99, Logger: quietLogger()}

	a, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	b, err := New(cfg).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Totals, b.Totals, "same seed must replay identically")
	assert.Equal(t, a.HalvedHoles, b.HalvedHoles)
	assert.Equal(t, a.SoloHoles, b.SoloHoles)
}

func TestSimulatorPlayerCounts(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 5, 6} {
		s := New(Config{Games: 1, Players: n, Seed: int64(n), Logger: quietLogger()})
		results, err := s.Run(context.Background())
		require.NoError(t, err, "players=%d", n)
		assert.Len(t, results.Totals, n)
	}
}

func TestSimulatorHonorsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(Config{Games: 8, Players: 4, Seed: 1, Logger: quietLogger()})
	_, err := s.Run(ctx)
	assert.Error(t, err)
}

func TestCurveStrategyShapes(t *testing.T) {
	t.Parallel()

	strategy := CurveStrategy{}
	rng := randutil.New(5)

	ball := game.BallPosition{PlayerID: "p1", DistanceToPin: 400, Lie: game.LieTee}
	for i := 0; i < 200; i++ {
		out := strategy.NextShot(rng, ball, 4, 12)
		if out.Made {
			t.Fatal("holed out from 400 yards")
		}
		if out.DistanceToPin < 0 {
			t.Fatalf("negative distance %v", out.DistanceToPin)
		}
		if out.DistanceToPin >= ball.DistanceToPin {
			t.Fatalf("shot moved the ball backwards: %v", out.DistanceToPin)
		}
	}

	// Short range eventually holes out.
	short := game.BallPosition{PlayerID: "p1", DistanceToPin: 3, Lie: game.LieGreen}
	made := false
	for i := 0; i < 100 && !made; i++ {
		made = strategy.NextShot(rng, short, 4, 10).Made
	}
	assert.True(t, made, "tap-in range never holed out in 100 tries")
}

func TestCurveStrategyDeterministic(t *testing.T) {
	t.Parallel()

	ball := game.BallPosition{PlayerID: "p1", DistanceToPin: 180, Lie: game.LieFairway}
	a := CurveStrategy{}.NextShot(randutil.New(11), ball, 4, 8)
	b := CurveStrategy{}.NextShot(randutil.New(11), ball, 4, 8)
	assert.Equal(t, a, b)
}
