package sim

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/wedgewood/wolfgoatpig/internal/game"
	"github.com/wedgewood/wolfgoatpig/internal/randutil"
)

// Config holds configuration for running simulations.
type Config struct {
	Games       int
	Players     int
	Seed        int64
	BaseWager   int
	Parallelism int
	Logger      *log.Logger
	Strategy    ShotStrategy
	Holes       []game.HoleInfo
}

// Results aggregates the outcomes of every simulated game.
type Results struct {
	Games       int
	HalvedHoles int
	SoloHoles   int
	Totals      map[game.PlayerID]int
}

// Simulator plays complete games against the engine with simple
// auto-negotiation policies. Every run is reproducible from the seed.
type Simulator struct {
	config Config
}

// New creates a simulator, applying defaults for anything unset.
func New(config Config) *Simulator {
	if config.Games <= 0 {
		config.Games = 1
	}
	if config.Players < game.MinPlayers || config.Players > game.MaxPlayers {
		config.Players = game.MinPlayers
	}
	if config.Parallelism <= 0 {
		config.Parallelism = 4
	}
	if config.Strategy == nil {
		config.Strategy = CurveStrategy{}
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

type gameOutcome struct {
	standings   []game.Standing
	halvedHoles int
	soloHoles   int
}

// Run plays the configured number of games in parallel and merges the
// outcomes. Each game derives its own seed so results are stable regardless
// of scheduling.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	outcomes := make([]*gameOutcome, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)
	for i := 0; i < s.config.Games; i++ {
		g.Go(func() error {
			out, err := s.playGame(ctx, s.config.Seed+int64(i), i)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := &Results{Games: s.config.Games, Totals: make(map[game.PlayerID]int)}
	for _, out := range outcomes {
		results.HalvedHoles += out.halvedHoles
		results.SoloHoles += out.soloHoles
		for _, st := range out.standings {
			results.Totals[st.PlayerID] += st.Points
		}
	}
	return results, nil
}

// playGame runs one full 18-hole game.
func (s *Simulator) playGame(ctx context.Context, seed int64, index int) (*gameOutcome, error) {
	rng := randutil.New(seed)

	cfg := game.Config{
		ID:        fmt.Sprintf("sim-%d", index+1),
		BaseWager: s.config.BaseWager,
		Holes:     s.config.Holes,
	}
	handicaps := make(map[game.PlayerID]float64, s.config.Players)
	ids := make([]game.PlayerID, 0, s.config.Players)
	for i := 0; i < s.config.Players; i++ {
		id := game.PlayerID(fmt.Sprintf("p%d", i+1))
		hc := math.Round((4+rng.Float64()*20)*2) / 2
		cfg.Players = append(cfg.Players, game.PlayerConfig{ID: id, Name: string(id), Handicap: hc})
		handicaps[id] = hc
		ids = append(ids, id)
	}

	order := make([]game.PlayerID, 0, len(ids))
	for _, i := range randutil.ShuffledIndexes(rng, len(ids)) {
		order = append(order, ids[i])
	}

	gm, err := game.New(cfg, game.WithHittingOrder(order), game.WithLogger(s.config.Logger))
	if err != nil {
		return nil, err
	}

	out := &gameOutcome{}
	for !gm.Complete() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.playHole(gm, rng, handicaps); err != nil {
			return nil, err
		}
		if snap := gm.Snapshot(); snap.Hole != nil && snap.Hole.Formation.Kind == "solo" {
			out.soloHoles++
		}
		if _, err := gm.AdvanceToNextHole(); err != nil {
			return nil, err
		}
	}

	snap := gm.Snapshot()
	out.standings = snap.Standings
	for _, res := range gm.Results() {
		if res == nil {
			continue
		}
		if res.Halved {
			out.halvedHoles++
		}
	}
	return out, nil
}

// playHole negotiates teams, plays shots and lets the wagering policy poke
// at the ladder until the hole settles.
func (s *Simulator) playHole(gm *game.Game, rng *rand.Rand, handicaps map[game.PlayerID]float64) error {
	snap := gm.Snapshot()
	hole := snap.Hole

	s.maybeJoesSpecial(gm, rng, snap)
	if err := s.negotiate(gm, rng, hole); err != nil {
		return err
	}

	for shots := 0; ; shots++ {
		if shots > 400 {
			return fmt.Errorf("hole %d did not finish", hole.Number)
		}
		snap = gm.Snapshot()
		if snap.Hole.Result != nil {
			return nil
		}
		next := snap.Hole.NextToHit
		if next == "" {
			return fmt.Errorf("hole %d stalled with no player to hit", snap.Hole.Number)
		}

		ball := ballFor(snap.Hole, next)
		outcome := s.config.Strategy.NextShot(rng, ball, snap.Hole.Par, handicaps[next])
		if _, err := gm.ApplyShot(game.Shot{
			Player:        next,
			DistanceToPin: outcome.DistanceToPin,
			Lie:           outcome.Lie,
			Made:          outcome.Made,
			Penalty:       outcome.Penalty,
		}); err != nil {
			return err
		}

		s.maybeWager(gm, rng)
	}
}

// maybeJoesSpecial has the goat set a Hoepfinger wager some of the time.
func (s *Simulator) maybeJoesSpecial(gm *game.Game, rng *rand.Rand, snap game.Snapshot) {
	if snap.Phase != "hoepfinger" || rng.Float64() > 0.4 {
		return
	}
	goat := goatOf(snap)
	if goat == "" {
		return
	}
	menu := []int{2, 4, 8}
	// Illegal picks (not the goat, hole underway) are simply rejected by
	// the engine; the policy does not need to be careful.
	gm.SetJoesSpecial(goat, menu[rng.IntN(len(menu))]) //nolint:errcheck
}

// negotiate forms teams before anyone tees off.
func (s *Simulator) negotiate(gm *game.Game, rng *rand.Rand, hole *game.HoleSnapshot) error {
	captain := hole.Formation.Captain

	if rng.Float64() < 0.12 {
		variant := game.SoloLoneWolf
		if hole.Number == 18 && rng.Float64() < 0.3 {
			variant = game.SoloBigDick
		} else if r := rng.Float64(); r < 0.2 {
			variant = game.SoloDuncan
		} else if r < 0.4 {
			variant = game.SoloTunkarri
		}
		if _, err := gm.DeclareSolo(captain, variant); err != nil {
			return err
		}
	} else {
		// Invite one of the middle hitters; the later they hit, the less
		// likely they are still eligible in live play.
		target := hole.HittingOrder[1+rng.IntN(min(3, len(hole.HittingOrder)-1))]
		if _, err := gm.RequestPartner(captain, target); err != nil {
			return err
		}
		if _, err := gm.RespondToPartnership(target, rng.Float64() < 0.8); err != nil {
			return err
		}
	}

	if rng.Float64() < 0.1 {
		gm.InvokeFloat(captain) //nolint:errcheck
	}

	return s.placeAardvarks(gm, rng)
}

// placeAardvarks walks every unassigned aardvark through request, toss and
// ping-pong until the formation freezes.
func (s *Simulator) placeAardvarks(gm *game.Game, rng *rand.Rand) error {
	for rounds := 0; rounds < 20; rounds++ {
		snap := gm.Snapshot()
		f := snap.Hole.Formation
		if f.Kind != "aardvark_pending" {
			return nil
		}

		if f.PendingAardvark == nil {
			a := f.Unassigned[0]
			if _, err := gm.AardvarkRequestTeam(a, rng.IntN(2)); err != nil {
				return err
			}
			continue
		}

		req := f.PendingAardvark
		side := f.Sides[req.Side]
		if len(side) == 0 {
			return fmt.Errorf("aardvark request to an empty side")
		}
		responder := side[rng.IntN(len(side))]
		accept := rng.Float64() < 0.7
		pingPong := false
		if !accept {
			// A side that already tossed this aardvark must either invoke
			// ping-pong or fold and accept.
			if _, err := gm.RespondToAardvark(responder, false, false); err != nil {
				if game.IsRuleViolation(err, game.ReasonAlreadyTossed) && rng.Float64() < 0.5 {
					pingPong = true
					if _, err := gm.RespondToAardvark(responder, false, true); err == nil {
						continue
					}
				}
				accept = true
			} else {
				continue
			}
		}
		if accept && !pingPong {
			if _, err := gm.RespondToAardvark(responder, true, false); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("aardvark negotiation did not converge")
}

// maybeWager occasionally offers a double and resolves any pending offer.
func (s *Simulator) maybeWager(gm *game.Game, rng *rand.Rand) {
	snap := gm.Snapshot()
	h := snap.Hole
	if h == nil || h.Result != nil {
		return
	}

	if h.Ladder.PendingDouble == nil && !h.WageringClosed && rng.Float64() < 0.04 {
		// Only the line-of-scrimmage player clears the guard; trying from
		// elsewhere exercises the validator and is harmlessly rejected.
		if h.NextToHit != "" {
			gm.OfferDouble(h.NextToHit) //nolint:errcheck
		}
	}

	snap = gm.Snapshot()
	h = snap.Hole
	if h.Ladder.PendingDouble != nil {
		side := h.Formation.Sides[h.Ladder.PendingDouble.RespondingSide]
		if len(side) > 0 {
			responder := side[rng.IntN(len(side))]
			gm.RespondToDouble(responder, rng.Float64() < 0.8, nil) //nolint:errcheck
		}
	}
}

// ballFor reconstructs the shot-strategy input for the next player.
func ballFor(h *game.HoleSnapshot, id game.PlayerID) game.BallPosition {
	for _, b := range h.Balls {
		if b.PlayerID == id {
			return b
		}
	}
	return game.BallPosition{PlayerID: id, DistanceToPin: float64(h.Yardage), Lie: game.LieTee}
}

// goatOf finds the player alone at the bottom of the standings.
func goatOf(snap game.Snapshot) game.PlayerID {
	var goat game.PlayerID
	best := 0
	for i, st := range snap.Standings {
		if i == 0 || st.Points < best {
			goat = st.PlayerID
			best = st.Points
		} else if st.Points == best {
			goat = ""
		}
	}
	return goat
}
