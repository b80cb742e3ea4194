package game

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// HoleInfo is course metadata for one hole, supplied by an external provider
// at initialization.
type HoleInfo struct {
	Number      int
	Par         int
	StrokeIndex int
	Yardage     int
}

// PlayerConfig describes one participant at game creation.
type PlayerConfig struct {
	ID       PlayerID
	Name     string
	Handicap float64
}

// Config describes a new game.
type Config struct {
	ID      string
	Players []PlayerConfig

	// Holes is optional 18-hole course metadata. Missing entries fall back
	// to house defaults: par 4, stroke index equal to the hole number.
	Holes []HoleInfo

	// BaseWager is the natural per-hole wager in quarters (default 1). It
	// doubles from Vinnie's Variation onward.
	BaseWager int
}

// Saver persists snapshots at checkpoints: hole start, hole completion and
// game completion. The storage format is opaque to the core.
type Saver interface {
	Save(ctx context.Context, gameID string, snap Snapshot) error
}

// Game sequences 18 holes for 4-6 players, rotating captaincy, advancing the
// game phase and aggregating standings. Exactly one mutation is in flight at
// a time: every command validates, mutates and re-derives under the game
// lock, and returns either an updated public snapshot or a typed error with
// no partial mutation.
type Game struct {
	mu sync.Mutex

	id        string
	players   []*Player
	byID      map[PlayerID]*Player
	holesInfo [18]HoleInfo
	baseWager int

	baseOrder   []PlayerID
	holes       [18]*HoleState
	results     [18]*HoleResult
	currentHole int // 1-based, 0 before the first hole opens
	phase       Phase
	complete    bool
	paused      bool

	// Carry-over into the next hole after a halve.
	nextWager   int
	nextCarried bool

	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
	saver  Saver
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the structured logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithClock sets the clock used for event timestamps; tests pass a mock.
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) { g.clock = clock }
}

// WithEventBus sets the bus game events are published to.
func WithEventBus(bus EventBus) Option {
	return func(g *Game) { g.bus = bus }
}

// WithSaver attaches a persistence checkpoint hook.
func WithSaver(s Saver) Option {
	return func(g *Game) { g.saver = s }
}

// WithHittingOrder overrides the hole-1 hitting order (default: registration
// order). Callers wanting a random draw shuffle before passing it in.
func WithHittingOrder(order []PlayerID) Option {
	return func(g *Game) { g.baseOrder = append([]PlayerID(nil), order...) }
}

// New validates the configuration, builds the game and opens hole 1.
func New(cfg Config, opts ...Option) (*Game, error) {
	if n := len(cfg.Players); n < MinPlayers || n > MaxPlayers {
		return nil, &ValidationError{Code: ReasonInvalidPlayerCount, Field: "players", Actual: n, Expected: "4 to 6 players"}
	}

	g := &Game{
		id:        cfg.ID,
		byID:      make(map[PlayerID]*Player, len(cfg.Players)),
		baseWager: cfg.BaseWager,
		logger:    log.New(io.Discard),
		clock:     quartz.NewReal(),
		bus:       NewEventBus(),
	}
	if g.baseWager <= 0 {
		g.baseWager = 1
	}

	for _, pc := range cfg.Players {
		if pc.ID == "" {
			return nil, &ValidationError{Code: ReasonUnknownPlayer, Field: "player_id", Actual: pc.ID, Expected: "non-empty id"}
		}
		if _, dup := g.byID[pc.ID]; dup {
			return nil, &ValidationError{Code: ReasonDuplicatePlayer, Field: "player_id", Actual: pc.ID, Expected: "unique id"}
		}
		if err := validateHandicap(pc.Handicap); err != nil {
			return nil, err
		}
		p := &Player{ID: pc.ID, Name: pc.Name, Handicap: pc.Handicap}
		g.players = append(g.players, p)
		g.byID[pc.ID] = p
	}

	info, err := normalizeCourse(cfg.Holes)
	if err != nil {
		return nil, err
	}
	g.holesInfo = info

	for _, opt := range opts {
		opt(g)
	}
	if g.baseOrder == nil {
		for _, p := range g.players {
			g.baseOrder = append(g.baseOrder, p.ID)
		}
	}
	if len(g.baseOrder) != len(g.players) {
		return nil, &ValidationError{Code: ReasonInvalidPlayerCount, Field: "hitting_order", Actual: len(g.baseOrder), Expected: fmt.Sprintf("%d players", len(g.players))}
	}
	for _, id := range g.baseOrder {
		if _, ok := g.byID[id]; !ok {
			return nil, &ValidationError{Code: ReasonUnknownPlayer, Field: "hitting_order", Actual: id, Expected: "registered player"}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.openHole(1, nil); err != nil {
		return nil, err
	}
	return g, nil
}

// normalizeCourse fills defaults and validates the stroke-index permutation.
func normalizeCourse(holes []HoleInfo) ([18]HoleInfo, error) {
	var info [18]HoleInfo
	for i := range info {
		info[i] = HoleInfo{Number: i + 1, Par: 4, StrokeIndex: i + 1, Yardage: 400}
	}
	for _, h := range holes {
		if h.Number < 1 || h.Number > 18 {
			return info, &ValidationError{Code: ReasonWrongHole, Field: "number", Actual: h.Number, Expected: "1..18"}
		}
		entry := &info[h.Number-1]
		if h.Par > 0 {
			entry.Par = h.Par
		}
		if h.StrokeIndex > 0 {
			entry.StrokeIndex = h.StrokeIndex
		}
		if h.Yardage > 0 {
			entry.Yardage = h.Yardage
		}
	}
	seen := make(map[int]bool, 18)
	for _, h := range info {
		if h.StrokeIndex < 1 || h.StrokeIndex > 18 || seen[h.StrokeIndex] {
			return info, &ValidationError{Code: ReasonWrongHole, Field: "stroke_index", Actual: h.StrokeIndex, Expected: "permutation of 1..18"}
		}
		seen[h.StrokeIndex] = true
	}
	return info, nil
}

// ID returns the game id.
func (g *Game) ID() string { return g.id }

// points builds the cumulative standings map the guards take.
func (g *Game) points() map[PlayerID]int {
	pts := make(map[PlayerID]int, len(g.players))
	for _, p := range g.players {
		pts[p.ID] = p.Points
	}
	return pts
}

// hittingOrderFor rotates captaincy by one position per hole.
func (g *Game) hittingOrderFor(hole int) []PlayerID {
	n := len(g.baseOrder)
	shift := (hole - 1) % n
	order := make([]PlayerID, 0, n)
	for i := 0; i < n; i++ {
		order = append(order, g.baseOrder[(shift+i)%n])
	}
	return order
}

// goat returns the player alone at the bottom of the standings, or "" on a
// tie.
func (g *Game) goat() PlayerID {
	pts := g.points()
	for _, p := range g.players {
		if isStrictlyTrailing(p.ID, pts) {
			return p.ID
		}
	}
	return ""
}

// naturalWager is the phase-derived base wager for a hole.
func (g *Game) naturalWager(hole int) int {
	if phaseForHole(hole, len(g.players)) >= PhaseVinnieVariation {
		return g.baseWager * 2
	}
	return g.baseWager
}

// openHole creates hole number n, applies carry-over and the automatic
// Option, publishes the start event and checkpoints. order overrides the
// rotation when the goat has chosen a position.
func (g *Game) openHole(n int, order []PlayerID) error {
	phase := phaseForHole(n, len(g.players))
	if phase < g.phase {
		return &StateConsistencyError{Invariant: "phase moves forward only", Detail: fmt.Sprintf("hole %d would regress to %s", n, phase)}
	}

	base := g.naturalWager(n)
	carried := false
	if g.nextCarried {
		base = g.nextWager
		carried = true
	}

	if order == nil {
		order = g.hittingOrderFor(n)
	}
	handicaps := make(map[PlayerID]float64, len(g.players))
	for _, p := range g.players {
		handicaps[p.ID] = p.Handicap
	}
	info := g.holesInfo[n-1]
	h, err := newHoleState(n, info.Par, info.StrokeIndex, info.Yardage, order, handicaps, base, carried)
	if err != nil {
		return err
	}

	g.holes[n-1] = h
	g.currentHole = n
	g.phase = phase
	g.nextWager = 0
	g.nextCarried = false

	// The Option: the wager auto-doubles when the acting captain is alone
	// at the bottom of the standings.
	if isStrictlyTrailing(h.Formation.Captain, g.points()) {
		h.Ladder.applyOption(h.Formation.Captain)
		g.publish(WagerChangedEvent{Hole: n, Kind: EventOption, By: h.Formation.Captain, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
	}

	g.logger.Debug("hole opened", "game", g.id, "hole", n, "phase", phase, "wager", h.Ladder.CurrentWager, "captain", h.Formation.Captain)
	g.publish(HoleStartEvent{
		Hole:         n,
		HittingOrder: append([]PlayerID(nil), order...),
		BaseWager:    base,
		CarriedOver:  carried,
		Phase:        phase,
		timestamp:    g.clock.Now(),
	})
	g.checkpoint()
	return nil
}

// current returns the active hole or an error when none is playable.
func (g *Game) current() (*HoleState, error) {
	if g.complete {
		return nil, NewRuleViolation(ReasonGameComplete, "the game is over")
	}
	if g.paused {
		return nil, NewRuleViolation(ReasonHoleNotComplete, "the game is paused")
	}
	h := g.holes[g.currentHole-1]
	if h == nil {
		return nil, &StateConsistencyError{Invariant: "current hole exists", Detail: fmt.Sprintf("hole %d missing", g.currentHole)}
	}
	return h, nil
}

func (g *Game) publish(ev GameEvent) {
	g.bus.Publish(ev)
}

// checkpoint saves a snapshot through the attached Saver, if any. Failures
// are logged, not fatal: the in-memory state is authoritative.
func (g *Game) checkpoint() {
	if g.saver == nil {
		return
	}
	if err := g.saver.Save(context.Background(), g.id, g.snapshotLocked()); err != nil {
		g.logger.Error("checkpoint failed", "game", g.id, "hole", g.currentHole, "error", err)
	}
}

// Snapshot exports the public game state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Game) snapshotLocked() Snapshot {
	snap := Snapshot{
		GameID:      g.id,
		Phase:       g.phase.String(),
		CurrentHole: g.currentHole,
		Complete:    g.complete,
		BaseWager:   g.baseWager,
		NextWager:   g.nextWager,
		NextCarried: g.nextCarried,
	}
	for _, p := range g.players {
		snap.Standings = append(snap.Standings, Standing{
			PlayerID:     p.ID,
			Name:         p.Name,
			Handicap:     p.Handicap,
			Points:       p.Points,
			FloatUsed:    p.FloatUsed,
			SoloAttempts: p.SoloAttempts,
		})
	}
	if g.currentHole >= 1 {
		h := g.holes[g.currentHole-1]
		hs := snapshotHole(h)
		if hs != nil && g.results[g.currentHole-1] != nil {
			hs.Result = g.results[g.currentHole-1]
		}
		snap.Hole = hs
	}
	return snap
}

// RequestPartner is the captain inviting a partner.
func (g *Game) RequestPartner(requester, target PlayerID) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanRequestPartner(h, requester, target); err != nil {
			return err
		}
		h.Formation.PendingPartner = &PartnerRequest{Requester: requester, Target: target}
		g.logger.Debug("partner requested", "game", g.id, "hole", h.Number, "captain", requester, "target", target)
		return nil
	})
}

// RespondToPartnership accepts or declines the open invitation. A decline
// forces the captain solo and doubles the wager.
func (g *Game) RespondToPartnership(responder PlayerID, accept bool) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanRespondToPartnership(h, responder); err != nil {
			return err
		}
		if accept {
			h.Formation.resolvePartners(responder, h.HittingOrder)
		} else {
			captain := h.Formation.Captain
			h.Formation.resolveSolo(SoloLoneWolf, h.HittingOrder)
			g.byID[captain].SoloAttempts++
			// The decline still resolves the formation after a ball is
			// holed, but the escalation is frozen with the wager.
			if !h.WageringClosed {
				h.Ladder.applyDeclinedPartnership(responder)
				g.publish(WagerChangedEvent{Hole: h.Number, Kind: EventPartnershipDeclined, By: responder, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
			}
		}
		g.publishFormation(h)
		return nil
	})
}

// DeclareSolo is the captain electing to play alone, optionally via the
// Duncan, the Tunkarri or (on 18 only) the Big Dick. The wager doubles.
func (g *Game) DeclareSolo(captain PlayerID, variant SoloVariant) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanDeclareSolo(h, captain, variant); err != nil {
			return err
		}
		h.Formation.resolveSolo(variant, h.HittingOrder)
		g.byID[captain].SoloAttempts++
		if !h.WageringClosed {
			h.Ladder.applySolo(variant, captain)
			g.publish(WagerChangedEvent{Hole: h.Number, Kind: h.Ladder.History[len(h.Ladder.History)-1].Kind, By: captain, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
		}
		g.publishFormation(h)
		return nil
	})
}

// AardvarkRequestTeam is a trailing hitter asking to join a side.
func (g *Game) AardvarkRequestTeam(aardvark PlayerID, side int) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanRequestAardvarkTeam(h, aardvark, side); err != nil {
			return err
		}
		h.Formation.PendingAardvark = &AardvarkRequest{Aardvark: aardvark, Side: side}
		return nil
	})
}

// RespondToAardvark accepts the open aardvark request or tosses the aardvark
// to the other side, doubling the wager. A repeat toss is the explicit
// ping-pong invocation and doubles again.
func (g *Game) RespondToAardvark(responder PlayerID, accept bool, pingPong bool) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanRespondToAardvark(h, responder, !accept, pingPong); err != nil {
			return err
		}
		req := h.Formation.PendingAardvark
		if accept {
			h.Formation.placeAardvark(req.Aardvark, req.Side)
			if h.Formation.Resolved() {
				g.publishFormation(h)
			}
			return nil
		}
		h.Ladder.applyToss(req.Side, req.Aardvark, pingPong)
		kind := EventAardvarkToss
		if pingPong {
			kind = EventPingPong
		}
		g.publish(WagerChangedEvent{Hole: h.Number, Kind: kind, By: req.Aardvark, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
		// The toss forces the aardvark onto the other side, pending that
		// side's acceptance or ping-pong.
		h.Formation.PendingAardvark = &AardvarkRequest{Aardvark: req.Aardvark, Side: 1 - req.Side}
		return nil
	})
}

// OfferDouble opens a double (or redouble, or Hoepfinger flush) from the
// initiating player's side.
func (g *Game) OfferDouble(by PlayerID) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanOfferDouble(h, by, g.phase); err != nil {
			return err
		}
		h.Ladder.offerDouble(by, h.Formation.SideOf(by))
		g.logger.Debug("double offered", "game", g.id, "hole", h.Number, "by", by, "wager", h.Ladder.CurrentWager)
		return nil
	})
}

// RespondToDouble resolves the open offer. Acceptance doubles the wager;
// players named in gambitOptOuts take Ackerley's Gambit and forfeit only
// their own stake. A decline (or a full-side opt-out) ends the hole
// immediately as a win for the offering side at the pre-double wager.
func (g *Game) RespondToDouble(responder PlayerID, accept bool, gambitOptOuts []PlayerID) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanRespondToDouble(h, responder, gambitOptOuts); err != nil {
			return err
		}
		offer := h.Ladder.Pending
		if accept && len(gambitOptOuts) < len(countingMembers(h, offer.RespondingSide)) {
			h.Ladder.acceptDouble(gambitOptOuts)
			g.publish(WagerChangedEvent{Hole: h.Number, Kind: h.Ladder.History[len(h.Ladder.History)-1].Kind, By: responder, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
			return nil
		}
		declined := h.Ladder.declineDouble()
		h.forcedWinner = declined.OfferingSide
		h.forcedWager = declined.WagerBefore
		h.Complete = true
		h.WageringClosed = true
		return g.settleCurrent(h)
	})
}

// InvokeFloat is the captain's once-per-game base double.
func (g *Game) InvokeFloat(by PlayerID) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		p, ok := g.byID[by]
		if !ok {
			return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "registered player"}
		}
		if err := CanInvokeFloat(h, by, p.FloatUsed); err != nil {
			return err
		}
		h.Ladder.applyFloat(by)
		p.FloatUsed = true
		g.publish(WagerChangedEvent{Hole: h.Number, Kind: EventFloat, By: by, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
		return nil
	})
}

// InvokeOption is the trailing captain pressing the option mid-hole.
func (g *Game) InvokeOption(by PlayerID) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanInvokeOption(h, by, g.points()); err != nil {
			return err
		}
		h.Ladder.applyOptionPress(by)
		g.publish(WagerChangedEvent{Hole: h.Number, Kind: EventOption, By: by, Wager: h.Ladder.CurrentWager, timestamp: g.clock.Now()})
		return nil
	})
}

// SetJoesSpecial lets the goat fix the hole's base wager before play during
// the Hoepfinger: 2, 4, 8, or the carried-over value if larger.
func (g *Game) SetJoesSpecial(by PlayerID, value int) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanSetJoesSpecial(h, by, g.phase, g.points(), value); err != nil {
			return err
		}
		h.Ladder.applyJoesSpecial(value, by)
		g.publish(WagerChangedEvent{Hole: h.Number, Kind: EventJoesSpecial, By: by, Wager: value, timestamp: g.clock.Now()})
		return nil
	})
}

// SetHoepfingerPosition lets the goat choose their hitting position before
// the hole is underway. The same position may not be taken two Hoepfinger
// holes in a row.
func (g *Game) SetHoepfingerPosition(by PlayerID, position int) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if g.phase != PhaseHoepfinger {
			return NewRuleViolation(ReasonWrongPhase, "positions are chosen only in the Hoepfinger")
		}
		if !isTrailing(by, g.points()) {
			return NewRuleViolation(ReasonNotTrailing, "%s is not the goat", by)
		}
		if h.Formation.Kind != FormationPending || len(h.Balls) > 0 || h.Formation.PendingPartner != nil {
			return NewRuleViolation(ReasonHoleInProgress, "the hole is already underway")
		}
		if position < 1 || position > len(g.players) {
			return &ValidationError{Code: ReasonPositionTaken, Field: "position", Actual: position, Expected: fmt.Sprintf("1..%d", len(g.players))}
		}
		p := g.byID[by]
		if n := len(p.HoepfingerPositions); n > 0 && p.HoepfingerPositions[n-1] == position {
			return NewRuleViolation(ReasonPositionTaken, "%s chose position %d last hole", by, position)
		}

		order := make([]PlayerID, 0, len(g.players))
		for _, id := range h.HittingOrder {
			if id != by {
				order = append(order, id)
			}
		}
		order = append(order[:position-1], append([]PlayerID{by}, order[position-1:]...)...)

		// Rebuild the hole with the chosen order; the ladder state set so
		// far (carry-over, Joe's Special) survives.
		ladder := h.Ladder
		replacement, err := newHoleState(h.Number, h.Par, h.StrokeIndex, h.Yardage, order, g.handicaps(), ladder.BaseWager, ladder.CarriedOver)
		if err != nil {
			return err
		}
		replacement.Ladder = ladder

		// The Option follows the captaincy: strip the auto double when the
		// new leadoff player is not alone at the bottom, apply it when they
		// are.
		newCaptain := replacement.Formation.Captain
		trailing := isStrictlyTrailing(newCaptain, g.points())
		switch {
		case ladder.OptionInvoked && !trailing:
			ladder.retractOption()
			g.publish(WagerChangedEvent{Hole: h.Number, Kind: EventOption, By: newCaptain, Wager: ladder.CurrentWager, timestamp: g.clock.Now()})
		case !ladder.OptionInvoked && trailing:
			ladder.applyOption(newCaptain)
			g.publish(WagerChangedEvent{Hole: h.Number, Kind: EventOption, By: newCaptain, Wager: ladder.CurrentWager, timestamp: g.clock.Now()})
		}

		g.holes[h.Number-1] = replacement
		p.HoepfingerPositions = append(p.HoepfingerPositions, position)
		return nil
	})
}

// ApplyShot applies one stroke, recomputes turn order and completion, and
// settles the hole when the last ball finishes.
func (g *Game) ApplyShot(shot Shot) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		// Settlement needs settled teams; refuse the hole-ending shot
		// rather than leave a completed hole that cannot settle.
		if !h.Formation.Resolved() && h.wouldComplete(shot) {
			return NewRuleViolation(ReasonFormationPending, "teams must settle before the hole can finish")
		}
		if err := h.applyShot(shot); err != nil {
			return err
		}
		g.publish(ShotEvent{
			Hole:      h.Number,
			Player:    shot.Player,
			Ball:      *h.Balls[shot.Player],
			NextToHit: h.NextPlayerToHit(),
			timestamp: g.clock.Now(),
		})
		if h.Complete {
			if err := h.applyGrossScores(h.shotScores()); err != nil {
				return err
			}
			return g.settleCurrent(h)
		}
		return nil
	})
}

// ConcedeBall finishes an opponent's ball without another swing; the
// conceded stroke counts toward the gross score. Conceding the last live
// ball completes and settles the hole.
func (g *Game) ConcedeBall(by, target PlayerID) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if err := CanConcedeBall(h, by, target); err != nil {
			return err
		}
		h.concede(target)
		g.logger.Debug("ball conceded", "game", g.id, "hole", h.Number, "by", by, "target", target)
		if h.Complete {
			if err := h.applyGrossScores(h.shotScores()); err != nil {
				return err
			}
			return g.settleCurrent(h)
		}
		return nil
	})
}

// EnterHoleScores records gross scores for every player, completing and
// settling the hole.
func (g *Game) EnterHoleScores(scores map[PlayerID]int) (Snapshot, error) {
	return g.command(func(h *HoleState) error {
		if g.results[h.Number-1] != nil {
			return NewRuleViolation(ReasonHoleComplete, "hole %d is already settled", h.Number)
		}
		if !h.Formation.Resolved() {
			return NewRuleViolation(ReasonFormationPending, "teams are not settled")
		}
		if err := h.applyGrossScores(scores); err != nil {
			return err
		}
		return g.settleCurrent(h)
	})
}

// AdvanceToNextHole opens the next hole once the current one is settled, or
// finishes the game after the 18th.
func (g *Game) AdvanceToNextHole() (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.complete {
		return g.snapshotLocked(), NewRuleViolation(ReasonGameComplete, "the game is over")
	}
	if g.results[g.currentHole-1] == nil {
		return g.snapshotLocked(), NewRuleViolation(ReasonHoleNotComplete, "hole %d is not settled", g.currentHole)
	}
	g.paused = false

	if g.currentHole == 18 {
		g.complete = true
		snap := g.snapshotLocked()
		g.publish(GameCompleteEvent{Standings: snap.Standings, timestamp: g.clock.Now()})
		g.checkpoint()
		g.logger.Info("game complete", "game", g.id)
		return snap, nil
	}

	next := g.currentHole + 1
	var order []PlayerID
	if phaseForHole(next, len(g.players)) == PhaseHoepfinger {
		// The goat leads off by default; SetHoepfingerPosition can move
		// them before play starts.
		if goat := g.goat(); goat != "" {
			order = append([]PlayerID{goat}, withoutPlayer(g.hittingOrderFor(next), goat)...)
		}
	}
	if err := g.openHole(next, order); err != nil {
		return g.snapshotLocked(), err
	}
	return g.snapshotLocked(), nil
}

// Pause stops play between holes; commands fail until the game advances.
func (g *Game) Pause() (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.results[g.currentHole-1] == nil {
		return g.snapshotLocked(), NewRuleViolation(ReasonHoleInProgress, "a game may only pause between holes")
	}
	g.paused = true
	return g.snapshotLocked(), nil
}

// settleCurrent runs settlement for a completed hole, applies the deltas and
// records the result. Called with the lock held.
func (g *Game) settleCurrent(h *HoleState) error {
	result, err := settleHole(h, g.points())
	if err != nil {
		return err
	}
	for id, delta := range result.Deltas {
		g.byID[id].Points += delta
	}
	g.results[h.Number-1] = result
	if result.Halved {
		g.nextWager = result.CarryWager
		g.nextCarried = true
	}
	g.logger.Info("hole settled", "game", g.id, "hole", h.Number, "halved", result.Halved, "wager", result.FinalWager)
	g.publish(HoleCompleteEvent{Hole: h.Number, Result: result, timestamp: g.clock.Now()})
	g.checkpoint()
	return nil
}

// Results returns the settled per-hole results so far, indexed by hole-1.
func (g *Game) Results() []*HoleResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*HoleResult, 18)
	copy(out, g.results[:])
	return out
}

// Complete reports whether all 18 holes have been settled.
func (g *Game) Complete() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.complete
}

// command runs one mutation under the game lock and returns the resulting
// snapshot. The mutation either fully applies or returns an error having
// touched nothing.
func (g *Game) command(fn func(h *HoleState) error) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	h, err := g.current()
	if err != nil {
		return g.snapshotLocked(), err
	}
	if err := fn(h); err != nil {
		return g.snapshotLocked(), err
	}
	return g.snapshotLocked(), nil
}

func (g *Game) publishFormation(h *HoleState) {
	if h.Formation.Resolved() {
		g.publish(TeamsFormedEvent{
			Hole:      h.Number,
			Kind:      h.Formation.Kind,
			Sides:     cloneSides(h.Formation.Sides),
			timestamp: g.clock.Now(),
		})
	}
}

func (g *Game) handicaps() map[PlayerID]float64 {
	m := make(map[PlayerID]float64, len(g.players))
	for _, p := range g.players {
		m[p.ID] = p.Handicap
	}
	return m
}

func withoutPlayer(order []PlayerID, id PlayerID) []PlayerID {
	out := make([]PlayerID, 0, len(order))
	for _, p := range order {
		if p != id {
			out = append(out, p)
		}
	}
	return out
}
