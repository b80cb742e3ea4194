package game

import (
	"sort"
)

// HoleStatus is the lifecycle of a single hole.
type HoleStatus int

const (
	HoleAwaitingTeams HoleStatus = iota
	HoleInPlay
	HoleComplete
)

func (s HoleStatus) String() string {
	return [...]string{"awaiting_teams", "in_play", "complete"}[s]
}

// Shot is one stroke to apply to a hole.
type Shot struct {
	Player        PlayerID
	DistanceToPin float64
	Lie           Lie
	Made          bool
	Penalty       int
}

// HoleState owns everything about one hole: the frozen hitting order, the
// team formation, the betting ladder, ball positions and stroke allowances.
// It is exclusively owned while active and read-only once complete.
type HoleState struct {
	Number      int
	Par         int
	StrokeIndex int
	Yardage     int

	// HittingOrder is snapshotted at hole start and never changes.
	HittingOrder []PlayerID

	Formation *TeamFormation
	Ladder    *BettingLadder

	Balls       map[PlayerID]*BallPosition
	Allowances  map[PlayerID]StrokeAllowance
	GrossScores map[PlayerID]int

	Complete       bool
	WageringClosed bool

	// forcedWinner is set when a declined double resolves the hole for the
	// offering side without scores; -1 otherwise.
	forcedWinner int
	forcedWager  int

	allowanceHalves map[PlayerID]int
}

// newHoleState builds a hole with stroke allowances precomputed for every
// player in the hitting order.
func newHoleState(number, par, strokeIndex, yardage int, order []PlayerID, handicaps map[PlayerID]float64, baseWager int, carried bool) (*HoleState, error) {
	h := &HoleState{
		Number:          number,
		Par:             par,
		StrokeIndex:     strokeIndex,
		Yardage:         yardage,
		HittingOrder:    append([]PlayerID(nil), order...),
		Formation:       newTeamFormation(order),
		Ladder:          newBettingLadder(baseWager, carried),
		Balls:           make(map[PlayerID]*BallPosition),
		Allowances:      make(map[PlayerID]StrokeAllowance),
		GrossScores:     make(map[PlayerID]int),
		allowanceHalves: make(map[PlayerID]int),
		forcedWinner:    -1,
	}
	for _, id := range order {
		hc := handicaps[id]
		halves, err := strokesHalves(hc, strokeIndex)
		if err != nil {
			return nil, err
		}
		h.allowanceHalves[id] = halves
		h.Allowances[id] = StrokeAllowance{PlayerID: id, Handicap: hc, Strokes: float64(halves) / 2}
	}
	return h, nil
}

// Status derives the lifecycle state.
func (h *HoleState) Status() HoleStatus {
	switch {
	case h.Complete:
		return HoleComplete
	case h.Formation.Resolved():
		return HoleInPlay
	default:
		return HoleAwaitingTeams
	}
}

func (h *HoleState) knownPlayer(id PlayerID) bool {
	for _, p := range h.HittingOrder {
		if p == id {
			return true
		}
	}
	return false
}

// hasHit reports whether a player has struck at least one shot this hole.
func (h *HoleState) hasHit(id PlayerID) bool {
	b, ok := h.Balls[id]
	return ok && b.ShotCount > 0
}

// allTeeShotsTaken is the partnership deadline: once every player in the
// hitting order has hit a tee shot, no new partnership may form.
func (h *HoleState) allTeeShotsTaken() bool {
	for _, id := range h.HittingOrder {
		if !h.hasHit(id) {
			return false
		}
	}
	return true
}

// followerHasHit reports whether the player immediately following id in the
// hitting order has struck a shot, which ends id's partner eligibility.
func (h *HoleState) followerHasHit(id PlayerID) bool {
	for i, p := range h.HittingOrder {
		if p == id && i+1 < len(h.HittingOrder) {
			return h.hasHit(h.HittingOrder[i+1])
		}
	}
	return false
}

// activeBalls returns non-finished balls sorted by descending distance to
// pin, ties broken by hitting order.
func (h *HoleState) activeBalls() []*BallPosition {
	balls := make([]*BallPosition, 0, len(h.Balls))
	for _, id := range h.HittingOrder {
		if b, ok := h.Balls[id]; ok && !b.Finished() {
			balls = append(balls, b)
		}
	}
	sort.SliceStable(balls, func(i, j int) bool {
		return balls[i].DistanceToPin > balls[j].DistanceToPin
	})
	return balls
}

// LineOfScrimmage returns the ball currently farthest from the pin, or nil
// when no ball is in play.
func (h *HoleState) LineOfScrimmage() *BallPosition {
	balls := h.activeBalls()
	if len(balls) == 0 {
		return nil
	}
	return balls[0]
}

// TurnOrder derives who hits next: players still to tee off first, in
// hitting order, then active balls farthest-first.
func (h *HoleState) TurnOrder() []PlayerID {
	var order []PlayerID
	for _, id := range h.HittingOrder {
		if _, ok := h.Balls[id]; !ok {
			order = append(order, id)
		}
	}
	for _, b := range h.activeBalls() {
		order = append(order, b.PlayerID)
	}
	return order
}

// NextPlayerToHit returns the head of the derived turn order, or "" when the
// hole has no shot left to play.
func (h *HoleState) NextPlayerToHit() PlayerID {
	order := h.TurnOrder()
	if len(order) == 0 {
		return ""
	}
	return order[0]
}

// applyShot validates and applies one stroke as a single atomic step:
// position update, wagering-closed latch, turn-order and completion
// re-derivation. Nothing mutates if validation fails.
func (h *HoleState) applyShot(s Shot) error {
	if h.Complete {
		return NewRuleViolation(ReasonHoleComplete, "hole %d is complete", h.Number)
	}
	if !h.knownPlayer(s.Player) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: s.Player, Expected: "player in hitting order"}
	}
	if s.DistanceToPin < 0 {
		return &ValidationError{Code: ReasonInvalidScore, Field: "distance_to_pin", Actual: s.DistanceToPin, Expected: ">= 0"}
	}
	if s.Penalty < 0 {
		return &ValidationError{Code: ReasonInvalidScore, Field: "penalty", Actual: s.Penalty, Expected: ">= 0"}
	}
	if b, ok := h.Balls[s.Player]; ok && b.Finished() {
		return NewRuleViolation(ReasonBallFinished, "player %s has no ball in play", s.Player)
	}

	b, ok := h.Balls[s.Player]
	if !ok {
		b = &BallPosition{PlayerID: s.Player, DistanceToPin: float64(h.Yardage), Lie: LieTee}
		h.Balls[s.Player] = b
	}

	b.ShotCount++
	b.PenaltyStrokes += s.Penalty
	if s.Made {
		b.Holed = true
		b.DistanceToPin = 0
		b.Lie = LieHoled
		// Latched for the rest of the hole.
		h.WageringClosed = true
	} else {
		b.DistanceToPin = s.DistanceToPin
		b.Lie = s.Lie
	}

	h.refreshCompletion()
	return nil
}

// wouldComplete reports whether applying this shot would finish the hole:
// every other ball is finished and the shot holes out or reaches the cap.
func (h *HoleState) wouldComplete(s Shot) bool {
	for _, id := range h.HittingOrder {
		if id == s.Player {
			continue
		}
		b, ok := h.Balls[id]
		if !ok || !b.Finished() {
			return false
		}
	}
	count := 0
	if b, ok := h.Balls[s.Player]; ok {
		count = b.ShotCount
	}
	return s.Made || count+1 >= MaxShotsPerHole
}

// refreshCompletion marks the hole complete once every hitting-order player
// is holed out, conceded, or capped.
func (h *HoleState) refreshCompletion() {
	for _, id := range h.HittingOrder {
		b, ok := h.Balls[id]
		if !ok || !b.Finished() {
			return
		}
	}
	h.Complete = true
}

// concede finishes a ball without another swing.
func (h *HoleState) concede(id PlayerID) {
	h.Balls[id].Conceded = true
	h.refreshCompletion()
}

// shotScores converts played balls into gross scores: shots plus penalties,
// plus the conceded stroke for a picked-up ball.
func (h *HoleState) shotScores() map[PlayerID]int {
	scores := make(map[PlayerID]int, len(h.Balls))
	for id, b := range h.Balls {
		gross := b.ShotCount + b.PenaltyStrokes
		if b.Conceded {
			gross++
		}
		scores[id] = gross
	}
	return scores
}

// applyGrossScores validates and records entered scores, completing the
// hole. All-or-nothing: a missing or invalid entry leaves the hole as it was.
func (h *HoleState) applyGrossScores(scores map[PlayerID]int) error {
	if h.Complete && len(h.GrossScores) > 0 {
		return NewRuleViolation(ReasonHoleComplete, "scores already entered for hole %d", h.Number)
	}
	for id := range scores {
		if !h.knownPlayer(id) {
			return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: id, Expected: "player in hitting order"}
		}
	}
	for _, id := range h.HittingOrder {
		gross, ok := scores[id]
		if !ok {
			return &ValidationError{Code: ReasonMissingScore, Field: "scores", Actual: id, Expected: "gross score for every player"}
		}
		if gross <= 0 {
			return &ValidationError{Code: ReasonInvalidScore, Field: "scores", Actual: gross, Expected: "positive gross score"}
		}
	}
	for _, id := range h.HittingOrder {
		h.GrossScores[id] = scores[id]
	}
	h.Complete = true
	h.WageringClosed = true
	return nil
}

// netHalves returns a player's net score in half-stroke units.
func (h *HoleState) netHalves(id PlayerID) int {
	return h.GrossScores[id]*2 - h.allowanceHalves[id]
}
