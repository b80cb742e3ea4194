package game

// Pure betting and formation guards. Every function here is a predicate over
// an immutable snapshot of hole state plus explicit context; none of them
// mutate anything. Callers apply mutations only after the guard passes.

// CanRequestPartner checks a captain's partnership invitation.
func CanRequestPartner(h *HoleState, requester, target PlayerID) error {
	if !h.knownPlayer(requester) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "requester", Actual: requester, Expected: "player in hitting order"}
	}
	if !h.knownPlayer(target) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "target", Actual: target, Expected: "player in hitting order"}
	}
	if requester == target {
		return NewRuleViolation(ReasonSelfPartner, "%s cannot partner with themselves", requester)
	}
	if requester != h.Formation.Captain {
		return NewRuleViolation(ReasonNotCaptain, "%s is not the captain", requester)
	}
	if h.Formation.Kind != FormationPending {
		return NewRuleViolation(ReasonFormationSet, "teams are already %s", h.Formation.Kind)
	}
	if h.Formation.PendingPartner != nil {
		return NewRuleViolation(ReasonRequestPending, "a partnership request is already open")
	}
	if h.allTeeShotsTaken() {
		return NewRuleViolation(ReasonDeadlinePassed, "partnership deadline passed")
	}
	if h.Formation.isAardvark(target, h.HittingOrder) {
		return NewRuleViolation(ReasonPartnerIneligible, "%s negotiates as an aardvark", target)
	}
	if h.followerHasHit(target) {
		return NewRuleViolation(ReasonPartnerIneligible, "the player after %s has already hit", target)
	}
	return nil
}

// CanRespondToPartnership checks that responder holds the open invitation.
func CanRespondToPartnership(h *HoleState, responder PlayerID) error {
	req := h.Formation.PendingPartner
	if req == nil {
		return NewRuleViolation(ReasonNoPendingRequest, "no partnership request is open")
	}
	if responder != req.Target {
		return NewRuleViolation(ReasonNoPendingRequest, "request is addressed to %s", req.Target)
	}
	return nil
}

// CanDeclareSolo checks a captain's solo declaration, including the variant
// windows: the Big Dick is only available on the final hole. Solo stays legal
// after the partnership deadline so an unresolved hole always has an exit.
func CanDeclareSolo(h *HoleState, captain PlayerID, variant SoloVariant) error {
	if !h.knownPlayer(captain) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "captain", Actual: captain, Expected: "player in hitting order"}
	}
	if captain != h.Formation.Captain {
		return NewRuleViolation(ReasonNotCaptain, "%s is not the captain", captain)
	}
	if h.Formation.Kind != FormationPending {
		return NewRuleViolation(ReasonFormationSet, "teams are already %s", h.Formation.Kind)
	}
	if h.Formation.PendingPartner != nil {
		return NewRuleViolation(ReasonRequestPending, "a partnership request is already open")
	}
	if variant == SoloBigDick && h.Number != 18 {
		return NewRuleViolation(ReasonSoloVariantWrongHole, "the Big Dick is only available on hole 18")
	}
	return nil
}

// CanOfferDouble checks a double, redouble or flush offer, including the
// line-of-scrimmage timing rule: only a player whose ball is not closer to
// the pin than the farthest ball in play may initiate.
func CanOfferDouble(h *HoleState, by PlayerID, phase Phase) error {
	if !h.knownPlayer(by) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "player in hitting order"}
	}
	if !h.Formation.Resolved() {
		return NewRuleViolation(ReasonFormationPending, "teams are not settled")
	}
	if h.WageringClosed {
		return NewRuleViolation(ReasonWageringClosed, "wagering closed")
	}
	if h.Ladder.Pending != nil {
		return NewRuleViolation(ReasonDoublePending, "a double offer is already open")
	}
	if h.Formation.SideOf(by) < 0 {
		return NewRuleViolation(ReasonNotOnSide, "%s is not on a side", by)
	}
	if h.Ladder.Doubled {
		if h.Ladder.Flushed {
			return NewRuleViolation(ReasonAlreadyRedoubled, "the ladder is exhausted for this hole")
		}
		if h.Ladder.Redoubled && phase != PhaseHoepfinger {
			return NewRuleViolation(ReasonAlreadyRedoubled, "a flush is only available in the Hoepfinger")
		}
	}
	if los := h.LineOfScrimmage(); los != nil {
		if b, ok := h.Balls[by]; ok && !b.Finished() && b.DistanceToPin < los.DistanceToPin {
			return NewRuleViolation(ReasonBehindScrimmage, "%s is inside the line of scrimmage", by)
		}
	}
	return nil
}

// CanRespondToDouble checks a response to the open offer, including the
// Ackerley's Gambit opt-out roster.
func CanRespondToDouble(h *HoleState, responder PlayerID, optOuts []PlayerID) error {
	offer := h.Ladder.Pending
	if offer == nil {
		return NewRuleViolation(ReasonNoPendingDouble, "no double offer is open")
	}
	if h.WageringClosed {
		return NewRuleViolation(ReasonWageringClosed, "wagering closed")
	}
	if h.Formation.SideOf(responder) != offer.RespondingSide {
		return NewRuleViolation(ReasonNotResponder, "%s is not on the responding side", responder)
	}
	for _, id := range optOuts {
		if h.Formation.SideOf(id) != offer.RespondingSide {
			return NewRuleViolation(ReasonGambitNotResponding, "%s is not on the responding side", id)
		}
	}
	return nil
}

// CanInvokeFloat checks the captain's once-per-game Float.
func CanInvokeFloat(h *HoleState, by PlayerID, floatUsed bool) error {
	if !h.knownPlayer(by) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "player in hitting order"}
	}
	if by != h.Formation.Captain {
		return NewRuleViolation(ReasonNotCaptain, "only the captain may float")
	}
	if floatUsed {
		return NewRuleViolation(ReasonFloatUsed, "%s has already used the float this game", by)
	}
	if h.WageringClosed {
		return NewRuleViolation(ReasonWageringClosed, "wagering closed")
	}
	if h.Ladder.FloatInvoked {
		return NewRuleViolation(ReasonFloatUsed, "the float is already active on this hole")
	}
	return nil
}

// CanInvokeOption checks the in-hole Option double: the acting captain may
// press only while holding the lowest cumulative total.
func CanInvokeOption(h *HoleState, by PlayerID, points map[PlayerID]int) error {
	if !h.knownPlayer(by) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "player in hitting order"}
	}
	if by != h.Formation.Captain {
		return NewRuleViolation(ReasonNotCaptain, "only the captain holds the option")
	}
	if h.WageringClosed {
		return NewRuleViolation(ReasonWageringClosed, "wagering closed")
	}
	if h.Ladder.OptionReinvoked {
		return NewRuleViolation(ReasonAlreadyDoubled, "the option has already been pressed this hole")
	}
	if !isStrictlyTrailing(by, points) {
		return NewRuleViolation(ReasonOptionNotTrailing, "%s does not hold the lowest total", by)
	}
	return nil
}

// CanSetJoesSpecial checks the goat's pre-hole wager override.
func CanSetJoesSpecial(h *HoleState, by PlayerID, phase Phase, points map[PlayerID]int, value int) error {
	if !h.knownPlayer(by) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "player in hitting order"}
	}
	if phase != PhaseHoepfinger {
		return NewRuleViolation(ReasonWrongPhase, "Joe's Special is a Hoepfinger rule")
	}
	if !isTrailing(by, points) {
		return NewRuleViolation(ReasonNotTrailing, "%s is not the goat", by)
	}
	if h.Formation.Kind != FormationPending || len(h.Balls) > 0 {
		return NewRuleViolation(ReasonHoleInProgress, "the hole is already underway")
	}
	if value != 2 && value != 4 && value != 8 {
		if !(h.Ladder.CarriedOver && value == h.Ladder.BaseWager && value > 8) {
			return &ValidationError{Code: ReasonInvalidWager, Field: "value", Actual: value, Expected: "2, 4, 8 or the carried-over wager"}
		}
	}
	return nil
}

// CanRequestAardvarkTeam checks a trailing hitter's request to join a side.
// The request itself moves no wager, so it stays legal after wagering closes;
// only the toss is barred then.
func CanRequestAardvarkTeam(h *HoleState, by PlayerID, side int) error {
	if !h.knownPlayer(by) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "player in hitting order"}
	}
	if side != 0 && side != 1 {
		return &ValidationError{Code: ReasonNotOnSide, Field: "side", Actual: side, Expected: "0 or 1"}
	}
	if h.Formation.Kind != FormationAardvarkPending {
		return NewRuleViolation(ReasonFormationPending, "no side is open to join")
	}
	found := false
	for _, id := range h.Formation.Unassigned {
		if id == by {
			found = true
		}
	}
	if !found {
		return NewRuleViolation(ReasonNotAardvark, "%s is not an unassigned aardvark", by)
	}
	if h.Formation.PendingAardvark != nil {
		return NewRuleViolation(ReasonRequestPending, "an aardvark request is already open")
	}
	return nil
}

// CanRespondToAardvark checks an accept or toss of the open aardvark
// request. A side may toss the same aardvark a second time only via the
// explicit ping-pong invocation; after that the cycle is exhausted.
func CanRespondToAardvark(h *HoleState, responder PlayerID, toss, pingPong bool) error {
	req := h.Formation.PendingAardvark
	if req == nil {
		return NewRuleViolation(ReasonNoPendingRequest, "no aardvark request is open")
	}
	if h.Formation.SideOf(responder) != req.Side {
		return NewRuleViolation(ReasonNotOnSide, "%s is not on the requested side", responder)
	}
	if !toss {
		return nil
	}
	if h.WageringClosed {
		return NewRuleViolation(ReasonWageringClosed, "wagering closed")
	}
	switch h.Ladder.tossCount(req.Side, req.Aardvark) {
	case 0:
		if pingPong {
			return NewRuleViolation(ReasonAlreadyTossed, "ping-pong requires a prior toss by this side")
		}
	case 1:
		if !pingPong {
			return NewRuleViolation(ReasonAlreadyTossed, "this side already tossed %s; invoke ping-pong to re-toss", req.Aardvark)
		}
	default:
		return NewRuleViolation(ReasonPingPongExhausted, "%s may not be tossed again", req.Aardvark)
	}
	return nil
}

// CanConcedeBall checks an opponent conceding the target's next stroke.
func CanConcedeBall(h *HoleState, by, target PlayerID) error {
	if !h.knownPlayer(by) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "player", Actual: by, Expected: "player in hitting order"}
	}
	if !h.knownPlayer(target) {
		return &ValidationError{Code: ReasonUnknownPlayer, Field: "target", Actual: target, Expected: "player in hitting order"}
	}
	if h.Complete {
		return NewRuleViolation(ReasonHoleComplete, "hole %d is complete", h.Number)
	}
	if !h.Formation.Resolved() {
		return NewRuleViolation(ReasonFormationPending, "teams are not settled")
	}
	if bySide := h.Formation.SideOf(by); bySide < 0 || bySide == h.Formation.SideOf(target) {
		return NewRuleViolation(ReasonNotOnSide, "only an opponent may concede %s's ball", target)
	}
	if b, ok := h.Balls[target]; !ok || b.Finished() {
		return NewRuleViolation(ReasonBallFinished, "%s has no ball in play", target)
	}
	return nil
}

// isTrailing reports whether id holds the (possibly shared) lowest total.
func isTrailing(id PlayerID, points map[PlayerID]int) bool {
	own, ok := points[id]
	if !ok {
		return false
	}
	for _, pts := range points {
		if pts < own {
			return false
		}
	}
	return true
}

// isStrictlyTrailing reports whether id is alone at the bottom of the
// standings. The Option never fires on a tie.
func isStrictlyTrailing(id PlayerID, points map[PlayerID]int) bool {
	own, ok := points[id]
	if !ok {
		return false
	}
	for other, pts := range points {
		if other != id && pts <= own {
			return false
		}
	}
	return true
}
