package game

import "sort"

// HoleResult is the settled outcome of one hole.
type HoleResult struct {
	HoleNumber  int
	Halved      bool
	WinningSide int // -1 when halved
	FinalWager  int
	ThreeForTwo bool

	// Deltas are the signed point movements, one entry per player with a
	// non-zero movement. They always sum to zero.
	Deltas map[PlayerID]int

	// CarryWager is the wager the next hole inherits when this one halves.
	CarryWager int

	// SideNets are the best-ball net scores per side in half-stroke units,
	// absent when the hole resolved on a declined double.
	SideNets [2]int
}

// settleHole converts a completed hole plus cumulative standings into point
// deltas. It reads state and never mutates it; the orchestrator applies the
// deltas afterwards.
func settleHole(h *HoleState, points map[PlayerID]int) (*HoleResult, error) {
	if !h.Complete {
		return nil, NewRuleViolation(ReasonHoleNotComplete, "hole %d is still in play", h.Number)
	}
	if !h.Formation.Resolved() {
		return nil, NewRuleViolation(ReasonFormationPending, "teams never settled on hole %d", h.Number)
	}

	res := &HoleResult{
		HoleNumber:  h.Number,
		WinningSide: -1,
		FinalWager:  h.Ladder.CurrentWager,
		ThreeForTwo: h.Ladder.ThreeForTwo,
		Deltas:      make(map[PlayerID]int),
	}

	if h.forcedWinner >= 0 {
		// A declined double: the offering side wins at the pre-double wager.
		res.WinningSide = h.forcedWinner
		res.FinalWager = h.forcedWager
		if err := res.settleTransfer(h, points); err != nil {
			return nil, err
		}
		return res, nil
	}

	for side := range h.Formation.Sides {
		net, err := sideNetHalves(h, side)
		if err != nil {
			return nil, err
		}
		res.SideNets[side] = net
	}

	if res.SideNets[0] == res.SideNets[1] {
		res.Halved = true
		res.CarryWager = h.Ladder.carryOverWager()
		res.settleGambitOnly(h, points)
		return res, nil
	}
	if res.SideNets[0] < res.SideNets[1] {
		res.WinningSide = 0
	} else {
		res.WinningSide = 1
	}
	if err := res.settleTransfer(h, points); err != nil {
		return nil, err
	}
	return res, nil
}

// sideNetHalves is the best-ball net for a side in half-stroke units. Gambit
// opt-outs no longer count for their side.
func sideNetHalves(h *HoleState, side int) (int, error) {
	best := 0
	found := false
	for _, id := range h.Formation.Sides[side] {
		if _, out := h.Ladder.GambitOptOuts[id]; out {
			continue
		}
		net := h.netHalves(id)
		if !found || net < best {
			best = net
			found = true
		}
	}
	if !found {
		return 0, &StateConsistencyError{Invariant: "side has a counting score", Detail: "every player on a side opted out"}
	}
	return best, nil
}

// settleTransfer apportions the stake between the two sides and the locked
// gambit stakes, then verifies the zero-sum invariant.
func (res *HoleResult) settleTransfer(h *HoleState, points map[PlayerID]int) error {
	winSide := res.WinningSide
	loseSide := 1 - winSide

	winners := countingMembers(h, winSide)
	losers := countingMembers(h, loseSide)
	if len(winners) == 0 || len(losers) == 0 {
		return &StateConsistencyError{Invariant: "both sides have counting players", Detail: "a side emptied before settlement"}
	}

	stake := res.FinalWager * len(losers)
	if res.ThreeForTwo && h.Formation.Kind == FormationSolo && winSide == 0 {
		// Duncan/Tunkarri pay 3 for 2: the winning soloist's side collects
		// half again, funded by the losers so the hole still sums to zero.
		stake = stake * 3 / 2
	}

	for id, share := range apportion(stake, winners, points) {
		res.Deltas[id] += share
	}
	for id, share := range apportion(stake, losers, points) {
		res.Deltas[id] -= share
	}

	res.settleGambitOnly(h, points)

	sum := 0
	for _, d := range res.Deltas {
		sum += d
	}
	if sum != 0 {
		return &StateConsistencyError{Invariant: "hole deltas sum to zero", Detail: "settlement imbalance"}
	}
	return nil
}

// settleGambitOnly moves each opt-out's locked stake to the opposite side.
// Opt-outs forfeit regardless of the hole's outcome; the transfer balances
// within the hole, so halved holes stay zero-sum too.
func (res *HoleResult) settleGambitOnly(h *HoleState, points map[PlayerID]int) {
	for id, locked := range h.Ladder.GambitOptOuts {
		side := h.Formation.SideOf(id)
		if side < 0 {
			continue
		}
		beneficiaries := countingMembers(h, 1-side)
		if len(beneficiaries) == 0 {
			continue
		}
		res.Deltas[id] -= locked
		for bid, share := range apportion(locked, beneficiaries, points) {
			res.Deltas[bid] += share
		}
	}
}

// countingMembers returns the members of a side still in the wager.
func countingMembers(h *HoleState, side int) []PlayerID {
	var out []PlayerID
	for _, id := range h.Formation.Sides[side] {
		if _, opted := h.Ladder.GambitOptOuts[id]; !opted {
			out = append(out, id)
		}
	}
	return out
}

// apportion splits total across members as evenly as integer arithmetic
// allows. The remainder lands on the members with the highest cumulative
// totals first (the Karl Marx rule: players further in debt receive the
// smaller shares), ties broken by stable input order.
func apportion(total int, members []PlayerID, points map[PlayerID]int) map[PlayerID]int {
	n := len(members)
	shares := make(map[PlayerID]int, n)
	if n == 0 {
		return shares
	}
	base := total / n
	rem := total % n

	ranked := append([]PlayerID(nil), members...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return points[ranked[i]] > points[ranked[j]]
	})

	for _, id := range members {
		shares[id] = base
	}
	for i := 0; i < rem; i++ {
		shares[ranked[i]]++
	}
	return shares
}
