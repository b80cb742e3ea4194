package game

import "slices"

// FormationKind is the closed set of team formation states. A formation only
// ever moves forward: Pending -> AardvarkPending -> {Partners | Solo}, with
// the intermediate state skipped entirely in four-player games.
type FormationKind int

const (
	FormationPending FormationKind = iota
	FormationPartners
	FormationSolo
	FormationAardvarkPending
)

func (k FormationKind) String() string {
	return [...]string{"pending", "partners", "solo", "aardvark_pending"}[k]
}

// SoloVariant distinguishes the ways a captain can play alone.
type SoloVariant int

const (
	SoloLoneWolf SoloVariant = iota
	SoloDuncan
	SoloTunkarri
	SoloBigDick
)

func (v SoloVariant) String() string {
	return [...]string{"lone_wolf", "duncan", "tunkarri", "big_dick"}[v]
}

// PartnerRequest is an open partnership invitation from the captain.
type PartnerRequest struct {
	Requester PlayerID
	Target    PlayerID
}

// AardvarkRequest is an open request by a trailing hitter to join a side.
type AardvarkRequest struct {
	Aardvark PlayerID
	Side     int // index into TeamFormation.Sides
}

// TeamFormation is the negotiated team split for one hole. Once it reaches
// Partners or Solo it is frozen for the rest of the hole.
type TeamFormation struct {
	Kind    FormationKind
	Captain PlayerID
	Variant SoloVariant // meaningful only when Kind == FormationSolo

	// Sides[0] is the captain's side, Sides[1] the opponents.
	Sides [2][]PlayerID

	// Unassigned holds aardvarks that have not yet been placed on a side.
	Unassigned []PlayerID

	PendingPartner  *PartnerRequest
	PendingAardvark *AardvarkRequest

	// baseKind remembers whether the core group resolved to partners or
	// solo while aardvark placement is still open.
	baseKind FormationKind
}

// newTeamFormation starts negotiation for a hole. order is the frozen hitting
// order; in five and six player games the trailing one or two hitters are
// aardvarks and stay unassigned until they request a side.
func newTeamFormation(order []PlayerID) *TeamFormation {
	f := &TeamFormation{
		Kind:    FormationPending,
		Captain: order[0],
	}
	if n := len(order); n > MinPlayers {
		f.Unassigned = slices.Clone(order[MinPlayers:])
	}
	return f
}

// aardvarkCount returns how many trailing hitters negotiate as aardvarks.
func aardvarkCount(numPlayers int) int {
	if numPlayers > MinPlayers {
		return numPlayers - MinPlayers
	}
	return 0
}

// isAardvark reports whether id entered the hole as an aardvark (assigned or
// not).
func (f *TeamFormation) isAardvark(id PlayerID, order []PlayerID) bool {
	for _, a := range order[min(MinPlayers, len(order)):] {
		if a == id {
			return true
		}
	}
	return false
}

// Resolved reports whether the split is frozen.
func (f *TeamFormation) Resolved() bool {
	return f.Kind == FormationPartners || f.Kind == FormationSolo
}

// SideOf returns the side index holding id, or -1 if unassigned.
func (f *TeamFormation) SideOf(id PlayerID) int {
	for i, side := range f.Sides {
		if slices.Contains(side, id) {
			return i
		}
	}
	return -1
}

// resolvePartners freezes a captain+partner vs rest split over the core
// group. Aardvark placement, if any, remains open.
func (f *TeamFormation) resolvePartners(partner PlayerID, order []PlayerID) {
	core := order[:min(MinPlayers, len(order))]
	f.Sides[0] = []PlayerID{f.Captain, partner}
	f.Sides[1] = nil
	for _, id := range core {
		if id != f.Captain && id != partner {
			f.Sides[1] = append(f.Sides[1], id)
		}
	}
	f.PendingPartner = nil
	f.finishCore(FormationPartners)
}

// resolveSolo freezes captain-alone vs rest over the core group.
func (f *TeamFormation) resolveSolo(variant SoloVariant, order []PlayerID) {
	core := order[:min(MinPlayers, len(order))]
	f.Sides[0] = []PlayerID{f.Captain}
	f.Sides[1] = nil
	for _, id := range core {
		if id != f.Captain {
			f.Sides[1] = append(f.Sides[1], id)
		}
	}
	f.Variant = variant
	f.PendingPartner = nil
	f.finishCore(FormationSolo)
}

func (f *TeamFormation) finishCore(kind FormationKind) {
	f.baseKind = kind
	if len(f.Unassigned) > 0 {
		f.Kind = FormationAardvarkPending
	} else {
		f.Kind = kind
	}
}

// placeAardvark appends an aardvark to a side and closes the formation when
// nobody is left unassigned.
func (f *TeamFormation) placeAardvark(id PlayerID, side int) {
	f.Sides[side] = append(f.Sides[side], id)
	f.Unassigned = slices.DeleteFunc(f.Unassigned, func(p PlayerID) bool { return p == id })
	f.PendingAardvark = nil
	if len(f.Unassigned) == 0 {
		f.Kind = f.baseKind
	}
}
