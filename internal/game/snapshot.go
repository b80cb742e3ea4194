package game

// Standing is one row of the cumulative leaderboard.
type Standing struct {
	PlayerID     PlayerID `json:"player_id"`
	Name         string   `json:"name"`
	Handicap     float64  `json:"handicap"`
	Points       int      `json:"points"`
	FloatUsed    bool     `json:"float_used"`
	SoloAttempts int      `json:"solo_attempts"`
}

// FormationView is the public shape of a team formation.
type FormationView struct {
	Kind            string           `json:"kind"`
	Captain         PlayerID         `json:"captain"`
	Sides           [2][]PlayerID    `json:"sides"`
	Unassigned      []PlayerID       `json:"unassigned,omitempty"`
	SoloVariant     string           `json:"solo_variant,omitempty"`
	PendingPartner  *PartnerRequest  `json:"pending_partner,omitempty"`
	PendingAardvark *AardvarkRequest `json:"pending_aardvark,omitempty"`
}

// LadderView is the public shape of the betting ladder.
type LadderView struct {
	BaseWager     int            `json:"base_wager"`
	CurrentWager  int            `json:"current_wager"`
	Doubled       bool           `json:"doubled"`
	Redoubled     bool           `json:"redoubled"`
	Flushed       bool           `json:"flushed"`
	Duncan        bool           `json:"duncan"`
	Tunkarri      bool           `json:"tunkarri"`
	BigDick       bool           `json:"big_dick"`
	FloatInvoked  bool           `json:"float_invoked"`
	OptionInvoked bool           `json:"option_invoked"`
	CarriedOver   bool           `json:"carried_over"`
	ThreeForTwo   bool           `json:"three_for_two"`
	PingPongCount int            `json:"ping_pong_count"`
	PendingDouble *PendingDouble `json:"pending_double,omitempty"`
	History       []LadderEvent  `json:"history,omitempty"`
}

// HoleSnapshot is the read-only public view of one hole.
type HoleSnapshot struct {
	Number         int                        `json:"number"`
	Par            int                        `json:"par"`
	StrokeIndex    int                        `json:"stroke_index"`
	Yardage        int                        `json:"yardage"`
	Status         string                     `json:"status"`
	HittingOrder   []PlayerID                 `json:"hitting_order"`
	TurnOrder      []PlayerID                 `json:"turn_order,omitempty"`
	NextToHit      PlayerID                   `json:"next_to_hit,omitempty"`
	Balls          []BallPosition             `json:"balls,omitempty"`
	Formation      FormationView              `json:"formation"`
	Ladder         LadderView                 `json:"ladder"`
	Allowances     map[PlayerID]float64       `json:"allowances"`
	WageringClosed bool                       `json:"wagering_closed"`
	GrossScores    map[PlayerID]int           `json:"gross_scores,omitempty"`
	Result         *HoleResult                `json:"result,omitempty"`
}

// Snapshot is the full public view of a game, consumed by the API layer and
// by persistence. It only ever reflects a fully-applied state.
type Snapshot struct {
	GameID      string      `json:"game_id"`
	Phase       string      `json:"phase"`
	CurrentHole int         `json:"current_hole"`
	Complete    bool        `json:"complete"`
	BaseWager   int         `json:"base_wager"`
	Standings   []Standing  `json:"standings"`
	Hole        *HoleSnapshot `json:"hole,omitempty"`

	// NextWager and NextCarried capture a pending carry-over so a game can
	// be resumed at the following hole boundary.
	NextWager   int  `json:"next_wager"`
	NextCarried bool `json:"next_carried"`
}

// snapshotHole builds the public view of a hole.
func snapshotHole(h *HoleState) *HoleSnapshot {
	if h == nil {
		return nil
	}
	view := &HoleSnapshot{
		Number:         h.Number,
		Par:            h.Par,
		StrokeIndex:    h.StrokeIndex,
		Yardage:        h.Yardage,
		Status:         h.Status().String(),
		HittingOrder:   append([]PlayerID(nil), h.HittingOrder...),
		TurnOrder:      h.TurnOrder(),
		NextToHit:      h.NextPlayerToHit(),
		WageringClosed: h.WageringClosed,
		Allowances:     make(map[PlayerID]float64, len(h.Allowances)),
		Formation: FormationView{
			Kind:            h.Formation.Kind.String(),
			Captain:         h.Formation.Captain,
			Sides:           cloneSides(h.Formation.Sides),
			Unassigned:      append([]PlayerID(nil), h.Formation.Unassigned...),
			PendingPartner:  clonePtr(h.Formation.PendingPartner),
			PendingAardvark: clonePtr(h.Formation.PendingAardvark),
		},
		Ladder: LadderView{
			BaseWager:     h.Ladder.BaseWager,
			CurrentWager:  h.Ladder.CurrentWager,
			Doubled:       h.Ladder.Doubled,
			Redoubled:     h.Ladder.Redoubled,
			Flushed:       h.Ladder.Flushed,
			Duncan:        h.Ladder.Duncan,
			Tunkarri:      h.Ladder.Tunkarri,
			BigDick:       h.Ladder.BigDick,
			FloatInvoked:  h.Ladder.FloatInvoked,
			OptionInvoked: h.Ladder.OptionInvoked,
			CarriedOver:   h.Ladder.CarriedOver,
			ThreeForTwo:   h.Ladder.ThreeForTwo,
			PingPongCount: h.Ladder.PingPongCount,
			PendingDouble: clonePtr(h.Ladder.Pending),
			History:       append([]LadderEvent(nil), h.Ladder.History...),
		},
	}
	if h.Formation.Kind == FormationSolo {
		view.Formation.SoloVariant = h.Formation.Variant.String()
	}
	for id, a := range h.Allowances {
		view.Allowances[id] = a.Strokes
	}
	for _, id := range h.HittingOrder {
		if b, ok := h.Balls[id]; ok {
			view.Balls = append(view.Balls, *b)
		}
	}
	if len(h.GrossScores) > 0 {
		view.GrossScores = make(map[PlayerID]int, len(h.GrossScores))
		for id, g := range h.GrossScores {
			view.GrossScores[id] = g
		}
	}
	return view
}

func cloneSides(sides [2][]PlayerID) [2][]PlayerID {
	var out [2][]PlayerID
	for i := range sides {
		out[i] = append([]PlayerID(nil), sides[i]...)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
