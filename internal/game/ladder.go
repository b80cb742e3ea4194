package game

// LadderEventKind is the closed set of wager-multiplying events.
type LadderEventKind int

const (
	EventSolo LadderEventKind = iota
	EventDuncan
	EventTunkarri
	EventBigDick
	EventPartnershipDeclined
	EventDouble
	EventRedouble
	EventFlush
	EventFloat
	EventOption
	EventJoesSpecial
	EventAardvarkToss
	EventPingPong
)

func (k LadderEventKind) String() string {
	return [...]string{
		"solo", "duncan", "tunkarri", "big_dick", "partnership_declined",
		"double", "redouble", "flush", "float", "option", "joes_special",
		"aardvark_toss", "ping_pong",
	}[k]
}

// LadderEvent records one step of the escalation ladder.
type LadderEvent struct {
	Kind       LadderEventKind
	By         PlayerID
	WagerAfter int
}

// PendingDouble is an offered double awaiting a response from the other side.
type PendingDouble struct {
	By             PlayerID
	OfferingSide   int
	WagerBefore    int
	RespondingSide int
	Redouble       bool
	Flush          bool
}

type tossKey struct {
	Side     int
	Aardvark PlayerID
}

// BettingLadder tracks the wager escalation for one hole. The current wager
// is a positive integer number of quarters and never decreases within the
// hole; every change is a x2 of a defined event.
type BettingLadder struct {
	BaseWager    int
	CurrentWager int

	Doubled   bool
	Redoubled bool
	Flushed   bool

	Duncan          bool
	Tunkarri        bool
	BigDick         bool
	FloatInvoked    bool
	OptionInvoked   bool // auto-double at hole start
	OptionReinvoked bool // pressed again in-hole
	CarriedOver     bool // base wager arrived from a halved prior hole

	// ThreeForTwo marks the 3-for-2 settlement bonus (Duncan/Tunkarri);
	// it affects payout only, never the wager itself.
	ThreeForTwo bool

	Pending *PendingDouble
	History []LadderEvent

	// GambitOptOuts maps players who took Ackerley's Gambit to the stake
	// locked at the moment they opted out.
	GambitOptOuts map[PlayerID]int

	tossCounts    map[tossKey]int
	PingPongCount int
}

// newBettingLadder starts the ladder for a hole.
func newBettingLadder(base int, carried bool) *BettingLadder {
	return &BettingLadder{
		BaseWager:     base,
		CurrentWager:  base,
		CarriedOver:   carried,
		GambitOptOuts: make(map[PlayerID]int),
		tossCounts:    make(map[tossKey]int),
	}
}

// raise applies the fixed x2 multiplier and records the event.
func (l *BettingLadder) raise(kind LadderEventKind, by PlayerID) {
	l.CurrentWager *= 2
	l.History = append(l.History, LadderEvent{Kind: kind, By: by, WagerAfter: l.CurrentWager})
}

// applySolo escalates for a solo declaration and sets the settlement bonus
// for the Duncan and the Tunkarri.
func (l *BettingLadder) applySolo(variant SoloVariant, by PlayerID) {
	switch variant {
	case SoloDuncan:
		l.Duncan = true
		l.ThreeForTwo = true
		l.raise(EventDuncan, by)
	case SoloTunkarri:
		l.Tunkarri = true
		l.ThreeForTwo = true
		l.raise(EventTunkarri, by)
	case SoloBigDick:
		l.BigDick = true
		l.raise(EventBigDick, by)
	default:
		l.raise(EventSolo, by)
	}
}

// applyDeclinedPartnership escalates when an invited partner turns the
// captain down, forcing the captain solo.
func (l *BettingLadder) applyDeclinedPartnership(by PlayerID) {
	l.raise(EventPartnershipDeclined, by)
}

// applyFloat escalates for the captain's once-per-game Float.
func (l *BettingLadder) applyFloat(by PlayerID) {
	l.FloatInvoked = true
	l.raise(EventFloat, by)
}

// applyOption escalates for The Option at hole start.
func (l *BettingLadder) applyOption(by PlayerID) {
	l.OptionInvoked = true
	l.raise(EventOption, by)
}

// applyOptionPress escalates for the captain pressing the option in-hole.
func (l *BettingLadder) applyOptionPress(by PlayerID) {
	l.OptionReinvoked = true
	l.raise(EventOption, by)
}

// applyJoesSpecial overrides the base wager before play. The caller has
// already validated the value against the fixed menu.
func (l *BettingLadder) applyJoesSpecial(value int, by PlayerID) {
	l.BaseWager = value
	l.CurrentWager = value
	l.History = append(l.History, LadderEvent{Kind: EventJoesSpecial, By: by, WagerAfter: value})
}

// retractOption undoes the hole-open auto double after a reorder installs a
// captain who is not alone at the bottom. Later history entries replay from
// the base so a Joe's Special override keeps its value.
func (l *BettingLadder) retractOption() {
	for i, ev := range l.History {
		if ev.Kind == EventOption {
			l.History = append(l.History[:i], l.History[i+1:]...)
			break
		}
	}
	l.OptionInvoked = false
	w := l.BaseWager
	for i, ev := range l.History {
		if ev.Kind == EventJoesSpecial {
			w = ev.WagerAfter
		} else {
			w *= 2
		}
		l.History[i].WagerAfter = w
	}
	l.CurrentWager = w
}

// offerDouble opens a pending double (or redouble, or flush) from a side.
func (l *BettingLadder) offerDouble(by PlayerID, offeringSide int) {
	offer := &PendingDouble{
		By:             by,
		OfferingSide:   offeringSide,
		RespondingSide: 1 - offeringSide,
		WagerBefore:    l.CurrentWager,
	}
	if l.Doubled {
		if l.Redoubled {
			offer.Flush = true
		} else {
			offer.Redouble = true
		}
	}
	l.Pending = offer
}

// acceptDouble resolves the pending offer by doubling the wager. Gambit
// opt-outs lock their stake at the pre-double wager.
func (l *BettingLadder) acceptDouble(optOuts []PlayerID) {
	p := l.Pending
	for _, id := range optOuts {
		l.GambitOptOuts[id] = p.WagerBefore
	}
	switch {
	case p.Flush:
		l.Flushed = true
		l.raise(EventFlush, p.By)
	case p.Redouble:
		l.Redoubled = true
		l.raise(EventRedouble, p.By)
	default:
		l.Doubled = true
		l.raise(EventDouble, p.By)
	}
	l.Pending = nil
}

// declineDouble clears the pending offer and returns it; the hole resolves
// immediately as a win for the offering side at the pre-double wager.
func (l *BettingLadder) declineDouble() PendingDouble {
	p := *l.Pending
	l.Pending = nil
	return p
}

// tossCount returns how many times a side has tossed a given aardvark.
func (l *BettingLadder) tossCount(side int, aardvark PlayerID) int {
	return l.tossCounts[tossKey{Side: side, Aardvark: aardvark}]
}

// applyToss records a side rejecting an aardvark and doubles the wager. A
// re-toss is the explicit ping-pong invocation and escalates again on top.
func (l *BettingLadder) applyToss(side int, aardvark PlayerID, pingPong bool) {
	l.tossCounts[tossKey{Side: side, Aardvark: aardvark}]++
	if pingPong {
		l.PingPongCount++
		l.raise(EventPingPong, aardvark)
	} else {
		l.raise(EventAardvarkToss, aardvark)
	}
}

// carryOverWager returns the wager the next hole starts from after a halve:
// the unresolved wager doubles and carries forward.
func (l *BettingLadder) carryOverWager() int {
	return l.CurrentWager * 2
}
