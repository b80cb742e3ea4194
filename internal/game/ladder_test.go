package game

import (
	"testing"
)

func TestLadderMonotonicDoubling(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(1, false)
	if l.CurrentWager != 1 {
		t.Fatalf("base wager = %d, want 1", l.CurrentWager)
	}

	last := l.CurrentWager
	steps := []func(){
		func() { l.applySolo(SoloLoneWolf, "p1") },
		func() { l.applyFloat("p1") },
		func() { l.applyOption("p1") },
		func() { l.applyToss(1, "p5", false) },
	}
	for i, step := range steps {
		step()
		if l.CurrentWager != last*2 {
			t.Fatalf("step %d: wager %d, want %d", i, l.CurrentWager, last*2)
		}
		last = l.CurrentWager
	}
	if len(l.History) != len(steps) {
		t.Errorf("history has %d events, want %d", len(l.History), len(steps))
	}
}

func TestLadderSoloVariants(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(2, false)
	l.applySolo(SoloDuncan, "p1")
	if !l.Duncan || !l.ThreeForTwo {
		t.Error("duncan should set the 3-for-2 bonus")
	}
	if l.CurrentWager != 4 {
		t.Errorf("wager = %d, want 4", l.CurrentWager)
	}

	l2 := newBettingLadder(2, false)
	l2.applySolo(SoloTunkarri, "p2")
	if !l2.Tunkarri || !l2.ThreeForTwo {
		t.Error("tunkarri should set the 3-for-2 bonus")
	}

	l3 := newBettingLadder(2, false)
	l3.applySolo(SoloBigDick, "p3")
	if !l3.BigDick || l3.ThreeForTwo {
		t.Error("big dick doubles without the 3-for-2 bonus")
	}
}

func TestLadderDoubleRedoubleFlush(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(1, false)

	l.offerDouble("p1", 0)
	if l.Pending == nil || l.Pending.Redouble || l.Pending.Flush {
		t.Fatalf("first offer = %+v, want a plain double", l.Pending)
	}
	if l.Pending.RespondingSide != 1 {
		t.Errorf("responding side = %d, want 1", l.Pending.RespondingSide)
	}
	l.acceptDouble(nil)
	if !l.Doubled || l.CurrentWager != 2 {
		t.Fatalf("after accept: doubled=%v wager=%d", l.Doubled, l.CurrentWager)
	}

	l.offerDouble("p3", 1)
	if !l.Pending.Redouble {
		t.Fatal("second offer should level up to a redouble")
	}
	l.acceptDouble(nil)
	if !l.Redoubled || l.CurrentWager != 4 {
		t.Fatalf("after redouble: redoubled=%v wager=%d", l.Redoubled, l.CurrentWager)
	}

	l.offerDouble("p1", 0)
	if !l.Pending.Flush {
		t.Fatal("third offer should level up to a flush")
	}
	l.acceptDouble(nil)
	if !l.Flushed || l.CurrentWager != 8 {
		t.Fatalf("after flush: flushed=%v wager=%d", l.Flushed, l.CurrentWager)
	}
}

func TestLadderDeclineDouble(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(2, false)
	l.offerDouble("p1", 0)
	declined := l.declineDouble()
	if l.Pending != nil {
		t.Error("pending offer survived the decline")
	}
	if declined.WagerBefore != 2 || declined.OfferingSide != 0 {
		t.Errorf("declined = %+v, want pre-double wager 2 for side 0", declined)
	}
	if l.CurrentWager != 2 {
		t.Errorf("wager = %d, decline must not escalate", l.CurrentWager)
	}
}

func TestLadderGambitLocksStake(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(1, false)
	l.offerDouble("p1", 0)
	l.acceptDouble([]PlayerID{"p4"})
	if l.CurrentWager != 2 {
		t.Fatalf("wager = %d, want 2", l.CurrentWager)
	}
	if locked := l.GambitOptOuts["p4"]; locked != 1 {
		t.Errorf("p4 locked at %d, want the pre-double wager 1", locked)
	}
}

func TestLadderJoesSpecialOverridesBase(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(2, true)
	l.applyJoesSpecial(8, "p4")
	if l.BaseWager != 8 || l.CurrentWager != 8 {
		t.Errorf("base=%d current=%d, want 8/8", l.BaseWager, l.CurrentWager)
	}
	l.raise(EventDouble, "p1")
	if l.CurrentWager != 16 {
		t.Errorf("wager = %d, want 16", l.CurrentWager)
	}
}

func TestLadderTossAndPingPong(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(1, false)
	l.applyToss(1, "p5", false)
	if got := l.tossCount(1, "p5"); got != 1 {
		t.Fatalf("toss count = %d, want 1", got)
	}
	if l.CurrentWager != 2 {
		t.Fatalf("wager = %d after toss, want 2", l.CurrentWager)
	}

	l.applyToss(1, "p5", true)
	if got := l.tossCount(1, "p5"); got != 2 {
		t.Errorf("toss count = %d, want 2", got)
	}
	if l.PingPongCount != 1 {
		t.Errorf("ping-pong count = %d, want 1", l.PingPongCount)
	}
	if l.CurrentWager != 4 {
		t.Errorf("wager = %d after ping-pong, want 4", l.CurrentWager)
	}

	// Per-side counters are independent.
	if got := l.tossCount(0, "p5"); got != 0 {
		t.Errorf("side 0 toss count = %d, want 0", got)
	}
}

func TestLadderCarryOver(t *testing.T) {
	t.Parallel()

	l := newBettingLadder(3, false)
	l.raise(EventDouble, "p1")
	if got := l.carryOverWager(); got != 12 {
		t.Errorf("carry-over = %d, want the unresolved wager doubled (12)", got)
	}
}
