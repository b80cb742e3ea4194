package game

import (
	"testing"
)

func testHole(t *testing.T, order []PlayerID, baseWager int) *HoleState {
	t.Helper()
	handicaps := make(map[PlayerID]float64, len(order))
	for _, id := range order {
		handicaps[id] = 0
	}
	h, err := newHoleState(1, 4, 1, 400, order, handicaps, baseWager, false)
	if err != nil {
		t.Fatalf("newHoleState: %v", err)
	}
	return h
}

func TestTurnOrderTeeThenFarthest(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	if got := h.NextPlayerToHit(); got != "p1" {
		t.Fatalf("next = %s, want p1 off the tee", got)
	}

	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 150, Lie: LieFairway}); err != nil {
		t.Fatal(err)
	}
	if err := h.applyShot(Shot{Player: "p2", DistanceToPin: 220, Lie: LieRough}); err != nil {
		t.Fatal(err)
	}

	// p3 and p4 have not teed off, so they hit before the farthest ball.
	want := []PlayerID{"p3", "p4", "p2", "p1"}
	got := h.TurnOrder()
	if len(got) != len(want) {
		t.Fatalf("turn order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("turn order = %v, want %v", got, want)
		}
	}

	if err := h.applyShot(Shot{Player: "p3", DistanceToPin: 180, Lie: LieFairway}); err != nil {
		t.Fatal(err)
	}
	if err := h.applyShot(Shot{Player: "p4", DistanceToPin: 90, Lie: LieFairway}); err != nil {
		t.Fatal(err)
	}
	if got := h.NextPlayerToHit(); got != "p2" {
		t.Errorf("next = %s, want p2 (farthest at 220)", got)
	}
	if los := h.LineOfScrimmage(); los == nil || los.PlayerID != "p2" {
		t.Errorf("line of scrimmage = %+v, want p2's ball", los)
	}
}

func TestTurnOrderDistanceTies(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	for _, id := range order4() {
		if err := h.applyShot(Shot{Player: id, DistanceToPin: 100, Lie: LieFairway}); err != nil {
			t.Fatal(err)
		}
	}
	// Equidistant balls fall back to hitting order.
	got := h.TurnOrder()
	for i, id := range order4() {
		if got[i] != id {
			t.Fatalf("turn order = %v, want hitting order on ties", got)
		}
	}
}

func TestMadeShotLatchesWagering(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	h.Formation.resolvePartners("p2", order4())

	if err := h.applyShot(Shot{Player: "p1", Made: true}); err != nil {
		t.Fatal(err)
	}
	if !h.WageringClosed {
		t.Fatal("a holed ball must close wagering")
	}
	if !h.Balls["p1"].Holed || h.Balls["p1"].Lie != LieHoled {
		t.Errorf("ball = %+v, want holed", h.Balls["p1"])
	}

	// The hole continues for everyone else but no escalation may follow.
	if err := CanOfferDouble(h, "p3", PhaseRegular); !IsRuleViolation(err, ReasonWageringClosed) {
		t.Errorf("offer after a made shot: %v, want wagering_closed", err)
	}
	if err := h.applyShot(Shot{Player: "p2", DistanceToPin: 50, Lie: LieFairway}); err != nil {
		t.Errorf("play should continue after wagering closes: %v", err)
	}
}

func TestShotCapFinishesBall(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	for i := 0; i < MaxShotsPerHole; i++ {
		if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 50, Lie: LieRough}); err != nil {
			t.Fatalf("shot %d: %v", i+1, err)
		}
	}
	if !h.Balls["p1"].Finished() {
		t.Fatal("ball should be finished at the shot cap")
	}
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 40}); !IsRuleViolation(err, ReasonBallFinished) {
		t.Errorf("shot past the cap: %v, want ball_already_finished", err)
	}
}

func TestShotValidationIsAtomic(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 120}); err != nil {
		t.Fatal(err)
	}
	before := *h.Balls["p1"]

	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: -5}); err == nil {
		t.Fatal("negative distance accepted")
	}
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 50, Penalty: -1}); err == nil {
		t.Fatal("negative penalty accepted")
	}
	if err := h.applyShot(Shot{Player: "zz", DistanceToPin: 50}); err == nil {
		t.Fatal("unknown player accepted")
	}

	after := *h.Balls["p1"]
	if before != after {
		t.Errorf("rejected shots mutated the ball: %+v -> %+v", before, after)
	}
}

func TestHoleCompletion(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	h.Formation.resolvePartners("p2", order4())

	for _, id := range order4() {
		if h.Complete {
			t.Fatal("hole completed early")
		}
		if err := h.applyShot(Shot{Player: id, Made: true}); err != nil {
			t.Fatal(err)
		}
	}
	if !h.Complete {
		t.Fatal("hole should complete when every ball is finished")
	}
	if h.Status() != HoleComplete {
		t.Errorf("status = %s, want complete", h.Status())
	}
}

func TestPenaltiesCountInShotScores(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 100, Penalty: 1}); err != nil {
		t.Fatal(err)
	}
	if err := h.applyShot(Shot{Player: "p1", Made: true}); err != nil {
		t.Fatal(err)
	}
	if got := h.shotScores()["p1"]; got != 3 {
		t.Errorf("gross = %d, want 3 (two shots plus a penalty)", got)
	}
}

func TestGrossScoresAllOrNothing(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	h.Formation.resolvePartners("p2", order4())

	missing := map[PlayerID]int{"p1": 4, "p2": 4, "p3": 5}
	if err := h.applyGrossScores(missing); err == nil {
		t.Fatal("missing score accepted")
	}
	if h.Complete || len(h.GrossScores) != 0 {
		t.Fatal("failed entry mutated the hole")
	}

	bad := map[PlayerID]int{"p1": 4, "p2": 0, "p3": 5, "p4": 5}
	if err := h.applyGrossScores(bad); err == nil {
		t.Fatal("non-positive score accepted")
	}

	good := map[PlayerID]int{"p1": 4, "p2": 4, "p3": 5, "p4": 5}
	if err := h.applyGrossScores(good); err != nil {
		t.Fatal(err)
	}
	if !h.Complete || !h.WageringClosed {
		t.Error("entered scores should complete the hole and close wagering")
	}
}

func TestConcededBallScoresTheNextStroke(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	h.Formation.resolvePartners("p2", order4())
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 100, Lie: LieFairway}); err != nil {
		t.Fatal(err)
	}
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 2, Lie: LieGreen}); err != nil {
		t.Fatal(err)
	}

	h.concede("p1")
	if !h.Balls["p1"].Finished() {
		t.Fatal("conceded ball should be finished")
	}
	if got := h.shotScores()["p1"]; got != 3 {
		t.Errorf("gross = %d, want 3 (two shots plus the conceded stroke)", got)
	}
	if err := h.applyShot(Shot{Player: "p1", DistanceToPin: 1}); !IsRuleViolation(err, ReasonBallFinished) {
		t.Errorf("shot after concession: %v, want ball_already_finished", err)
	}
}

func TestPartnershipDeadline(t *testing.T) {
	t.Parallel()

	h := testHole(t, order4(), 1)
	for _, id := range order4()[:3] {
		if err := h.applyShot(Shot{Player: id, DistanceToPin: 200}); err != nil {
			t.Fatal(err)
		}
	}
	if h.allTeeShotsTaken() {
		t.Fatal("deadline hit with a tee shot outstanding")
	}
	if err := h.applyShot(Shot{Player: "p4", DistanceToPin: 200}); err != nil {
		t.Fatal(err)
	}
	if !h.allTeeShotsTaken() {
		t.Fatal("deadline should pass once every tee shot is struck")
	}
}
