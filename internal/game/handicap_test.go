package game

import (
	"testing"
)

func TestStrokesReceivedFractional(t *testing.T) {
	t.Parallel()

	// A 10.5 index takes a full stroke on the ten hardest holes and a half
	// on the eleventh.
	cases := []struct {
		strokeIndex int
		want        float64
	}{
		{1, 1.0},
		{10, 1.0},
		{11, 0.5},
		{12, 0.0},
		{18, 0.0},
	}
	for _, c := range cases {
		got, err := StrokesReceived(10.5, c.strokeIndex)
		if err != nil {
			t.Fatalf("StrokesReceived(10.5, %d): %v", c.strokeIndex, err)
		}
		if got != c.want {
			t.Errorf("StrokesReceived(10.5, %d) = %v, want %v", c.strokeIndex, got, c.want)
		}
	}
}

func TestStrokesReceivedOverflow(t *testing.T) {
	t.Parallel()

	// A 20 index strokes everywhere, with the two extra strokes spread as
	// half strokes over the four easiest holes.
	for si := 1; si <= 18; si++ {
		want := 1.0
		if si >= 15 {
			want = 1.5
		}
		got, err := StrokesReceived(20, si)
		if err != nil {
			t.Fatalf("StrokesReceived(20, %d): %v", si, err)
		}
		if got != want {
			t.Errorf("StrokesReceived(20, %d) = %v, want %v", si, got, want)
		}
	}
}

func TestStrokesReceivedHalfStepsOnly(t *testing.T) {
	t.Parallel()

	for h := 0.0; h <= 54; h += 0.5 {
		for si := 1; si <= 18; si++ {
			got, err := StrokesReceived(h, si)
			if err != nil {
				t.Fatalf("StrokesReceived(%v, %d): %v", h, si, err)
			}
			if got*2 != float64(int(got*2)) {
				t.Fatalf("StrokesReceived(%v, %d) = %v, not a multiple of 0.5", h, si, got)
			}
		}
	}
}

// The allocation spends the whole index: summed over all 18 holes, the
// allowance equals the handicap.
func TestStrokesReceivedConservation(t *testing.T) {
	t.Parallel()

	for _, h := range []float64{0, 0.5, 7, 10.5, 18, 18.5, 20, 27.5, 36, 54} {
		total := 0.0
		for si := 1; si <= 18; si++ {
			got, err := StrokesReceived(h, si)
			if err != nil {
				t.Fatalf("StrokesReceived(%v, %d): %v", h, si, err)
			}
			total += got
		}
		if total != h {
			t.Errorf("handicap %v allocates %v strokes over 18 holes", h, total)
		}
	}
}

func TestStrokesReceivedDeterministic(t *testing.T) {
	t.Parallel()

	a, err := StrokesReceived(13.5, 9)
	if err != nil {
		t.Fatal(err)
	}
	b, err := StrokesReceived(13.5, 9)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same inputs gave %v then %v", a, b)
	}
}

func TestStrokesReceivedRejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := StrokesReceived(-1, 5); err == nil {
		t.Error("negative handicap accepted")
	}
	if _, err := StrokesReceived(55, 5); err == nil {
		t.Error("handicap above 54 accepted")
	}
	if _, err := StrokesReceived(10, 0); err == nil {
		t.Error("stroke index 0 accepted")
	}
	if _, err := StrokesReceived(10, 19); err == nil {
		t.Error("stroke index 19 accepted")
	}
}

func TestNetScore(t *testing.T) {
	t.Parallel()

	got, err := NetScore(5, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if got != 3.5 {
		t.Errorf("NetScore(5, 1.5) = %v, want 3.5", got)
	}

	if _, err := NetScore(0, 1); err == nil {
		t.Error("gross 0 accepted")
	}
	if _, err := NetScore(4, -0.5); err == nil {
		t.Error("negative allowance accepted")
	}
}
