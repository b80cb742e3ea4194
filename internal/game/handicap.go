package game

import (
	"fmt"
	"math"
)

// HandicapError reports invalid inputs to stroke or net-score computation.
type HandicapError struct {
	Field  string
	Actual any
	Reason string
}

func (e *HandicapError) Error() string {
	return fmt.Sprintf("handicap: %s: field %q got %v", e.Reason, e.Field, e.Actual)
}

// StrokeAllowance is the computed stroke entitlement for one player on one
// hole, always a multiple of 0.5.
type StrokeAllowance struct {
	PlayerID PlayerID
	Handicap float64
	Strokes  float64
}

// StrokesReceived computes the Creecher Feature stroke allowance for a
// handicap index on a hole of the given difficulty. The result is a multiple
// of 0.5:
//
//   - one full stroke on every hole at least as hard as the player's whole
//     handicap (stroke index <= floor(handicap), capped at 18)
//   - a half stroke on the next-hardest hole when the index carries a
//     remainder of 0.5 or more
//   - handicaps above 18 overflow as half strokes onto the easiest holes
//     first, two holes per extra stroke, wrapping in passes until spent
func StrokesReceived(handicap float64, strokeIndex int) (float64, error) {
	halves, err := strokesHalves(handicap, strokeIndex)
	if err != nil {
		return 0, err
	}
	return float64(halves) / 2, nil
}

// strokesHalves is StrokesReceived in half-stroke integer units, which the
// scoring engine uses so net-score comparisons stay exact.
func strokesHalves(handicap float64, strokeIndex int) (int, error) {
	if handicap < 0 || handicap > 54 {
		return 0, &HandicapError{Field: "handicap", Actual: handicap, Reason: "index out of range 0..54"}
	}
	if strokeIndex < 1 || strokeIndex > 18 {
		return 0, &HandicapError{Field: "stroke_index", Actual: strokeIndex, Reason: "stroke index out of range 1..18"}
	}

	full := int(math.Floor(handicap))
	half := handicap-float64(full) >= 0.5

	halves := 0
	if strokeIndex <= min(full, 18) {
		halves += 2
	}
	if full < 18 && half && strokeIndex == full+1 {
		halves++
	}

	if full >= 18 {
		// Overflow beyond 18: two half-stroke increments per extra full
		// stroke (plus one for a remainder), laid onto the easiest holes
		// first and wrapping in passes until exhausted.
		increments := 2 * (full - 18)
		if half {
			increments++
		}
		offset := 18 - strokeIndex // 0 for the easiest hole
		if increments > offset {
			halves += (increments - offset + 17) / 18
		}
	}

	return halves, nil
}

// NetScore applies a stroke allowance to a gross score.
func NetScore(gross int, strokes float64) (float64, error) {
	if gross <= 0 {
		return 0, &HandicapError{Field: "gross", Actual: gross, Reason: "gross score must be positive"}
	}
	if strokes < 0 {
		return 0, &HandicapError{Field: "strokes", Actual: strokes, Reason: "stroke allowance must not be negative"}
	}
	return float64(gross) - strokes, nil
}
