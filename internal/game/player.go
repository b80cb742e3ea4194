package game

// PlayerID identifies a player within a game.
type PlayerID string

// Player holds per-player round state. Points are mutated only by score
// settlement; the solo counter only by team formation.
type Player struct {
	ID       PlayerID
	Name     string
	Handicap float64 // index, 0..54

	Points       int  // cumulative quarters, signed
	FloatUsed    bool // the Float may be invoked once per game
	SoloAttempts int

	// HoepfingerPositions records the hitting positions this player chose
	// as the goat during the Hoepfinger phase, in hole order.
	HoepfingerPositions []int
}

// validateHandicap checks the 0..54 index range.
func validateHandicap(h float64) error {
	if h < 0 || h > 54 {
		return &ValidationError{Code: ReasonInvalidHandicap, Field: "handicap", Actual: h, Expected: "0..54"}
	}
	return nil
}

// MinPlayers and MaxPlayers bound the supported game sizes. Five and six
// player games introduce aardvarks.
const (
	MinPlayers = 4
	MaxPlayers = 6
)
