package game

// Phase represents the portion of the round in play. Phases only ever move
// forward within a game.
type Phase int

const (
	PhaseRegular Phase = iota
	PhaseVinnieVariation
	PhaseHoepfinger
)

func (p Phase) String() string {
	return [...]string{"regular", "vinnie_variation", "hoepfinger"}[p]
}

// vinnieStart is the first hole of the Vinnie's Variation phase, where the
// natural base wager doubles.
const vinnieStart = 13

// hoepfingerStart returns the first Hoepfinger hole for the given player
// count: 17 for four players, 16 for five, 15 for six.
func hoepfingerStart(numPlayers int) int {
	switch numPlayers {
	case 5:
		return 16
	case 6:
		return 15
	default:
		return 17
	}
}

// phaseForHole derives the phase a given hole is played under.
func phaseForHole(hole, numPlayers int) Phase {
	switch {
	case hole >= hoepfingerStart(numPlayers):
		return PhaseHoepfinger
	case hole >= vinnieStart:
		return PhaseVinnieVariation
	default:
		return PhaseRegular
	}
}
