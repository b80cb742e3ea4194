package game

// Lie categorises where a ball sits.
type Lie int

const (
	LieTee Lie = iota
	LieFairway
	LieRough
	LieBunker
	LieGreen
	LieHoled
)

func (l Lie) String() string {
	return [...]string{"tee", "fairway", "rough", "bunker", "green", "holed"}[l]
}

// MaxShotsPerHole is the pick-up cap: a ball that reaches it is finished for
// the hole even if never holed.
const MaxShotsPerHole = 8

// BallPosition tracks one player's ball on the current hole. Shot count is
// monotonic and mutated only by shot application.
type BallPosition struct {
	PlayerID       PlayerID
	DistanceToPin  float64 // yards
	Lie            Lie
	ShotCount      int
	Holed          bool
	Conceded       bool
	PenaltyStrokes int
}

// Finished reports whether the ball takes no further shots this hole.
func (b *BallPosition) Finished() bool {
	return b.Holed || b.Conceded || b.ShotCount >= MaxShotsPerHole
}
