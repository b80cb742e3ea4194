// Package game implements the core Wolf Goat Pig rules engine: the per-hole
// state machine, team negotiation, the betting-escalation ladder, handicap
// stroke allocation and point settlement.
//
// The main type is Game, which sequences 18 holes for 4-6 players. Every
// inbound command validates against the current state, applies atomically
// under the game lock, and returns an updated public Snapshot or a typed
// error (RuleViolation, ValidationError, StateConsistencyError).
//
// # Basic Usage
//
//	g, err := game.New(game.Config{
//	    ID: "saturday-group",
//	    Players: []game.PlayerConfig{
//	        {ID: "p1", Name: "Bob", Handicap: 10.5},
//	        {ID: "p2", Name: "Scott", Handicap: 15},
//	        {ID: "p3", Name: "Vince", Handicap: 8},
//	        {ID: "p4", Name: "Mike", Handicap: 20.5},
//	    },
//	})
//	snap, err := g.RequestPartner("p1", "p2")
//	snap, err = g.RespondToPartnership("p2", true)
//	snap, err = g.EnterHoleScores(map[game.PlayerID]int{"p1": 4, "p2": 5, "p3": 4, "p4": 6})
//	snap, err = g.AdvanceToNextHole()
//
// # Architecture
//
// Game delegates to specialized components, one per concern:
//   - HoleState: ball positions, turn order, completion
//   - TeamFormation: the partnership/solo/aardvark negotiation
//   - BettingLadder: the monotonic wager-escalation events
//   - rules.go: pure guards deciding whether an action is currently legal
//   - scoring.go: best-ball comparison and Karl-Marx point apportionment
//
// Each hole is an independent record owned by the game; holes are stored in
// a fixed 1..18 array and become read-only once settled.
package game
