// Package course supplies hole metadata (par, yardage, stroke index) to the
// engine, from an HCL file or from house defaults.
package course

import (
	"fmt"

	"github.com/wedgewood/wolfgoatpig/internal/game"
)

// Hole is the metadata for a single hole.
type Hole struct {
	Number      int
	Par         int
	StrokeIndex int
	Yardage     int
}

// Course is an 18-hole layout.
type Course struct {
	Name  string
	Holes [18]Hole
}

// Default returns the house course used when no metadata is provided:
// par 4 throughout, stroke index equal to the hole number.
func Default() Course {
	c := Course{Name: "house"}
	for i := range c.Holes {
		c.Holes[i] = Hole{Number: i + 1, Par: 4, StrokeIndex: i + 1, Yardage: 400}
	}
	return c
}

// Validate checks pars and the stroke-index permutation.
func (c *Course) Validate() error {
	seen := make(map[int]bool, 18)
	for i, h := range c.Holes {
		if h.Number != i+1 {
			return fmt.Errorf("course %s: hole %d out of sequence", c.Name, h.Number)
		}
		if h.Par < 3 || h.Par > 5 {
			return fmt.Errorf("course %s hole %d: par %d out of range 3..5", c.Name, h.Number, h.Par)
		}
		if h.StrokeIndex < 1 || h.StrokeIndex > 18 {
			return fmt.Errorf("course %s hole %d: stroke index %d out of range 1..18", c.Name, h.Number, h.StrokeIndex)
		}
		if seen[h.StrokeIndex] {
			return fmt.Errorf("course %s: stroke index %d appears twice", c.Name, h.StrokeIndex)
		}
		seen[h.StrokeIndex] = true
		if h.Yardage <= 0 {
			return fmt.Errorf("course %s hole %d: yardage must be positive", c.Name, h.Number)
		}
	}
	return nil
}

// HoleInfos converts the course into the engine's metadata shape.
func (c *Course) HoleInfos() []game.HoleInfo {
	infos := make([]game.HoleInfo, 0, 18)
	for _, h := range c.Holes {
		infos = append(infos, game.HoleInfo{
			Number:      h.Number,
			Par:         h.Par,
			StrokeIndex: h.StrokeIndex,
			Yardage:     h.Yardage,
		})
	}
	return infos
}
