package main

import (
	"fmt"

	"github.com/wedgewood/wolfgoatpig/internal/course"
	"github.com/wedgewood/wolfgoatpig/internal/game"
)

// CoursesCmd prints a course layout and the per-hole stroke allocation for a
// given handicap.
type CoursesCmd struct {
	Config   string  `default:"wgp.hcl" help:"Course configuration file"`
	Course   string  `help:"Course name from the config file"`
	Handicap float64 `default:"0" help:"Show stroke allocation for this handicap"`
}

func (c *CoursesCmd) Run() error {
	cfg, err := course.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	layout, err := cfg.Course(c.Course)
	if err != nil {
		return err
	}

	fmt.Printf("Course: %s\n\n", layout.Name)
	fmt.Printf("%-5s %-4s %-12s %-8s", "Hole", "Par", "StrokeIndex", "Yardage")
	if c.Handicap > 0 {
		fmt.Printf(" %-8s", "Strokes")
	}
	fmt.Println()

	totalPar := 0
	totalYardage := 0
	for _, h := range layout.Holes {
		totalPar += h.Par
		totalYardage += h.Yardage
		fmt.Printf("%-5d %-4d %-12d %-8d", h.Number, h.Par, h.StrokeIndex, h.Yardage)
		if c.Handicap > 0 {
			strokes, err := game.StrokesReceived(c.Handicap, h.StrokeIndex)
			if err != nil {
				return err
			}
			fmt.Printf(" %-8.1f", strokes)
		}
		fmt.Println()
	}
	fmt.Printf("\nTotal par %d, %d yards\n", totalPar, totalYardage)
	return nil
}
