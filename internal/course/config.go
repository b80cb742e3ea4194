package course

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the decoded course configuration file.
type Config struct {
	Game    GameSettings   `hcl:"game,block"`
	Courses []CourseConfig `hcl:"course,block"`
}

// GameSettings carries round-level settings alongside the course data.
type GameSettings struct {
	BaseWager int    `hcl:"base_wager,optional"`
	Seed      int64  `hcl:"seed,optional"`
	LogLevel  string `hcl:"log_level,optional"`
}

// CourseConfig is one course block in the file.
type CourseConfig struct {
	Name  string       `hcl:"name,label"`
	Holes []HoleConfig `hcl:"hole,block"`
}

// HoleConfig is one hole block. Omitted fields fall back to house defaults.
type HoleConfig struct {
	Number      string `hcl:"number,label"`
	Par         int    `hcl:"par,optional"`
	StrokeIndex int    `hcl:"stroke_index,optional"`
	Yardage     int    `hcl:"yardage,optional"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{BaseWager: 1, LogLevel: "info"},
	}
}

// LoadConfig loads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Game.BaseWager == 0 {
		config.Game.BaseWager = 1
	}
	if config.Game.LogLevel == "" {
		config.Game.LogLevel = "info"
	}
	return &config, nil
}

// Course materialises a named course from the config, applying house
// defaults for any hole or field the file leaves out. An empty name returns
// the first configured course, or the default layout if none exist.
func (c *Config) Course(name string) (Course, error) {
	var picked *CourseConfig
	for i := range c.Courses {
		if name == "" || c.Courses[i].Name == name {
			picked = &c.Courses[i]
			break
		}
	}
	if picked == nil {
		if name != "" {
			return Course{}, fmt.Errorf("course %q not configured", name)
		}
		return Default(), nil
	}

	out := Default()
	out.Name = picked.Name
	for _, h := range picked.Holes {
		n, err := strconv.Atoi(h.Number)
		if err != nil || n < 1 || n > 18 {
			return Course{}, fmt.Errorf("course %s: invalid hole label %q", picked.Name, h.Number)
		}
		entry := &out.Holes[n-1]
		if h.Par > 0 {
			entry.Par = h.Par
		}
		if h.StrokeIndex > 0 {
			entry.StrokeIndex = h.StrokeIndex
		}
		if h.Yardage > 0 {
			entry.Yardage = h.Yardage
		}
	}
	if err := out.Validate(); err != nil {
		return Course{}, err
	}
	return out, nil
}
