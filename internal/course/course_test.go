package course

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCourse(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())
	for i, h := range c.Holes {
		assert.Equal(t, i+1, h.Number)
		assert.Equal(t, 4, h.Par)
		assert.Equal(t, i+1, h.StrokeIndex)
	}

	infos := c.HoleInfos()
	require.Len(t, infos, 18)
	assert.Equal(t, 400, infos[0].Yardage)
}

func TestValidateRejectsBadLayouts(t *testing.T) {
	t.Parallel()

	c := Default()
	c.Holes[3].Par = 6
	assert.Error(t, c.Validate(), "par 6 accepted")

	c = Default()
	c.Holes[0].StrokeIndex = 5
	assert.Error(t, c.Validate(), "duplicate stroke index accepted")

	c = Default()
	c.Holes[9].Yardage = 0
	assert.Error(t, c.Validate(), "zero yardage accepted")
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Game.BaseWager)
	assert.Equal(t, "info", cfg.Game.LogLevel)
	assert.Empty(t, cfg.Courses)
}

func TestLoadConfigParsesHCL(t *testing.T) {
	t.Parallel()

	content := `
game {
  base_wager = 2
  seed       = 42
}

course "links" {
  hole "1" {
    par          = 5
    stroke_index = 7
    yardage      = 520
  }
  hole "7" {
    stroke_index = 1
  }
  hole "2" {
    par     = 3
    yardage = 165
  }
}
`
	path := filepath.Join(t.TempDir(), "wgp.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Game.BaseWager)
	assert.Equal(t, int64(42), cfg.Game.Seed)

	c, err := cfg.Course("links")
	require.NoError(t, err)
	assert.Equal(t, "links", c.Name)
	assert.Equal(t, 5, c.Holes[0].Par)
	assert.Equal(t, 7, c.Holes[0].StrokeIndex)
	assert.Equal(t, 520, c.Holes[0].Yardage)
	assert.Equal(t, 1, c.Holes[6].StrokeIndex, "swapped index keeps the permutation valid")
	assert.Equal(t, 3, c.Holes[1].Par)
	assert.Equal(t, 4, c.Holes[2].Par, "untouched holes keep house defaults")
}

func TestConfigCourseLookups(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	c, err := cfg.Course("")
	require.NoError(t, err)
	assert.Equal(t, "house", c.Name, "empty name falls back to the default layout")

	_, err = cfg.Course("missing")
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadHole(t *testing.T) {
	t.Parallel()

	content := `
game {}

course "bad" {
  hole "19" {
    par = 4
  }
}
`
	path := filepath.Join(t.TempDir(), "wgp.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	_, err = cfg.Course("bad")
	assert.Error(t, err, "hole label outside 1..18 accepted")
}
