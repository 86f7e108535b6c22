package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c := loadConfig()
	require.Equal(t, "", c.SaveDirectory)
	require.Equal(t, defaultScrambleMoves, c.ScrambleMoves)
	require.Equal(t, 1.0, c.MouseScale)
	require.False(t, c.InvertOrbit)
}

func TestLoadConfig_ParsesValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	rc := `# torq config
scramble_moves = 40
mouse_scale = 1.5
invert_orbit = true
save_directory = ~/shots

not_a_pair
unknown_key = ignored
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".torqrc"), []byte(rc), 0644))

	c := loadConfig()
	require.Equal(t, 40, c.ScrambleMoves)
	require.Equal(t, 1.5, c.MouseScale)
	require.True(t, c.InvertOrbit)
	require.Equal(t, filepath.Join(home, "shots"), c.SaveDirectory)
}

func TestLoadConfig_RejectsBadNumbers(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	rc := "scramble_moves = -5\nmouse_scale = zero\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".torqrc"), []byte(rc), 0644))

	c := loadConfig()
	require.Equal(t, defaultScrambleMoves, c.ScrambleMoves)
	require.Equal(t, 1.0, c.MouseScale)
}

func TestGetSavePath(t *testing.T) {
	c := &Config{}
	require.Equal(t, "torq.png", c.GetSavePath("torq.png"))

	dir := filepath.Join(t.TempDir(), "out")
	c.SaveDirectory = dir
	require.Equal(t, filepath.Join(dir, "torq.png"), c.GetSavePath("torq.png"))
	_, err := os.Stat(dir)
	require.NoError(t, err)
}
