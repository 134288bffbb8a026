package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternValuesAreStable(t *testing.T) {
	// Project files persist these as raw ints.
	assert.Equal(t, 0, int(Plain))
	assert.Equal(t, 1, int(Grid))
	assert.Equal(t, 2, int(Lined))
	assert.Equal(t, 3, int(Dotted))
}

func TestPatternString(t *testing.T) {
	assert.Equal(t, "Plain Page", Plain.String())
	assert.Equal(t, "Grid Page", Grid.String())
	assert.Equal(t, "Lined Page", Lined.String())
	assert.Equal(t, "Dotted Page", Dotted.String())
	assert.Equal(t, "Unknown", Pattern(99).String())
}

func TestSnappable(t *testing.T) {
	assert.False(t, Plain.Snappable())
	assert.True(t, Grid.Snappable())
	assert.False(t, Lined.Snappable())
	assert.True(t, Dotted.Snappable())
}

func TestPatternsOrder(t *testing.T) {
	assert.Equal(t, []Pattern{Plain, Grid, Lined, Dotted}, Patterns())
}

func TestPresetValidate(t *testing.T) {
	assert.NoError(t, Preset{Name: "ok", Width: 10, Height: 10}.Validate())
	assert.Error(t, Preset{Width: 10, Height: 10}.Validate())
	assert.Error(t, Preset{Name: "bad", Width: 0, Height: 10}.Validate())
	assert.Error(t, Preset{Name: "bad", Width: 10, Height: -1}.Validate())
}

func TestRegistry(t *testing.T) {
	p, ok := Get(DefaultPreset)
	require.True(t, ok)
	assert.Equal(t, 1920, p.Width)
	assert.Equal(t, 1080, p.Height)

	_, ok = Get("no such preset")
	assert.False(t, ok)

	names := List()
	assert.Contains(t, names, DefaultPreset)
	assert.IsIncreasing(t, names)
}

func TestPresetFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")

	want := Preset{Name: "Mural", Width: 5000, Height: 1200}
	require.NoError(t, want.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFromFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"","width":0,"height":0}`), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
