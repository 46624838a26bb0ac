package config

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.NotEmpty(t, cfg.Window.Title)

	assert.Equal(t, mgl32.Vec3{0, 0, 1}, cfg.Camera.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, cfg.Camera.Front)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cfg.Camera.Up)
	assert.InDelta(t, 2.5, cfg.Camera.BaseSpeed, 1e-6)
	assert.InDelta(t, 0.1, cfg.Camera.SpeedScalar, 1e-6)
	assert.InDelta(t, 0.01, cfg.Camera.MinSpeedScalar, 1e-6)
	assert.Equal(t, [4]float32{0, 5, 0, 5}, cfg.Camera.Ortho)

	assert.Equal(t, mgl32.Vec3{0.1, 0.04, 3.5}, cfg.Light.Position)
	assert.InDelta(t, 0.032, cfg.Light.Quadratic, 1e-6)
	assert.InDelta(t, 2.0, cfg.Model.Scale, 1e-6)
}

func TestDefaultTexturesCoverAllUnits(t *testing.T) {
	cfg := MustDefault()
	for unit, name := range []string{"marble", "book", "cube", "dust"} {
		tex, found := cfg.TextureByName(name)
		require.True(t, found, name)
		assert.Equal(t, unit, tex.Unit, name)
		assert.NotEmpty(t, tex.Path, name)
	}
	_, found := cfg.TextureByName("teapot")
	assert.False(t, found)
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	base := string(defaultYAML)
	data := []struct {
		name    string
		from    string
		to      string
		message string
	}{
		{"zero width", "width: 800", "width: 0", "window size"},
		{"duplicate unit", "unit: 3", "unit: 2", "assigned twice"},
		{"unit out of range", "unit: 3", "unit: 7", "outside"},
		{"duplicate name", "name: dust", "name: cube", "used twice"},
		{"speed below minimum", "speedScalar: 0.1", "speedScalar: 0.001", "below minimum"},
		{"non-positive minimum", "minSpeedScalar: 0.01", "minSpeedScalar: 0", "must be positive"},
		{"inverted clip planes", "far: 100.0", "far: 0.05", "clip planes"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			doc := strings.Replace(base, d.from, d.to, 1)
			require.NotEqual(t, base, doc, "replacement %q did not apply", d.from)
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.message)
		})
	}
}

func TestParseRejectsMissingTexture(t *testing.T) {
	doc := string(defaultYAML)
	idx := strings.Index(doc, "  - name: dust")
	require.True(t, idx > 0)
	end := strings.Index(doc[idx:], "\n\n")
	doc = doc[:idx] + doc[idx+end+1:]

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 textures")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("window: [unterminated"))
	assert.Error(t, err)
}
