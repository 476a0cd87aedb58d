package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DrawShape/internal/geom"
	"DrawShape/internal/state"
)

var geomPt = geom.Pt

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Equal(t, 4.7, Default().HitEpsilon)
	assert.Equal(t, 5.0, Default().MoveStep)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
tool = "hexagon"
border_color = "#ff8000"
move_step = 10
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ToolHexagon, cfg.Tool)
	assert.Equal(t, 10.0, cfg.MoveStep)
	assert.Equal(t, 4.7, cfg.HitEpsilon, "unset keys keep their defaults")
	assert.Equal(t, state.Color{R: 0xff, G: 0x80}, cfg.Border())
	assert.True(t, cfg.Closed(), "hexagon tool should draw closed shapes")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown tool", `tool = "circle"`, "unknown tool"},
		{"bad colour", `border_color = "red"`, "colour"},
		{"zero epsilon", `hit_epsilon = 0.0`, "hit_epsilon"},
		{"negative step", `move_step = -1.0`, "move_step"},
		{"unknown key", `colour = "#000000"`, "unknown key"},
		{"syntax", `tool = `, "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAcceptor(t *testing.T) {
	poly := Default()
	assert.False(t, poly.Closed(), "polyline tool should draw open shapes")
	b := state.NewBuilder(state.VertexCount, poly.Acceptor())
	for _, x := range []float64{0, 10, 20} {
		_, err := b.Add(geomPt(x, 0))
		require.NoError(t, err, "polyline rejected a collinear vertex")
	}

	hex := Default()
	hex.Tool = ToolHexagon
	b = state.NewBuilder(state.VertexCount, hex.Acceptor())
	b.Add(geomPt(0, 0))
	b.Add(geomPt(10, 0))
	_, err := b.Add(geomPt(20, 0))
	assert.ErrorIs(t, err, state.ErrRejectedVertex, "hexagon accepted a collinear vertex")
}
