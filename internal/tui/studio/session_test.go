package studio

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/Iroai/internal/adjust"
	"github.com/Justice-Caban/Iroai/internal/colorconv"
	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/harmony"
	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/share"
)

func newTestSession(t *testing.T) Session {
	t.Helper()
	gen := palette.NewGenerator(rand.New(rand.NewSource(7)))
	return NewSession(gen, config.DefaultConfig().Generator)
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)

	require.Len(t, s.Base, 5)
	assert.Len(t, s.Locks, 5)
	for _, c := range s.Colors() {
		assert.True(t, colorconv.Valid(c), c)
	}
}

func TestSession_GenerateKeepsLocked(t *testing.T) {
	s := newTestSession(t)
	s.ToggleLock(1)
	s.ToggleLock(3)
	before := s.Colors()

	for i := 0; i < 20; i++ {
		s.Generate()
		after := s.Colors()
		assert.Equal(t, before[1], after[1])
		assert.Equal(t, before[3], after[3])
	}
}

func TestSession_LockFreezesAdjustedColor(t *testing.T) {
	s := newTestSession(t)
	s.Nudge(adjust.Values{B: 40, H: 30})
	shown := s.Colors()

	s.ToggleLock(0)
	assert.Equal(t, shown[0], s.Base[0])
	assert.Equal(t, shown[0], s.Colors()[0])

	s.Nudge(adjust.Values{S: -50})
	s.Generate()
	assert.Equal(t, shown[0], s.Colors()[0])
}

func TestSession_AddRemove(t *testing.T) {
	s := newTestSession(t)

	for len(s.Base) < palette.MaxSlots {
		require.True(t, s.Add())
	}
	assert.False(t, s.Add())
	assert.Len(t, s.Base, palette.MaxSlots)
	assert.Len(t, s.Locks, palette.MaxSlots)

	for len(s.Base) > 1 {
		require.True(t, s.Remove(0))
	}
	assert.False(t, s.Remove(0))
	assert.False(t, s.Remove(5))
	assert.Len(t, s.Base, 1)
}

func TestSession_Move(t *testing.T) {
	s := newTestSession(t)
	s.ToggleLock(0)
	first := s.Base[0]

	s.Move(0, 2)
	assert.Equal(t, first, s.Base[2])
	assert.True(t, s.Locks.Locked(2))
	assert.False(t, s.Locks.Locked(0))
}

func TestSession_SetColor(t *testing.T) {
	s := newTestSession(t)
	s.Nudge(adjust.Values{H: 90})

	require.NoError(t, s.SetColor(2, "abcdef"))
	assert.Equal(t, "#ABCDEF", s.Base[2])
	assert.True(t, s.Locks.Locked(2))
	assert.Equal(t, "#ABCDEF", s.Colors()[2])

	assert.ErrorIs(t, s.SetColor(0, "nope"), colorconv.ErrInvalidHex)
	assert.Error(t, s.SetColor(9, "#000000"))
}

func TestSession_NudgeClamps(t *testing.T) {
	s := newTestSession(t)
	for i := 0; i < 40; i++ {
		s.Nudge(adjust.Values{H: 10, S: -10, B: 10, T: -10})
	}
	assert.Equal(t, adjust.Values{H: 180, S: -100, B: 100, T: -100}, s.Adj)

	s.ResetAdjustments()
	assert.True(t, s.Adj.IsZero())
}

func TestSession_SetBrightness(t *testing.T) {
	s := newTestSession(t)
	s.SetBrightness(120)
	assert.Equal(t, 100, s.Brightness)
	s.SetBrightness(-3)
	assert.Equal(t, 0, s.Brightness)
}

func TestSession_GeneratorConfig(t *testing.T) {
	s := newTestSession(t)
	s.SetBrightness(70)
	s.Harmony = harmony.StyleAnalogous
	s.Hues = palette.HueRange{Min: 300, Max: 60}
	require.True(t, s.Add())

	g := s.GeneratorConfig()
	assert.Equal(t, config.GeneratorConfig{Count: 6, Brightness: 70, HueMin: 300, HueMax: 60, Harmony: "analogous"}, g)

	cfg := config.DefaultConfig()
	cfg.Generator = g
	assert.NoError(t, config.Validate(cfg))
}

func TestSession_ShareRestore(t *testing.T) {
	s := newTestSession(t)
	s.ToggleLock(4)
	s.Nudge(adjust.Values{T: 25, S: -10})

	other := NewSession(palette.NewGenerator(rand.New(rand.NewSource(99))), config.GeneratorConfig{Count: 2, Brightness: 50, HueMax: 360})
	other.Restore(s.ShareState())

	assert.Equal(t, s.Colors(), other.Colors())
	assert.Equal(t, s.Locks, other.Locks)
	assert.Equal(t, s.Adj, other.Adj)
}

func TestSession_ExportStateIsDisplayed(t *testing.T) {
	s := newTestSession(t)
	s.Nudge(adjust.Values{B: 20})

	st := s.ExportState()
	assert.Equal(t, []string(s.Colors()), st.Palette)
	require.NotNil(t, st.Adjustments)
	assert.Equal(t, 20.0, st.Adjustments.B)
}

func TestSession_RestoreEmptyIgnored(t *testing.T) {
	s := newTestSession(t)
	before := s.Colors()
	s.Restore(s.ShareState())
	s.Restore(share.State{})
	assert.Equal(t, before, s.Colors())
}
