package details

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/Iroai/internal/palette"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_ClampsIndex(t *testing.T) {
	m := NewModel(palette.Palette{"#FF0000", "#00FF00"}, 7)
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, "#FF0000", m.Color())

	assert.Equal(t, "", NewModel(nil, 0).Color())
}

func TestView_ShowsRepresentations(t *testing.T) {
	m := NewModel(palette.Palette{"#FF0000"}, 0)
	view := m.View()

	assert.Contains(t, view, "#FF0000")
	assert.Contains(t, view, "255, 0, 0")
	assert.Contains(t, view, "0°, 100%, 50%")
	assert.Contains(t, view, "0%, 100%, 100%, 0%")
	assert.Contains(t, view, "Red")
	assert.Contains(t, view, "4.00:1")
	assert.Contains(t, view, "5.25:1")
	assert.Contains(t, view, "achromatopsia")
	assert.Contains(t, view, "#4C4C4C")
}

func TestNavigate(t *testing.T) {
	m := NewModel(palette.Palette{"#111111", "#222222", "#333333"}, 1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.Index())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "#222222", m.Color())
}

func TestEdit_Apply(t *testing.T) {
	m := NewModel(palette.Palette{"#111111", "#222222"}, 1)

	m, _ = m.Update(runes("i"))
	require.True(t, m.Editing())

	m, _ = m.Update(runes("0a0zz0B0c"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.Equal(t, ColorEditedMsg{Index: 1, Hex: "#0A00B0"}, cmd())
	assert.False(t, m.Editing())
	assert.Equal(t, "#0A00B0", m.Color())
}

func TestEdit_Invalid(t *testing.T) {
	m := NewModel(palette.Palette{"#111111"}, 0)

	m, _ = m.Update(runes("i"))
	m, _ = m.Update(runes("12"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, m.Editing())
	assert.Contains(t, m.View(), "invalid hex")
	assert.Equal(t, "#111111", m.Color())
}

func TestEdit_BackspaceAndCancel(t *testing.T) {
	m := NewModel(palette.Palette{"#111111"}, 0)

	m, _ = m.Update(runes("i"))
	m, _ = m.Update(runes("abc"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Contains(t, m.View(), "#ab▏")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Editing())
	assert.Equal(t, "#111111", m.Color())
}
