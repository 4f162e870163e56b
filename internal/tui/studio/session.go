package studio

import (
	"log/slog"

	"github.com/Justice-Caban/Iroai/internal/adjust"
	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/harmony"
	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/share"
)

// Brightness and adjustment step sizes for one key press.
const (
	brightnessStep = 5
	hueStep        = 10
	adjustStep     = 5
)

// Session is the editable palette state behind the studio view.
//
// Base holds the generated colors. Unlocked slots are shown with the
// adjustments applied on top; locked slots hold their final color and are
// shown verbatim. Locking a slot freezes the color it currently shows.
type Session struct {
	gen *palette.Generator

	Base       palette.Palette
	Locks      palette.LockMask
	Adj        adjust.Values
	Brightness int
	Hues       palette.HueRange
	Harmony    harmony.Style
}

// NewSession builds a session from the generator settings and draws the
// first palette.
func NewSession(gen *palette.Generator, cfg config.GeneratorConfig) Session {
	if gen == nil {
		gen = palette.NewGenerator(nil)
	}
	count := cfg.Count
	if count < 1 {
		count = 1
	}

	s := Session{
		gen:        gen,
		Base:       make(palette.Palette, count),
		Locks:      make(palette.LockMask, count),
		Brightness: cfg.Brightness,
		Hues:       cfg.HueRange(),
		Harmony:    cfg.HarmonyStyle(),
	}
	s.Generate()
	return s
}

// Colors returns the palette as displayed.
func (s Session) Colors() palette.Palette {
	return adjust.ApplyUnlocked(s.Base, s.Locks, s.Adj)
}

// Generate redraws every unlocked slot.
func (s *Session) Generate() {
	s.Locks = s.Locks.Align(len(s.Base))
	s.Base = s.gen.Generate(palette.Options{
		Count:      len(s.Base),
		Brightness: float64(s.Brightness),
		HueRange:   s.Hues,
		Current:    s.Base,
		Locked:     s.Locks,
		Harmony:    s.Harmony,
	})
	slog.Debug("palette generated", "colors", s.Base, "harmony", s.Harmony, "brightness", s.Brightness)
}

// ToggleLock locks or unlocks slot i.
func (s *Session) ToggleLock(i int) {
	if i < 0 || i >= len(s.Base) {
		return
	}
	s.Locks = s.Locks.Align(len(s.Base))
	if !s.Locks[i] {
		shown := s.Colors()
		s.Base = append(palette.Palette(nil), s.Base...)
		s.Base[i] = shown[i]
	}
	s.Locks = palette.ToggleLock(s.Locks, i)
}

// Add appends a freshly drawn color. It reports false at MaxSlots.
func (s *Session) Add() bool {
	if len(s.Base) >= palette.MaxSlots {
		return false
	}
	c := s.gen.Generate(palette.Options{
		Count:      1,
		Brightness: float64(s.Brightness),
		HueRange:   s.Hues,
		Harmony:    s.Harmony,
	})
	s.Base, s.Locks = palette.AddSlot(s.Base, s.Locks, c[0])
	return true
}

// Remove drops slot i. The last remaining color cannot be removed.
func (s *Session) Remove(i int) bool {
	if len(s.Base) <= 1 || i < 0 || i >= len(s.Base) {
		return false
	}
	s.Base, s.Locks = palette.RemoveSlot(s.Base, s.Locks, i)
	return true
}

// Move shifts slot from to index to.
func (s *Session) Move(from, to int) {
	s.Base, s.Locks = palette.MoveSlot(s.Base, s.Locks, from, to)
}

// SetColor replaces slot i and locks it, so the color shows exactly as
// entered and survives the next generate.
func (s *Session) SetColor(i int, hex string) error {
	p, err := palette.SetColor(s.Base, i, hex)
	if err != nil {
		return err
	}
	s.Base = p
	s.Locks = s.Locks.Align(len(s.Base))
	s.Locks[i] = true
	return nil
}

// Nudge adds d to the adjustments, keeping each within its slider range.
func (s *Session) Nudge(d adjust.Values) {
	s.Adj = adjust.Values{
		H: s.Adj.H + d.H,
		S: s.Adj.S + d.S,
		B: s.Adj.B + d.B,
		T: s.Adj.T + d.T,
	}.Clamped()
}

// ResetAdjustments clears every adjustment.
func (s *Session) ResetAdjustments() {
	s.Adj = adjust.Values{}
}

// SetBrightness sets the generation target, held to [0,100].
func (s *Session) SetBrightness(b int) {
	s.Brightness = min(max(b, 0), 100)
}

// GeneratorConfig returns the current controls in config form, so they can
// be saved as the defaults for the next session.
func (s Session) GeneratorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Count:      min(max(len(s.Base), 1), palette.MaxSlots),
		Brightness: s.Brightness,
		HueMin:     s.Hues.Min,
		HueMax:     s.Hues.Max,
		Harmony:    string(s.Harmony),
	}
}

// ShareState is the state a share link reproduces: the base colors plus the
// adjustments, so the recipient sees the same palette.
func (s Session) ShareState() share.State {
	adj := s.Adj
	return share.State{
		Palette:      append([]string(nil), s.Base...),
		LockedColors: append([]bool(nil), s.Locks.Align(len(s.Base))...),
		Adjustments:  &adj,
	}
}

// ExportState is the state written by an export: the colors as displayed.
func (s Session) ExportState() share.State {
	adj := s.Adj
	return share.State{
		Palette:      s.Colors(),
		LockedColors: s.Locks.Align(len(s.Base)),
		Adjustments:  &adj,
	}
}

// Restore replaces the palette with a decoded share state.
func (s *Session) Restore(st share.State) {
	if len(st.Palette) == 0 {
		return
	}
	s.Base = append(palette.Palette(nil), st.Palette...)
	s.Locks = palette.LockMask(st.LockedColors).Align(len(s.Base))
	s.Adj = adjust.Values{}
	if st.Adjustments != nil {
		s.Adj = st.Adjustments.Clamped()
	}
}
