// Package adjust nudges every color of a palette by global hue, saturation,
// brightness and temperature deltas, working in HSL.
package adjust

import (
	"fmt"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

const (
	// HueScale multiplies the hue delta. The slider covers [-180,180], so
	// with x1 it spans the wheel exactly once.
	HueScale = 1.0

	// TemperatureScale turns the [-100,100] temperature slider into a
	// secondary hue shift of at most 60°.
	TemperatureScale = 0.6
)

// Values are the signed slider deltas. The sliders cover H in [-180,180]
// and the rest in [-100,100]; Color wraps hue and temperature deltas
// outside those ranges around the wheel.
type Values struct {
	H float64 `json:"h" mapstructure:"h"`
	S float64 `json:"s" mapstructure:"s"`
	B float64 `json:"b" mapstructure:"b"`
	T float64 `json:"t" mapstructure:"t"`
}

// IsZero reports whether v leaves every color unchanged.
func (v Values) IsZero() bool {
	return v == Values{}
}

// Clamped bounds each delta to its slider range. It is meant for slider
// state; Color only clamps S and B.
func (v Values) Clamped() Values {
	return Values{
		H: colorconv.Clamp(v.H, -180, 180),
		S: colorconv.Clamp(v.S, -100, 100),
		B: colorconv.Clamp(v.B, -100, 100),
		T: colorconv.Clamp(v.T, -100, 100),
	}
}

func (v Values) String() string {
	return fmt.Sprintf("H%+.0f S%+.0f B%+.0f T%+.0f", v.H, v.S, v.B, v.T)
}

// Color applies v to a single color. A zero v returns hex untouched.
func Color(hex string, v Values) string {
	if v.IsZero() {
		return hex
	}
	c := colorconv.HexToHSL(hex)

	h := colorconv.WrapHue(c.H + v.H*HueScale)
	s := colorconv.Clamp(c.S+v.S, 0, 100)

	l := c.L
	switch b := colorconv.Clamp(v.B, -100, 100) / 100; {
	case b > 0:
		l += (100 - l) * b
	case b < 0:
		l += l * b
	}
	l = colorconv.Clamp(l, 0, 100)

	h = colorconv.WrapHue(h + v.T*TemperatureScale)
	return colorconv.HSLToHex(h, s, l)
}

// Apply adjusts every color in p and returns a new slice of the same
// length. It ignores lock state; see ApplyUnlocked.
func Apply(p []string, v Values) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = Color(c, v)
	}
	return out
}

// ApplyUnlocked adjusts only the slots not marked in locked. Slots beyond
// the end of locked count as unlocked.
func ApplyUnlocked(p []string, locked []bool, v Values) []string {
	out := make([]string, len(p))
	for i, c := range p {
		if i < len(locked) && locked[i] {
			out[i] = c
			continue
		}
		out[i] = Color(c, v)
	}
	return out
}
