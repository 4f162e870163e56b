// Package harmony derives related hues from a base hue using classic
// color-wheel harmony rules.
package harmony

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

// Style names a harmony rule.
type Style string

const (
	StyleComplementary      Style = "complementary"
	StyleAnalogous          Style = "analogous"
	StyleTriadic            Style = "triadic"
	StyleSplitComplementary Style = "split-complementary"
	StyleRandom             Style = "random"
)

// ErrUnknownStyle is returned by Parse for names outside Styles().
var ErrUnknownStyle = errors.New("unknown harmony style")

// concrete lists the styles Random resolves to, in a fixed order so that a
// seeded generator always picks the same one.
var concrete = []Style{
	StyleComplementary,
	StyleAnalogous,
	StyleTriadic,
	StyleSplitComplementary,
}

// Styles returns every selectable style, Random last.
func Styles() []Style {
	return append(append([]Style(nil), concrete...), StyleRandom)
}

// Parse maps a case-insensitive style name to a Style. An empty string
// selects Random.
func Parse(name string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(name)))
	if s == "" {
		return StyleRandom, nil
	}
	for _, known := range Styles() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Next returns the style after s in Styles() order, wrapping around.
func (s Style) Next() Style {
	all := Styles()
	for i, known := range all {
		if known == s {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Intn is the slice of a random source Resolve needs.
type Intn interface {
	Intn(n int) int
}

// Resolve materializes Random into one of the four concrete styles, chosen
// uniformly. Any other style, including an unknown one, is returned as is.
func Resolve(s Style, rng Intn) Style {
	if s != StyleRandom {
		return s
	}
	return concrete[rng.Intn(len(concrete))]
}

// Complementary is the hue opposite h.
func Complementary(h float64) float64 {
	return colorconv.WrapHue(h + 180)
}

// Analogous returns the two neighbours 30° either side of h.
func Analogous(h float64) [2]float64 {
	return [2]float64{colorconv.WrapHue(h - 30), colorconv.WrapHue(h + 30)}
}

// Triadic returns the two hues that split the wheel into thirds with h.
func Triadic(h float64) [2]float64 {
	return [2]float64{colorconv.WrapHue(h + 120), colorconv.WrapHue(h + 240)}
}

// SplitComplementary returns the two neighbours of h's complement.
func SplitComplementary(h float64) [2]float64 {
	return Analogous(Complementary(h))
}

// Hues returns the harmonic hue set for a concrete style: the base hue
// followed by its related hues. Random and unknown styles yield only the
// base; callers resolve Random first.
func Hues(s Style, base float64) []float64 {
	base = colorconv.WrapHue(base)

	switch s {
	case StyleComplementary:
		return []float64{base, Complementary(base)}
	case StyleAnalogous:
		a := Analogous(base)
		return []float64{base, a[0], a[1]}
	case StyleTriadic:
		t := Triadic(base)
		return []float64{base, t[0], t[1]}
	case StyleSplitComplementary:
		sc := SplitComplementary(base)
		return []float64{base, sc[0], sc[1]}
	default:
		return []float64{base}
	}
}
