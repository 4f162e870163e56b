// Package cvd approximates how colors appear to viewers with a
// color-vision deficiency.
//
// Dichromacies are simulated in LMS cone space: the missing cone response is
// rebuilt from the two remaining ones using the Viénot/Brettel projection,
// then the color is taken back to RGB. Achromatopsia is a plain luma
// projection.
package cvd

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

// Type is a kind of color-vision deficiency.
type Type string

const (
	None          Type = "none"
	Protanopia    Type = "protanopia"
	Deuteranopia  Type = "deuteranopia"
	Tritanopia    Type = "tritanopia"
	Achromatopsia Type = "achromatopsia"
)

// ErrUnknownType is returned by Parse for unrecognised names.
var ErrUnknownType = errors.New("unknown color vision deficiency")

// Types returns the simulated deficiencies, without None.
func Types() []Type {
	return []Type{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// Parse maps a case-insensitive name to a Type. "" and "none" yield None.
func Parse(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if t == "" || t == None {
		return None, nil
	}
	for _, known := range Types() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Next cycles None -> Protanopia -> ... -> Achromatopsia -> None.
func (t Type) Next() Type {
	all := append([]Type{None}, Types()...)
	for i, known := range all {
		if known == t {
			return all[(i+1)%len(all)]
		}
	}
	return None
}

type matrix [3][3]float64

func (m matrix) mul(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

var rgbToLMS = matrix{
	{17.8824, 43.5161, 4.11935},
	{3.45565, 27.1554, 3.86714},
	{0.0299566, 0.184309, 1.46709},
}

var lmsToRGB = matrix{
	{0.0809444479, -0.130504409, 0.116721066},
	{-0.0102485335, 0.0540193266, -0.113614708},
	{-0.000365296938, -0.00412161469, 0.693511405},
}

// Each projection rebuilds one cone response from the other two and passes
// those two through unchanged.
var projections = map[Type]matrix{
	Protanopia: {
		{0, 2.02344, -2.52581},
		{0, 1, 0},
		{0, 0, 1},
	},
	Deuteranopia: {
		{1, 0, 0},
		{0.494207, 0, 1.24827},
		{0, 0, 1},
	},
	Tritanopia: {
		{1, 0, 0},
		{0, 1, 0},
		{-0.395913, 0.801109, 0},
	},
}

// SimulateColor returns hex as seen with deficiency t. None and unknown
// types return the canonical form of hex.
func SimulateColor(hex string, t Type) string {
	c := colorconv.ToColorful(hex)

	if t == Achromatopsia {
		gray := 0.299*c.R + 0.587*c.G + 0.114*c.B
		return colorconv.FromColorful(colorful.Color{R: gray, G: gray, B: gray})
	}

	proj, ok := projections[t]
	if !ok {
		return colorconv.FromColorful(c)
	}

	lms := proj.mul(rgbToLMS.mul([3]float64{c.R, c.G, c.B}))
	rgb := lmsToRGB.mul(lms)
	for i, v := range rgb {
		if math.IsNaN(v) {
			rgb[i] = 0
		}
	}
	return colorconv.FromColorful(colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]})
}

// Simulate maps SimulateColor over a palette. Colors are independent.
func Simulate(p []string, t Type) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = SimulateColor(c, t)
	}
	return out
}
