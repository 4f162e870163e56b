package palette

import (
	"sort"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

// AAThreshold is the WCAG AA contrast ratio for body text.
const AAThreshold = 4.5

// lightnessPush is how far EnsureContrast moves a weak color away from 50.
const lightnessPush = 20

// EnsureContrast makes a best-effort attempt at giving p one color usable
// on white and one usable on black at the AA threshold.
func EnsureContrast(p Palette) Palette {
	return EnsureContrastRatio(p, AAThreshold)
}

// EnsureContrastRatio is EnsureContrast for an arbitrary threshold.
//
// When p lacks a color reaching min against white, or one reaching min
// against black, the first color under min against both has its lightness
// pushed 20 points away from 50. Only one color is repaired and the result
// is not re-checked, so the palette may still fall short.
func EnsureContrastRatio(p Palette, min float64) Palette {
	return ensureContrast(p, min, nil)
}

func ensureContrast(p Palette, min float64, skip func(int) bool) Palette {
	out := append(Palette(nil), p...)
	if out == nil {
		out = Palette{}
	}

	onWhite, onBlack := false, false
	for _, c := range out {
		if colorconv.ContrastRatio(c, colorconv.White) >= min {
			onWhite = true
		}
		if colorconv.ContrastRatio(c, colorconv.Black) >= min {
			onBlack = true
		}
	}
	if onWhite && onBlack {
		return out
	}

	for i, c := range out {
		if skip != nil && skip(i) {
			continue
		}
		if colorconv.ContrastRatio(c, colorconv.White) >= min || colorconv.ContrastRatio(c, colorconv.Black) >= min {
			continue
		}

		hsl := colorconv.HexToHSL(c)
		if hsl.L > 50 {
			hsl.L += lightnessPush
		} else {
			hsl.L -= lightnessPush
		}
		out[i] = hsl.ToHex()
		break
	}
	return out
}

// Pair is one background/text combination from a palette.
type Pair struct {
	Background int
	Text       int
	Ratio      float64
}

// ContrastPairs lists every ordered pair of distinct slots whose contrast
// ratio is at least min, strongest first. Pass 0 to list all pairs.
func ContrastPairs(p Palette, min float64) []Pair {
	var pairs []Pair
	for i := range p {
		for j := range p {
			if i == j {
				continue
			}
			r := colorconv.ContrastRatio(p[i], p[j])
			if r >= min {
				pairs = append(pairs, Pair{Background: i, Text: j, Ratio: r})
			}
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Ratio > pairs[b].Ratio
	})
	return pairs
}
