// Package palette generates color palettes and edits them slot by slot.
//
// A palette is an ordered list of "#RRGGBB" strings with a positionally
// aligned lock mask. Generation samples fresh colors around a harmonic hue
// set and carries locked slots over verbatim.
package palette

import (
	"math"
	"math/rand"
	"time"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
	"github.com/Justice-Caban/Iroai/internal/harmony"
)

// goldenRatio is the fractional golden-ratio step used to spread hues.
const goldenRatio = 0.61803398875

// Palette is an ordered list of hex colors.
type Palette []string

// LockMask pins palette slots: true means the slot survives regeneration.
type LockMask []bool

// Locked reports whether slot i is pinned. Slots past the end are unlocked.
func (m LockMask) Locked(i int) bool {
	return i >= 0 && i < len(m) && m[i]
}

// Rand is the random source a Generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// HueRange bounds where new hues are sampled, in degrees.
type HueRange struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// FullHueRange covers the whole wheel.
var FullHueRange = HueRange{Min: 0, Max: 360}

// Span is the width of the range in degrees. A range whose Max is not above
// Min wraps through 0, so {300, 60} spans 120°. Equal bounds span 0.
func (r HueRange) Span() float64 {
	d := r.Max - r.Min
	if d >= 360 {
		return 360
	}
	if d > 0 {
		return d
	}
	return math.Mod(d+360, 360)
}

// At maps u in [0,1) onto the range.
func (r HueRange) At(u float64) float64 {
	return colorconv.WrapHue(r.Min + u*r.Span())
}

// Fold brings an arbitrary hue into the range by wrapping its offset from
// Min. It is the identity for the full wheel.
func (r HueRange) Fold(h float64) float64 {
	span := r.Span()
	if span >= 360 {
		return colorconv.WrapHue(h)
	}
	if span == 0 {
		return colorconv.WrapHue(r.Min)
	}
	off := colorconv.WrapHue(h - r.Min)
	return colorconv.WrapHue(r.Min + math.Mod(off, span))
}

// Options are the user controls for one generation.
type Options struct {
	Count      int
	Brightness float64
	HueRange   HueRange
	Current    Palette
	Locked     LockMask
	Harmony    harmony.Style
}

type role int

const (
	roleOrdinary role = iota
	roleAccent
	roleNeutral
)

// Generator samples palettes from its own random source. It is not safe for
// concurrent use.
type Generator struct {
	rng Rand
}

// NewGenerator returns a generator over rng, or over a clock-seeded source
// when rng is nil.
func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate is the one-shot form of Generator.Generate with a fresh source.
func Generate(count int, brightness float64, hues HueRange, current Palette, locked LockMask, style harmony.Style) Palette {
	return NewGenerator(nil).Generate(Options{
		Count:      count,
		Brightness: brightness,
		HueRange:   hues,
		Current:    current,
		Locked:     locked,
		Harmony:    style,
	})
}

// Generate returns a palette of opts.Count colors. Slots that are locked and
// present in opts.Current are copied verbatim and are never touched again,
// including by the contrast pass.
func (g *Generator) Generate(opts Options) Palette {
	if opts.Count <= 0 {
		return Palette{}
	}

	out := make(Palette, opts.Count)
	kept := make([]bool, opts.Count)
	for i := range out {
		if opts.Locked.Locked(i) && i < len(opts.Current) && opts.Current[i] != "" {
			out[i] = opts.Current[i]
			kept[i] = true
		}
	}

	if opts.Count == 1 {
		if !kept[0] {
			h := opts.HueRange.At(g.rng.Float64())
			s := 40 + g.rng.Float64()*40
			out[0] = colorconv.HSLToHex(h, s, g.bandLightness(opts.Brightness))
		}
		return ensureContrast(out, AAThreshold, func(i int) bool { return kept[i] })
	}

	base := opts.HueRange.At(math.Mod(g.rng.Float64()+goldenRatio, 1))
	style := harmony.Resolve(opts.Harmony, g.rng)
	hues := harmony.Hues(style, base)

	accent := g.rng.Intn(opts.Count)
	neutral := (accent + 1 + g.rng.Intn(opts.Count-1)) % opts.Count

	for i := range out {
		if kept[i] {
			continue
		}

		h := hues[i%len(hues)] + float64(i)*goldenRatio*360
		h = opts.HueRange.Fold(h)

		r := roleOrdinary
		switch i {
		case accent:
			r = roleAccent
		case neutral:
			r = roleNeutral
		}
		s, l := g.tone(r, opts.Brightness)
		out[i] = colorconv.HSLToHex(h, s, l)
	}

	return ensureContrast(out, AAThreshold, func(i int) bool { return kept[i] })
}

// tone draws saturation and lightness for a slot role.
func (g *Generator) tone(r role, brightness float64) (s, l float64) {
	switch r {
	case roleNeutral:
		return g.rng.Float64() * 10, 10 + g.rng.Float64()*80
	case roleAccent:
		return 80 + g.rng.Float64()*20, 40 + g.rng.Float64()*20
	default:
		return 40 + g.rng.Float64()*40, g.bandLightness(brightness)
	}
}

// bandLightness draws a lightness within ±20 of the brightness target, the
// target itself held to [30,70].
func (g *Generator) bandLightness(brightness float64) float64 {
	target := colorconv.Clamp(brightness, 30, 70)
	return target - 20 + g.rng.Float64()*40
}
