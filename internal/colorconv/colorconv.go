// Package colorconv converts between the hex, RGB, HSL and CMYK
// representations used across Iroai and computes luminance-based contrast.
//
// Colors travel through the rest of the module as "#RRGGBB" strings. Every
// function here tolerates malformed input: it is read as black rather than
// reported, so a bad value in a palette can never stop a render.
package colorconv

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	Black = "#000000"
	White = "#FFFFFF"
)

// ErrInvalidHex is returned by the strict parsers when a string is not a
// six-digit hex color.
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// RGB holds three 8-bit channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CMYK holds four device-independent percentages.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// ParseHex parses a hex color with or without the leading '#'.
func ParseHex(hex string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	channel := func(s string) int {
		v, _ := strconv.ParseUint(s, 16, 8)
		return int(v)
	}
	return RGB{R: channel(m[1]), G: channel(m[2]), B: channel(m[3])}, nil
}

// HexToRGB is ParseHex with malformed input read as black.
func HexToRGB(hex string) RGB {
	rgb, err := ParseHex(hex)
	if err != nil {
		return RGB{}
	}
	return rgb
}

// Valid reports whether hex is a six-digit hex color.
func Valid(hex string) bool {
	_, err := ParseHex(hex)
	return err == nil
}

// Normalize returns the canonical uppercase "#RRGGBB" form of hex, or an
// error when hex is malformed.
func Normalize(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// RGBToHex formats rgb as "#RRGGBB", clamping each channel to [0,255].
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(rgb.R), clampByte(rgb.G), clampByte(rgb.B))
}

// HexToHSL decomposes a color by its max/min channels. The result is not
// rounded so that HSLToHex(HexToHSL(x)) reproduces x exactly.
func HexToHSL(hex string) HSL {
	h, s, l := toColorful(HexToRGB(hex)).Hsl()
	return HSL{H: WrapHue(h), S: s * 100, L: l * 100}
}

// HSLToHex converts HSL to hex. Hue is wrapped into [0,360) and
// saturation and lightness are clamped to [0,100] first.
func HSLToHex(h, s, l float64) string {
	c := colorful.Hsl(WrapHue(h), Clamp(s, 0, 100)/100, Clamp(l, 0, 100)/100)
	return FromColorful(c)
}

// ToHex is HSLToHex for an HSL value.
func (c HSL) ToHex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// HexToCMYK approximates the device CMYK percentages of a color. Pure black
// is reported as {0,0,0,100}.
func HexToCMYK(hex string) CMYK {
	rgb := HexToRGB(hex)
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 100}
	}

	part := func(v float64) int {
		return int(math.Round((1 - v - k) / (1 - k) * 100))
	}
	return CMYK{C: part(r), M: part(g), Y: part(b), K: int(math.Round(k * 100))}
}

// Brightness is the perceptual brightness (0.299r + 0.587g + 0.114b) on the
// 0-255 scale.
func Brightness(hex string) float64 {
	rgb := HexToRGB(hex)
	return (float64(rgb.R)*299 + float64(rgb.G)*587 + float64(rgb.B)*114) / 1000
}

// ContrastColor picks black or white text for a background. It uses
// perceptual brightness, not WCAG luminance: anything brighter than 128
// gets black text.
func ContrastColor(hex string) string {
	if Brightness(hex) > 128 {
		return Black
	}
	return White
}

// IsDark reports whether hex takes white text.
func IsDark(hex string) bool {
	return ContrastColor(hex) == White
}

// RelativeLuminance is the WCAG relative luminance of a color in [0,1].
func RelativeLuminance(hex string) float64 {
	rgb := HexToRGB(hex)
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

// ContrastRatio is the WCAG contrast ratio between two colors, in [1,21].
func ContrastRatio(a, b string) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// WrapHue maps any angle into [0,360). NaN and infinities map to 0.
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// Clamp bounds v to [lo,hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToColorful converts hex to a go-colorful color with channels in [0,1].
func ToColorful(hex string) colorful.Color {
	return toColorful(HexToRGB(hex))
}

// FromColorful clamps c into gamut and formats it as "#RRGGBB".
func FromColorful(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return RGBToHex(RGB{R: int(r), G: int(g), B: int(b)})
}

func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
}

func linearize(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
