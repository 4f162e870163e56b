package colorconv

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{name: "red", hex: "#FF0000", want: RGB{255, 0, 0}},
		{name: "green", hex: "#00FF00", want: RGB{0, 255, 0}},
		{name: "blue", hex: "#0000FF", want: RGB{0, 0, 255}},
		{name: "lowercase without hash", hex: "bd3efe", want: RGB{189, 62, 254}},
		{name: "short form is malformed", hex: "#F00", want: RGB{}},
		{name: "non hex digits", hex: "#GG0000", want: RGB{}},
		{name: "empty", hex: "", want: RGB{}},
		{name: "trailing garbage", hex: "#FF0000FF", want: RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HexToRGB(tt.hex))
		})
	}
}

func TestParseHex_Error(t *testing.T) {
	_, err := ParseHex("not a color")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("abcdef")
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", got)

	_, err = Normalize("#abc")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#FF0000", HSL{0, 100, 50}},
		{"#00FF00", HSL{120, 100, 50}},
		{"#0000FF", HSL{240, 100, 50}},
		{"#FFFFFF", HSL{0, 0, 100}},
		{"#000000", HSL{0, 0, 0}},
		{"#808080", HSL{0, 0, 50.19607843137255}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got := HexToHSL(tt.hex)
			assert.InDelta(t, tt.want.H, got.H, 1e-9)
			assert.InDelta(t, tt.want.S, got.S, 1e-9)
			assert.InDelta(t, tt.want.L, got.L, 1e-9)
		})
	}
}

func TestHSLToHex(t *testing.T) {
	assert.Equal(t, "#FF0000", HSLToHex(0, 100, 50))
	assert.Equal(t, "#FF0000", HSLToHex(360, 100, 50))
	assert.Equal(t, "#00FFFF", HSLToHex(-180, 100, 50))
	assert.Equal(t, "#FFFFFF", HSLToHex(0, 0, 150))
	assert.Equal(t, "#000000", HSLToHex(0, 0, -20))
	assert.Equal(t, "#808080", HSLToHex(0, -10, 50.19607843137255))
	assert.Regexp(t, hexRe, HSLToHex(math.NaN(), math.NaN(), math.NaN()))
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		in := RGB{R: rng.Intn(256), G: rng.Intn(256), B: rng.Intn(256)}
		hex := RGBToHex(in)

		t.Run(hex, func(t *testing.T) {
			hsl := HexToHSL(hex)
			out := HexToRGB(hsl.ToHex())

			assert.InDelta(t, in.R, out.R, 1)
			assert.InDelta(t, in.G, out.G, 1)
			assert.InDelta(t, in.B, out.B, 1)
			assert.Equal(t, hex, RGBToHex(HexToRGB(hex)))
		})
	}
}

func TestHexToCMYK(t *testing.T) {
	tests := []struct {
		hex  string
		want CMYK
	}{
		{"#FF0000", CMYK{0, 100, 100, 0}},
		{"#00FF00", CMYK{100, 0, 100, 0}},
		{"#0000FF", CMYK{100, 100, 0, 0}},
		{"#000000", CMYK{0, 0, 0, 100}},
		{"#FFFFFF", CMYK{0, 0, 0, 0}},
		{"garbage", CMYK{0, 0, 0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, HexToCMYK(tt.hex))
		})
	}
}

func TestContrastColor(t *testing.T) {
	dark := []string{"#000000", "#123456", "#660000", "#808080", "#bd3efe", "#FF00FF"}
	light := []string{"#FFFFFF", "#FFFF00", "#00FF00", "#C0C0C0", "#00FFFF", "#909090"}

	for _, hex := range dark {
		assert.Equal(t, White, ContrastColor(hex), hex)
		assert.True(t, IsDark(hex), hex)
	}
	for _, hex := range light {
		assert.Equal(t, Black, ContrastColor(hex), hex)
	}
}

func TestContrastRatio(t *testing.T) {
	assert.InDelta(t, 21.0, ContrastRatio(Black, White), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(White, Black), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio("#777777", "#777777"), 1e-9)
	assert.InDelta(t, 3.998, ContrastRatio("#FF0000", White), 1e-3)
	assert.InDelta(t, 5.252, ContrastRatio("#FF0000", Black), 1e-3)
}

func TestRelativeLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeLuminance(Black), 1e-12)
	assert.InDelta(t, 1.0, RelativeLuminance(White), 1e-12)
	assert.InDelta(t, 0.2126, RelativeLuminance("#FF0000"), 1e-12)
}

func TestWrapHue(t *testing.T) {
	for _, h := range []float64{-720, -361, -1, 0, 359.999, 360, 725, math.Inf(1), math.NaN()} {
		t.Run(fmt.Sprint(h), func(t *testing.T) {
			got := WrapHue(h)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 360.0)
		})
	}
	assert.Equal(t, 330.0, WrapHue(-30))
	assert.Equal(t, 5.0, WrapHue(365))
}

func TestName(t *testing.T) {
	assert.Equal(t, "Red", Name("#FE0101"))
	assert.Equal(t, "Navy", Name("#000070"))
	assert.Equal(t, "Gray", Name("#7F7F7F"))
	assert.Equal(t, "Black", Name("nope"))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "255, 0, 0", FormatRGB(HexToRGB("#FF0000")))
	assert.Equal(t, "0°, 100%, 50%", FormatHSL(HexToHSL("#FF0000")))
	assert.Equal(t, "0%, 100%, 100%, 0%", FormatCMYK(HexToCMYK("#FF0000")))
}
