package colorconv

import (
	"fmt"
	"math"
)

type namedColor struct {
	hex  string
	name string
}

// Reference colors for Name, in tie-break order.
var namedColors = []namedColor{
	{"#FF0000", "Red"},
	{"#00FF00", "Green"},
	{"#0000FF", "Blue"},
	{"#FFFF00", "Yellow"},
	{"#FF00FF", "Magenta"},
	{"#00FFFF", "Cyan"},
	{"#800000", "Maroon"},
	{"#008000", "Green"},
	{"#000080", "Navy"},
	{"#808000", "Olive"},
	{"#800080", "Purple"},
	{"#008080", "Teal"},
	{"#FFA500", "Orange"},
	{"#FFC0CB", "Pink"},
	{"#A52A2A", "Brown"},
	{"#808080", "Gray"},
	{"#FFFFFF", "White"},
	{"#000000", "Black"},
}

// Name returns the name of the reference color nearest to hex by RGB
// distance.
func Name(hex string) string {
	rgb := HexToRGB(hex)

	best := math.Inf(1)
	name := ""
	for _, nc := range namedColors {
		ref := HexToRGB(nc.hex)
		dr := float64(rgb.R - ref.R)
		dg := float64(rgb.G - ref.G)
		db := float64(rgb.B - ref.B)
		if d := dr*dr + dg*dg + db*db; d < best {
			best = d
			name = nc.name
		}
	}
	return name
}

// FormatRGB renders "r, g, b".
func FormatRGB(c RGB) string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// FormatHSL renders "h°, s%, l%" with each component rounded.
func FormatHSL(c HSL) string {
	h := int(math.Round(c.H)) % 360
	return fmt.Sprintf("%d°, %d%%, %d%%", h, int(math.Round(c.S)), int(math.Round(c.L)))
}

// FormatCMYK renders "c%, m%, y%, k%".
func FormatCMYK(c CMYK) string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c.C, c.M, c.Y, c.K)
}
