package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Justice-Caban/Iroai/internal/adjust"
	"github.com/Justice-Caban/Iroai/internal/colorconv"
	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/cvd"
	"github.com/Justice-Caban/Iroai/internal/harmony"
	"github.com/Justice-Caban/Iroai/internal/palette"
	"github.com/Justice-Caban/Iroai/internal/share"
)

// cli runs the non-interactive subcommands. Generator and share defaults
// come from the loaded config.
type cli struct {
	cfg *config.Config
	out io.Writer
}

func (c *cli) dispatch(name string, args []string) error {
	switch name {
	case "generate":
		return c.generate(args)
	case "inspect":
		return c.inspect(args)
	case "adjust":
		return c.adjust(args)
	case "simulate":
		return c.simulate(args)
	case "contrast":
		return c.contrast(args)
	case "share":
		return c.share(args)
	case "help":
		fs := c.flagSet("iroai")
		fs.String("shared", "", "restore a shared palette (share URL or blob)")
		fs.Bool("version", false, "print the version and exit")
		usage(c.out, fs)
		return nil
	}
	return fmt.Errorf("unknown command %q (try \"iroai help\")", name)
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func (c *cli) generate(args []string) error {
	g := c.cfg.Generator
	fs := c.flagSet("generate")
	count := fs.Int("n", g.Count, "number of colors")
	brightness := fs.Float64("b", float64(g.Brightness), "brightness target 0-100")
	hueMin := fs.Float64("hue-min", g.HueMin, "lower hue bound in degrees")
	hueMax := fs.Float64("hue-max", g.HueMax, "upper hue bound in degrees; below hue-min wraps through 0")
	style := fs.String("harmony", g.Harmony, "complementary, analogous, triadic, split-complementary or random")
	locks := fs.String("lock", "", "comma separated slot indexes to keep from -current")
	current := fs.String("current", "", "comma separated current palette")
	seed := fs.Int64("seed", 0, "random seed; 0 seeds from the clock")
	asJSON := fs.Bool("json", false, "print a JSON array")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *count < 0 {
		return fmt.Errorf("-n must not be negative, got %d", *count)
	}
	h, err := harmony.Parse(*style)
	if err != nil {
		return err
	}
	cur, err := parseColors(splitList(*current))
	if err != nil {
		return fmt.Errorf("invalid -current: %w", err)
	}
	mask, err := parseLocks(*locks, *count)
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	gen := palette.NewGenerator(rand.New(rand.NewSource(*seed)))
	p := gen.Generate(palette.Options{
		Count:      *count,
		Brightness: *brightness,
		HueRange:   palette.HueRange{Min: *hueMin, Max: *hueMax},
		Current:    cur,
		Locked:     mask,
		Harmony:    h,
	})

	if *asJSON {
		return c.printJSON(p)
	}
	return c.printLines(p)
}

func (c *cli) inspect(args []string) error {
	fs := c.flagSet("inspect")
	if err := fs.Parse(args); err != nil {
		return err
	}
	colors, err := parseColors(fs.Args())
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return fmt.Errorf("inspect needs at least one color")
	}

	for i, hex := range colors {
		if i > 0 {
			fmt.Fprintln(c.out)
		}
		fmt.Fprintf(c.out, "%s  %s\n", hex, colorconv.Name(hex))
		fmt.Fprintf(c.out, "  RGB    %s\n", colorconv.FormatRGB(colorconv.HexToRGB(hex)))
		fmt.Fprintf(c.out, "  HSL    %s\n", colorconv.FormatHSL(colorconv.HexToHSL(hex)))
		fmt.Fprintf(c.out, "  CMYK   %s\n", colorconv.FormatCMYK(colorconv.HexToCMYK(hex)))
		fmt.Fprintf(c.out, "  Text   %s\n", colorconv.ContrastColor(hex))
		fmt.Fprintf(c.out, "  White  %.2f:1\n", colorconv.ContrastRatio(hex, colorconv.White))
		fmt.Fprintf(c.out, "  Black  %.2f:1\n", colorconv.ContrastRatio(hex, colorconv.Black))
	}
	return nil
}

func (c *cli) adjust(args []string) error {
	fs := c.flagSet("adjust")
	var v adjust.Values
	fs.Float64Var(&v.H, "h", 0, "hue shift in degrees, -180 to 180")
	fs.Float64Var(&v.S, "s", 0, "saturation shift, -100 to 100")
	fs.Float64Var(&v.B, "b", 0, "brightness shift, -100 to 100")
	fs.Float64Var(&v.T, "t", 0, "temperature shift, -100 (cool) to 100 (warm)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	colors, err := parseColors(fs.Args())
	if err != nil {
		return err
	}
	return c.printLines(adjust.Apply(colors, v))
}

func (c *cli) simulate(args []string) error {
	fs := c.flagSet("simulate")
	name := fs.String("type", "all", "protanopia, deuteranopia, tritanopia, achromatopsia or all")
	if err := fs.Parse(args); err != nil {
		return err
	}
	colors, err := parseColors(fs.Args())
	if err != nil {
		return err
	}

	if *name == "all" {
		for _, hex := range colors {
			fields := []string{hex}
			for _, t := range cvd.Types() {
				fields = append(fields, fmt.Sprintf("%s=%s", t, cvd.SimulateColor(hex, t)))
			}
			fmt.Fprintln(c.out, strings.Join(fields, " "))
		}
		return nil
	}

	t, err := cvd.Parse(*name)
	if err != nil {
		return err
	}
	return c.printLines(cvd.Simulate(colors, t))
}

func (c *cli) contrast(args []string) error {
	fs := c.flagSet("contrast")
	all := fs.Bool("all", false, "list pairs below 4.5:1 as well")
	if err := fs.Parse(args); err != nil {
		return err
	}
	colors, err := parseColors(fs.Args())
	if err != nil {
		return err
	}

	threshold := palette.AAThreshold
	if *all {
		threshold = 0
	}
	for _, p := range palette.ContrastPairs(colors, threshold) {
		verdict := "AA"
		if p.Ratio < palette.AAThreshold {
			verdict = "fail"
		}
		fmt.Fprintf(c.out, "%s on %s  %5.2f:1  %s\n", colors[p.Text], colors[p.Background], p.Ratio, verdict)
	}
	return nil
}

func (c *cli) share(args []string) error {
	fs := c.flagSet("share")
	base := fs.String("base", c.cfg.Preferences.ShareBaseURL, "base URL of the share link")
	locks := fs.String("lock", "", "comma separated locked slot indexes")
	decode := fs.String("decode", "", "print the palette in a share URL or blob instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *decode != "" {
		st, err := share.Decode(share.FromURL(*decode))
		if err != nil {
			return err
		}
		data, err := share.Export(st)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.out, string(data))
		return err
	}

	colors, err := parseColors(fs.Args())
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return share.ErrEmptyPalette
	}
	mask, err := parseLocks(*locks, len(colors))
	if err != nil {
		return err
	}

	link, err := share.URL(*base, share.State{Palette: colors, LockedColors: mask})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, link)
	return err
}

func (c *cli) printLines(colors []string) error {
	for _, hex := range colors {
		if _, err := fmt.Fprintln(c.out, hex); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) printJSON(colors []string) error {
	data, err := json.Marshal(colors)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseColors normalizes every hex argument
func parseColors(args []string) (palette.Palette, error) {
	out := make(palette.Palette, 0, len(args))
	for _, a := range args {
		hex, err := colorconv.Normalize(a)
		if err != nil {
			return nil, err
		}
		out = append(out, hex)
	}
	return out, nil
}

// parseLocks turns "0,2" into a mask of n slots
func parseLocks(s string, n int) (palette.LockMask, error) {
	mask := make(palette.LockMask, n)
	for _, part := range splitList(s) {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid lock index %q", part)
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("lock index %d out of range [0,%d)", i, n)
		}
		mask[i] = true
	}
	return mask, nil
}
