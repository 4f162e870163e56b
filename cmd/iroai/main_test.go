package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
	"github.com/Justice-Caban/Iroai/internal/config"
	"github.com/Justice-Caban/Iroai/internal/harmony"
	"github.com/Justice-Caban/Iroai/internal/share"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := &cli{cfg: config.DefaultConfig(), out: &out}
	err := c.dispatch(args[0], args[1:])
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestGenerate(t *testing.T) {
	out, err := runCLI(t, "generate", "-n", "4", "-seed", "42")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 4)
	for _, hex := range got {
		assert.True(t, colorconv.Valid(hex), hex)
	}

	again, err := runCLI(t, "generate", "-n", "4", "-seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_JSON(t *testing.T) {
	out, err := runCLI(t, "generate", "-n", "3", "-seed", "1", "-json")
	require.NoError(t, err)

	var colors []string
	require.NoError(t, json.Unmarshal([]byte(out), &colors))
	assert.Len(t, colors, 3)
}

func TestGenerate_Locked(t *testing.T) {
	out, err := runCLI(t, "generate", "-n", "3", "-seed", "5", "-current", "#111111, 222222", "-lock", "1")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 3)
	assert.Equal(t, "#222222", got[1])
}

func TestGenerate_Errors(t *testing.T) {
	_, err := runCLI(t, "generate", "-harmony", "tetradic")
	assert.ErrorIs(t, err, harmony.ErrUnknownStyle)

	_, err = runCLI(t, "generate", "-n", "3", "-lock", "5")
	assert.ErrorContains(t, err, "out of range")

	_, err = runCLI(t, "generate", "-lock", "x")
	assert.ErrorContains(t, err, "invalid lock index")

	_, err = runCLI(t, "generate", "-current", "#12")
	assert.ErrorIs(t, err, colorconv.ErrInvalidHex)

	_, err = runCLI(t, "generate", "-n", "-1")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	out, err := runCLI(t, "inspect", "ff0000")
	require.NoError(t, err)

	assert.Contains(t, out, "#FF0000  Red")
	assert.Contains(t, out, "255, 0, 0")
	assert.Contains(t, out, "0°, 100%, 50%")
	assert.Contains(t, out, "0%, 100%, 100%, 0%")
	assert.Contains(t, out, "Text   #FFFFFF")
	assert.Contains(t, out, "White  4.00:1")
	assert.Contains(t, out, "Black  5.25:1")

	_, err = runCLI(t, "inspect", "zz")
	assert.ErrorIs(t, err, colorconv.ErrInvalidHex)

	_, err = runCLI(t, "inspect")
	assert.Error(t, err)
}

func TestAdjust(t *testing.T) {
	out, err := runCLI(t, "adjust", "-h", "180", "#FF0000", "#808080")
	require.NoError(t, err)
	assert.Equal(t, []string{"#00FFFF", "#808080"}, lines(out))

	out, err = runCLI(t, "adjust", "#ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF\n", out)
}

func TestSimulate(t *testing.T) {
	out, err := runCLI(t, "simulate", "-type", "achromatopsia", "#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "#4C4C4C\n", out)

	out, err = runCLI(t, "simulate", "#808080")
	require.NoError(t, err)
	assert.Contains(t, out, "protanopia=")
	assert.Contains(t, out, "achromatopsia=#808080")

	_, err = runCLI(t, "simulate", "-type", "sepia", "#808080")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	out, err := runCLI(t, "contrast", "#000000", "#FFFFFF", "#777777")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 4)
	assert.Contains(t, got[0], "21.00:1  AA")

	out, err = runCLI(t, "contrast", "-all", "#000000", "#FFFFFF", "#777777")
	require.NoError(t, err)
	assert.Len(t, lines(out), 6)
	assert.Contains(t, out, "fail")
}

func TestShare_RoundTrip(t *testing.T) {
	out, err := runCLI(t, "share", "-base", "https://example.com/p", "-lock", "1", "#112233", "445566")
	require.NoError(t, err)

	link := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(link, "https://example.com/p?shared="), link)

	st, err := share.Decode(share.FromURL(link))
	require.NoError(t, err)
	assert.Equal(t, []string{"#112233", "#445566"}, st.Palette)
	assert.Equal(t, []bool{false, true}, st.LockedColors)

	out, err = runCLI(t, "share", "-decode", link)
	require.NoError(t, err)
	assert.Contains(t, out, `"#445566"`)
}

func TestShare_Errors(t *testing.T) {
	_, err := runCLI(t, "share")
	assert.ErrorIs(t, err, share.ErrEmptyPalette)

	_, err = runCLI(t, "share", "-decode", "!!!")
	assert.Error(t, err)
}

func TestDispatch(t *testing.T) {
	_, err := runCLI(t, "paint")
	assert.ErrorContains(t, err, "unknown command")

	out, err := runCLI(t, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "iroai generate")
	assert.Contains(t, out, "-shared")
}

func TestSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	closeLog, err := setupLogging(path)
	require.NoError(t, err)
	slog.Info("palette generated", "count", 5)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "iroai starting")
	assert.Contains(t, string(data), "palette generated")

	closeLog, err = setupLogging("")
	require.NoError(t, err)
	closeLog()

	_, err = setupLogging(filepath.Join(t.TempDir(), "missing", "debug.log"))
	assert.Error(t, err)
}

func TestPrintPalette(t *testing.T) {
	blob, err := share.Encode(share.State{Palette: []string{"#0A0B0C", "#D0E0F0"}})
	require.NoError(t, err)

	var out bytes.Buffer
	c := &cli{cfg: config.DefaultConfig(), out: &out}
	require.NoError(t, printPalette(c, "https://iroai.app/?shared="+blob))
	assert.Equal(t, "#0A0B0C\n#D0E0F0\n", out.String())

	out.Reset()
	require.NoError(t, printPalette(c, "not a share link"))
	assert.Len(t, lines(out.String()), config.DefaultConfig().Generator.Count)
}
