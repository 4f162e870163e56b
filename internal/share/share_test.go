package share

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justice-Caban/Iroai/internal/adjust"
	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

func TestEncodeDecode(t *testing.T) {
	in := State{
		Palette:      []string{"#FF0000", "#00FF00", "#0000FF"},
		LockedColors: []bool{true, false, true},
		Adjustments:  &adjust.Values{H: 10, S: -5, B: 20, T: 0},
	}

	blob, err := Encode(in)
	require.NoError(t, err)
	assert.NotContains(t, blob, "=")

	out, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncode_Shape(t *testing.T) {
	blob, err := Encode(State{Palette: []string{"#FF0000"}, LockedColors: []bool{false}})
	require.NoError(t, err)

	data, err := base64.RawURLEncoding.DecodeString(blob)
	require.NoError(t, err)
	assert.JSONEq(t, `{"palette":["#FF0000"],"lockedColors":[false]}`, string(data))
}

func TestDecode_Normalizes(t *testing.T) {
	raw := `{"palette":["#abcdef","123456"],"lockedColors":[true,false,true],"adjustments":{"h":900,"s":0,"b":0,"t":0}}`
	s, err := Decode(base64.StdEncoding.EncodeToString([]byte(raw)))
	require.NoError(t, err)

	assert.Equal(t, []string{"#ABCDEF", "#123456"}, s.Palette)
	assert.Equal(t, []bool{true, false}, s.LockedColors)
	require.NotNil(t, s.Adjustments)
	assert.Equal(t, 180.0, s.Adjustments.H)
}

func TestDecode_MissingLocks(t *testing.T) {
	raw := `{"palette":["#000000","#FFFFFF"]}`
	s, err := Decode(base64.RawURLEncoding.EncodeToString([]byte(raw)))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, s.LockedColors)
	assert.Nil(t, s.Adjustments)
}

func TestDecode_LegacyArray(t *testing.T) {
	raw := `[{"color":"#FF0000","locked":true},{"color":"#00ff00","locked":false}]`
	s, err := Decode(base64.StdEncoding.EncodeToString([]byte(raw)))
	require.NoError(t, err)
	assert.Equal(t, []string{"#FF0000", "#00FF00"}, s.Palette)
	assert.Equal(t, []bool{true, false}, s.LockedColors)
}

func TestDecode_Errors(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		blob    string
		wantErr error
	}{
		{name: "empty", blob: "   ", wantErr: ErrEmptyBlob},
		{name: "not base64", blob: "!!!not-base64!!!"},
		{name: "not json", blob: enc("hello")},
		{name: "empty palette", blob: enc(`{"palette":[]}`), wantErr: ErrEmptyPalette},
		{name: "bad color", blob: enc(`{"palette":["#GGGGGG"]}`), wantErr: colorconv.ErrInvalidHex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.blob)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRestore(t *testing.T) {
	fresh := State{Palette: []string{"#123456"}, LockedColors: []bool{false}}
	fallback := func() State { return fresh }

	s, ok := Restore("garbage", fallback)
	assert.False(t, ok)
	assert.Equal(t, fresh, s)

	blob, err := Encode(State{Palette: []string{"#654321"}, LockedColors: []bool{true}})
	require.NoError(t, err)
	s, ok = Restore(blob, fallback)
	assert.True(t, ok)
	assert.Equal(t, []string{"#654321"}, s.Palette)
}

func TestURL(t *testing.T) {
	st := State{Palette: []string{"#FF0000"}, LockedColors: []bool{true}}

	link, err := URL("https://iroai.example/app", st)
	require.NoError(t, err)
	assert.Contains(t, link, "https://iroai.example/app?shared=")

	got, err := Decode(FromURL(link))
	require.NoError(t, err)
	assert.Equal(t, st.Palette, got.Palette)
	assert.Equal(t, st.LockedColors, got.LockedColors)

	blob, err := Encode(st)
	require.NoError(t, err)
	assert.Equal(t, blob, FromURL(blob))

	_, err = URL("://bad", st)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	data, err := Export(State{
		Palette:     []string{"#FF0000", "#00FF00", "#0000FF"},
		Adjustments: &adjust.Values{},
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc["palette"], 3)
	assert.Equal(t, map[string]any{"h": 0.0, "s": 0.0, "b": 0.0, "t": 0.0}, doc["adjustments"])

	data, err = Export(State{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"palette": []`)
}

func TestExportFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := ExportFile(dir, State{Palette: []string{"#FF0000"}})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#FF0000")
}

func TestExportName(t *testing.T) {
	ts := time.Date(2026, 10, 15, 9, 30, 5, 0, time.UTC)
	assert.Equal(t, "iroai-palette-20261015-093005.json", exportName(ts))
}
