// Package share encodes palette state for share links and JSON export.
//
// A share blob is base64 of the JSON state object
// {"palette": [...], "lockedColors": [...], "adjustments": {...}}. There is
// no version field. Blobs that cannot be read are handled by falling back
// to a fresh palette (see Restore), never by showing an error.
package share

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Justice-Caban/Iroai/internal/adjust"
	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

// QueryParam carries the blob in share URLs.
const QueryParam = "shared"

var (
	// ErrEmptyBlob is returned when there is nothing to decode.
	ErrEmptyBlob = errors.New("empty share blob")

	// ErrEmptyPalette is returned when a blob decodes to no colors.
	ErrEmptyPalette = errors.New("shared palette has no colors")
)

// State is the shareable snapshot of a palette.
type State struct {
	Palette      []string       `json:"palette"`
	LockedColors []bool         `json:"lockedColors"`
	Adjustments  *adjust.Values `json:"adjustments,omitempty"`
}

// legacySlot is one entry of the early share format, a bare array of
// {color, locked} objects.
type legacySlot struct {
	Color  string `json:"color"`
	Locked bool   `json:"locked"`
}

// Encode returns the URL-safe, unpadded base64 of s as JSON.
func Encode(s State) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode share state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode parses a blob produced by Encode. Standard and padded base64 are
// accepted too. Every color is validated and normalized, and LockedColors
// is padded or truncated to the palette length.
func Decode(blob string) (State, error) {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return State{}, ErrEmptyBlob
	}

	data, err := decodeBase64(blob)
	if err != nil {
		return State{}, fmt.Errorf("failed to decode share blob: %w", err)
	}

	var s State
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		s, err = decodeLegacy(data)
	} else {
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to parse share state: %w", err)
	}

	if len(s.Palette) == 0 {
		return State{}, ErrEmptyPalette
	}
	for i, c := range s.Palette {
		norm, err := colorconv.Normalize(c)
		if err != nil {
			return State{}, fmt.Errorf("color %d: %w", i, err)
		}
		s.Palette[i] = norm
	}

	locked := make([]bool, len(s.Palette))
	copy(locked, s.LockedColors)
	s.LockedColors = locked

	if s.Adjustments != nil {
		v := s.Adjustments.Clamped()
		s.Adjustments = &v
	}
	return s, nil
}

func decodeLegacy(data []byte) (State, error) {
	var slots []legacySlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return State{}, err
	}

	s := State{
		Palette:      make([]string, len(slots)),
		LockedColors: make([]bool, len(slots)),
	}
	for i, slot := range slots {
		s.Palette[i] = slot.Color
		s.LockedColors[i] = slot.Locked
	}
	return s, nil
}

func decodeBase64(blob string) ([]byte, error) {
	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	} {
		data, err := enc.DecodeString(blob)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// Restore decodes blob, or returns fallback() when the blob is unusable.
// The second result reports whether the blob was used.
func Restore(blob string, fallback func() State) (State, bool) {
	s, err := Decode(blob)
	if err != nil {
		return fallback(), false
	}
	return s, true
}

// URL appends the encoded state to base as the "shared" query parameter.
func URL(base string, s State) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid share base URL: %w", err)
	}

	blob, err := Encode(s)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(QueryParam, blob)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromURL extracts the blob from a share URL. Input that is not a URL
// carrying the parameter is returned as is, so a bare blob also works.
func FromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if blob := u.Query().Get(QueryParam); blob != "" {
		return blob
	}
	return raw
}

// exportDoc is the on-disk JSON export.
type exportDoc struct {
	Palette     []string      `json:"palette"`
	Adjustments adjust.Values `json:"adjustments"`
}

// Export renders the JSON export document for s.
func Export(s State) ([]byte, error) {
	doc := exportDoc{Palette: s.Palette}
	if doc.Palette == nil {
		doc.Palette = []string{}
	}
	if s.Adjustments != nil {
		doc.Adjustments = *s.Adjustments
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// ExportFile writes the export document into dir and returns its path.
func ExportFile(dir string, s State) (string, error) {
	data, err := Export(s)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, exportName(time.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

func exportName(t time.Time) string {
	return "iroai-palette-" + t.Format("20060102-150405") + ".json"
}
