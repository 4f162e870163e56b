package palette

import (
	"fmt"

	"github.com/Justice-Caban/Iroai/internal/colorconv"
)

// MaxSlots is the largest palette the front ends offer. The generator
// itself has no cap.
const MaxSlots = 10

// Align returns a copy of m padded with false or truncated so that it has
// exactly n entries.
func (m LockMask) Align(n int) LockMask {
	if n < 0 {
		n = 0
	}
	out := make(LockMask, n)
	copy(out, m)
	return out
}

// ToggleLock flips slot i. Out-of-range indexes leave the mask unchanged.
func ToggleLock(m LockMask, i int) LockMask {
	out := append(LockMask(nil), m...)
	if i >= 0 && i < len(out) {
		out[i] = !out[i]
	}
	return out
}

// RemoveSlot splices slot i out of both the palette and the mask.
func RemoveSlot(p Palette, m LockMask, i int) (Palette, LockMask) {
	m = m.Align(len(p))
	if i < 0 || i >= len(p) {
		return append(Palette(nil), p...), m
	}

	outP := make(Palette, 0, len(p)-1)
	outP = append(append(outP, p[:i]...), p[i+1:]...)
	outM := make(LockMask, 0, len(m)-1)
	outM = append(append(outM, m[:i]...), m[i+1:]...)
	return outP, outM
}

// AddSlot appends an unlocked color. The palette is returned unchanged once
// it holds MaxSlots colors.
func AddSlot(p Palette, m LockMask, color string) (Palette, LockMask) {
	m = m.Align(len(p))
	if len(p) >= MaxSlots {
		return append(Palette(nil), p...), m
	}
	return append(append(Palette(nil), p...), color), append(m, false)
}

// MoveSlot moves slot from to index to, shifting the slots between. The
// lock state travels with its color.
func MoveSlot(p Palette, m LockMask, from, to int) (Palette, LockMask) {
	outP := append(Palette(nil), p...)
	outM := m.Align(len(p))
	if from < 0 || from >= len(p) || to < 0 || to >= len(p) || from == to {
		return outP, outM
	}

	c, l := outP[from], outM[from]
	if from < to {
		copy(outP[from:to], outP[from+1:to+1])
		copy(outM[from:to], outM[from+1:to+1])
	} else {
		copy(outP[to+1:from+1], outP[to:from])
		copy(outM[to+1:from+1], outM[to:from])
	}
	outP[to], outM[to] = c, l
	return outP, outM
}

// SetColor replaces slot i with the canonical form of hex.
func SetColor(p Palette, i int, hex string) (Palette, error) {
	if i < 0 || i >= len(p) {
		return nil, fmt.Errorf("slot %d out of range [0,%d)", i, len(p))
	}
	norm, err := colorconv.Normalize(hex)
	if err != nil {
		return nil, err
	}

	out := append(Palette(nil), p...)
	out[i] = norm
	return out, nil
}
