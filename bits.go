// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

// readBits extracts width bits starting at bit offset off from a slice
// of 6-bit groups, MSB first. Bits past the end of the data read as
// zero, so callers never have to bounds-check partial reads.
func readBits(data []uint8, off, width uint) uint64 {
	var v uint64
	for i := uint(0); i < width; i++ {
		v <<= 1
		pos := off + i
		g := pos / 6
		if g >= uint(len(data)) {
			continue
		}
		v |= uint64(data[g]>>(5-pos%6)) & 1
	}
	return v
}

// bitWriter accumulates an MSB-first bit stream into 6-bit groups.
type bitWriter struct {
	groups []uint8
	cur    uint8
	fill   uint
}

// writeBits appends the low width bits of v, most significant first.
func (w *bitWriter) writeBits(v uint64, width uint) {
	for i := int(width) - 1; i >= 0; i-- {
		w.cur = w.cur<<1 | uint8(v>>uint(i))&1
		w.fill++
		if w.fill == 6 {
			w.groups = append(w.groups, w.cur)
			w.cur, w.fill = 0, 0
		}
	}
}

// encoded zero-pads the final group and renders the stream as
// printable characters.
func (w *bitWriter) encoded() string {
	groups := w.groups
	if w.fill > 0 {
		groups = append(groups, w.cur<<(6-w.fill))
	}
	out := make([]byte, len(groups))
	for i, g := range groups {
		out[i] = alphabet64[g]
	}
	return string(out)
}
