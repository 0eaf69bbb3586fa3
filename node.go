// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

// Terminal is the end-of-word sentinel. It occupies character code 0
// in every packed trie and marks the record that completes a word; it
// is not a storable dictionary character.
const Terminal rune = 0

// Node is one decoded payload record: a single edge of the trie.
type Node struct {
	// Char is the edge character, or Terminal for an end-of-word
	// record.
	Char rune

	// Last is set on the final record of its sibling block.
	Last bool

	// Children is the absolute record index of the first record of
	// this edge's children block, already multiplied by the pointer
	// scale. Zero means the edge has no children: record zero starts
	// the root block, which no edge can reference.
	Children int
}

// NodeAt decodes the record at the given index. Out-of-range indexes
// do not fail; they yield the sentinel record {Terminal, false, 0} so
// that running off the end of the payload reads the same as "no such
// sibling". A child pointer whose scaled index falls outside the
// payload decodes as zero, the same as "no children". Exposed for
// diagnostics and tests.
func (t *PackedTrie) NodeAt(index int) Node {
	if index < 0 || index >= t.recordCount {
		return Node{Char: Terminal}
	}
	word := readBits(t.payload, uint(index)*t.recordWidth, t.recordWidth)

	// The raw pointer must itself be a valid record index before the
	// scale multiply: offset >= 1, so the product can only be larger,
	// and checking first keeps the multiply inside uint64 range. The
	// scaled index is then held to the record range too, so a corrupted
	// pointer can never aim a block scan outside the payload.
	raw := word >> pointerShift & t.pointerMask
	var children uint64
	if raw < uint64(t.recordCount) {
		if c := raw * uint64(t.offset); c < uint64(t.recordCount) {
			children = c
		}
	}
	return Node{
		Char:     t.alpha.runeAt(word >> t.charShift & t.charMask),
		Last:     word&lastMask != 0,
		Children: int(children),
	}
}
