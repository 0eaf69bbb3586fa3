// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

import "math/bits"

// alphabet maps dictionary runes to their character codes and back.
// Codes are assigned by first occurrence across the inserted word
// sequence: the i-th distinct rune gets code i+1. Code 0 is the
// implicit end-of-word sentinel and is never listed in the table.
type alphabet struct {
	codes   map[rune]uint64
	inverse []rune
}

func newAlphabet(chars []rune) alphabet {
	a := alphabet{
		codes:   make(map[rune]uint64, len(chars)),
		inverse: make([]rune, 1, len(chars)+1),
	}
	a.inverse[0] = Terminal
	for _, r := range chars {
		a.add(r)
	}
	return a
}

// add registers a rune, keeping the first-occurrence order. Known
// runes are left untouched.
func (a *alphabet) add(r rune) {
	if _, ok := a.codes[r]; ok {
		return
	}
	a.codes[r] = uint64(len(a.inverse))
	a.inverse = append(a.inverse, r)
}

func (a *alphabet) code(r rune) (uint64, bool) {
	c, ok := a.codes[r]
	return c, ok
}

// runeAt maps a character code back to its rune. Unknown codes read as
// the sentinel so corrupted records stay harmless.
func (a *alphabet) runeAt(code uint64) rune {
	if code >= uint64(len(a.inverse)) {
		return Terminal
	}
	return a.inverse[code]
}

// size is the number of real characters, excluding the sentinel.
func (a *alphabet) size() int {
	return len(a.inverse) - 1
}

// charWidth is the number of bits needed for any code including the
// sentinel: ceil(log2(size+1)), never less than one bit.
func (a *alphabet) charWidth() uint {
	w := uint(bits.Len(uint(a.size())))
	if w == 0 {
		w = 1
	}
	return w
}
