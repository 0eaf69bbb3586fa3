// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

import (
	"fmt"
	"math/bits"
)

// Encode renders the packed printable form consumed by New. Blocks are
// laid out level-order from the root with later siblings' subtrees
// placed first within each level; a node shared between edges (after
// Freeze) is emitted once and pointed to from every referencing
// record. The pointer scale is the greatest common divisor of all
// referenced block start indexes, so stored pointers stay as small as
// the layout allows.
func (t *Trie) Encode() (string, error) {
	if t.alpha.size() > maxAlphabetLen {
		return "", fmt.Errorf("%w: alphabet has %d characters, limit is %d", ErrTooLarge, t.alpha.size(), maxAlphabetLen)
	}

	// Assign each reachable node the start index of its edge block.
	start := make(map[*trieNode]int)
	var order []*trieNode
	next := 0
	if len(t.root.edges) > 0 {
		queue := []*trieNode{t.root}
		start[t.root] = 0
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			start[n] = next
			next += len(n.edges)
			order = append(order, n)
			for i := len(n.edges) - 1; i >= 0; i-- {
				c := n.edges[i].child
				if c == nil {
					continue
				}
				if _, seen := start[c]; seen {
					continue
				}
				start[c] = -1
				queue = append(queue, c)
			}
		}
	}

	offset := 0
	for _, n := range order {
		for _, e := range n.edges {
			if e.child != nil {
				offset = gcd(offset, start[e.child])
			}
		}
	}
	if offset < 1 || offset > maxOffset {
		offset = 1
	}

	maxRaw := 0
	for _, n := range order {
		for _, e := range n.edges {
			if e.child != nil && start[e.child]/offset > maxRaw {
				maxRaw = start[e.child] / offset
			}
		}
	}
	pointerWidth := uint(bits.Len(uint(maxRaw)))
	if pointerWidth == 0 {
		pointerWidth = 1
	}
	charWidth := t.alpha.charWidth()
	recordWidth := charWidth + 1 + pointerWidth
	if recordWidth > maxRecordWidth {
		return "", fmt.Errorf("%w: record width %d exceeds %d bits", ErrTooLarge, recordWidth, maxRecordWidth)
	}

	var w bitWriter
	for _, n := range order {
		for i, e := range n.edges {
			var code, raw uint64
			if e.char != Terminal {
				code, _ = t.alpha.code(e.char)
			}
			if e.child != nil {
				raw = uint64(start[e.child] / offset)
			}
			word := code<<(pointerShift+pointerWidth) | raw<<pointerShift
			if i == len(n.edges)-1 {
				word |= lastMask
			}
			w.writeBits(word, recordWidth)
		}
	}
	return buildHeader(t.alpha.inverse[1:], offset, pointerWidth) + w.encoded(), nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
