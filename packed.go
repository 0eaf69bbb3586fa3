// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

// PackedTrie is a read-only dictionary decoded from its printable
// string form. Construction derives the record geometry once; after
// that every query works directly on the packed payload without
// allocating nodes. A PackedTrie holds no mutable state, so any number
// of goroutines may query it concurrently.
type PackedTrie struct {
	offset      int
	recordWidth uint
	charShift   uint
	charMask    uint64
	pointerMask uint64
	recordCount int
	alpha       alphabet
	payload     []uint8
}

// New parses an encoded trie string. The only failure is
// ErrVersionMismatch: strings stamped with a different format version,
// including truncated or foreign input whose stamp reads back wrong.
// Every other field is clamped into a usable range, so corrupt input
// degrades to queries that find nothing rather than to a panic.
func New(encoded string) (*PackedTrie, error) {
	h, err := parseHeader(encoded)
	if err != nil {
		return nil, err
	}
	alpha := newAlphabet(h.chars)
	charWidth := alpha.charWidth()
	pointerWidth := h.pointerWidth
	if charWidth+1+pointerWidth > maxRecordWidth {
		pointerWidth = maxRecordWidth - 1 - charWidth
	}
	t := &PackedTrie{
		offset:      h.offset,
		recordWidth: charWidth + 1 + pointerWidth,
		charShift:   pointerShift + pointerWidth,
		charMask:    1<<charWidth - 1,
		pointerMask: 1<<pointerWidth - 1,
		alpha:       alpha,
		payload:     h.payload,
	}
	t.recordCount = len(h.payload) * 6 / int(t.recordWidth)
	return t, nil
}

// TestOptions control how Test matches its pattern.
type TestOptions struct {
	// Wildcard, when non-zero, is a pattern rune that matches exactly
	// one stored character. It never matches the end-of-word sentinel,
	// so a wildcard cannot stand in for "end of word".
	Wildcard rune

	// Prefix accepts the pattern when it is a proper prefix of some
	// stored word, not only a whole word.
	Prefix bool
}

// Test reports whether the pattern matches a stored word. Without
// options that is plain membership. An empty pattern is a member only
// when the empty word itself was stored; with Prefix it holds whenever
// the dictionary is non-empty.
func (t *PackedTrie) Test(pattern string, opts TestOptions) bool {
	runes := []rune(pattern)

	type frame struct{ block, depth int }
	queue := []frame{{0, 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		if f.depth == len(runes) {
			if opts.Prefix {
				// Arrival proves a live path. The initial root frame
				// only counts when there is a dictionary behind it.
				if f.depth > 0 || t.recordCount > 0 {
					return true
				}
				continue
			}
			if t.blockClosesWord(f.block) {
				return true
			}
			continue
		}

		target := runes[f.depth]
		wild := opts.Wildcard != 0 && target == opts.Wildcard
		for i := f.block; i < t.recordCount; i++ {
			n := t.NodeAt(i)
			if wild {
				if n.Char != Terminal && n.Children != 0 {
					queue = append(queue, frame{n.Children, f.depth + 1})
				}
			} else if n.Char == target {
				if n.Children != 0 {
					queue = append(queue, frame{n.Children, f.depth + 1})
				}
				break
			}
			if n.Last {
				break
			}
		}
	}
	return false
}

// blockClosesWord reports whether the sibling block starting at the
// given record carries the end-of-word sentinel.
func (t *PackedTrie) blockClosesWord(block int) bool {
	for i := block; i < t.recordCount; i++ {
		n := t.NodeAt(i)
		if n.Char == Terminal {
			return true
		}
		if n.Last {
			break
		}
	}
	return false
}

// HasChar reports whether the rune occurs in the packed alphabet. A
// rune outside the alphabet cannot appear in any stored word, which
// lets callers reject patterns before walking anything.
func (t *PackedTrie) HasChar(r rune) bool {
	_, ok := t.alpha.code(r)
	return ok
}

// NodeCount is the number of payload records (edges).
func (t *PackedTrie) NodeCount() int {
	return t.recordCount
}

// RecordWidth is the width of one payload record in bits.
func (t *PackedTrie) RecordWidth() int {
	return int(t.recordWidth)
}

// Offset is the pointer scale factor stored in the header.
func (t *PackedTrie) Offset() int {
	return t.offset
}

// Alphabet returns the stored characters in table order.
func (t *PackedTrie) Alphabet() string {
	return string(t.alpha.inverse[1:])
}
