// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

// SearchOptions control how Search matches and enumerates.
type SearchOptions struct {
	// Wildcard, when non-zero, is a pattern rune that matches exactly
	// one stored character, never the end-of-word sentinel.
	Wildcard rune

	// Prefix additionally enumerates every stored word the pattern is
	// a prefix of, after the exact-length matches.
	Prefix bool

	// First stops at the first match; the result has at most one
	// element.
	First bool
}

// Search returns the stored words matching the pattern. Words are
// rebuilt from the characters actually matched, so wildcard positions
// come back as the concrete stored runes. Matches of the pattern's own
// length are reported first, in block order; with Prefix set, longer
// completions follow level by level.
func (t *PackedTrie) Search(pattern string, opts SearchOptions) []string {
	runes := []rune(pattern)

	type frame struct {
		block, depth int
		word         string
	}
	var out []string
	queue := []frame{{0, 0, ""}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		// A well-formed payload cannot nest deeper than its record
		// count; this bound stops pointer cycles planted by corrupted
		// input.
		if f.depth > len(runes)+t.recordCount {
			continue
		}

		if f.depth >= len(runes) {
			for i := f.block; i < t.recordCount; i++ {
				n := t.NodeAt(i)
				if n.Char == Terminal {
					out = append(out, f.word)
					if opts.First {
						return out
					}
				} else if opts.Prefix && n.Children != 0 {
					queue = append(queue, frame{n.Children, f.depth + 1, f.word + string(n.Char)})
				}
				if n.Last {
					break
				}
			}
			continue
		}

		target := runes[f.depth]
		wild := opts.Wildcard != 0 && target == opts.Wildcard
		for i := f.block; i < t.recordCount; i++ {
			n := t.NodeAt(i)
			if wild {
				if n.Char != Terminal && n.Children != 0 {
					queue = append(queue, frame{n.Children, f.depth + 1, f.word + string(n.Char)})
				}
			} else if n.Char == target {
				if n.Children != 0 {
					queue = append(queue, frame{n.Children, f.depth + 1, f.word + string(n.Char)})
				}
				break
			}
			if n.Last {
				break
			}
		}
	}
	return out
}
