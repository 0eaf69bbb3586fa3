// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

// Package tinytrie stores a set of words as a bit-packed trie inside a
// printable string and answers membership, prefix and single-character
// wildcard queries against it without unpacking.
//
// There are two sides. The builder side ([Trie]) accepts words,
// optionally minimizes shared word tails ([Trie.Freeze]) and serializes
// everything with [Trie.Encode]. The query side ([PackedTrie]) is
// constructed from that string with [New] and is immutable: it reads
// edges straight out of the packed payload on every query, holds no
// caches and is safe for concurrent readers.
//
// # Encoded layout
//
// The string has three regions. Nine characters of fixed header fields
// carry, MSB first at six bits per character: the total header length
// in runes (10 bits), the format version (10 bits), the pointer scale
// factor (21 bits) and the pointer field width in bits (8 bits). The
// alphabet follows as verbatim runes, listed in first-occurrence order
// over the inserted words; the i-th rune gets character code i+1, and
// code 0 is the implicit end-of-word sentinel [Terminal]. Everything
// after the alphabet is payload.
//
// The payload is a dense stream of fixed-width records, one per edge.
// A record holds, from its most significant bit: the character code
// (ceil(log2(alphabet size + 1)) bits), the child pointer (pointer
// field width bits) and a flag marking the last record of its sibling
// block (1 bit). Sibling blocks are contiguous record runs; a child
// pointer times the scale factor is the absolute record index of the
// block holding the target node's edges, with zero meaning no children
// at all. Record zero starts the root's block, so zero can never be a
// real target.
//
// Matching a word is then a block walk: scan the current block for the
// record carrying the next rune, jump to its children block, and accept
// if the final block contains a sentinel record. Wildcards scan the
// whole block and follow every real edge instead of one.
package tinytrie
