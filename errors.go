// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

import "errors"

var (
	// ErrVersionMismatch is returned by New when the encoded string
	// carries a format version other than FormatVersion. It is the only
	// error the reading side produces; truncated or foreign input fails
	// the same way because the version stamp cannot be read back.
	ErrVersionMismatch = errors.New("tinytrie: format version mismatch")

	// ErrFrozen is returned by Insert after Freeze has been called.
	ErrFrozen = errors.New("tinytrie: trie is frozen")

	// ErrInvalidRune is returned by Insert for words containing the
	// end-of-word sentinel rune, which cannot be stored.
	ErrInvalidRune = errors.New("tinytrie: word contains the sentinel rune")

	// ErrTooLarge is returned by Encode when the trie exceeds a format
	// limit: the alphabet table, the pointer scale or the record width
	// no longer fit their header fields.
	ErrTooLarge = errors.New("tinytrie: trie exceeds format limits")
)
