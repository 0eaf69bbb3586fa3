// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

import "fmt"

// FormatVersion is the packed format version this package reads and
// writes. New rejects strings stamped with any other version.
const FormatVersion = 1

// Header field widths, in bits. The fixed fields occupy the first
// headerFixedRunes characters of the encoded string; the alphabet
// follows as verbatim runes up to headerRunes, and everything after
// that is payload.
const (
	headerRunesField  = 10
	versionField      = 10
	offsetField       = 21
	pointerWidthField = 8

	headerFixedBits  = headerRunesField + versionField + offsetField + pointerWidthField
	headerFixedRunes = (headerFixedBits + 5) / 6

	maxAlphabetLen = 1<<headerRunesField - 1 - headerFixedRunes
	maxOffset      = 1<<offsetField - 1

	// Record fields must fit one uint64 read.
	maxRecordWidth = 63
)

// Record geometry constants shared by encoder and decoder: the last
// flag sits at bit zero of a record word and the child pointer starts
// one bit above it. The char code occupies the remaining high bits.
const (
	lastMask     = 0x1
	pointerShift = 1
)

// header is the parsed front matter of an encoded trie.
type header struct {
	offset       int
	pointerWidth uint
	chars        []rune
	payload      []uint8
}

// parseHeader splits an encoded string into its header fields, alphabet
// and payload groups. The version stamp is checked before anything else
// is trusted; all other fields are clamped into usable ranges so a
// hostile string degrades into an empty or garbage trie instead of a
// panic.
func parseHeader(encoded string) (header, error) {
	runes := []rune(encoded)

	fixed := make([]uint8, headerFixedRunes)
	for i := range fixed {
		if i < len(runes) {
			fixed[i] = sixBits(runes[i])
		}
	}

	version := readBits(fixed, headerRunesField, versionField)
	if version != FormatVersion {
		return header{}, fmt.Errorf("%w: string is v%d, reader is v%d", ErrVersionMismatch, version, FormatVersion)
	}

	headerRunes := int(readBits(fixed, 0, headerRunesField))
	if headerRunes < headerFixedRunes {
		headerRunes = headerFixedRunes
	}
	if headerRunes > len(runes) {
		headerRunes = len(runes)
	}

	h := header{
		offset:       int(readBits(fixed, headerRunesField+versionField, offsetField)),
		pointerWidth: uint(readBits(fixed, headerRunesField+versionField+offsetField, pointerWidthField)),
	}
	if h.offset < 1 {
		h.offset = 1
	}
	if h.pointerWidth < 1 {
		h.pointerWidth = 1
	}

	if headerRunes > headerFixedRunes {
		h.chars = runes[headerFixedRunes:headerRunes]
	}
	if headerRunes < len(runes) {
		h.payload = make([]uint8, len(runes)-headerRunes)
		for i, r := range runes[headerRunes:] {
			h.payload[i] = sixBits(r)
		}
	}
	return h, nil
}

// buildHeader renders the header region: fixed fields padded to
// headerFixedRunes characters, then the alphabet runes verbatim.
func buildHeader(chars []rune, offset int, pointerWidth uint) string {
	var w bitWriter
	w.writeBits(uint64(headerFixedRunes+len(chars)), headerRunesField)
	w.writeBits(FormatVersion, versionField)
	w.writeBits(uint64(offset), offsetField)
	w.writeBits(uint64(pointerWidth), pointerWidthField)
	return w.encoded() + string(chars)
}
