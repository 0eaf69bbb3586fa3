// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

// The printable encoding carries six bits per character using the
// standard base64 alphabet without padding. Characters are plain 6-bit
// groups; the bit stream is addressed at arbitrary bit offsets, so no
// byte alignment is ever assumed.
const alphabet64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var index64 = buildIndex64()

func buildIndex64() [128]int8 {
	var idx [128]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(alphabet64); i++ {
		idx[alphabet64[i]] = int8(i)
	}
	return idx
}

// sixBits returns the 6-bit group carried by an encoded character.
// Characters outside the encoding alphabet read as zero bits, which
// keeps decoding total on corrupted input.
func sixBits(r rune) uint8 {
	if r < 0 || r >= 128 {
		return 0
	}
	v := index64[r]
	if v < 0 {
		return 0
	}
	return uint8(v)
}
