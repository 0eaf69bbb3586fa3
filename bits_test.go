// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBits_WriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	fields := []struct {
		value uint64
		width uint
	}{
		{1, 1},
		{0, 3},
		{5, 3},
		{1023, 10},
		{1, 10},
		{0x155555, 21},
		{0xFF, 8},
		{1<<63 - 1, 63},
		{42, 7},
	}

	var w bitWriter
	for _, f := range fields {
		w.writeBits(f.value, f.width)
	}
	encoded := w.encoded()

	groups := make([]uint8, len(encoded))
	for i, r := range encoded {
		groups[i] = sixBits(r)
	}

	var off uint
	for _, f := range fields {
		require.Equal(t, f.value, readBits(groups, off, f.width))
		off += f.width
	}
}

func TestBits_ReadPastEndIsZero(t *testing.T) {
	t.Parallel()

	groups := []uint8{0b111111}
	require.Equal(t, uint64(0b111111000000), readBits(groups, 0, 12))
	require.Equal(t, uint64(0), readBits(nil, 0, 30))
	require.Equal(t, uint64(0), readBits(groups, 6, 10))
}

func TestBits_EncodedPadsFinalGroup(t *testing.T) {
	t.Parallel()

	var w bitWriter
	w.writeBits(0b11, 2)
	require.Equal(t, "w", w.encoded()) // 110000 = 48 = 'w'
}

func TestSixBits_IgnoresForeignRunes(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint8(0), sixBits('A'))
	require.Equal(t, uint8(25), sixBits('Z'))
	require.Equal(t, uint8(26), sixBits('a'))
	require.Equal(t, uint8(63), sixBits('/'))
	require.Equal(t, uint8(0), sixBits(' '))
	require.Equal(t, uint8(0), sixBits('€'))
	require.Equal(t, uint8(0), sixBits(-1))
}

func TestAlphabet_CharWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		desc  string
		chars string
		width uint
	}{
		{"empty", "", 1},
		{"one char", "a", 1},
		{"two chars", "ab", 2},
		{"three chars", "abc", 2},
		{"six chars", "abcdef", 3},
		{"seven chars", "abcdefg", 3},
		{"eight chars", "abcdefgh", 4},
		{"nine chars", "abcdefghi", 4},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			a := newAlphabet([]rune(tc.chars))
			require.Equal(t, tc.width, a.charWidth())
		})
	}
}
