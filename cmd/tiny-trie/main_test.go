// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(words), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"tiny-trie"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_BuildAndQuery(t *testing.T) {
	t.Parallel()

	words := writeWords(t, "foo\nboo\nfar\n")
	dict := filepath.Join(t.TempDir(), "dict.trie")

	code, out, errOut := runCLI(t, "build", "--output", dict, words)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "packed 3 words into "+dict)

	code, out, errOut = runCLI(t, "test", "--file", dict, "foo")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "true\n", out)

	code, out, _ = runCLI(t, "test", "-f", dict, "-p", "fo")
	require.Equal(t, 0, code)
	require.Equal(t, "true\n", out)

	code, out, errOut = runCLI(t, "search", "-f", dict, "-w", "*", "*oo")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "foo\nboo\n", out)

	code, out, _ = runCLI(t, "search", "-f", dict, "-w", "*", "--first", "*oo")
	require.Equal(t, 0, code)
	require.Equal(t, "foo\n", out)

	code, out, errOut = runCLI(t, "info", "-f", dict)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "format version: 1")
	require.Contains(t, out, "records:")
	require.Contains(t, out, "pointer scale:")
	require.Contains(t, out, "file size:")
}

func TestRun_NoMatchExitsOne(t *testing.T) {
	t.Parallel()

	words := writeWords(t, "foo\n")
	dict := filepath.Join(t.TempDir(), "dict.trie")
	code, _, _ := runCLI(t, "build", "-o", dict, words)
	require.Equal(t, 0, code)

	code, out, errOut := runCLI(t, "test", "-f", dict, "bar")
	require.Equal(t, 1, code)
	require.Equal(t, "false\n", out)
	require.Empty(t, errOut)
}

func TestRun_ZstdRoundTrip(t *testing.T) {
	t.Parallel()

	words := writeWords(t, "foo\nfool\n")
	dict := filepath.Join(t.TempDir(), "dict.trie.zst")

	code, _, errOut := runCLI(t, "build", "-o", dict, words)
	require.Equal(t, 0, code, errOut)

	raw, err := os.ReadFile(dict)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 4)
	require.Equal(t, zstdMagic, raw[:4])

	code, out, errOut := runCLI(t, "test", "-f", dict, "fool")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "true\n", out)
}

func TestRun_ZstdFlagWithoutSuffix(t *testing.T) {
	t.Parallel()

	// --zstd compresses regardless of the output name; reading back
	// must key on the file content, not the suffix.
	words := writeWords(t, "foo\nboo\n")
	dict := filepath.Join(t.TempDir(), "dict.trie")

	code, _, errOut := runCLI(t, "build", "--zstd", "-o", dict, words)
	require.Equal(t, 0, code, errOut)

	raw, err := os.ReadFile(dict)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 4)
	require.Equal(t, zstdMagic, raw[:4])

	code, out, errOut := runCLI(t, "test", "-f", dict, "foo")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "true\n", out)

	code, out, errOut = runCLI(t, "info", "-f", dict)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "format version: 1")
}

func TestRun_RejectsMultiRuneWildcard(t *testing.T) {
	t.Parallel()

	words := writeWords(t, "foo\n")
	dict := filepath.Join(t.TempDir(), "dict.trie")
	code, _, _ := runCLI(t, "build", "-o", dict, words)
	require.Equal(t, 0, code)

	code, _, errOut := runCLI(t, "test", "-f", dict, "-w", "**", "foo")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "wildcard must be a single character")
}

func TestRun_MissingDictionaryFails(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "test", "-f", filepath.Join(t.TempDir(), "absent.trie"), "foo")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "opening dictionary")
}
