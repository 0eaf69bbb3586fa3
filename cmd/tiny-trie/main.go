// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

// Command tiny-trie packs word lists into trie dictionary files and
// queries them.
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"

	tinytrie "github.com/tisho/tiny-trie"
)

// errNoMatch marks a clean "pattern not found" outcome so run can turn
// it into exit code 1 without printing an error.
var errNoMatch = errors.New("no match")

// zstdEncoder and zstdDecoder are reused across calls; both are safe
// for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("tiny-trie: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("tiny-trie: zstd decoder initialization failed: " + err.Error())
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := &cli.Command{
		Name:      "tiny-trie",
		Usage:     "build and query bit-packed trie dictionaries",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			buildCommand(stdout),
			testCommand(stdout),
			searchCommand(stdout),
			infoCommand(stdout),
		},
	}
	if err := root.Run(context.Background(), args); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintf(stderr, "tiny-trie: %v\n", err)
		}
		return 1
	}
	return 0
}

func buildCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "build",
		Usage:       "pack a word list into a trie dictionary file",
		ArgsUsage:   "[words-file]",
		Description: "Reads one word per line from words-file (or stdin when omitted or \"-\") and writes the packed dictionary.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "path of the packed dictionary; a .zst suffix compresses it",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "freeze",
				Usage: "merge shared word tails before packing",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "zstd",
				Usage: "compress the output regardless of suffix",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var in io.Reader = os.Stdin
			if path := cmd.Args().First(); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("opening word list: %w", err)
				}
				defer f.Close()
				in = f
			}

			trie := tinytrie.NewTrie()
			scanner := bufio.NewScanner(in)
			for scanner.Scan() {
				word := strings.TrimSuffix(scanner.Text(), "\r")
				if word == "" {
					continue
				}
				if err := trie.Insert(word); err != nil {
					return fmt.Errorf("inserting %q: %w", word, err)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading word list: %w", err)
			}
			if cmd.Bool("freeze") {
				trie.Freeze()
			}

			encoded, err := trie.Encode()
			if err != nil {
				return err
			}
			out := cmd.String("output")
			data := []byte(encoded)
			if cmd.Bool("zstd") || strings.HasSuffix(out, ".zst") {
				data = zstdEncoder.EncodeAll(data, nil)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing dictionary: %w", err)
			}
			fmt.Fprintf(stdout, "packed %d words into %s (%d bytes)\n", trie.Len(), out, len(data))
			return nil
		},
	}
}

func testCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "test",
		Usage:     "test whether a pattern matches a stored word",
		ArgsUsage: "<pattern>",
		Flags:     append(dictionaryFlags(), matchFlags()...),
		Action: func(_ context.Context, cmd *cli.Command) error {
			trie, err := loadTrie(cmd.String("file"))
			if err != nil {
				return err
			}
			ok := trie.Test(cmd.Args().First(), tinytrie.TestOptions{
				Wildcard: wildcardRune(cmd.String("wildcard")),
				Prefix:   cmd.Bool("prefix"),
			})
			fmt.Fprintln(stdout, ok)
			if !ok {
				return errNoMatch
			}
			return nil
		},
	}
}

func searchCommand(stdout io.Writer) *cli.Command {
	flags := append(dictionaryFlags(), matchFlags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:  "first",
		Usage: "stop after the first match",
	})
	return &cli.Command{
		Name:      "search",
		Usage:     "list the stored words matching a pattern",
		ArgsUsage: "<pattern>",
		Flags:     flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			trie, err := loadTrie(cmd.String("file"))
			if err != nil {
				return err
			}
			matches := trie.Search(cmd.Args().First(), tinytrie.SearchOptions{
				Wildcard: wildcardRune(cmd.String("wildcard")),
				Prefix:   cmd.Bool("prefix"),
				First:    cmd.Bool("first"),
			})
			for _, m := range matches {
				fmt.Fprintln(stdout, m)
			}
			return nil
		},
	}
}

func infoCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "describe a packed dictionary file",
		Flags: dictionaryFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			trie, err := loadTrie(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "format version: %d\n", tinytrie.FormatVersion)
			fmt.Fprintf(stdout, "alphabet:       %q (%d characters)\n", trie.Alphabet(), len([]rune(trie.Alphabet())))
			fmt.Fprintf(stdout, "records:        %d x %d bits\n", trie.NodeCount(), trie.RecordWidth())
			fmt.Fprintf(stdout, "pointer scale:  %d\n", trie.Offset())
			if st, err := os.Stat(path); err == nil {
				fmt.Fprintf(stdout, "file size:      %d bytes\n", st.Size())
			}
			return nil
		},
	}
}

func dictionaryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "packed dictionary file; zstd-compressed files are detected and decompressed",
			Required: true,
		},
	}
}

func matchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "wildcard",
			Aliases: []string{"w"},
			Usage:   "pattern rune that matches any one stored character",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				if utf8.RuneCountInString(s) != 1 {
					return fmt.Errorf("wildcard must be a single character, got %q", s)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:    "prefix",
			Aliases: []string{"p"},
			Usage:   "also match stored words the pattern is a prefix of",
		},
	}
}

func wildcardRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// zstdMagic opens every zstd frame. A plain dictionary can never start
// with it: the first byte of an encoded trie is a base64 header
// character.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func loadTrie(path string) (*tinytrie.PackedTrie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		data, err = zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompressing dictionary: %w", err)
		}
	}
	return tinytrie.New(string(data))
}
