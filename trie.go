// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

// Trie is the mutable builder side: words go in one at a time, then
// Encode renders the packed string that PackedTrie consumes. Children
// keep their first-occurrence insertion order, never a sorted order;
// that order is what assigns character codes and becomes the sibling
// order inside each packed block. A Trie is not safe for concurrent
// use.
type Trie struct {
	root   *trieNode
	alpha  alphabet
	words  int
	frozen bool
}

type trieNode struct {
	edges []trieEdge
}

// trieEdge is one outgoing transition. The end-of-word edge carries
// Terminal and no child.
type trieEdge struct {
	char  rune
	child *trieNode
}

func (n *trieNode) edge(r rune) *trieNode {
	for _, e := range n.edges {
		if e.char == r {
			return e.child
		}
	}
	return nil
}

func (n *trieNode) terminal() bool {
	for _, e := range n.edges {
		if e.char == Terminal {
			return true
		}
	}
	return false
}

// NewTrie returns an empty builder.
func NewTrie() *Trie {
	return &Trie{
		root:  &trieNode{},
		alpha: newAlphabet(nil),
	}
}

// Insert adds a word. Duplicates are no-ops. Words may contain any
// runes except the sentinel; inserting after Freeze fails with
// ErrFrozen and leaves the trie untouched.
func (t *Trie) Insert(word string) error {
	if t.frozen {
		return ErrFrozen
	}
	for _, r := range word {
		if r == Terminal {
			return ErrInvalidRune
		}
	}

	node := t.root
	for _, r := range word {
		t.alpha.add(r)
		next := node.edge(r)
		if next == nil {
			next = &trieNode{}
			node.edges = append(node.edges, trieEdge{r, next})
		}
		node = next
	}
	if !node.terminal() {
		node.edges = append(node.edges, trieEdge{Terminal, nil})
		t.words++
	}
	return nil
}

// Test reports exact membership of a word in the builder.
func (t *Trie) Test(word string) bool {
	node := t.root
	for _, r := range word {
		if node = node.edge(r); node == nil {
			return false
		}
	}
	return node.terminal()
}

// Len is the number of distinct words inserted.
func (t *Trie) Len() int {
	return t.words
}
