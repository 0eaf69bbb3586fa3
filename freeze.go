// Copyright (c) the tiny-trie authors
// SPDX-License-Identifier: MIT

package tinytrie

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Freeze minimizes the trie into a DAWG: nodes with identical
// downstream structure collapse into one, so shared word tails are
// stored once in the packed output. Matching behaviour is unchanged;
// only sharing changes. Freeze is idempotent, and a frozen trie
// rejects further Insert calls.
func (t *Trie) Freeze() {
	if t.frozen {
		return
	}
	t.frozen = true
	if len(t.root.edges) == 0 {
		return
	}
	m := minimizer{
		registry: make(map[[32]byte]*trieNode),
		ids:      make(map[*trieNode]uint64),
	}
	t.root = m.canonical(t.root)
}

// minimizer hash-conses subtrees bottom-up. Two nodes are one node
// exactly when their edge lists agree rune for rune on canonical
// children, which the BLAKE3 digest of the serialized edge list keys.
type minimizer struct {
	registry map[[32]byte]*trieNode
	ids      map[*trieNode]uint64
}

func (m *minimizer) canonical(n *trieNode) *trieNode {
	for i, e := range n.edges {
		if e.child != nil {
			n.edges[i].child = m.canonical(e.child)
		}
	}

	sig := make([]byte, 0, len(n.edges)*12)
	for _, e := range n.edges {
		sig = binary.BigEndian.AppendUint32(sig, uint32(e.char))
		var id uint64
		if e.child != nil {
			id = m.ids[e.child]
		}
		sig = binary.BigEndian.AppendUint64(sig, id)
	}

	digest := blake3.Sum256(sig)
	if canon, ok := m.registry[digest]; ok {
		return canon
	}
	m.registry[digest] = n
	m.ids[n] = uint64(len(m.ids)) + 1
	return n
}
