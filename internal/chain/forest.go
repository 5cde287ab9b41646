package chain

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
)

// ErrCycle reports a prev-hash loop in the input. A real blockchain cannot
// contain one because the prev hash is inside the hash preimage, so this
// only fires on corrupted or hand-crafted input.
var ErrCycle = errors.New("prev hash cycle")

// Node is one element of the parent-linked forest. Parent is nil for roots,
// i.e. blocks whose predecessor is absent from the index.
type Node struct {
	Header model.Header
	Parent *Node

	// Cached aggregate work for proxy-mode selection. Zero means not yet
	// computed; sound because bits is never zero in a real header.
	work atomic.Uint64
}

// Ancestry returns the headers on the path from this node's root to the
// node itself, genesis first.
func (n *Node) Ancestry() []model.Header {
	var out []model.Header
	for cur := n; cur != nil; cur = cur.Parent {
		out = append(out, cur.Header)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Forest holds exactly one Node per indexed header. All parent links point
// back into the same container.
type Forest struct {
	nodes map[chainhash.Hash]*Node
}

// BuildForest links every indexed header to its predecessor's node,
// memoised so each header is linked exactly once.
func BuildForest(index BlockIndex) (*Forest, error) {
	f := &Forest{nodes: make(map[chainhash.Hash]*Node, len(index))}
	for _, h := range index {
		if err := f.link(index, h); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// link resolves the ancestor chain of h. Ancestor chains can be hundreds of
// thousands of blocks deep, so the descent is an explicit stack rather than
// recursion: walk prevHash links until an already-linked node or a missing
// predecessor is found, then unwind root-first creating nodes.
func (f *Forest) link(index BlockIndex, h model.Header) error {
	if _, ok := f.nodes[h.Hash]; ok {
		return nil
	}

	path := []model.Header{h}
	onPath := map[chainhash.Hash]struct{}{h.Hash: {}}

	cur := h
	for {
		prev, ok := index.Lookup(cur.PrevHash)
		if !ok {
			// cur is a root
			break
		}
		if _, linked := f.nodes[prev.Hash]; linked {
			break
		}
		if _, seen := onPath[prev.Hash]; seen {
			return fmt.Errorf("%w at block %s", ErrCycle, prev.Hash)
		}
		path = append(path, prev)
		onPath[prev.Hash] = struct{}{}
		cur = prev
	}

	for i := len(path) - 1; i >= 0; i-- {
		hdr := path[i]
		var parent *Node
		if _, ok := index.Lookup(hdr.PrevHash); ok {
			parent = f.nodes[hdr.PrevHash]
		}
		f.nodes[hdr.Hash] = &Node{Header: hdr, Parent: parent}
	}

	return nil
}

// Len returns the number of nodes in the forest.
func (f *Forest) Len() int {
	if f == nil {
		return 0
	}
	return len(f.nodes)
}

// Node returns the node for hash, or nil.
func (f *Forest) Node(hash chainhash.Hash) *Node {
	return f.nodes[hash]
}

// Tips returns every node that is no other node's parent. Two passes:
// record all parent hashes, then select the nodes not among them. Order is
// unspecified.
func (f *Forest) Tips() []*Node {
	parents := make(map[chainhash.Hash]struct{}, len(f.nodes))
	for _, n := range f.nodes {
		if n.Parent != nil {
			parents[n.Parent.Header.Hash] = struct{}{}
		}
	}

	tips := make([]*Node, 0, len(f.nodes)-len(parents))
	for _, n := range f.nodes {
		if _, isParent := parents[n.Header.Hash]; isParent {
			continue
		}
		tips = append(tips, n)
	}
	return tips
}
