package chain

import (
	"math/big"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// aggregateWork returns the memoised sum of raw bits along the ancestor
// chain. Safe to call from multiple goroutines: racing evaluators may
// duplicate a walk but always store identical values, so the memo needs no
// lock.
func (n *Node) aggregateWork() uint64 {
	if w := n.work.Load(); w != 0 {
		return w
	}

	// Collect the uncached suffix of the chain, then unwind root-first so
	// every node on the path gets its value cached for sibling tips.
	var path []*Node
	cur := n
	for cur != nil && cur.work.Load() == 0 {
		path = append(path, cur)
		cur = cur.Parent
	}

	var w uint64
	if cur != nil {
		w = cur.work.Load()
	}
	for i := len(path) - 1; i >= 0; i-- {
		w += uint64(path[i].Header.Bits)
		path[i].work.Store(w)
	}
	return w
}

// targetWork returns the true cumulative proof of work along the ancestor
// chain, per-block work being 2^256 / (target + 1) with the target decoded
// from the compact bits encoding. memo is shared across tips of one
// selection pass; not safe for concurrent use.
func targetWork(n *Node, memo map[chainhash.Hash]*big.Int) *big.Int {
	var path []*Node
	base := new(big.Int)
	for cur := n; cur != nil; cur = cur.Parent {
		if w, ok := memo[cur.Header.Hash]; ok {
			base = w
			break
		}
		path = append(path, cur)
	}

	w := base
	for i := len(path) - 1; i >= 0; i-- {
		w = new(big.Int).Add(w, blockchain.CalcWork(path[i].Header.Bits))
		memo[path[i].Header.Hash] = w
	}
	return w
}
