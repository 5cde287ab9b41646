// Package chain reconstructs the parent-linked forest induced by a bag of
// block headers and selects the chain with the most aggregate work.
package chain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
)

// BlockIndex maps a block hash to its header. It is built once after the
// input has been fully read and is read-only afterwards.
type BlockIndex map[chainhash.Hash]model.Header

// NewBlockIndex indexes headers by hash. Duplicate hashes overwrite
// silently; the last occurrence wins.
func NewBlockIndex(headers []model.Header) BlockIndex {
	idx := make(BlockIndex, len(headers))
	for _, h := range headers {
		idx[h.Hash] = h
	}
	return idx
}

// Lookup returns the header for hash, if indexed.
func (idx BlockIndex) Lookup(hash chainhash.Hash) (model.Header, bool) {
	h, ok := idx[hash]
	return h, ok
}
