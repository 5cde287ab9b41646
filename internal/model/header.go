// Package model defines the domain values shared across the pipeline.
package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// Header is the retained view of one 80-byte block header record. Hash is
// the double SHA-256 of the full raw record and serves as the block
// identity; the remaining header fields contribute to the hash but are not
// kept.
type Header struct {
	Hash     chainhash.Hash
	PrevHash chainhash.Hash
	Bits     uint32
}

// WorkMode selects how aggregate chain work is computed.
type WorkMode string

const (
	// WorkProxy sums the raw bits fields along a chain. Matches the
	// original tool's output byte for byte.
	WorkProxy WorkMode = "proxy"
	// WorkTarget sums true per-block work derived from the compact target.
	// Changes which fork wins when targets differ along the chains.
	WorkTarget WorkMode = "target"
)

// Valid reports whether m is a known work mode.
func (m WorkMode) Valid() bool {
	return m == WorkProxy || m == WorkTarget
}
