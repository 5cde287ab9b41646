// Package emit writes the selected best chain to the primary output stream
// and reports the run summary on the diagnostic log.
package emit

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
	"github.com/goodnatureofminers/bestchain7000/pkg/safe"
	"go.uber.org/zap"
)

// Summary carries the diagnostic figures for one completed selection.
type Summary struct {
	Tips       int
	Records    uint64
	Duplicates uint64
	Work       *big.Int
}

// Emitter renders the winning chain. The whole payload is assembled in
// memory before any byte reaches the output, so a failed run leaves the
// primary stream untouched rather than truncated.
type Emitter struct {
	dst    io.Writer
	logger *zap.Logger
}

// NewEmitter creates an Emitter writing to dst.
func NewEmitter(dst io.Writer, logger *zap.Logger) *Emitter {
	return &Emitter{
		dst:    dst,
		logger: logger.Named("emitter"),
	}
}

// Emit logs the summary and writes every 32-byte hash of chain, genesis
// first, back to back with no framing. chain must be non-empty.
func (e *Emitter) Emit(chain []model.Header, sum Summary) error {
	if len(chain) == 0 {
		return errors.New("empty chain")
	}

	height, err := safe.Uint64(len(chain) - 1)
	if err != nil {
		return fmt.Errorf("chain height: %w", err)
	}

	genesis := chain[0].Hash
	tip := chain[len(chain)-1].Hash

	e.logger.Info("found chain tips", zap.Int("count", sum.Tips))
	e.logger.Info("found best chain",
		zap.Uint64("height", height),
		zap.Stringer("genesis", genesis),
		zap.Stringer("tip", tip),
		zap.Uint64("records", sum.Records),
		zap.Uint64("duplicates", sum.Duplicates),
		zap.String("work", sum.Work.String()),
	)

	payload := make([]byte, 0, len(chain)*chainhash.HashSize)
	for _, h := range chain {
		payload = append(payload, h.Hash[:]...)
	}

	if _, err := e.dst.Write(payload); err != nil {
		return fmt.Errorf("write best chain: %w", err)
	}
	return nil
}
