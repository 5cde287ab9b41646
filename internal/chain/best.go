package chain

import (
	"bytes"
	"context"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
	"github.com/goodnatureofminers/bestchain7000/pkg/workerpool"
	"go.uber.org/zap"
)

// ErrNoTips reports an empty forest; there is no chain to select.
var ErrNoTips = errors.New("no chain tips")

// Result describes the selected best chain.
type Result struct {
	// Chain holds the winning headers ordered genesis first.
	Chain []model.Header
	// Tips is the number of chain tips the forest exposed.
	Tips int
	// Work is the winning tip's aggregate work in the selected mode's
	// unit: a plain bits sum for proxy mode, true cumulative work for
	// target mode.
	Work *big.Int
}

// Selector picks the tip whose aggregate work dominates and materialises
// its chain.
type Selector struct {
	mode    model.WorkMode
	workers int
	logger  *zap.Logger
}

// NewSelector creates a Selector. workers bounds concurrent tip evaluation
// in proxy mode; target mode always evaluates sequentially because big.Int
// memo cells cannot be written atomically.
func NewSelector(mode model.WorkMode, workers int, logger *zap.Logger) *Selector {
	if workers < 1 {
		workers = 1
	}
	return &Selector{
		mode:    mode,
		workers: workers,
		logger:  logger.Named("selector"),
	}
}

// Best evaluates the aggregate work of every tip and returns the chain of
// the dominant one. Equal work resolves to the lexicographically smaller
// tip hash so the selection is deterministic regardless of tip iteration
// order.
func (s *Selector) Best(ctx context.Context, forest *Forest) (Result, error) {
	tips := forest.Tips()
	if len(tips) == 0 {
		return Result{}, ErrNoTips
	}
	s.logger.Debug("evaluating chain tips", zap.Int("count", len(tips)))

	var (
		best     *Node
		bestWork *big.Int
	)

	switch s.mode {
	case model.WorkTarget:
		memo := make(map[chainhash.Hash]*big.Int, forest.Len())
		for _, tip := range tips {
			w := targetWork(tip, memo)
			if beats(tip, w, best, bestWork) {
				best, bestWork = tip, w
			}
		}

	default:
		err := workerpool.Process(ctx, s.workers, tips, func(_ context.Context, tip *Node) error {
			tip.aggregateWork()
			return nil
		})
		if err != nil {
			return Result{}, err
		}
		for _, tip := range tips {
			w := new(big.Int).SetUint64(tip.aggregateWork())
			if beats(tip, w, best, bestWork) {
				best, bestWork = tip, w
			}
		}
	}

	s.logger.Debug("selected best tip",
		zap.Stringer("tip", best.Header.Hash),
		zap.String("work", bestWork.String()),
	)

	return Result{
		Chain: best.Ancestry(),
		Tips:  len(tips),
		Work:  bestWork,
	}, nil
}

// beats reports whether candidate work strictly dominates the current best,
// breaking ties by the smaller tip hash.
func beats(tip *Node, work *big.Int, best *Node, bestWork *big.Int) bool {
	if best == nil {
		return true
	}
	switch work.Cmp(bestWork) {
	case 1:
		return true
	case 0:
		return bytes.Compare(tip.Header.Hash[:], best.Header.Hash[:]) < 0
	default:
		return false
	}
}
