package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/bestchain7000/internal/chain"
	"github.com/goodnatureofminers/bestchain7000/internal/emit"
	"go.uber.org/zap"
)

// ErrEmptyInput reports that the input stream held no header records; no
// best chain exists.
var ErrEmptyInput = errors.New("no header records on input")

// Pipeline runs the batch reconstruction: read headers, index them, build
// the parent-linked forest, select the best tip, emit the winning chain.
// All mutable state is owned here and mutated in that strict phase order.
type Pipeline struct {
	logger   *zap.Logger
	metrics  PipelineMetrics
	source   HeaderSource
	selector ChainSelector
	emitter  ChainEmitter
}

// NewPipeline wires the pipeline collaborators.
func NewPipeline(
	source HeaderSource,
	selector ChainSelector,
	emitter ChainEmitter,
	metrics PipelineMetrics,
	logger *zap.Logger,
) (*Pipeline, error) {
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}

	return &Pipeline{
		logger:   logger.Named("pipeline"),
		metrics:  metrics,
		source:   source,
		selector: selector,
		emitter:  emitter,
	}, nil
}

// Run executes the pipeline once. Any phase error aborts the run; the
// primary output receives bytes only after selection has succeeded.
func (p *Pipeline) Run(ctx context.Context) error {
	started := time.Now()
	headers, stats, err := p.source.Read(ctx)
	p.metrics.ObserveRead(err, stats.Records, started)
	if err != nil {
		return fmt.Errorf("read headers: %w", err)
	}
	if len(headers) == 0 {
		return ErrEmptyInput
	}
	p.logger.Info("headers read",
		zap.Uint64("records", stats.Records),
		zap.Uint64("duplicates", stats.Duplicates),
	)

	started = time.Now()
	index := chain.NewBlockIndex(headers)
	forest, err := chain.BuildForest(index)
	p.metrics.ObserveBuild(err, forest.Len(), started)
	if err != nil {
		return fmt.Errorf("build forest: %w", err)
	}
	p.logger.Info("forest built", zap.Int("nodes", forest.Len()))

	started = time.Now()
	result, err := p.selector.Best(ctx, forest)
	p.metrics.ObserveSelect(err, result.Tips, started)
	if err != nil {
		return fmt.Errorf("select best chain: %w", err)
	}

	started = time.Now()
	err = p.emitter.Emit(result.Chain, emit.Summary{
		Tips:       result.Tips,
		Records:    stats.Records,
		Duplicates: stats.Duplicates,
		Work:       result.Work,
	})
	p.metrics.ObserveEmit(err, started)
	if err != nil {
		return fmt.Errorf("emit best chain: %w", err)
	}

	return nil
}
