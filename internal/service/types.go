// Package service orchestrates the chain reconstruction pipeline.
package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/bestchain7000/internal/chain"
	"github.com/goodnatureofminers/bestchain7000/internal/emit"
	"github.com/goodnatureofminers/bestchain7000/internal/header"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeaderSource interface {
		Read(ctx context.Context) ([]model.Header, header.Stats, error)
	}
	ChainSelector interface {
		Best(ctx context.Context, forest *chain.Forest) (chain.Result, error)
	}
	ChainEmitter interface {
		Emit(chain []model.Header, sum emit.Summary) error
	}
	PipelineMetrics interface {
		ObserveRead(err error, records uint64, started time.Time)
		ObserveBuild(err error, nodes int, started time.Time)
		ObserveSelect(err error, tips int, started time.Time)
		ObserveEmit(err error, started time.Time)
	}
)
