// Package header streams raw Bitcoin block header records into parsed
// domain headers.
package header

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/bestchain7000/internal/model"
	"go.uber.org/zap"
)

// RecordSize is the exact on-wire size of one block header record.
const RecordSize = wire.MaxBlockHeaderPayload

// ErrShortRead reports a non-empty partial record at end of input.
var ErrShortRead = errors.New("short header record")

// Stats summarises one full pass over the input stream.
type Stats struct {
	Records    uint64
	Duplicates uint64
}

// Reader consumes an input stream in fixed RecordSize chunks.
type Reader struct {
	src    io.Reader
	logger *zap.Logger
}

// NewReader creates a Reader over src.
func NewReader(src io.Reader, logger *zap.Logger) *Reader {
	return &Reader{
		src:    src,
		logger: logger.Named("headerReader"),
	}
}

// Read consumes the stream until a clean EOF at a record boundary and
// returns every parsed header in input order. A partial trailing record is
// a fatal error; nothing is returned in that case. Duplicate hashes are
// counted but not dropped, so downstream last-write-wins semantics are
// preserved.
func (r *Reader) Read(ctx context.Context) ([]model.Header, Stats, error) {
	var (
		headers []model.Header
		stats   Stats
		seen    = make(map[chainhash.Hash]struct{})
		buf     [RecordSize]byte
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, Stats{}, err
		}

		n, err := io.ReadFull(r.src, buf[:])
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, Stats{}, fmt.Errorf("%w: %d trailing bytes", ErrShortRead, n)
		}
		if err != nil {
			return nil, Stats{}, fmt.Errorf("read header record %d: %w", stats.Records, err)
		}

		h, err := parseRecord(buf[:])
		if err != nil {
			return nil, Stats{}, fmt.Errorf("parse header record %d: %w", stats.Records, err)
		}

		if _, dup := seen[h.Hash]; dup {
			stats.Duplicates++
		} else {
			seen[h.Hash] = struct{}{}
		}

		headers = append(headers, h)
		stats.Records++
	}

	r.logger.Debug("input consumed",
		zap.Uint64("records", stats.Records),
		zap.Uint64("duplicates", stats.Duplicates),
	)

	return headers, stats, nil
}

// parseRecord maps one raw record to its retained fields. The identity hash
// is computed over the raw bytes; prev hash and bits are decoded through the
// wire codec, which handles the little-endian layout on any host.
func parseRecord(raw []byte) (model.Header, error) {
	var wh wire.BlockHeader
	if err := wh.Deserialize(bytes.NewReader(raw)); err != nil {
		return model.Header{}, fmt.Errorf("decode header: %w", err)
	}

	return model.Header{
		Hash:     chainhash.DoubleHashH(raw),
		PrevHash: wh.PrevBlock,
		Bits:     wh.Bits,
	}, nil
}
