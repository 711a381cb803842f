package query

import (
	"time"

	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

// Service implements the six public queries. Every invocation is a single
// linear pipeline: capture time once, fan out to the required upstreams
// through the aggregator, normalize, classify where applicable, shape the
// payload. Nothing is cached or shared between invocations.
type Service struct {
	mempool    mempoolspace.IMempool
	chainstats chainstats.IChainStats
	ticker     ticker.ITicker
	agg        *aggregator.Aggregator
	logger     *logger.Logger

	// now is the request clock; replaced in tests for deterministic output.
	now func() time.Time
}

func New(
	mempool mempoolspace.IMempool,
	chainstats chainstats.IChainStats,
	ticker ticker.ITicker,
	logger *logger.Logger,
) IQuery {
	return &Service{
		mempool:    mempool,
		chainstats: chainstats,
		ticker:     ticker,
		agg:        aggregator.New(logger),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Service) captureTime() (time.Time, string) {
	capturedAt := s.now().UTC()
	return capturedAt, capturedAt.Format(time.RFC3339)
}
