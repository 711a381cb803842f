package query

import (
	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/normalize"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

const (
	DefaultBlockLimit = 10
	minBlockLimit     = 1
	maxBlockLimit     = 15
)

// RecentBlocks returns up to limit recent block summaries, newest first. The
// limit is clamped to [1, 15]; zero or negative clamps to 1 so the summary
// math downstream never divides by an empty sample.
func (s *Service) RecentBlocks(limit int) (*model.BlockList, error) {
	_, fetchedAt := s.captureTime()

	var raw []mempoolspace.Block

	err := s.agg.Join(
		aggregator.Source{Name: "recent_blocks", Run: func() error {
			var err error
			raw, err = s.mempool.GetRecentBlocks()
			return err
		}},
	)
	if err != nil {
		s.logger.Error("[RecentBlocks][Join]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	n := clampLimit(limit)
	if n > len(raw) {
		n = len(raw)
	}

	blocks := make([]model.BlockSummary, 0, n)
	for i := 0; i < n; i++ {
		summary, err := normalize.BlockSummary(&raw[i])
		if err != nil {
			s.logger.Error("[RecentBlocks][BlockSummary]", map[string]string{
				"error": err.Error(),
			})
			return nil, err
		}
		blocks = append(blocks, *summary)
	}

	return &model.BlockList{
		Blocks:    blocks,
		Count:     len(blocks),
		FetchedAt: fetchedAt,
	}, nil
}

func clampLimit(limit int) int {
	if limit < minBlockLimit {
		return minBlockLimit
	}
	if limit > maxBlockLimit {
		return maxBlockLimit
	}

	return limit
}
