package query

import (
	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/normalize"
	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

// Overview builds a network-wide snapshot. Height, difficulty, hashrate and
// spot price come from the chain-stats provider; fee tiers, mempool state and
// the latest block from the mempool provider. All four sources are required.
func (s *Service) Overview() (*model.NetworkSnapshot, error) {
	_, fetchedAt := s.captureTime()

	var (
		stats  *chainstats.Stats
		tiers  model.FeeTiers
		mem    *mempoolspace.MempoolInfo
		latest *model.BlockSummary
	)

	err := s.agg.Join(
		aggregator.Source{Name: "network_stats", Run: func() error {
			raw, err := s.chainstats.GetStats()
			if err != nil {
				return err
			}
			stats, err = normalize.NetworkStats(raw)
			return err
		}},
		aggregator.Source{Name: "recommended_fees", Run: func() error {
			raw, err := s.mempool.GetRecommendedFees()
			if err != nil {
				return err
			}
			tiers = normalize.FeeTiers(raw)
			return nil
		}},
		aggregator.Source{Name: "mempool_info", Run: func() error {
			var err error
			mem, err = s.mempool.GetMempoolInfo()
			return err
		}},
		aggregator.Source{Name: "recent_blocks", Run: func() error {
			blocks, err := s.mempool.GetRecentBlocks()
			if err != nil {
				return err
			}
			if len(blocks) == 0 {
				return nil
			}
			latest, err = normalize.BlockSummary(&blocks[0])
			return err
		}},
	)
	if err != nil {
		s.logger.Error("[Overview][Join]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	return &model.NetworkSnapshot{
		BlockHeight: stats.NBlocksTotal,
		Difficulty:  stats.Difficulty,
		HashRate24h: stats.HashRate,
		Mempool: model.MempoolSnapshot{
			TxCount: mem.Count,
			VSize:   mem.VSize,
		},
		Fees:        tiers,
		PriceUSD:    stats.MarketPriceUSD,
		LatestBlock: latest,
		FetchedAt:   fetchedAt,
	}, nil
}
