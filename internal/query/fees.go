package query

import (
	"math"

	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/consts"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/normalize"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

const maxRecentBlocks = 6

// defaultBlockMinutes is used when fewer than 2 blocks were sampled and no
// inter-block span can be computed.
const defaultBlockMinutes = 10.0

func (s *Service) FeeEstimates() (*model.FeeEstimateReport, error) {
	_, fetchedAt := s.captureTime()

	var (
		fees   *mempoolspace.RecommendedFees
		mem    *mempoolspace.MempoolInfo
		blocks []mempoolspace.Block
	)

	err := s.agg.Join(
		aggregator.Source{Name: "recommended_fees", Run: func() error {
			var err error
			fees, err = s.mempool.GetRecommendedFees()
			return err
		}},
		aggregator.Source{Name: "mempool_info", Run: func() error {
			var err error
			mem, err = s.mempool.GetMempoolInfo()
			return err
		}},
		aggregator.Source{Name: "recent_blocks", Run: func() error {
			var err error
			blocks, err = s.mempool.GetRecentBlocks()
			return err
		}},
	)
	if err != nil {
		s.logger.Error("[FeeEstimates][Join]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	if len(blocks) > maxRecentBlocks {
		blocks = blocks[:maxRecentBlocks]
	}

	recent := make([]model.RecentBlock, 0, len(blocks))
	for _, b := range blocks {
		recent = append(recent, model.RecentBlock{
			Height:  b.Height,
			TxCount: b.TxCount,
			Size:    b.Size,
			Weight:  b.Weight,
		})
	}

	return &model.FeeEstimateReport{
		Tiers: model.FeeTierEstimates{
			Fastest:  model.FeeTierEstimate{SatPerVByte: fees.FastestFee, ETA: 10},
			HalfHour: model.FeeTierEstimate{SatPerVByte: fees.HalfHourFee, ETA: 30},
			Hour:     model.FeeTierEstimate{SatPerVByte: fees.HourFee, ETA: 60},
			Economy:  model.FeeTierEstimate{SatPerVByte: fees.EconomyFee, ETA: 120},
			Minimum:  model.FeeTierEstimate{SatPerVByte: fees.MinimumFee, ETA: "variable"},
		},
		Mempool: model.MempoolSummary{
			TxCount:      mem.Count,
			VSize:        mem.VSize,
			TotalFeeSats: model.SatAmount(mem.TotalFee),
			SizeMB:       normalize.RoundTo2(float64(mem.VSize) / 1_000_000),
		},
		ReferenceTxCost: model.ReferenceTxCost{
			VBytes:      consts.REFERENCE_TX_VBYTES,
			FastestSats: referenceCost(fees.FastestFee),
			EconomySats: referenceCost(fees.EconomyFee),
		},
		RecentBlocks:            recent,
		AverageBlockTimeMinutes: averageBlockMinutes(blocks),
		FetchedAt:               fetchedAt,
	}, nil
}

func referenceCost(satPerVByte float64) model.SatAmount {
	return model.SatAmount(math.Round(satPerVByte * consts.REFERENCE_TX_VBYTES))
}

// averageBlockMinutes derives the mean inter-block time of the sampled
// blocks, newest first, from the timestamp span divided by the number of
// intervals. 1-decimal minutes.
func averageBlockMinutes(blocks []mempoolspace.Block) float64 {
	if len(blocks) < 2 {
		return defaultBlockMinutes
	}

	span := blocks[0].Timestamp - blocks[len(blocks)-1].Timestamp
	minutes := float64(span) / float64(len(blocks)-1) / 60

	return math.Round(minutes*10) / 10
}
