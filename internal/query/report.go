package query

import (
	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/classify"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/normalize"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
)

const maxReportTxs = 10

// AddressReport composes balance, activity, classification, recent history
// and USD valuation for one address. The history source is the only optional
// one: if its upstream call fails the report still succeeds with an empty
// list. The balance and spot-price sources stay all-or-nothing.
func (s *Service) AddressReport(address string) (*model.AddressReport, error) {
	capturedAt, fetchedAt := s.captureTime()

	var (
		rawAddr *mempoolspace.Address
		balance *model.AddressBalance
		history []model.ReportTransaction
		price   float64
	)

	err := s.agg.Join(
		aggregator.Source{Name: "address", Run: func() error {
			raw, err := s.mempool.GetAddress(address)
			if err != nil {
				return err
			}
			rawAddr = raw
			balance, err = normalize.AddressBalance(raw, fetchedAt)
			return err
		}},
		aggregator.Source{
			Name:   "history",
			Policy: aggregator.Optional,
			Run: func() error {
				txs, err := s.mempool.GetAddressTxs(address)
				if err != nil {
					return err
				}
				entries := make([]model.ReportTransaction, 0, maxReportTxs)
				for i := range txs {
					if len(entries) == maxReportTxs {
						break
					}
					entry, err := normalize.ReportTransaction(&txs[i], address)
					if err != nil {
						return err
					}
					entries = append(entries, *entry)
				}
				history = entries
				return nil
			},
			OnSkip: func() {
				history = []model.ReportTransaction{}
			},
		},
		aggregator.Source{Name: "spot_price", Run: func() error {
			raw, err := s.ticker.GetTicker()
			if err != nil {
				return err
			}
			price, err = normalize.USDPrice(raw)
			return err
		}},
	)
	if err != nil {
		s.logger.Error("[AddressReport][Join]", map[string]string{
			"address": address,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &model.AddressReport{
		Address: balance.Address,
		Balance: balance.Balance,
		Activity: model.ActivityStats{
			TxCount:      balance.Transactions.Total,
			ReceivedSats: balance.Lifetime.ReceivedSats,
			SpentSats:    balance.Lifetime.SpentSats,
			UTXOCount:    rawAddr.ChainStats.FundedTxoCount - rawAddr.ChainStats.SpentTxoCount,
		},
		Classification:     classify.Classify(balance, history, capturedAt),
		RecentTransactions: history,
		Value: model.USDValuation{
			PriceUSD:     price,
			ConfirmedUSD: normalize.RoundTo2(balance.Balance.ConfirmedSats.USD(price)),
		},
		FetchedAt: fetchedAt,
	}, nil
}
