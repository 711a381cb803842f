package query

import (
	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/normalize"
)

func (s *Service) TransactionDetail(txid string) (*model.TransactionDetail, error) {
	_, fetchedAt := s.captureTime()

	var detail *model.TransactionDetail

	err := s.agg.Join(
		aggregator.Source{Name: "transaction", Run: func() error {
			raw, err := s.mempool.GetTransaction(txid)
			if err != nil {
				return err
			}
			detail, err = normalize.TransactionDetail(raw, fetchedAt)
			return err
		}},
	)
	if err != nil {
		s.logger.Error("[TransactionDetail][Join]", map[string]string{
			"txid":  txid,
			"error": err.Error(),
		})
		return nil, err
	}

	return detail, nil
}
