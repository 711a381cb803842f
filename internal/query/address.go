package query

import (
	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/normalize"
)

func (s *Service) AddressBalance(address string) (*model.AddressBalance, error) {
	_, fetchedAt := s.captureTime()

	var balance *model.AddressBalance

	err := s.agg.Join(
		aggregator.Source{Name: "address", Run: func() error {
			raw, err := s.mempool.GetAddress(address)
			if err != nil {
				return err
			}
			balance, err = normalize.AddressBalance(raw, fetchedAt)
			return err
		}},
	)
	if err != nil {
		s.logger.Error("[AddressBalance][Join]", map[string]string{
			"address": address,
			"error":   err.Error(),
		})
		return nil, err
	}

	return balance, nil
}
