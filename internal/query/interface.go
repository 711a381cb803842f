package query

import "github.com/dwarvesf/satscope-backend/internal/model"

type IQuery interface {
	Overview() (*model.NetworkSnapshot, error)
	AddressBalance(address string) (*model.AddressBalance, error)
	TransactionDetail(txid string) (*model.TransactionDetail, error)
	FeeEstimates() (*model.FeeEstimateReport, error)
	RecentBlocks(limit int) (*model.BlockList, error)
	AddressReport(address string) (*model.AddressReport, error)
}
