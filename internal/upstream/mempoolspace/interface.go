package mempoolspace

type IMempool interface {
	GetRecommendedFees() (*RecommendedFees, error)
	GetMempoolInfo() (*MempoolInfo, error)
	GetRecentBlocks() ([]Block, error)
	GetAddress(address string) (*Address, error)
	GetAddressTxs(address string) ([]Transaction, error)
	GetTransaction(txid string) (*Transaction, error)
}
