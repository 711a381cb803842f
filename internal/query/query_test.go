package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/satscope-backend/internal/aggregator"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/types/environments"
	"github.com/dwarvesf/satscope-backend/internal/upstream"
	"github.com/dwarvesf/satscope-backend/internal/upstream/chainstats"
	"github.com/dwarvesf/satscope-backend/internal/upstream/mempoolspace"
	"github.com/dwarvesf/satscope-backend/internal/upstream/ticker"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

type fakeMempool struct {
	fees       *mempoolspace.RecommendedFees
	feesErr    error
	mempool    *mempoolspace.MempoolInfo
	mempoolErr error
	blocks     []mempoolspace.Block
	blocksErr  error
	address    *mempoolspace.Address
	addressErr error
	txs        []mempoolspace.Transaction
	txsErr     error
	tx         *mempoolspace.Transaction
	txErr      error
}

func (f *fakeMempool) GetRecommendedFees() (*mempoolspace.RecommendedFees, error) {
	return f.fees, f.feesErr
}

func (f *fakeMempool) GetMempoolInfo() (*mempoolspace.MempoolInfo, error) {
	return f.mempool, f.mempoolErr
}

func (f *fakeMempool) GetRecentBlocks() ([]mempoolspace.Block, error) {
	return f.blocks, f.blocksErr
}

func (f *fakeMempool) GetAddress(address string) (*mempoolspace.Address, error) {
	return f.address, f.addressErr
}

func (f *fakeMempool) GetAddressTxs(address string) ([]mempoolspace.Transaction, error) {
	return f.txs, f.txsErr
}

func (f *fakeMempool) GetTransaction(txid string) (*mempoolspace.Transaction, error) {
	return f.tx, f.txErr
}

type fakeChainStats struct {
	stats *chainstats.Stats
	err   error
}

func (f *fakeChainStats) GetStats() (*chainstats.Stats, error) {
	return f.stats, f.err
}

type fakeTicker struct {
	ticker ticker.Ticker
	err    error
}

func (f *fakeTicker) GetTicker() (ticker.Ticker, error) {
	return f.ticker, f.err
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(m *fakeMempool, c *fakeChainStats, tk *fakeTicker) *Service {
	l := logger.New(environments.Test)
	return &Service{
		mempool:    m,
		chainstats: c,
		ticker:     tk,
		agg:        aggregator.New(l),
		logger:     l,
		now:        func() time.Time { return fixedNow },
	}
}

func upstreamStatusErr(provider string) *upstream.Error {
	return &upstream.Error{Provider: provider, Kind: upstream.KindStatus, StatusCode: 500}
}

func testAddress(chain *mempoolspace.ChainStats) *mempoolspace.Address {
	return &mempoolspace.Address{
		Address:      "bc1qtest",
		ChainStats:   chain,
		MempoolStats: &mempoolspace.MempoolStats{},
	}
}

func testBlocks(n int) []mempoolspace.Block {
	blocks := make([]mempoolspace.Block, 0, n)
	ts := int64(1717243200) // newest first, 10 minutes apart
	for i := 0; i < n; i++ {
		blocks = append(blocks, mempoolspace.Block{
			ID:        "00000abc",
			Height:    int64(847000 - i),
			Timestamp: ts - int64(i)*600,
			TxCount:   3000,
			Size:      1500000,
			Weight:    3990000,
		})
	}
	return blocks
}

func TestAddressBalance_ConcreteScenario(t *testing.T) {
	m := &fakeMempool{
		address: testAddress(&mempoolspace.ChainStats{
			FundedTxoSum: 500000000,
			SpentTxoSum:  200000000,
			TxCount:      5,
		}),
	}

	balance, err := newTestService(m, &fakeChainStats{}, &fakeTicker{}).AddressBalance("bc1qtest")

	require.NoError(t, err)
	assert.Equal(t, "3.00000000", balance.Balance.Confirmed)
	assert.Equal(t, "3.00000000", balance.Balance.Total)
	assert.Equal(t, int64(5), balance.Transactions.Total)
}

func TestAddressBalance_UpstreamFailure(t *testing.T) {
	m := &fakeMempool{addressErr: upstreamStatusErr("mempool")}

	_, err := newTestService(m, &fakeChainStats{}, &fakeTicker{}).AddressBalance("bc1qtest")

	require.Error(t, err)
	var upErr *upstream.Error
	assert.ErrorAs(t, err, &upErr)
}

func TestRecentBlocks_ClampsOversizedLimit(t *testing.T) {
	m := &fakeMempool{blocks: testBlocks(15)}

	list, err := newTestService(m, &fakeChainStats{}, &fakeTicker{}).RecentBlocks(100)

	require.NoError(t, err)
	assert.Len(t, list.Blocks, 15)
	assert.Equal(t, 15, list.Count)
}

func TestRecentBlocks_FloorsZeroAndNegativeLimit(t *testing.T) {
	m := &fakeMempool{blocks: testBlocks(15)}
	s := newTestService(m, &fakeChainStats{}, &fakeTicker{})

	for _, limit := range []int{0, -5} {
		list, err := s.RecentBlocks(limit)
		require.NoError(t, err)
		assert.Len(t, list.Blocks, 1, "limit %d must clamp to 1", limit)
	}
}

func TestRecentBlocks_Idempotent(t *testing.T) {
	m := &fakeMempool{blocks: testBlocks(5)}
	s := newTestService(m, &fakeChainStats{}, &fakeTicker{})

	first, err := s.RecentBlocks(5)
	require.NoError(t, err)
	second, err := s.RecentBlocks(5)
	require.NoError(t, err)

	// fixed clock, so the full payload including the timestamp is identical
	assert.Equal(t, first, second)
}

func TestOverview(t *testing.T) {
	m := &fakeMempool{
		fees:    &mempoolspace.RecommendedFees{FastestFee: 25, HalfHourFee: 20, HourFee: 15, EconomyFee: 8, MinimumFee: 1},
		mempool: &mempoolspace.MempoolInfo{Count: 45000, VSize: 52000000, TotalFee: 98000000},
		blocks:  testBlocks(3),
	}
	c := &fakeChainStats{stats: &chainstats.Stats{
		NBlocksTotal:   847000,
		Difficulty:     83e12,
		HashRate:       6.1e11,
		MarketPriceUSD: 64250.5,
	}}

	snapshot, err := newTestService(m, c, &fakeTicker{}).Overview()

	require.NoError(t, err)
	assert.Equal(t, int64(847000), snapshot.BlockHeight)
	assert.Equal(t, 64250.5, snapshot.PriceUSD)
	assert.Equal(t, 25.0, snapshot.Fees.Fastest)
	assert.Equal(t, int64(45000), snapshot.Mempool.TxCount)
	require.NotNil(t, snapshot.LatestBlock)
	assert.Equal(t, int64(847000), snapshot.LatestBlock.Height)
	assert.Equal(t, "2024-06-01T12:00:00Z", snapshot.FetchedAt)
}

func TestOverview_AnySourceFailureAborts(t *testing.T) {
	m := &fakeMempool{
		fees:       &mempoolspace.RecommendedFees{},
		mempoolErr: upstreamStatusErr("mempool"),
		blocks:     testBlocks(1),
	}
	c := &fakeChainStats{stats: &chainstats.Stats{NBlocksTotal: 847000, Difficulty: 1}}

	_, err := newTestService(m, c, &fakeTicker{}).Overview()

	require.Error(t, err)
}

func TestFeeEstimates_Derivations(t *testing.T) {
	m := &fakeMempool{
		fees:    &mempoolspace.RecommendedFees{FastestFee: 25, HalfHourFee: 20, HourFee: 15, EconomyFee: 8, MinimumFee: 1},
		mempool: &mempoolspace.MempoolInfo{Count: 45000, VSize: 52500000, TotalFee: 98000000},
		blocks:  testBlocks(8), // only 6 newest are sampled
	}

	report, err := newTestService(m, &fakeChainStats{}, &fakeTicker{}).FeeEstimates()

	require.NoError(t, err)
	assert.Equal(t, 10, report.Tiers.Fastest.ETA)
	assert.Equal(t, "variable", report.Tiers.Minimum.ETA)
	assert.Equal(t, 52.5, report.Mempool.SizeMB)
	assert.Equal(t, model.SatAmount(5625), report.ReferenceTxCost.FastestSats) // 225 * 25
	assert.Equal(t, model.SatAmount(1800), report.ReferenceTxCost.EconomySats) // 225 * 8
	assert.Len(t, report.RecentBlocks, 6)
	assert.Equal(t, 10.0, report.AverageBlockTimeMinutes)
}

func TestFeeEstimates_DefaultBlockTimeWithSparseSample(t *testing.T) {
	m := &fakeMempool{
		fees:    &mempoolspace.RecommendedFees{},
		mempool: &mempoolspace.MempoolInfo{},
		blocks:  testBlocks(1),
	}

	report, err := newTestService(m, &fakeChainStats{}, &fakeTicker{}).FeeEstimates()

	require.NoError(t, err)
	assert.Equal(t, 10.0, report.AverageBlockTimeMinutes)
}

func TestTransactionDetail(t *testing.T) {
	height := int64(800000)
	blockTime := int64(1700000000)
	m := &fakeMempool{tx: &mempoolspace.Transaction{
		TxID:   "ab12",
		Size:   250,
		Weight: 1000,
		Fee:    5000,
		Vout:   []mempoolspace.Vout{{ScriptPubkeyAddress: "bc1qout", Value: 100000}},
		Status: &mempoolspace.TxStatus{Confirmed: true, BlockHeight: &height, BlockTime: &blockTime},
	}}

	detail, err := newTestService(m, &fakeChainStats{}, &fakeTicker{}).TransactionDetail("ab12")

	require.NoError(t, err)
	assert.Equal(t, int64(250), detail.VSize)
	assert.Equal(t, 20.0, detail.FeeRate)
	require.NotNil(t, detail.BlockHeight)
	assert.Equal(t, int64(800000), *detail.BlockHeight)
}

func TestAddressReport_HistoryFailureIsolated(t *testing.T) {
	m := &fakeMempool{
		address: testAddress(&mempoolspace.ChainStats{
			FundedTxoCount: 3,
			FundedTxoSum:   500000000,
			SpentTxoCount:  1,
			SpentTxoSum:    200000000,
			TxCount:        5,
		}),
		txsErr: upstreamStatusErr("mempool"),
	}
	tk := &fakeTicker{ticker: ticker.Ticker{"USD": {Last: 50000}}}

	report, err := newTestService(m, &fakeChainStats{}, tk).AddressReport("bc1qtest")

	require.NoError(t, err, "history failure must not fail the report")
	assert.NotNil(t, report.RecentTransactions)
	assert.Empty(t, report.RecentTransactions)
	assert.Equal(t, "3.00000000", report.Balance.Confirmed)
	assert.Equal(t, int64(2), report.Activity.UTXOCount)
	assert.Equal(t, 150000.0, report.Value.ConfirmedUSD)
	assert.False(t, report.Classification.HasRecentActivity)
}

func TestAddressReport_BalanceFailureFailsQuery(t *testing.T) {
	m := &fakeMempool{
		addressErr: upstreamStatusErr("mempool"),
		txs:        []mempoolspace.Transaction{},
	}
	tk := &fakeTicker{ticker: ticker.Ticker{"USD": {Last: 50000}}}

	_, err := newTestService(m, &fakeChainStats{}, tk).AddressReport("bc1qtest")

	require.Error(t, err, "the balance source is critical")
}

func TestAddressReport_HistoryNormalizationErrorStillFails(t *testing.T) {
	m := &fakeMempool{
		address: testAddress(&mempoolspace.ChainStats{TxCount: 1}),
		// present but malformed: missing status is a normalization failure,
		// which the optional policy must not swallow
		txs: []mempoolspace.Transaction{{TxID: "ab12"}},
	}
	tk := &fakeTicker{ticker: ticker.Ticker{"USD": {Last: 50000}}}

	_, err := newTestService(m, &fakeChainStats{}, tk).AddressReport("bc1qtest")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestAddressReport_Classification(t *testing.T) {
	recentBlockTime := fixedNow.Add(-24 * time.Hour).Unix()
	m := &fakeMempool{
		address: testAddress(&mempoolspace.ChainStats{
			FundedTxoCount: 20,
			FundedTxoSum:   200_000_000_000,
			SpentTxoCount:  5,
			SpentTxoSum:    50_000_000_000,
			TxCount:        25,
		}),
		txs: []mempoolspace.Transaction{{
			TxID:   "ab12",
			Vout:   []mempoolspace.Vout{{ScriptPubkeyAddress: "bc1qtest", Value: 1000}},
			Status: &mempoolspace.TxStatus{Confirmed: true, BlockTime: &recentBlockTime},
		}},
	}
	tk := &fakeTicker{ticker: ticker.Ticker{"USD": {Last: 50000}}}

	report, err := newTestService(m, &fakeChainStats{}, tk).AddressReport("bc1qtest")

	require.NoError(t, err)
	assert.True(t, report.Classification.IsActive)
	assert.True(t, report.Classification.IsWhale)
	assert.True(t, report.Classification.HasRecentActivity)
	require.Len(t, report.RecentTransactions, 1)
	assert.Equal(t, model.DirectionIncoming, report.RecentTransactions[0].Direction)
}

func TestAddressReport_MissingUSDQuoteFails(t *testing.T) {
	m := &fakeMempool{address: testAddress(&mempoolspace.ChainStats{TxCount: 1})}
	tk := &fakeTicker{ticker: ticker.Ticker{"EUR": {Last: 60000}}}

	_, err := newTestService(m, &fakeChainStats{}, tk).AddressReport("bc1qtest")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "USD")
}
