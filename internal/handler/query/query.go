package query

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	queryService "github.com/dwarvesf/satscope-backend/internal/query"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
	"github.com/dwarvesf/satscope-backend/internal/view"
)

type handler struct {
	query  queryService.IQuery
	logger *logger.Logger
}

func New(query queryService.IQuery, logger *logger.Logger) IHandler {
	return &handler{
		query:  query,
		logger: logger,
	}
}

type AddressRequest struct {
	Address string `json:"address" binding:"required"`
}

type TransactionRequest struct {
	Txid string `json:"txid" binding:"required"`
}

type BlocksRequest struct {
	Limit *int `json:"limit"`
}

// Overview godoc
// @Summary Bitcoin network overview
// @Description Aggregated network snapshot: height, difficulty, hashrate, mempool, fee tiers, spot price, latest block
// @id bitcoinOverview
// @Tags query
// @Accept json
// @Produce json
// @Success 200 {object} view.Response
// @Failure 502 {object} view.Response
// @Router /query/bitcoin_overview [post]
func (h *handler) Overview(c *gin.Context) {
	snapshot, err := h.query.Overview()
	if err != nil {
		c.JSON(http.StatusBadGateway, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(snapshot))
}

// AddressBalance godoc
// @Summary Address balance
// @Description Confirmed/unconfirmed balance and lifetime totals of an address
// @id addressBalance
// @Tags query
// @Accept json
// @Produce json
// @Success 200 {object} view.Response
// @Failure 400 {object} view.Response
// @Failure 502 {object} view.Response
// @Router /query/address_balance [post]
func (h *handler) AddressBalance(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.Failed(errors.New("address is required")))
		return
	}

	balance, err := h.query.AddressBalance(req.Address)
	if err != nil {
		c.JSON(http.StatusBadGateway, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(balance))
}

// TransactionDetail godoc
// @Summary Transaction detail
// @Description Size, fee, fee rate and input/output summary of a transaction
// @id transactionDetail
// @Tags query
// @Accept json
// @Produce json
// @Success 200 {object} view.Response
// @Failure 400 {object} view.Response
// @Failure 502 {object} view.Response
// @Router /query/transaction_detail [post]
func (h *handler) TransactionDetail(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.Failed(errors.New("txid is required")))
		return
	}

	detail, err := h.query.TransactionDetail(req.Txid)
	if err != nil {
		c.JSON(http.StatusBadGateway, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(detail))
}

// FeeEstimates godoc
// @Summary Fee estimates
// @Description Recommended fee tiers, mempool summary and recent block statistics
// @id feeEstimates
// @Tags query
// @Accept json
// @Produce json
// @Success 200 {object} view.Response
// @Failure 502 {object} view.Response
// @Router /query/fee_estimates [post]
func (h *handler) FeeEstimates(c *gin.Context) {
	report, err := h.query.FeeEstimates()
	if err != nil {
		c.JSON(http.StatusBadGateway, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(report))
}

// RecentBlocks godoc
// @Summary Recent blocks
// @Description Most recent block summaries; limit defaults to 10 and is clamped to [1, 15]
// @id recentBlocks
// @Tags query
// @Accept json
// @Produce json
// @Success 200 {object} view.Response
// @Failure 400 {object} view.Response
// @Failure 502 {object} view.Response
// @Router /query/recent_blocks [post]
func (h *handler) RecentBlocks(c *gin.Context) {
	var req BlocksRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, view.Failed(errors.New("limit must be an integer")))
		return
	}

	limit := queryService.DefaultBlockLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	list, err := h.query.RecentBlocks(limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(list))
}

// AddressReport godoc
// @Summary Address report
// @Description Composite report: balance, activity, classification, recent transactions and USD valuation
// @id addressReport
// @Tags query
// @Accept json
// @Produce json
// @Success 200 {object} view.Response
// @Failure 400 {object} view.Response
// @Failure 502 {object} view.Response
// @Router /query/address_report [post]
func (h *handler) AddressReport(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, view.Failed(errors.New("address is required")))
		return
	}

	report, err := h.query.AddressReport(req.Address)
	if err != nil {
		c.JSON(http.StatusBadGateway, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(report))
}
