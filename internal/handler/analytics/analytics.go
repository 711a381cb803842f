package analytics

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/dwarvesf/satscope-backend/internal/analytics"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
	"github.com/dwarvesf/satscope-backend/internal/view"
)

type handler struct {
	recorder analytics.IRecorder
	logger   *logger.Logger
}

func New(recorder analytics.IRecorder, logger *logger.Logger) IHandler {
	return &handler{
		recorder: recorder,
		logger:   logger,
	}
}

// SummaryResponse reports totals with monetary amounts as strings.
type SummaryResponse struct {
	Window           string            `json:"window"`
	Count            int64             `json:"count"`
	TotalAmountCents string            `json:"total_amount_cents"`
	ByQuery          map[string]string `json:"by_query"`
}

// windowStart maps a window name onto its lower bound. The zero time means
// no lower bound.
func windowStart(window string, now time.Time) (time.Time, error) {
	switch window {
	case "24h":
		return now.Add(-24 * time.Hour), nil
	case "7d":
		return now.Add(-7 * 24 * time.Hour), nil
	case "30d":
		return now.Add(-30 * 24 * time.Hour), nil
	case "all":
		return time.Time{}, nil
	default:
		return time.Time{}, errors.New("invalid window, expected one of: 24h, 7d, 30d, all")
	}
}

// Summary godoc
// @Summary Get payment summary
// @Description Get aggregate payment totals for a time window
// @Tags Analytics
// @Accept json
// @Produce json
// @Param window query string false "Time window (24h, 7d, 30d, all)" default(24h)
// @Success 200 {object} view.Response
// @Failure 400 {object} view.Response
// @Failure 500 {object} view.Response
// @Router /analytics/summary [get]
func (h *handler) Summary(c *gin.Context) {
	window := c.DefaultQuery("window", "24h")
	from, err := windowStart(window, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, view.Failed(err))
		return
	}

	summary, err := h.recorder.Summary(from)
	if err != nil {
		h.logger.Error("[Summary][recorder.Summary]", map[string]string{
			"window": window,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Failed(err))
		return
	}

	resp := SummaryResponse{
		Window:           window,
		Count:            summary.Count,
		TotalAmountCents: strconv.FormatInt(summary.TotalAmountCents, 10),
		ByQuery:          make(map[string]string),
	}
	for key, cents := range summary.ByQuery {
		resp.ByQuery[key] = strconv.FormatInt(cents, 10)
	}

	c.JSON(http.StatusOK, view.Succeeded(resp))
}

// Transactions godoc
// @Summary List payment events
// @Description List individual payment events for a time window, newest first
// @Tags Analytics
// @Accept json
// @Produce json
// @Param window query string false "Time window (24h, 7d, 30d, all)" default(24h)
// @Success 200 {object} view.Response
// @Failure 400 {object} view.Response
// @Failure 500 {object} view.Response
// @Router /analytics/transactions [get]
func (h *handler) Transactions(c *gin.Context) {
	window := c.DefaultQuery("window", "24h")
	from, err := windowStart(window, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, view.Failed(err))
		return
	}

	events, err := h.recorder.Transactions(from)
	if err != nil {
		h.logger.Error("[Transactions][recorder.Transactions]", map[string]string{
			"window": window,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Failed(err))
		return
	}

	c.JSON(http.StatusOK, view.Succeeded(events))
}

// ExportCSV godoc
// @Summary Export payment events as CSV
// @Description Download the payment events for a time window as a CSV file
// @Tags Analytics
// @Accept json
// @Produce text/csv
// @Param window query string false "Time window (24h, 7d, 30d, all)" default(all)
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} view.Response
// @Failure 500 {object} view.Response
// @Router /analytics/export [get]
func (h *handler) ExportCSV(c *gin.Context) {
	window := c.DefaultQuery("window", "all")
	from, err := windowStart(window, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, view.Failed(err))
		return
	}

	events, err := h.recorder.Transactions(from)
	if err != nil {
		h.logger.Error("[ExportCSV][recorder.Transactions]", map[string]string{
			"window": window,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.Failed(err))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="payments-`+window+`.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write([]string{"id", "query_key", "amount_cents", "currency", "created_at"}); err != nil {
		h.logger.Error("[ExportCSV][csv.Write]", map[string]string{"error": err.Error()})
		return
	}
	for _, event := range events {
		record := []string{
			strconv.Itoa(event.ID),
			event.QueryKey,
			strconv.FormatInt(event.AmountCents, 10),
			event.Currency,
			event.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			h.logger.Error("[ExportCSV][csv.Write]", map[string]string{"error": err.Error()})
			return
		}
	}
	w.Flush()
}
