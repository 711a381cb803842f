package registry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/types/environments"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

type memoryRecorder struct {
	mu     sync.Mutex
	events []model.PaymentEvent
}

func (m *memoryRecorder) Record(event *model.PaymentEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	return nil
}

func (m *memoryRecorder) Summary(from time.Time) (*model.PaymentSummary, error) {
	return &model.PaymentSummary{}, nil
}

func (m *memoryRecorder) Transactions(from time.Time) ([]model.PaymentEvent, error) {
	return m.events, nil
}

func newTestRegistry() (*Registry, *memoryRecorder) {
	rec := &memoryRecorder{}
	return New(rec, logger.New(environments.Test)), rec
}

func TestMount_RecordsPaymentOnSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg, rec := newTestRegistry()
	reg.Register(Entry{
		Key:        "bitcoin_overview",
		PriceCents: 2,
		Handle: func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "succeeded"})
		},
	})

	r := gin.New()
	reg.Mount(r.Group("/api/v1/query"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query/bitcoin_overview", strings.NewReader("{}"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "bitcoin_overview", rec.events[0].QueryKey)
	assert.Equal(t, int64(2), rec.events[0].AmountCents)
}

func TestMount_NoPaymentEventOnFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg, rec := newTestRegistry()
	reg.Register(Entry{
		Key:        "address_balance",
		PriceCents: 3,
		Handle: func(c *gin.Context) {
			c.JSON(http.StatusBadGateway, gin.H{"status": "failed"})
		},
	})

	r := gin.New()
	reg.Mount(r.Group("/api/v1/query"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query/address_balance", strings.NewReader("{}"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, rec.events)
}

func TestDocument(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.Register(
		Entry{Key: "bitcoin_overview", Description: "Network snapshot", PriceCents: 2},
		Entry{Key: "address_balance", Description: "Address balance", PriceCents: 3,
			InputSchema: map[string]any{"address": "string"}},
	)

	doc := reg.Document("/api/v1/query")

	require.Len(t, doc.Queries, 2)
	assert.Equal(t, "satscope", doc.Service)
	assert.Equal(t, "/api/v1/query/bitcoin_overview", doc.Queries[0].Path)
	assert.Equal(t, map[string]any{"address": "string"}, doc.Queries[1].InputSchema)
}
