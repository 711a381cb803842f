package query

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/types/environments"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

type fakeQuery struct {
	lastLimit int
	failWith  error
}

func (f *fakeQuery) Overview() (*model.NetworkSnapshot, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &model.NetworkSnapshot{BlockHeight: 847000}, nil
}

func (f *fakeQuery) AddressBalance(address string) (*model.AddressBalance, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &model.AddressBalance{Address: address}, nil
}

func (f *fakeQuery) TransactionDetail(txid string) (*model.TransactionDetail, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &model.TransactionDetail{TxID: txid}, nil
}

func (f *fakeQuery) FeeEstimates() (*model.FeeEstimateReport, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &model.FeeEstimateReport{}, nil
}

func (f *fakeQuery) RecentBlocks(limit int) (*model.BlockList, error) {
	f.lastLimit = limit
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &model.BlockList{}, nil
}

func (f *fakeQuery) AddressReport(address string) (*model.AddressReport, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &model.AddressReport{Address: address}, nil
}

func perform(h IHandler, route func(*gin.Engine), method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	route(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAddressBalance_Envelope(t *testing.T) {
	h := New(&fakeQuery{}, logger.New(environments.Test))

	w := perform(h, func(r *gin.Engine) { r.POST("/q", h.AddressBalance) },
		http.MethodPost, "/q", `{"address": "bc1qtest"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	out := envelope(t, w)
	assert.Equal(t, "succeeded", out["status"])
	assert.NotNil(t, out["output"])
	assert.Nil(t, out["error"])
}

func TestAddressBalance_MissingAddress(t *testing.T) {
	h := New(&fakeQuery{}, logger.New(environments.Test))

	w := perform(h, func(r *gin.Engine) { r.POST("/q", h.AddressBalance) },
		http.MethodPost, "/q", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	out := envelope(t, w)
	assert.Equal(t, "failed", out["status"])
	assert.Equal(t, "address is required", out["error"])
}

func TestOverview_UpstreamFailure(t *testing.T) {
	h := New(&fakeQuery{failWith: errors.New("mempool: unexpected status code 502")}, logger.New(environments.Test))

	w := perform(h, func(r *gin.Engine) { r.POST("/q", h.Overview) },
		http.MethodPost, "/q", `{}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	out := envelope(t, w)
	assert.Equal(t, "failed", out["status"])
	assert.Equal(t, "mempool: unexpected status code 502", out["error"])
}

func TestRecentBlocks_DefaultLimit(t *testing.T) {
	q := &fakeQuery{}
	h := New(q, logger.New(environments.Test))

	w := perform(h, func(r *gin.Engine) { r.POST("/q", h.RecentBlocks) },
		http.MethodPost, "/q", ``)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, q.lastLimit)
}

func TestRecentBlocks_ExplicitLimitForwarded(t *testing.T) {
	q := &fakeQuery{}
	h := New(q, logger.New(environments.Test))

	w := perform(h, func(r *gin.Engine) { r.POST("/q", h.RecentBlocks) },
		http.MethodPost, "/q", `{"limit": 100}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, q.lastLimit, "clamping belongs to the query service")
}

func TestRecentBlocks_MalformedLimit(t *testing.T) {
	h := New(&fakeQuery{}, logger.New(environments.Test))

	w := perform(h, func(r *gin.Engine) { r.POST("/q", h.RecentBlocks) },
		http.MethodPost, "/q", `{"limit": "ten"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
