package registry

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/satscope-backend/internal/analytics"
	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

// Entry registers one metered query: a stable key, a price in minor currency
// units, the expected input shape and the handler. Payment verification and
// schema enforcement live in the payment gateway fronting this service; the
// registry's job is routing, the response envelope and the payment-event
// trail.
type Entry struct {
	Key         string
	Description string
	PriceCents  int64
	InputSchema map[string]any
	Handle      gin.HandlerFunc
}

type Registry struct {
	entries  []Entry
	recorder analytics.IRecorder
	logger   *logger.Logger
}

func New(recorder analytics.IRecorder, logger *logger.Logger) *Registry {
	return &Registry{
		recorder: recorder,
		logger:   logger,
	}
}

func (r *Registry) Register(entries ...Entry) {
	r.entries = append(r.entries, entries...)
}

func (r *Registry) Entries() []Entry {
	return r.entries
}

// Mount exposes every entry as POST <group>/<key>, metered.
func (r *Registry) Mount(g *gin.RouterGroup) {
	for _, e := range r.entries {
		g.POST("/"+e.Key, r.metered(e))
	}
}

func (r *Registry) metered(e Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		e.Handle(c)

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		err := r.recorder.Record(&model.PaymentEvent{
			QueryKey:    e.Key,
			AmountCents: e.PriceCents,
			Currency:    "USD",
		})
		if err != nil {
			// the query already succeeded; a lost event must not fail it
			r.logger.Error("[metered][Record]", map[string]string{
				"queryKey": e.Key,
				"error":    err.Error(),
			})
		}
	}
}

// Document is the registration payload served at the well-known path so
// gateways can discover the available queries and their prices.
type Document struct {
	Service string          `json:"service"`
	Queries []DocumentEntry `json:"queries"`
}

type DocumentEntry struct {
	Key         string         `json:"key"`
	Description string         `json:"description"`
	PriceCents  int64          `json:"priceCents"`
	Path        string         `json:"path"`
	InputSchema map[string]any `json:"inputSchema"`
}

func (r *Registry) Document(basePath string) Document {
	doc := Document{
		Service: "satscope",
		Queries: make([]DocumentEntry, 0, len(r.entries)),
	}
	for _, e := range r.entries {
		doc.Queries = append(doc.Queries, DocumentEntry{
			Key:         e.Key,
			Description: e.Description,
			PriceCents:  e.PriceCents,
			Path:        basePath + "/" + e.Key,
			InputSchema: e.InputSchema,
		})
	}

	return doc
}
