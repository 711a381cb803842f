package analytics

import (
	"time"

	"github.com/dwarvesf/satscope-backend/internal/model"
)

// noopRecorder keeps the service runnable without a database. Events are
// dropped and reads come back empty.
type noopRecorder struct{}

func NewNoop() IRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) Record(event *model.PaymentEvent) error {
	return nil
}

func (n *noopRecorder) Summary(from time.Time) (*model.PaymentSummary, error) {
	return &model.PaymentSummary{ByQuery: map[string]int64{}}, nil
}

func (n *noopRecorder) Transactions(from time.Time) ([]model.PaymentEvent, error) {
	return []model.PaymentEvent{}, nil
}
