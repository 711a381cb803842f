package analytics

import (
	"time"

	"github.com/dwarvesf/satscope-backend/internal/model"
)

// IRecorder observes payment events emitted by the metered entrypoints and
// answers time-windowed read queries over them.
type IRecorder interface {
	Record(event *model.PaymentEvent) error
	Summary(from time.Time) (*model.PaymentSummary, error)
	Transactions(from time.Time) ([]model.PaymentEvent, error)
}
