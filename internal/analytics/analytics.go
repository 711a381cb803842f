package analytics

import (
	"time"

	"gorm.io/gorm"

	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

type recorder struct {
	db     *gorm.DB
	logger *logger.Logger
}

func New(db *gorm.DB, logger *logger.Logger) IRecorder {
	return &recorder{
		db:     db,
		logger: logger,
	}
}

func (r *recorder) Record(event *model.PaymentEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		r.logger.Error("[Record][db.Create]", map[string]string{
			"queryKey": event.QueryKey,
			"error":    err.Error(),
		})
		return err
	}

	return nil
}

func (r *recorder) Summary(from time.Time) (*model.PaymentSummary, error) {
	events, err := r.Transactions(from)
	if err != nil {
		return nil, err
	}

	summary := &model.PaymentSummary{
		ByQuery: make(map[string]int64),
	}
	for _, event := range events {
		summary.Count++
		summary.TotalAmountCents += event.AmountCents
		summary.ByQuery[event.QueryKey] += event.AmountCents
	}

	return summary, nil
}

func (r *recorder) Transactions(from time.Time) ([]model.PaymentEvent, error) {
	var events []model.PaymentEvent
	q := r.db.Order("created_at desc")
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if err := q.Find(&events).Error; err != nil {
		r.logger.Error("[Transactions][db.Find]", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	return events, nil
}
