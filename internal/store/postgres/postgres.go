package pgstore

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/dwarvesf/satscope-backend/internal/model"
	"github.com/dwarvesf/satscope-backend/internal/utils/config"
	"github.com/dwarvesf/satscope-backend/internal/utils/logger"
)

func New(appConfig *config.AppConfig, logger *logger.Logger) (*gorm.DB, error) {
	db, err := connectPostgres(appConfig)
	if err != nil {
		logger.Error("failed to connect to postgres", map[string]string{
			"error": err.Error(),
		})
		return nil, err
	}

	if err := db.AutoMigrate(&model.PaymentEvent{}); err != nil {
		return nil, err
	}

	return db, nil
}

func connectPostgres(appConfig *config.AppConfig) (*gorm.DB, error) {
	ds := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		appConfig.Postgres.Host,
		appConfig.Postgres.User,
		appConfig.Postgres.Pass,
		appConfig.Postgres.Name,
		appConfig.Postgres.Port,
		appConfig.Postgres.SSLMode,
	)

	return gorm.Open(postgres.Open(ds),
		&gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				SingularTable: false,
			},
		})
}
