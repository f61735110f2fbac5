package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/civicgrid/triage/internal/config"
	"github.com/civicgrid/triage/internal/database"
	"github.com/civicgrid/triage/internal/logger"
)

// DatabaseComponents holds the database connection and repositories.
type DatabaseComponents struct {
	DB         *sqlx.DB
	Complaints *database.ComplaintsRepository
}

// SetupDatabase opens the database, runs migrations, and creates the
// repositories.
func SetupDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*DatabaseComponents, error) {
	log.Info("Connecting to database",
		logger.String("driver", cfg.Database.Driver),
	)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	log.Info("Database ready")

	return &DatabaseComponents{
		DB:         db,
		Complaints: database.NewComplaintsRepository(db),
	}, nil
}
