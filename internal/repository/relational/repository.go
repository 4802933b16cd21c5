package relational

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mamadbah2/simcc/internal/config"
	"github.com/mamadbah2/simcc/internal/domain/models"
)

var (
	// ErrConnection indicates the database could not be reached.
	ErrConnection = errors.New("database connection failed")
	// ErrStatement indicates the database rejected a statement.
	ErrStatement = errors.New("database statement failed")
)

const producerFilter = "produtor = ?"

// Repository defines the harvest record store.
type Repository interface {
	Create(ctx context.Context, record models.HarvestRecord) error
	List(ctx context.Context) ([]models.HarvestListing, error)
	UpdateVolumeByProducer(ctx context.Context, producer string, volume float64) (int64, error)
	DeleteByProducer(ctx context.Context, producer string) (int64, error)
}

// DialectorFunc opens a gorm dialector for one connection attempt.
type DialectorFunc func() gorm.Dialector

// RelationalRepository implements Repository on top of gorm. Every operation
// opens its own connection and closes it before returning.
type RelationalRepository struct {
	dialector DialectorFunc
	logger    *zap.Logger
}

// NewRelationalRepository creates a repository for the configured driver.
// No connection is opened until an operation runs.
func NewRelationalRepository(cfg config.DatabaseConfig, logger *zap.Logger) (*RelationalRepository, error) {
	dsn := BuildDSN(cfg)

	var dialector DialectorFunc
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = func() gorm.Dialector { return postgres.Open(dsn) }
	case config.DriverSQLite:
		dialector = func() gorm.Dialector { return sqlite.Open(dsn) }
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	repo := NewWithDialector(dialector, logger)
	repo.logger.Debug("relational repository configured", zap.String("driver", cfg.Driver), zap.String("dsn", MaskDSN(dsn)))
	return repo, nil
}

// NewWithDialector creates a repository from an explicit dialector factory.
func NewWithDialector(dialector DialectorFunc, logger *zap.Logger) *RelationalRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelationalRepository{dialector: dialector, logger: logger}
}

// EnsureSchema creates or migrates the harvest table.
func (r *RelationalRepository) EnsureSchema(ctx context.Context) error {
	return r.withConnection(ctx, func(db *gorm.DB) error {
		if err := db.AutoMigrate(&models.HarvestRecord{}); err != nil {
			return fmt.Errorf("%w: migrate %s: %w", ErrStatement, models.HarvestTable, err)
		}
		return nil
	})
}

// Create inserts one harvest record; the registration timestamp is set by the database.
func (r *RelationalRepository) Create(ctx context.Context, record models.HarvestRecord) error {
	return r.withConnection(ctx, func(db *gorm.DB) error {
		err := db.Model(&models.HarvestRecord{}).Create(map[string]any{
			"produtor":   record.Producer,
			"area":       record.Area,
			"volume":     record.Volume,
			"perda":      record.Loss,
			"eficiencia": string(record.Efficiency),
		}).Error
		if err != nil {
			return fmt.Errorf("%w: insert harvest record: %w", ErrStatement, err)
		}
		r.logger.Info("harvest record created",
			zap.String("producer", record.Producer),
			zap.Float64("loss", record.Loss),
			zap.String("efficiency", string(record.Efficiency)))
		return nil
	})
}

// List returns every record, most recent first, with loss expressed as a percentage.
// An empty table yields an empty slice and a nil error.
func (r *RelationalRepository) List(ctx context.Context) ([]models.HarvestListing, error) {
	listings := []models.HarvestListing{}
	err := r.withConnection(ctx, func(db *gorm.DB) error {
		err := db.Model(&models.HarvestRecord{}).
			Select("produtor, area, volume, perda * 100 AS perda_pct, eficiencia, data_registro").
			Order("data_registro DESC").
			Order("id DESC").
			Scan(&listings).Error
		if err != nil {
			return fmt.Errorf("%w: list harvest records: %w", ErrStatement, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// UpdateVolumeByProducer sets the volume of every record of producer and
// returns how many rows matched. Loss and efficiency are not recomputed.
func (r *RelationalRepository) UpdateVolumeByProducer(ctx context.Context, producer string, volume float64) (int64, error) {
	var affected int64
	err := r.withConnection(ctx, func(db *gorm.DB) error {
		result := db.Model(&models.HarvestRecord{}).Where(producerFilter, producer).Update("volume", volume)
		if result.Error != nil {
			return fmt.Errorf("%w: update volume: %w", ErrStatement, result.Error)
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("harvest volume updated", zap.String("producer", producer), zap.Float64("volume", volume), zap.Int64("rows", affected))
	return affected, nil
}

// DeleteByProducer removes every record of producer and returns how many rows matched.
func (r *RelationalRepository) DeleteByProducer(ctx context.Context, producer string) (int64, error) {
	var affected int64
	err := r.withConnection(ctx, func(db *gorm.DB) error {
		result := db.Where(producerFilter, producer).Delete(&models.HarvestRecord{})
		if result.Error != nil {
			return fmt.Errorf("%w: delete records: %w", ErrStatement, result.Error)
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("harvest records deleted", zap.String("producer", producer), zap.Int64("rows", affected))
	return affected, nil
}

func (r *RelationalRepository) withConnection(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(r.dialector(), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		// gorm may hand back a half-initialised pool alongside the error
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
		}
		r.logger.Warn("database open failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			r.logger.Error("failed to close database connection", zap.Error(err))
		}
	}()

	if err := sqlDB.PingContext(ctx); err != nil {
		r.logger.Warn("database ping failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	return fn(db.WithContext(ctx))
}
