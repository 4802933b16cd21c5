package harvest

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/simcc/internal/domain/models"
	repo "github.com/mamadbah2/simcc/internal/repository/relational"
	"github.com/mamadbah2/simcc/internal/service/reporting"
)

// Service runs the harvest record operations against the store.
type Service struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewService constructs a harvest service.
func NewService(repository repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// Register builds a record from the measurements and persists it.
func (s *Service) Register(ctx context.Context, producer string, area, volume float64) (models.HarvestRecord, error) {
	record, err := NewRecord(producer, area, volume)
	if err != nil {
		return models.HarvestRecord{}, err
	}

	s.logger.Debug("registering harvest", zap.String("producer", producer), zap.Float64("area", area), zap.Float64("volume", volume), zap.Float64("loss", record.Loss))

	if err := s.repo.Create(ctx, record); err != nil {
		return models.HarvestRecord{}, fmt.Errorf("save harvest record: %w", err)
	}
	return record, nil
}

// Records lists every record with its summary.
func (s *Service) Records(ctx context.Context) ([]models.HarvestListing, reporting.Summary, error) {
	listings, err := s.repo.List(ctx)
	if err != nil {
		return nil, reporting.Summary{}, fmt.Errorf("load harvest records: %w", err)
	}
	return listings, reporting.Summarize(listings), nil
}

// UpdateVolume replaces the volume of every record of producer. Loss and
// efficiency keep the values computed at registration.
func (s *Service) UpdateVolume(ctx context.Context, producer string, volume float64) (int64, error) {
	if volume < 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidVolume, volume)
	}

	affected, err := s.repo.UpdateVolumeByProducer(ctx, producer, volume)
	if err != nil {
		return 0, fmt.Errorf("update producer %q: %w", producer, err)
	}
	if affected == 0 {
		s.logger.Debug("update matched no producer", zap.String("producer", producer))
	}
	return affected, nil
}

// Remove deletes every record of producer. Callers confirm with the operator first.
func (s *Service) Remove(ctx context.Context, producer string) (int64, error) {
	affected, err := s.repo.DeleteByProducer(ctx, producer)
	if err != nil {
		return 0, fmt.Errorf("delete producer %q: %w", producer, err)
	}
	if affected == 0 {
		s.logger.Debug("delete matched no producer", zap.String("producer", producer))
	}
	return affected, nil
}
