package harvest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/simcc/internal/domain/models"
	repo "github.com/mamadbah2/simcc/internal/repository/relational"
)

type fakeRepository struct {
	records []models.HarvestRecord
	err     error
}

func (f *fakeRepository) Create(_ context.Context, record models.HarvestRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]models.HarvestListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	listings := []models.HarvestListing{}
	for i := len(f.records) - 1; i >= 0; i-- {
		r := f.records[i]
		listings = append(listings, models.HarvestListing{
			Producer:   r.Producer,
			Area:       r.Area,
			Volume:     r.Volume,
			LossPct:    r.Loss * 100,
			Efficiency: r.Efficiency,
		})
	}
	return listings, nil
}

func (f *fakeRepository) UpdateVolumeByProducer(_ context.Context, producer string, volume float64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for i := range f.records {
		if f.records[i].Producer == producer {
			f.records[i].Volume = volume
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) DeleteByProducer(_ context.Context, producer string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	kept := f.records[:0]
	var n int64
	for _, r := range f.records {
		if r.Producer == producer {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return n, nil
}

func TestServiceRegister(t *testing.T) {
	store := &fakeRepository{}
	svc := NewService(store, nil)

	record, err := svc.Register(context.Background(), "Usina Velha", 1, 95)
	require.NoError(t, err)
	assert.Equal(t, 0.05, record.Loss)
	assert.Equal(t, models.EfficiencyMedium, record.Efficiency)
	require.Len(t, store.records, 1)
	assert.Equal(t, record, store.records[0])

	_, err = svc.Register(context.Background(), "Usina Velha", 0, 95)
	assert.ErrorIs(t, err, ErrInvalidArea)
	assert.Len(t, store.records, 1)
}

func TestServiceRecords(t *testing.T) {
	store := &fakeRepository{}
	svc := NewService(store, nil)
	ctx := context.Background()

	listings, summary, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Zero(t, summary.Records)

	_, err = svc.Register(ctx, "Ana", 1, 85)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Bento", 1, 95)
	require.NoError(t, err)

	listings, summary, err = svc.Records(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Bento", listings[0].Producer)
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 10.0, summary.MeanLossPct)
}

func TestServiceUpdateVolumeKeepsDerivedFields(t *testing.T) {
	store := &fakeRepository{}
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", 1, 85)
	require.NoError(t, err)

	affected, err := svc.UpdateVolume(ctx, "Ana", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, 100.0, store.records[0].Volume)
	assert.Equal(t, 0.15, store.records[0].Loss)
	assert.Equal(t, models.EfficiencyLow, store.records[0].Efficiency)

	affected, err = svc.UpdateVolume(ctx, "ANA", 1)
	require.NoError(t, err)
	assert.Zero(t, affected)

	_, err = svc.UpdateVolume(ctx, "Ana", -1)
	assert.ErrorIs(t, err, ErrInvalidVolume)
}

func TestServiceRemove(t *testing.T) {
	store := &fakeRepository{}
	svc := NewService(store, nil)
	ctx := context.Background()

	for _, producer := range []string{"Ana", "Bento", "Ana"} {
		_, err := svc.Register(ctx, producer, 1, 90)
		require.NoError(t, err)
	}

	affected, err := svc.Remove(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	require.Len(t, store.records, 1)
	assert.Equal(t, "Bento", store.records[0].Producer)
}

func TestServiceWrapsStoreErrors(t *testing.T) {
	store := &fakeRepository{err: repo.ErrConnection}
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ana", 1, 90)
	assert.ErrorIs(t, err, repo.ErrConnection)

	_, _, err = svc.Records(ctx)
	assert.ErrorIs(t, err, repo.ErrConnection)

	_, err = svc.UpdateVolume(ctx, "Ana", 1)
	assert.ErrorIs(t, err, repo.ErrConnection)

	_, err = svc.Remove(ctx, "Ana")
	assert.True(t, errors.Is(err, repo.ErrConnection))
}
