package harvest

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mamadbah2/simcc/internal/domain/models"
)

// ReferenceProductivity is the expected yield in tonnes per hectare.
const ReferenceProductivity = 100

const (
	lossPrecision  = 3
	mediumLossFrom = 0.05
	lowLossFrom    = 0.10
)

var (
	// ErrInvalidArea indicates a non-positive harvested area.
	ErrInvalidArea = errors.New("area must be a positive number")
	// ErrInvalidVolume indicates a negative harvested volume.
	ErrInvalidVolume = errors.New("volume must not be negative")
)

// Loss returns the shortfall of volume/area against ReferenceProductivity,
// rounded to three decimals and never negative. A non-positive area yields 0.
func Loss(area, volume float64) float64 {
	if area <= 0 {
		return 0
	}

	loss := roundFloat(1-(volume/area)/ReferenceProductivity, lossPrecision)
	if loss <= 0 {
		return 0
	}
	return loss
}

// roundFloat rounds the exact binary value of x, half to even, so 0.0495
// stored as 0.04949999... rounds down.
func roundFloat(x float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}

// Classify maps a loss ratio to its efficiency label.
func Classify(loss float64) models.Efficiency {
	switch {
	case loss < mediumLossFrom:
		return models.EfficiencyHigh
	case loss < lowLossFrom:
		return models.EfficiencyMedium
	default:
		return models.EfficiencyLow
	}
}

// NewRecord validates the raw measurements and derives loss and efficiency.
func NewRecord(producer string, area, volume float64) (models.HarvestRecord, error) {
	if area <= 0 {
		return models.HarvestRecord{}, fmt.Errorf("%w: got %g", ErrInvalidArea, area)
	}
	if volume < 0 {
		return models.HarvestRecord{}, fmt.Errorf("%w: got %g", ErrInvalidVolume, volume)
	}

	loss := Loss(area, volume)
	return models.HarvestRecord{
		Producer:   producer,
		Area:       area,
		Volume:     volume,
		Loss:       loss,
		Efficiency: Classify(loss),
	}, nil
}
