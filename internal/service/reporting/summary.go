package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/simcc/internal/domain/models"
)

// Summary aggregates a harvest listing for the list screen footer.
type Summary struct {
	Records     int
	TotalArea   float64
	TotalVolume float64
	MeanLossPct float64
}

// Summarize totals the listing; an empty listing yields the zero Summary.
func Summarize(listings []models.HarvestListing) Summary {
	if len(listings) == 0 {
		return Summary{}
	}

	var area, volume, loss decimal.Decimal
	for _, l := range listings {
		area = area.Add(decimal.NewFromFloat(l.Area))
		volume = volume.Add(decimal.NewFromFloat(l.Volume))
		loss = loss.Add(decimal.NewFromFloat(l.LossPct))
	}

	return Summary{
		Records:     len(listings),
		TotalArea:   area.Round(2).InexactFloat64(),
		TotalVolume: volume.Round(2).InexactFloat64(),
		MeanLossPct: loss.Div(decimal.NewFromInt(int64(len(listings)))).Round(2).InexactFloat64(),
	}
}

// String renders the summary as a single footer line.
func (s Summary) String() string {
	if s.Records == 0 {
		return "Harvest summary: no records yet."
	}
	return fmt.Sprintf("Harvest summary: %d records, %.2f ha, %.2f t, mean loss %.2f%%.", s.Records, s.TotalArea, s.TotalVolume, s.MeanLossPct)
}
