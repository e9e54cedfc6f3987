// Package forecast generates the sample price forecast series shown on the
// predictions dashboard.
//
// There is no model behind these numbers: the series interpolates between a
// fixed current price and a fixed two-year target with random noise, and the
// confidence decays with the forecast horizon. They are demonstration data.
package forecast

import (
	"math/rand"
	"time"
)

const (
	historicalMonths = 12
	predictedMonths  = 24
)

// Point is one month of a forecast series. Exactly one of Historical and
// Predicted is set; Confidence accompanies predicted values only.
type Point struct {
	Date       string   `json:"date" example:"Apr 24"`
	Historical *int64   `json:"historical"`
	Predicted  *int64   `json:"predicted"`
	Confidence *float64 `json:"confidence"`
}

// Prediction is a two-year forecast for one market sector.
type Prediction struct {
	Title        string  `json:"title" example:"Technology Sector"`
	Sector       string  `json:"category" example:"tech"`
	CurrentPrice int64   `json:"currentPrice" example:"45000"`
	TargetPrice  int64   `json:"prediction2Year" example:"62000"`
	Data         []Point `json:"data"`
}

// sectors are the fixed demonstration forecasts of the dashboard.
var sectors = []struct {
	title      string
	sector     string
	start      int64
	end        int64
	volatility float64
}{
	{"Technology Sector", "tech", 45000, 62000, 0.15},
	{"Real Estate Market", "real-estate", 385000, 425000, 0.08},
	{"Commodity Prices", "commodities", 1950, 2180, 0.12},
}

// Sectors returns the sample forecast for every sector, with series anchored
// at now. The rand source is injected so callers can fix the noise in tests.
func Sectors(now time.Time, r *rand.Rand) []Prediction {
	predictions := make([]Prediction, 0, len(sectors))

	for _, s := range sectors {
		predictions = append(predictions, Prediction{
			Title:        s.title,
			Sector:       s.sector,
			CurrentPrice: s.start,
			TargetPrice:  s.end,
			Data:         series(now, r, s.start, s.end, s.volatility),
		})
	}

	return predictions
}

// series builds one forecast series: a year of synthetic history followed by
// two years of synthetic forecast.
func series(now time.Time, r *rand.Rand, start, end int64, volatility float64) []Point {
	points := make([]Point, 0, historicalMonths+1+predictedMonths)

	// Historical data (past 12 months), with mild growth baked in
	for i := -historicalMonths; i <= 0; i++ {
		progress := float64(i+historicalMonths) / float64(historicalMonths)
		base := float64(start) + float64(start)*0.2*progress
		value := int64(base + noise(r, volatility, base))

		points = append(points, Point{
			Date:       label(now, i),
			Historical: &value,
		})
	}

	// Predicted data (next 24 months), interpolating towards the target
	// with confidence decaying over the horizon
	for i := 1; i <= predictedMonths; i++ {
		progress := float64(i) / float64(predictedMonths)
		base := float64(start) + float64(end-start)*progress
		value := int64(base + noise(r, volatility, base))

		confidence := 95 - float64(i)*1.5
		if confidence < 60 {
			confidence = 60
		}

		points = append(points, Point{
			Date:       label(now, i),
			Predicted:  &value,
			Confidence: &confidence,
		})
	}

	return points
}

func noise(r *rand.Rand, volatility, base float64) float64 {
	return (r.Float64() - 0.5) * 2 * volatility * base
}

func label(now time.Time, monthOffset int) string {
	return now.AddDate(0, monthOffset, 0).Format("Jan 06")
}
