package ranking

import (
	"math"
	"sort"

	"github.com/dharmasatrya/transitbook/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

// ByBestValue scores the batch and sorts it ascending by score. It has the
// same shape as generator.Ordering.
func ByBestValue(offers []models.Offer) {
	CalculateScores(offers)
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].BestValueScore < offers[j].BestValueScore
	})
}

func CalculateScores(offers []models.Offer) {
	if len(offers) == 0 {
		return
	}

	maxPrice := findMaxPrice(offers)
	maxDuration := findMaxDuration(offers)

	for i := range offers {
		offers[i].BestValueScore = CalculateBestValue(offers[i], maxPrice, maxDuration)
	}
}

// Lower score = better value
func CalculateBestValue(offer models.Offer, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (float64(offer.Price) / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(offer.DurationMinutes) / maxDuration) * 100
	}

	stopsScore := float64(offer.Stops) * 15
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)

	return math.Round(score*100) / 100
}

func findMaxPrice(offers []models.Offer) float64 {
	maxPrice := 0.0
	for _, o := range offers {
		if p := float64(o.Price); p > maxPrice {
			maxPrice = p
		}
	}
	return maxPrice
}

func findMaxDuration(offers []models.Offer) float64 {
	maxDuration := 0.0
	for _, o := range offers {
		dur := float64(o.DurationMinutes)
		if dur > maxDuration {
			maxDuration = dur
		}
	}
	return maxDuration
}
