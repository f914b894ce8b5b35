// Package generator synthesizes mock transport offers for a search.
//
// A batch holds between MinBatch and MaxBatch offers. Each offer is drawn
// independently from the per-type Profile: departure between 06:00 and 21:55
// on the searched day, a duration inside the type's hour range, a price
// derived from that duration with a small jitter, a few distinct amenities
// and one provider. The batch is then handed to an Ordering.
package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dharmasatrya/transitbook/internal/dates"
	"github.com/dharmasatrya/transitbook/internal/models"
)

const (
	MinBatch = 5
	MaxBatch = 8

	MinPrice     = 20
	MaxAmenities = 4

	earliestHour = 6
	latestHour   = 21
	minuteStep   = 5
	priceJitter  = 20
	idOffset     = 1000
)

var ErrUnknownTransportType = errors.New("unknown transport type")

// Ordering sorts a generated batch in place.
type Ordering func(offers []models.Offer)

func ByPrice(offers []models.Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})
}

func ByDeparture(offers []models.Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].DepartureTime.Before(offers[j].DepartureTime)
	})
}

type Generator struct {
	rand Rand
}

func New(r Rand) *Generator {
	if r == nil {
		r = NewRand()
	}
	return &Generator{rand: r}
}

// Generate ignores the passenger count: every price is per person.
func (g *Generator) Generate(criteria models.SearchCriteria, order Ordering) ([]models.Offer, error) {
	profile, err := Lookup(criteria.Type)
	if err != nil {
		return nil, err
	}

	day := dates.Day(criteria.DepartureDate)
	count := between(g.rand, MinBatch, MaxBatch)

	offers := make([]models.Offer, 0, count)
	for i := 0; i < count; i++ {
		offers = append(offers, g.offer(i, criteria, day, profile))
	}

	if order != nil {
		order(offers)
	}

	return offers, nil
}

func (g *Generator) offer(index int, criteria models.SearchCriteria, day time.Time, p Profile) models.Offer {
	departure := dates.At(day, between(g.rand, earliestHour, latestHour), g.gridMinute())

	hours := between(g.rand, p.MinHours, p.MaxHours)
	minutes := g.gridMinute()
	total := hours*60 + minutes
	arrival := departure.Add(time.Duration(total) * time.Minute)

	stops := g.rand.IntN(p.MaxStops + 1)

	price := p.BasePrice(hours) + g.rand.IntN(2*priceJitter) - priceJitter
	if price < MinPrice {
		price = MinPrice
	}

	amenities := pickAmenities(g.rand, p.Amenities)

	var provider string
	if len(p.Providers) > 0 {
		provider = p.Providers[g.rand.IntN(len(p.Providers))]
	}

	return models.Offer{
		ID:              fmt.Sprintf("%s-%d", criteria.Type, index+idOffset),
		Type:            criteria.Type,
		Provider:        provider,
		From:            criteria.Origin,
		To:              criteria.Destination,
		DepartureTime:   departure,
		ArrivalTime:     arrival,
		Duration:        DurationLabel(hours, minutes),
		DurationMinutes: total,
		Price:           price,
		Stops:           stops,
		Amenities:       amenities,
	}
}

func (g *Generator) gridMinute() int {
	return g.rand.IntN(60/minuteStep) * minuteStep
}

// pickAmenities draws without replacement, so it stops once the target is
// reached or the catalog runs out.
func pickAmenities(r Rand, catalog []string) []string {
	target := between(r, 1, MaxAmenities)
	remaining := append([]string(nil), catalog...)
	selected := make([]string, 0, target)

	for len(selected) < target && len(remaining) > 0 {
		i := r.IntN(len(remaining))
		selected = append(selected, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}

	return selected
}

func DurationLabel(hours, minutes int) string {
	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
