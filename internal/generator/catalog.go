package generator

import (
	"fmt"

	"github.com/dharmasatrya/transitbook/internal/models"
)

// Profile holds the fixed per-type tables the generator draws from.
type Profile struct {
	Providers  []string
	Amenities  []string
	MinHours   int
	MaxHours   int
	MaxStops   int
	BaseFare   int
	HourlyFare int
}

func (p Profile) BasePrice(hours int) int {
	return p.BaseFare + p.HourlyFare*hours
}

var profiles = map[models.TransportType]Profile{
	models.TransportFlight: {
		Providers:  []string{"Air Express", "SkyWings", "Global Air", "FastJet", "Coastal Airways"},
		Amenities:  []string{"Wi-Fi", "Meal Included", "Extra Legroom", "Entertainment", "Power Outlets"},
		MinHours:   1,
		MaxHours:   4,
		MaxStops:   2,
		BaseFare:   150,
		HourlyFare: 50,
	},
	models.TransportTrain: {
		Providers:  []string{"RailConnect", "Express Rail", "National Railways", "SpeedTrain", "RegionalLink"},
		Amenities:  []string{"Wi-Fi", "Dining Car", "Quiet Car", "Power Outlets", "Sleeper Cabin"},
		MinHours:   2,
		MaxHours:   7,
		MaxStops:   1,
		BaseFare:   80,
		HourlyFare: 20,
	},
	models.TransportBus: {
		Providers:  []string{"BusLines", "Express Coach", "City Connect", "LongDistance", "ComfortBus"},
		Amenities:  []string{"Wi-Fi", "Restroom", "Power Outlets", "Reclining Seats", "Snacks"},
		MinHours:   3,
		MaxHours:   9,
		MaxStops:   1,
		BaseFare:   40,
		HourlyFare: 10,
	},
}

// Lookup returns a copy of the profile for t so callers cannot alter the
// shared tables.
func Lookup(t models.TransportType) (Profile, error) {
	p, ok := profiles[t]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownTransportType, t)
	}
	p.Providers = append([]string(nil), p.Providers...)
	p.Amenities = append([]string(nil), p.Amenities...)
	return p, nil
}
