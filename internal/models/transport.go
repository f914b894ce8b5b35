package models

import (
	"strings"
	"time"
)

type TransportType string

const (
	TransportFlight TransportType = "flight"
	TransportTrain  TransportType = "train"
	TransportBus    TransportType = "bus"
)

var TransportTypes = []TransportType{TransportFlight, TransportTrain, TransportBus}

func (t TransportType) Valid() bool {
	switch t {
	case TransportFlight, TransportTrain, TransportBus:
		return true
	}
	return false
}

// ParseTransportType is case-insensitive; an empty string is not a valid type.
func ParseTransportType(s string) (TransportType, error) {
	t := TransportType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ErrInvalidTransportType
	}
	return t, nil
}

type Offer struct {
	ID              string        `json:"id"`
	Type            TransportType `json:"type"`
	Provider        string        `json:"provider"`
	From            string        `json:"from"`
	To              string        `json:"to"`
	DepartureTime   time.Time     `json:"departureTime"`
	ArrivalTime     time.Time     `json:"arrivalTime"`
	Duration        string        `json:"duration"`
	DurationMinutes int           `json:"durationMinutes"`
	Price           int           `json:"price"`
	Stops           int           `json:"stops"`
	Amenities       []string      `json:"amenities"`
	BestValueScore  float64       `json:"bestValueScore,omitempty"`
}

func (o Offer) HasAmenity(name string) bool {
	for _, a := range o.Amenities {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}
