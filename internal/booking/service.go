package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/transitbook/internal/dates"
	"github.com/dharmasatrya/transitbook/internal/generator"
	"github.com/dharmasatrya/transitbook/internal/metrics"
	"github.com/dharmasatrya/transitbook/internal/models"
)

const (
	referenceLength   = 8
	referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	StatusAll         = "all"
)

var ErrNotFound = errors.New("booking not found")

type Config struct {
	// Latency simulates payment and confirmation round trips on Create.
	Latency time.Duration
	UserID  string
}

type Service struct {
	rand     generator.Rand
	config   Config
	metrics  *metrics.Registry
	bookings []models.Booking
}

func NewService(r generator.Rand, config Config, m *metrics.Registry) *Service {
	if r == nil {
		r = generator.NewRand()
	}
	if config.UserID == "" {
		config.UserID = DemoUserID
	}
	return &Service{
		rand:     r,
		config:   config,
		metrics:  m,
		bookings: history(config.UserID),
	}
}

// List returns the user's bookings, optionally narrowed to one status.
func (s *Service) List(status string) ([]models.Booking, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		status = StatusAll
	}

	switch models.BookingStatus(status) {
	case models.StatusUpcoming, models.StatusCompleted, models.StatusCancelled:
	default:
		if status != StatusAll {
			return nil, models.ErrInvalidStatus
		}
	}

	result := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if status == StatusAll || string(b.Status) == status {
			result = append(result, b)
		}
	}
	return result, nil
}

func (s *Service) Find(reference string) (models.Booking, error) {
	for _, b := range s.bookings {
		if strings.EqualFold(b.Reference, strings.TrimSpace(reference)) {
			return b, nil
		}
	}
	return models.Booking{}, fmt.Errorf("%w: %s", ErrNotFound, reference)
}

// Create confirms a booking request. Nothing is stored and the payment
// details are dropped once the request has been validated.
func (s *Service) Create(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error) {
	if !req.Type.Valid() {
		return models.BookingConfirmation{}, models.ErrInvalidTransportType
	}
	depart, err := dates.Parse(req.DepartDate)
	if err != nil {
		return models.BookingConfirmation{}, models.ErrInvalidDepartureDate
	}
	if req.ReturnDate != "" {
		ret, err := dates.Parse(req.ReturnDate)
		if err != nil {
			return models.BookingConfirmation{}, models.ErrInvalidReturnDate
		}
		if dates.Day(ret).Before(dates.Day(depart)) {
			return models.BookingConfirmation{}, models.ErrReturnBeforeDeparture
		}
	}

	quote, err := NewQuote(req.Type, req.UnitPrice, len(req.Passengers))
	if err != nil {
		return models.BookingConfirmation{}, err
	}

	if s.config.Latency > 0 {
		select {
		case <-time.After(s.config.Latency):
		case <-ctx.Done():
			return models.BookingConfirmation{}, ctx.Err()
		}
	}

	if s.metrics != nil {
		s.metrics.BookingsCreated.WithLabelValues(string(req.Type)).Inc()
	}

	return models.BookingConfirmation{
		ID:         uuid.NewString(),
		Reference:  s.Reference(),
		Type:       req.Type,
		From:       req.From,
		To:         req.To,
		DepartDate: dates.Format(depart),
		Status:     models.StatusUpcoming,
		Quote:      quote,
	}, nil
}

// Reference returns a random 8-character upper-case base-36 code.
func (s *Service) Reference() string {
	var b strings.Builder
	b.Grow(referenceLength)
	for i := 0; i < referenceLength; i++ {
		b.WriteByte(referenceAlphabet[s.rand.IntN(len(referenceAlphabet))])
	}
	return b.String()
}
