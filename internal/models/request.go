package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/transitbook/internal/dates"
)

const (
	SortPrice     = "price"
	SortDeparture = "departure"
	SortBestValue = "best_value"
)

// SearchRequest carries the raw query values of a search; Validate turns it
// into SearchCriteria.
type SearchRequest struct {
	Type          string
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Passengers    string
	SortBy        string
}

type SearchCriteria struct {
	Type          TransportType `json:"type"`
	Origin        string        `json:"from"`
	Destination   string        `json:"to"`
	DepartureDate time.Time     `json:"depart"`
	ReturnDate    *time.Time    `json:"return,omitempty"`
	Passengers    int           `json:"passengers"`
	SortBy        string        `json:"sort_by"`
}

func (r *SearchRequest) Validate() (SearchCriteria, error) {
	origin := strings.TrimSpace(r.Origin)
	if origin == "" {
		return SearchCriteria{}, ErrMissingOrigin
	}
	destination := strings.TrimSpace(r.Destination)
	if destination == "" {
		return SearchCriteria{}, ErrMissingDestination
	}
	if strings.TrimSpace(r.DepartureDate) == "" {
		return SearchCriteria{}, ErrMissingDepartureDate
	}

	transport := TransportFlight
	if strings.TrimSpace(r.Type) != "" {
		t, err := ParseTransportType(r.Type)
		if err != nil {
			return SearchCriteria{}, err
		}
		transport = t
	}

	depart, err := dates.Parse(r.DepartureDate)
	if err != nil {
		return SearchCriteria{}, ErrInvalidDepartureDate
	}

	var ret *time.Time
	if strings.TrimSpace(r.ReturnDate) != "" {
		parsed, err := dates.Parse(r.ReturnDate)
		if err != nil {
			return SearchCriteria{}, ErrInvalidReturnDate
		}
		if dates.Day(parsed).Before(dates.Day(depart)) {
			return SearchCriteria{}, ErrReturnBeforeDeparture
		}
		ret = &parsed
	}

	passengers := 1
	if p := strings.TrimSpace(r.Passengers); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n <= 0 {
			return SearchCriteria{}, ErrInvalidPassengers
		}
		passengers = n
	}

	sortBy := strings.ToLower(strings.TrimSpace(r.SortBy))
	switch sortBy {
	case "", SortPrice, SortDeparture, SortBestValue:
	default:
		return SearchCriteria{}, ErrInvalidSort
	}

	return SearchCriteria{
		Type:          transport,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: depart,
		ReturnDate:    ret,
		Passengers:    passengers,
		SortBy:        sortBy,
	}, nil
}

type Payment struct {
	CardholderName  string `json:"cardholderName" validate:"required,min=2"`
	CardNumber      string `json:"cardNumber" validate:"required,min=16"`
	ExpiryDate      string `json:"expiryDate" validate:"required,min=5"`
	CVV             string `json:"cvv" validate:"required,min=3"`
	BillingAddress  string `json:"billingAddress" validate:"required,min=5"`
	SavePaymentInfo bool   `json:"savePaymentInfo"`
}

type BookingRequest struct {
	Type            TransportType `json:"type" validate:"required,oneof=flight train bus"`
	OfferID         string        `json:"offerId,omitempty"`
	Provider        string        `json:"provider,omitempty"`
	From            string        `json:"from" validate:"required"`
	To              string        `json:"to" validate:"required"`
	DepartDate      string        `json:"departDate" validate:"required"`
	ReturnDate      string        `json:"returnDate,omitempty"`
	UnitPrice       int           `json:"unitPrice,omitempty" validate:"gte=0"`
	Passengers      []Passenger   `json:"passengers" validate:"required,min=1,dive"`
	SpecialRequests string        `json:"specialRequests,omitempty" validate:"max=500"`
	Payment         *Payment      `json:"payment" validate:"required"`
	TermsAccepted   bool          `json:"termsAccepted" validate:"eq=true"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingOrigin         ValidationError = "from is required"
	ErrMissingDestination    ValidationError = "to is required"
	ErrMissingDepartureDate  ValidationError = "depart is required"
	ErrInvalidDepartureDate  ValidationError = "depart must be a valid date"
	ErrInvalidReturnDate     ValidationError = "return must be a valid date"
	ErrReturnBeforeDeparture ValidationError = "return must not be before depart"
	ErrInvalidPassengers     ValidationError = "passengers must be a positive integer"
	ErrInvalidTransportType  ValidationError = "type must be one of flight, train, bus"
	ErrInvalidSort           ValidationError = "sort must be one of price, departure, best_value"
	ErrInvalidStatus         ValidationError = "status must be one of all, upcoming, completed, cancelled"
	ErrInvalidPrice          ValidationError = "price must be a non-negative integer"
	ErrInvalidPriceFilter    ValidationError = "minPrice and maxPrice must be non-negative integers with minPrice <= maxPrice"
	ErrInvalidDepartureTime  ValidationError = "departureTime must list morning, afternoon or evening"
	ErrInvalidStopsFilter    ValidationError = "stops must list Direct, 1 Stop or 2+ Stops"
)
