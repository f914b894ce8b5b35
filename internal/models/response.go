package models

type SearchMetadata struct {
	TotalResults  int    `json:"total_results"`
	ReturnResults int    `json:"return_results,omitempty"`
	SortedBy      string `json:"sorted_by"`
	SearchTimeMs  int64  `json:"search_time_ms"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Results        []Offer        `json:"results"`
	ReturnResults  []Offer        `json:"return_results,omitempty"`
}

type OfferView struct {
	Offer
	StopsLabel string `json:"stopsLabel"`
	PriceLabel string `json:"priceLabel"`
	BookingURL string `json:"bookingUrl"`
}

type ResultsResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       SearchMetadata `json:"metadata"`
	Heading        string         `json:"heading"`
	DateLabel      string         `json:"dateLabel"`
	PassengerLabel string         `json:"passengerLabel"`
	Results        []OfferView    `json:"results"`
	ReturnResults  []OfferView    `json:"return_results,omitempty"`
}

type CatalogResponse struct {
	Type      TransportType `json:"type"`
	Providers []string      `json:"providers"`
	Amenities []string      `json:"amenities"`
}

type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type BookingConfirmation struct {
	ID         string        `json:"id"`
	Reference  string        `json:"reference"`
	Type       TransportType `json:"type"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	DepartDate string        `json:"departDate"`
	Status     BookingStatus `json:"status"`
	Quote      Quote         `json:"quote"`
}

type BookingCreatedResponse struct {
	Success bool                `json:"success"`
	Booking BookingConfirmation `json:"booking"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
