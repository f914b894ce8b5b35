package models

import "time"

type BookingStatus string

const (
	StatusUpcoming  BookingStatus = "upcoming"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type Passenger struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10"`
}

type Booking struct {
	ID              string        `json:"id"`
	Reference       string        `json:"reference"`
	UserID          string        `json:"userId"`
	Type            TransportType `json:"type"`
	Provider        string        `json:"provider"`
	From            string        `json:"from"`
	To              string        `json:"to"`
	DepartDate      time.Time     `json:"departDate"`
	ReturnDate      *time.Time    `json:"returnDate,omitempty"`
	Passengers      []Passenger   `json:"passengers"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	TotalPrice      int           `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type Quote struct {
	Type           TransportType `json:"type"`
	UnitPrice      int           `json:"unitPrice"`
	Taxes          int           `json:"taxes"`
	Fees           int           `json:"fees"`
	PerPerson      int           `json:"perPerson"`
	Passengers     int           `json:"passengers"`
	Total          int           `json:"total"`
	PerPersonLabel string        `json:"perPersonLabel"`
	TotalLabel     string        `json:"totalLabel"`
}
