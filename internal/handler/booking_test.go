package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/transitbook/internal/models"
)

const bookingBody = `{
	"type": "flight",
	"offerId": "flight-1002",
	"provider": "SkyWings",
	"from": "New York",
	"to": "London",
	"departDate": "2025-04-15",
	"returnDate": "2025-04-22",
	"unitPrice": 299,
	"passengers": [
		{"firstName": "John", "lastName": "Doe", "email": "john@example.com", "phone": "123-456-7890"},
		{"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "phone": "123-456-7891"}
	],
	"payment": {
		"cardholderName": "John Doe",
		"cardNumber": "4242424242424242",
		"expiryDate": "12/27",
		"cvv": "123",
		"billingAddress": "1 Main Street"
	},
	"termsAccepted": true
}`

func TestBookings_List(t *testing.T) {
	e := newServer()

	rec := do(e, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 4)

	rec = do(e, http.MethodGet, "/api/bookings?status=upcoming", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 2)

	rec = do(e, http.MethodGet, "/api/bookings?status=lost", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookings_Create(t *testing.T) {
	rec := do(newServer(), http.MethodPost, "/api/bookings", bookingBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.BookingCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Booking.Reference, 8)
	assert.Equal(t, models.StatusUpcoming, resp.Booking.Status)
	assert.Equal(t, 728, resp.Booking.Quote.Total)
	assert.NotContains(t, rec.Body.String(), "4242424242424242")
}

func TestBookings_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"terms not accepted", strings.Replace(bookingBody, `"termsAccepted": true`, `"termsAccepted": false`, 1), "termsAccepted"},
		{"bad email", strings.Replace(bookingBody, "john@example.com", "john", 1), "passengers[0].email"},
		{"short card", strings.Replace(bookingBody, "4242424242424242", "4242", 1), "payment.cardNumber"},
		{"unknown type", strings.Replace(bookingBody, `"type": "flight"`, `"type": "ferry"`, 1), "type"},
		{"no passengers", strings.Replace(bookingBody, `"passengers": [`, `"ignored": [`, 1), "passengers"},
	}

	e := newServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/bookings", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation_error", resp.Error)
			assert.Contains(t, resp.Message, tt.field)
		})
	}
}

func TestBookings_CreateMalformed(t *testing.T) {
	rec := do(newServer(), http.MethodPost, "/api/bookings", `{"type":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookings_Quote(t *testing.T) {
	e := newServer()

	rec := do(e, http.MethodGet, "/api/bookings/quote?type=bus&price=59&passengers=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var q models.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, 87, q.PerPerson)
	assert.Equal(t, 261, q.Total)
	assert.Equal(t, "$261", q.TotalLabel)

	rec = do(e, http.MethodGet, "/api/bookings/quote", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	assert.Equal(t, models.TransportFlight, q.Type)
	assert.Equal(t, 364, q.Total)

	rec = do(e, http.MethodGet, "/api/bookings/quote?passengers=two", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookings_Itinerary(t *testing.T) {
	e := newServer()

	rec := do(e, http.MethodGet, "/api/bookings/BK12345/itinerary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "itinerary-BK12345.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	rec = do(e, http.MethodGet, "/api/bookings/BK00000/itinerary", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
