package booking

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/transitbook/internal/generator"
	"github.com/dharmasatrya/transitbook/internal/metrics"
	"github.com/dharmasatrya/transitbook/internal/models"
)

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Type:       models.TransportTrain,
		OfferID:    "train-1003",
		Provider:   "RailConnect",
		From:       "Paris",
		To:         "Amsterdam",
		DepartDate: "2025-05-10",
		UnitPrice:  129,
		Passengers: []models.Passenger{john, jane},
		Payment: &models.Payment{
			CardholderName: "John Doe",
			CardNumber:     "4242424242424242",
			ExpiryDate:     "12/27",
			CVV:            "123",
			BillingAddress: "1 Main Street",
		},
		TermsAccepted: true,
	}
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name       string
		t          models.TransportType
		unitPrice  int
		passengers int
		perPerson  int
		total      int
	}{
		{"flight two passengers", models.TransportFlight, 299, 2, 364, 728},
		{"train default price", models.TransportTrain, 0, 1, 164, 164},
		{"bus three passengers", models.TransportBus, 59, 3, 87, 261},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuote(tt.t, tt.unitPrice, tt.passengers)
			require.NoError(t, err)
			assert.Equal(t, tt.perPerson, q.PerPerson)
			assert.Equal(t, tt.total, q.Total)
			assert.Equal(t, BookingFee, q.Fees)
			assert.Equal(t, tt.passengers, q.Passengers)
		})
	}
}

func TestNewQuote_Labels(t *testing.T) {
	q, err := NewQuote(models.TransportFlight, 1200, 2)
	require.NoError(t, err)
	assert.Equal(t, "$1,265", q.PerPersonLabel)
	assert.Equal(t, "$2,530", q.TotalLabel)
}

func TestNewQuote_Errors(t *testing.T) {
	_, err := NewQuote("ferry", 10, 1)
	assert.ErrorIs(t, err, models.ErrInvalidTransportType)

	_, err = NewQuote(models.TransportBus, -1, 1)
	assert.ErrorIs(t, err, models.ErrInvalidPrice)

	_, err = NewQuote(models.TransportBus, 10, 0)
	assert.ErrorIs(t, err, models.ErrInvalidPassengers)
}

func TestList(t *testing.T) {
	svc := NewService(nil, Config{}, nil)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	for _, b := range all {
		assert.Equal(t, DemoUserID, b.UserID)
	}

	upcoming, err := svc.List("upcoming")
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)

	completed, err := svc.List(" Completed ")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "BK12347", completed[0].Reference)

	cancelled, err := svc.List("cancelled")
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "BK12348", cancelled[0].Reference)

	_, err = svc.List("pending")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestList_CustomUser(t *testing.T) {
	svc := NewService(nil, Config{UserID: "user-999"}, nil)
	all, err := svc.List(StatusAll)
	require.NoError(t, err)
	for _, b := range all {
		assert.Equal(t, "user-999", b.UserID)
	}
}

func TestFind(t *testing.T) {
	svc := NewService(nil, Config{}, nil)

	b, err := svc.Find("bk12346")
	require.NoError(t, err)
	assert.Equal(t, "RailConnect", b.Provider)

	_, err = svc.Find("BK00000")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreate(t *testing.T) {
	svc := NewService(generator.NewSeededRand(7), Config{}, metrics.NewRegistry())

	conf, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, conf.ID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-Z]{8}$`), conf.Reference)
	assert.Equal(t, models.StatusUpcoming, conf.Status)
	assert.Equal(t, "2025-05-10", conf.DepartDate)
	assert.Equal(t, 164, conf.Quote.PerPerson)
	assert.Equal(t, 328, conf.Quote.Total)
}

func TestCreate_RejectsBadDates(t *testing.T) {
	svc := NewService(nil, Config{}, nil)

	req := validRequest()
	req.DepartDate = "tomorrow"
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidDepartureDate)

	req = validRequest()
	req.ReturnDate = "2025-05-01"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrReturnBeforeDeparture)

	req = validRequest()
	req.Type = "ferry"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidTransportType)
}

func TestCreate_HonoursContext(t *testing.T) {
	svc := NewService(nil, Config{Latency: time.Second}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReference_Repeatable(t *testing.T) {
	a := NewService(generator.NewSeededRand(42), Config{}, nil)
	b := NewService(generator.NewSeededRand(42), Config{}, nil)
	assert.Equal(t, a.Reference(), b.Reference())
}

func TestItinerary(t *testing.T) {
	svc := NewService(nil, Config{}, nil)

	for _, ref := range []string{"BK12345", "BK12346"} {
		b, err := svc.Find(ref)
		require.NoError(t, err)

		pdf, err := Itinerary(b)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), ref)
	}
}
