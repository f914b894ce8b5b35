package booking

import (
	"github.com/dharmasatrya/transitbook/internal/models"
	"github.com/dharmasatrya/transitbook/pkg/currency"
)

const BookingFee = 20

var taxes = map[models.TransportType]int{
	models.TransportFlight: 45,
	models.TransportTrain:  15,
	models.TransportBus:    8,
}

// defaultUnitPrice is used when the client does not say which offer it picked.
var defaultUnitPrice = map[models.TransportType]int{
	models.TransportFlight: 299,
	models.TransportTrain:  129,
	models.TransportBus:    59,
}

// NewQuote prices a booking. Offers are priced per person, so this is the
// only place the passenger count multiplies anything.
func NewQuote(t models.TransportType, unitPrice, passengers int) (models.Quote, error) {
	tax, ok := taxes[t]
	if !ok {
		return models.Quote{}, models.ErrInvalidTransportType
	}
	if unitPrice < 0 {
		return models.Quote{}, models.ErrInvalidPrice
	}
	if passengers < 1 {
		return models.Quote{}, models.ErrInvalidPassengers
	}
	if unitPrice == 0 {
		unitPrice = defaultUnitPrice[t]
	}

	perPerson := unitPrice + tax + BookingFee
	total := perPerson * passengers

	return models.Quote{
		Type:           t,
		UnitPrice:      unitPrice,
		Taxes:          tax,
		Fees:           BookingFee,
		PerPerson:      perPerson,
		Passengers:     passengers,
		Total:          total,
		PerPersonLabel: currency.FormatUSD(perPerson),
		TotalLabel:     currency.FormatUSD(total),
	}, nil
}
