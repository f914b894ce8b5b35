package booking

import (
	"time"

	"github.com/dharmasatrya/transitbook/internal/models"
)

const DemoUserID = "user-123"

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

var (
	john = models.Passenger{FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "123-456-7890"}
	jane = models.Passenger{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "123-456-7891"}
	bob  = models.Passenger{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com", Phone: "123-456-7892"}
)

// history is the static booking history shown for the demo user.
func history(userID string) []models.Booking {
	return []models.Booking{
		{
			ID:         "booking-1",
			Reference:  "BK12345",
			UserID:     userID,
			Type:       models.TransportFlight,
			Provider:   "Air Express",
			From:       "New York",
			To:         "London",
			DepartDate: utc(2025, time.April, 15, 10, 30),
			ReturnDate: ptr(utc(2025, time.April, 22, 14, 45)),
			Passengers: []models.Passenger{john, jane},
			TotalPrice: 1298,
			Status:     models.StatusUpcoming,
			CreatedAt:  utc(2025, time.January, 15, 12, 30),
		},
		{
			ID:              "booking-2",
			Reference:       "BK12346",
			UserID:          userID,
			Type:            models.TransportTrain,
			Provider:        "RailConnect",
			From:            "Paris",
			To:              "Amsterdam",
			DepartDate:      utc(2025, time.May, 10, 8, 15),
			Passengers:      []models.Passenger{john},
			SpecialRequests: "Window seat preferred",
			TotalPrice:      164,
			Status:          models.StatusUpcoming,
			CreatedAt:       utc(2025, time.January, 20, 9, 45),
		},
		{
			ID:         "booking-3",
			Reference:  "BK12347",
			UserID:     userID,
			Type:       models.TransportBus,
			Provider:   "BusLines",
			From:       "Boston",
			To:         "Washington DC",
			DepartDate: utc(2025, time.March, 5, 9, 0),
			Passengers: []models.Passenger{john, jane, bob},
			TotalPrice: 261,
			Status:     models.StatusCompleted,
			CreatedAt:  utc(2025, time.January, 5, 14, 20),
		},
		{
			ID:              "booking-4",
			Reference:       "BK12348",
			UserID:          userID,
			Type:            models.TransportFlight,
			Provider:        "SkyWings",
			From:            "Miami",
			To:              "Las Vegas",
			DepartDate:      utc(2025, time.February, 20, 7, 30),
			ReturnDate:      ptr(utc(2025, time.February, 27, 19, 15)),
			Passengers:      []models.Passenger{john, jane},
			SpecialRequests: "Vegetarian meals",
			TotalPrice:      876,
			Status:          models.StatusCancelled,
			CreatedAt:       utc(2025, time.January, 10, 11, 15),
		},
	}
}
