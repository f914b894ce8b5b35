package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/transitbook/internal/booking"
	"github.com/dharmasatrya/transitbook/internal/models"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

// List serves GET /api/bookings?status=.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.List(c.QueryParam("status"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.BookingsResponse{Bookings: bookings})
}

// Create serves POST /api/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
	}

	if err := c.Validate(&req); err != nil {
		return errorResponse(c, err)
	}

	confirmation, err := h.bookings.Create(c.Request().Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.BookingCreatedResponse{
		Success: true,
		Booking: confirmation,
	})
}

// Quote serves GET /api/bookings/quote?type=&price=&passengers=.
func (h *BookingHandler) Quote(c echo.Context) error {
	t := models.TransportFlight
	if raw := c.QueryParam("type"); raw != "" {
		parsed, err := models.ParseTransportType(raw)
		if err != nil {
			return errorResponse(c, err)
		}
		t = parsed
	}

	price, err := intParam(c, "price", 0)
	if err != nil {
		return errorResponse(c, models.ErrInvalidPrice)
	}
	passengers, err := intParam(c, "passengers", 1)
	if err != nil {
		return errorResponse(c, models.ErrInvalidPassengers)
	}

	quote, err := booking.NewQuote(t, price, passengers)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, quote)
}

// Itinerary serves GET /api/bookings/:reference/itinerary as a PDF download.
func (h *BookingHandler) Itinerary(c echo.Context) error {
	b, err := h.bookings.Find(c.Param("reference"))
	if err != nil {
		return errorResponse(c, err)
	}

	pdf, err := booking.Itinerary(b)
	if err != nil {
		return errorResponse(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="itinerary-%s.pdf"`, b.Reference))
	res.Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
