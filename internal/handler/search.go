package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/transitbook/internal/dates"
	"github.com/dharmasatrya/transitbook/internal/filter"
	"github.com/dharmasatrya/transitbook/internal/generator"
	"github.com/dharmasatrya/transitbook/internal/models"
	"github.com/dharmasatrya/transitbook/internal/search"
	"github.com/dharmasatrya/transitbook/pkg/currency"
)

var pluralTypes = map[models.TransportType]string{
	models.TransportFlight: "flights",
	models.TransportTrain:  "trains",
	models.TransportBus:    "buses",
}

type SearchHandler struct {
	search  *search.Service
	results *search.Service
}

// NewSearchHandler takes one service for the search API and one for the
// results view; they differ only in simulated latency.
func NewSearchHandler(api, results *search.Service) *SearchHandler {
	if results == nil {
		results = api
	}
	return &SearchHandler{
		search:  api,
		results: results,
	}
}

// Search serves GET /api/search, ordered by price unless sort says otherwise.
func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()

	criteria, filters, err := bindSearch(c, models.SortPrice)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), criteria, criteria.SortBy)
	if err != nil {
		return errorResponse(c, err)
	}

	outbound := filter.Apply(result.Outbound, filters)
	var inbound []models.Offer
	if result.Return != nil {
		inbound = filter.Apply(result.Return, filters)
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults:  len(outbound),
			ReturnResults: len(inbound),
			SortedBy:      result.SortedBy,
			SearchTimeMs:  time.Since(startTime).Milliseconds(),
		},
		Results:       outbound,
		ReturnResults: inbound,
	})
}

// Results serves GET /api/search/results, the listing page view. Offers come
// back in departure order by default with display labels attached.
func (h *SearchHandler) Results(c echo.Context) error {
	startTime := time.Now()

	criteria, filters, err := bindSearch(c, models.SortDeparture)
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := h.results.Search(c.Request().Context(), criteria, criteria.SortBy)
	if err != nil {
		return errorResponse(c, err)
	}

	outbound := views(filter.Apply(result.Outbound, filters), criteria)
	var inbound []models.OfferView
	if result.Return != nil {
		inbound = views(filter.Apply(result.Return, filters), criteria)
	}

	return c.JSON(http.StatusOK, models.ResultsResponse{
		SearchCriteria: criteria,
		Metadata: models.SearchMetadata{
			TotalResults:  len(outbound),
			ReturnResults: len(inbound),
			SortedBy:      result.SortedBy,
			SearchTimeMs:  time.Since(startTime).Milliseconds(),
		},
		Heading:        Heading(criteria.Type, len(outbound)),
		DateLabel:      dates.DayLabel(criteria.DepartureDate),
		PassengerLabel: PassengerLabel(criteria.Passengers),
		Results:        outbound,
		ReturnResults:  inbound,
	})
}

// Catalog serves GET /api/catalog/:type.
func (h *SearchHandler) Catalog(c echo.Context) error {
	t, err := models.ParseTransportType(c.Param("type"))
	if err != nil {
		return errorResponse(c, err)
	}

	profile, err := generator.Lookup(t)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, models.CatalogResponse{
		Type:      t,
		Providers: profile.Providers,
		Amenities: profile.Amenities,
	})
}

func bindSearch(c echo.Context, defaultSort string) (models.SearchCriteria, *filter.Filters, error) {
	q := c.QueryParams()
	req := models.SearchRequest{
		Type:          q.Get("type"),
		Origin:        q.Get("from"),
		Destination:   q.Get("to"),
		DepartureDate: q.Get("depart"),
		ReturnDate:    q.Get("return"),
		Passengers:    q.Get("passengers"),
		SortBy:        q.Get("sort"),
	}

	criteria, err := req.Validate()
	if err != nil {
		return models.SearchCriteria{}, nil, err
	}
	if criteria.SortBy == "" {
		criteria.SortBy = defaultSort
	}

	f, err := filter.Parse(q)
	if err != nil {
		return models.SearchCriteria{}, nil, err
	}

	return criteria, f, nil
}

func views(offers []models.Offer, criteria models.SearchCriteria) []models.OfferView {
	out := make([]models.OfferView, len(offers))
	for i, o := range offers {
		out[i] = models.OfferView{
			Offer:      o,
			StopsLabel: StopsLabel(o.Stops),
			PriceLabel: currency.FormatUSD(o.Price),
			BookingURL: BookingURL(o, criteria),
		}
	}
	return out
}

// Heading reads like "6 flights found" or "1 bus found".
func Heading(t models.TransportType, n int) string {
	if n == 1 {
		return fmt.Sprintf("1 %s found", t)
	}
	return fmt.Sprintf("%d %s found", n, pluralTypes[t])
}

func PassengerLabel(n int) string {
	if n == 1 {
		return "1 passenger"
	}
	return fmt.Sprintf("%d passengers", n)
}

func StopsLabel(stops int) string {
	switch stops {
	case 0:
		return "Direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// BookingURL links an offer to the booking page, carrying the search along.
func BookingURL(o models.Offer, criteria models.SearchCriteria) string {
	q := url.Values{}
	q.Set("from", criteria.Origin)
	q.Set("to", criteria.Destination)
	q.Set("depart", dates.Format(criteria.DepartureDate))
	if criteria.ReturnDate != nil {
		q.Set("return", dates.Format(*criteria.ReturnDate))
	}
	q.Set("passengers", fmt.Sprint(criteria.Passengers))

	return fmt.Sprintf("/booking/%s/%s?%s", o.Type, url.PathEscape(o.ID), q.Encode())
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
