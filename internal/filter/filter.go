package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dharmasatrya/transitbook/internal/dates"
	"github.com/dharmasatrya/transitbook/internal/models"
)

// Window is a departure time-of-day range in minutes, [Start, End).
type Window struct {
	Name  string
	Start int
	End   int
}

var windows = map[string]Window{
	"morning":   {Name: "morning", Start: 6 * 60, End: 12 * 60},
	"afternoon": {Name: "afternoon", Start: 12 * 60, End: 18 * 60},
	"evening":   {Name: "evening", Start: 18 * 60, End: 24 * 60},
}

// StopsTwoOrMore is the open-ended stops bucket.
const StopsTwoOrMore = 2

type Filters struct {
	MinPrice  *int
	MaxPrice  *int
	Windows   []Window
	Stops     []int
	Amenities []string
}

// Parse reads the filter query keys. It returns nil when none are present.
func Parse(q url.Values) (*Filters, error) {
	f := &Filters{}
	present := false

	for _, key := range []string{"minPrice", "maxPrice"} {
		value := strings.TrimSpace(q.Get(key))
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, models.ErrInvalidPriceFilter
		}
		if key == "minPrice" {
			f.MinPrice = &n
		} else {
			f.MaxPrice = &n
		}
		present = true
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return nil, models.ErrInvalidPriceFilter
	}

	for _, token := range splitList(q.Get("departureTime")) {
		w, ok := windows[firstWord(token)]
		if !ok {
			return nil, models.ErrInvalidDepartureTime
		}
		f.Windows = append(f.Windows, w)
		present = true
	}

	for _, token := range splitList(q.Get("stops")) {
		bucket, err := parseStops(token)
		if err != nil {
			return nil, err
		}
		f.Stops = append(f.Stops, bucket)
		present = true
	}

	for _, token := range splitList(q.Get("amenities")) {
		f.Amenities = append(f.Amenities, token)
		present = true
	}

	if !present {
		return nil, nil
	}
	return f, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// firstWord maps "Morning (6AM-12PM)" to "morning".
func firstWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, " ("); i >= 0 {
		s = s[:i]
	}
	return s
}

func parseStops(token string) (int, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if strings.HasPrefix(token, "direct") {
		return 0, nil
	}

	end := 0
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, models.ErrInvalidStopsFilter
	}
	n, err := strconv.Atoi(token[:end])
	if err != nil {
		return 0, models.ErrInvalidStopsFilter
	}
	if n >= StopsTwoOrMore {
		return StopsTwoOrMore, nil
	}
	return n, nil
}

// Apply keeps the offers matching every filter, preserving their order.
func Apply(offers []models.Offer, filters *Filters) []models.Offer {
	if filters == nil {
		return offers
	}

	result := make([]models.Offer, 0, len(offers))

	for _, o := range offers {
		if matchesFilters(o, filters) {
			result = append(result, o)
		}
	}

	return result
}

func matchesFilters(o models.Offer, filters *Filters) bool {
	if filters.MinPrice != nil && o.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && o.Price > *filters.MaxPrice {
		return false
	}

	if len(filters.Windows) > 0 {
		dep := dates.MinuteOfDay(o.DepartureTime)
		found := false
		for _, w := range filters.Windows {
			if dep >= w.Start && dep < w.End {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(filters.Stops) > 0 {
		bucket := o.Stops
		if bucket > StopsTwoOrMore {
			bucket = StopsTwoOrMore
		}
		found := false
		for _, s := range filters.Stops {
			if s == bucket {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, a := range filters.Amenities {
		if !o.HasAmenity(a) {
			return false
		}
	}

	return true
}
