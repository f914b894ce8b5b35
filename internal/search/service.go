package search

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dharmasatrya/transitbook/internal/generator"
	"github.com/dharmasatrya/transitbook/internal/metrics"
	"github.com/dharmasatrya/transitbook/internal/models"
	"github.com/dharmasatrya/transitbook/internal/ranking"
)

var orderings = map[string]generator.Ordering{
	models.SortPrice:     generator.ByPrice,
	models.SortDeparture: generator.ByDeparture,
	models.SortBestValue: ranking.ByBestValue,
}

type Config struct {
	// Latency is the simulated provider delay applied to every leg.
	Latency time.Duration
	Timeout time.Duration
}

type Service struct {
	generator *generator.Generator
	config    Config
	metrics   *metrics.Registry
}

type Result struct {
	Outbound []models.Offer
	Return   []models.Offer
	SortedBy string
}

func NewService(gen *generator.Generator, config Config, m *metrics.Registry) *Service {
	return &Service{
		generator: gen,
		config:    config,
		metrics:   m,
	}
}

// WithLatency returns a copy of the service that simulates a different delay.
// The results view uses a slower one than the search API.
func (s *Service) WithLatency(d time.Duration) *Service {
	clone := *s
	clone.config.Latency = d
	return &clone
}

// Search generates the outbound batch and, for round trips, the return batch
// with origin and destination swapped. sortBy must be one of the models.Sort*
// names; the caller picks the default.
func (s *Service) Search(ctx context.Context, criteria models.SearchCriteria, sortBy string) (*Result, error) {
	start := time.Now()

	order, ok := orderings[sortBy]
	if !ok {
		return nil, models.ErrInvalidSort
	}

	searchCtx := ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	result := &Result{SortedBy: sortBy}
	g, gctx := errgroup.WithContext(searchCtx)

	g.Go(func() error {
		offers, err := s.leg(gctx, criteria, order)
		if err != nil {
			return err
		}
		result.Outbound = offers
		return nil
	})

	if criteria.ReturnDate != nil {
		returnCriteria := models.SearchCriteria{
			Type:          criteria.Type,
			Origin:        criteria.Destination,
			Destination:   criteria.Origin,
			DepartureDate: *criteria.ReturnDate,
			Passengers:    criteria.Passengers,
			SortBy:        criteria.SortBy,
		}
		g.Go(func() error {
			offers, err := s.leg(gctx, returnCriteria, order)
			if err != nil {
				return err
			}
			result.Return = offers
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.Searches.WithLabelValues(string(criteria.Type), sortBy).Inc()
		s.metrics.BatchSize.Observe(float64(len(result.Outbound)))
		if result.Return != nil {
			s.metrics.BatchSize.Observe(float64(len(result.Return)))
		}
		s.metrics.SearchLatency.Observe(time.Since(start).Seconds())
	}

	return result, nil
}

func (s *Service) leg(ctx context.Context, criteria models.SearchCriteria, order generator.Ordering) ([]models.Offer, error) {
	if s.config.Latency > 0 {
		select {
		case <-time.After(s.config.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return s.generator.Generate(criteria, order)
}
