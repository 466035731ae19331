package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesafina/mesafina-backend/internal/catalog"
	"github.com/mesafina/mesafina-backend/internal/ledger"
	"github.com/mesafina/mesafina-backend/pkg/config"
	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/errors"
)

type restaurantLister interface {
	List(ctx context.Context, filter catalog.ListFilter) ([]models.Restaurant, error)
}

type areaResolver interface {
	ResolveArea(ctx context.Context, area string) ([]uuid.UUID, error)
}

type availabilityChecker interface {
	CheckAvailability(ctx context.Context, input ledger.ReserveInput) (*ledger.Availability, error)
}

type Service interface {
	Search(ctx context.Context, input Input) (*Result, error)
}

type ServiceParams struct {
	Restaurants restaurantLister
	Areas       areaResolver
	Ledger      availabilityChecker
	Booking     config.BookingConfig
	Search      config.SearchConfig
	Now         func() time.Time
}

type service struct {
	restaurants restaurantLister
	areas       areaResolver
	ledger      availabilityChecker
	booking     config.BookingConfig
	search      config.SearchConfig
	now         func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Restaurants == nil {
		return nil, fmt.Errorf("search: restaurant lister is required")
	}
	if params.Areas == nil {
		return nil, fmt.Errorf("search: area resolver is required")
	}
	if params.Ledger == nil {
		return nil, fmt.Errorf("search: availability checker is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		restaurants: params.Restaurants,
		areas:       params.Areas,
		ledger:      params.Ledger,
		booking:     params.Booking,
		search:      params.Search,
		now:         params.Now,
	}, nil
}

// Search ranks matching restaurants bookable-first, then by rating,
// remaining seats, and restaurant ID, and returns at most the configured
// result count.
// The ordering is fully deterministic so repeated queries agree.
func (s *service) Search(ctx context.Context, input Input) (*Result, error) {
	if input.PartySize < 1 {
		return nil, errors.New(errors.CodeValidation, "party size must be at least 1")
	}
	slot := ledger.NormalizeSlot(input.SlotStart, s.booking.SlotGranularity())

	filter := catalog.ListFilter{
		City:        input.City,
		Cuisine:     input.Cuisine,
		SeatingType: input.SeatingType,
		MinCapacity: input.PartySize,
		RatingFloor: input.RatingFloor,
	}
	if input.Area != "" {
		ids, err := s.areas.ResolveArea(ctx, input.Area)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &Result{SlotStart: slot, PartySize: input.PartySize}, nil
		}
		filter.IDs = ids
	}

	candidates, err := s.restaurants.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list candidate restaurants")
	}

	type ranked struct {
		item   ResultItem
		rating decimal.Decimal
	}
	items := make([]ranked, 0, len(candidates))
	for i := range candidates {
		item, err := s.evaluate(ctx, &candidates[i], slot, input)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		items = append(items, ranked{item: *item, rating: candidates[i].Rating})
	}

	sort.SliceStable(items, func(a, b int) bool {
		// A full restaurant never outranks a bookable one, whatever its rating.
		if items[a].item.Available != items[b].item.Available {
			return items[a].item.Available
		}
		if cmp := items[a].rating.Cmp(items[b].rating); cmp != 0 {
			return cmp > 0
		}
		if items[a].item.SeatsLeft != items[b].item.SeatsLeft {
			return items[a].item.SeatsLeft > items[b].item.SeatsLeft
		}
		return items[a].item.Restaurant.ID.String() < items[b].item.Restaurant.ID.String()
	})

	limit := s.search.MaxResults
	if limit <= 0 {
		limit = 3
	}
	if len(items) > limit {
		items = items[:limit]
	}
	results := make([]ResultItem, 0, len(items))
	for i := range items {
		results = append(results, items[i].item)
	}
	return &Result{SlotStart: slot, PartySize: input.PartySize, Results: results}, nil
}

func (s *service) evaluate(ctx context.Context, restaurant *models.Restaurant, slot time.Time, input Input) (*ResultItem, error) {
	avail, err := s.ledger.CheckAvailability(ctx, ledger.ReserveInput{
		RestaurantID: restaurant.ID,
		SlotStart:    slot,
		SeatingType:  input.SeatingType,
		PartySize:    input.PartySize,
	})
	if err != nil {
		return nil, err
	}

	item := &ResultItem{
		Restaurant: catalog.RestaurantFromModel(restaurant),
		SlotStart:  avail.SlotStart,
		SeatsLeft:  avail.SeatsLeft,
		Available:  avail.Available,
	}
	if !item.Available {
		// Full restaurants only surface when the caller asked for
		// alternatives; otherwise they are dropped without probing
		// the ledger for nearby slots.
		if !input.IncludeAlternatives {
			return nil, nil
		}
		alternatives, err := s.nearbySlots(ctx, restaurant, slot, input)
		if err != nil {
			return nil, err
		}
		item.Alternatives = alternatives
	}
	return item, nil
}

// nearbySlots walks outward from the requested slot, nearest first, and
// keeps future in-hours slots that can still seat the party.
func (s *service) nearbySlots(ctx context.Context, restaurant *models.Restaurant, slot time.Time, input Input) ([]time.Time, error) {
	window := s.search.AlternativeWindow
	if window <= 0 {
		return nil, nil
	}
	step := s.booking.SlotGranularity()
	now := s.now().UTC()

	var out []time.Time
	for offset := 1; offset <= window; offset++ {
		for _, candidate := range []time.Time{
			slot.Add(-time.Duration(offset) * step),
			slot.Add(time.Duration(offset) * step),
		} {
			if candidate.Before(now) || !restaurant.WithinOpeningHours(candidate) {
				continue
			}
			avail, err := s.ledger.CheckAvailability(ctx, ledger.ReserveInput{
				RestaurantID: restaurant.ID,
				SlotStart:    candidate,
				SeatingType:  input.SeatingType,
				PartySize:    input.PartySize,
			})
			if err != nil {
				return nil, err
			}
			if avail.Available {
				out = append(out, candidate)
			}
		}
	}
	return out, nil
}
