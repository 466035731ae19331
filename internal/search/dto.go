package search

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesafina/mesafina-backend/internal/catalog"
)

// Input is a conversational search turned into concrete filters. Zero
// values mean "no constraint"; SlotStart and PartySize are required.
// IncludeAlternatives keeps full restaurants in the results, each with
// nearby bookable slots; without it only bookable restaurants appear.
type Input struct {
	SlotStart           time.Time
	PartySize           int
	Cuisine             string
	Area                string
	City                string
	SeatingType         string
	RatingFloor         *decimal.Decimal
	IncludeAlternatives bool
}

// ResultItem pairs a restaurant with how the requested slot stands for
// the asking party. Alternatives list nearby bookable slots when the
// requested one is full.
type ResultItem struct {
	Restaurant   catalog.RestaurantDTO `json:"restaurant"`
	SlotStart    time.Time             `json:"slotStart"`
	SeatsLeft    int                   `json:"seatsLeft"`
	Available    bool                  `json:"available"`
	Alternatives []time.Time           `json:"alternatives,omitempty"`
}

type Result struct {
	SlotStart time.Time    `json:"slotStart"`
	PartySize int          `json:"partySize"`
	Results   []ResultItem `json:"results"`
}
