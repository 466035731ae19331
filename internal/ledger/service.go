package ledger

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/errors"
)

type restaurantSource interface {
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*models.Restaurant, error)
}

// ReserveInput asks for partySize seats at a normalized slot key.
type ReserveInput struct {
	RestaurantID uuid.UUID
	SlotStart    time.Time
	SeatingType  string
	PartySize    int
}

// Availability reports how a slot key currently stands.
type Availability struct {
	RestaurantID  uuid.UUID `json:"restaurantId"`
	SlotStart     time.Time `json:"slotStart"`
	SeatingType   string    `json:"seatingType"`
	CapacityTotal int       `json:"capacityTotal"`
	SeatsLeft     int       `json:"seatsLeft"`
	Available     bool      `json:"available"`
}

// Service owns seat accounting. The Tx variants compose into a caller's
// transaction so a reservation write and its capacity movement commit or
// roll back together.
type Service interface {
	CheckAvailability(ctx context.Context, input ReserveInput) (*Availability, error)
	Reserve(ctx context.Context, input ReserveInput) (*models.CapacityClaim, error)
	Release(ctx context.Context, claimID uuid.UUID) error
	Amend(ctx context.Context, claimID uuid.UUID, input ReserveInput) (*models.CapacityClaim, error)

	ReserveTx(tx *gorm.DB, restaurant *models.Restaurant, input ReserveInput) (*models.CapacityClaim, error)
	ReleaseTx(tx *gorm.DB, claimID uuid.UUID) error
	AmendTx(tx *gorm.DB, restaurant *models.Restaurant, claimID uuid.UUID, input ReserveInput) (*models.CapacityClaim, error)
}

type ServiceParams struct {
	DB          *gorm.DB
	Repository  *Repository
	Restaurants restaurantSource
	Granularity time.Duration
	Now         func() time.Time
}

type service struct {
	db          *gorm.DB
	repo        *Repository
	restaurants restaurantSource
	granularity time.Duration
	now         func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("ledger: db handle is required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("ledger: repository is required")
	}
	if params.Restaurants == nil {
		return nil, fmt.Errorf("ledger: restaurant source is required")
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &service{
		db:          params.DB,
		repo:        params.Repository,
		restaurants: params.Restaurants,
		granularity: params.Granularity,
		now:         params.Now,
	}, nil
}

func (s *service) CheckAvailability(ctx context.Context, input ReserveInput) (*Availability, error) {
	input.SlotStart = NormalizeSlot(input.SlotStart, s.granularity)
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	restaurant, err := s.loadRestaurant(s.db.WithContext(ctx), input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.validateSeatingType(restaurant, input.SeatingType); err != nil {
		return nil, err
	}

	key := SlotKey{RestaurantID: input.RestaurantID, SlotStart: input.SlotStart, SeatingType: input.SeatingType}
	capacity := restaurant.CapacityFor(input.SeatingType)
	reserved := 0
	record, err := s.repo.GetRecord(ctx, key)
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(errors.CodeInternal, err, "load availability record")
	}
	if record != nil {
		capacity = record.CapacityTotal
		reserved = record.SeatsReserved
	}

	left := capacity - reserved
	return &Availability{
		RestaurantID:  key.RestaurantID,
		SlotStart:     key.SlotStart,
		SeatingType:   key.SeatingType,
		CapacityTotal: capacity,
		SeatsLeft:     left,
		Available:     input.PartySize <= left,
	}, nil
}

func (s *service) Reserve(ctx context.Context, input ReserveInput) (*models.CapacityClaim, error) {
	var claim *models.CapacityClaim
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.loadRestaurant(tx, input.RestaurantID)
		if err != nil {
			return err
		}
		claim, err = s.ReserveTx(tx, restaurant, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

func (s *service) ReserveTx(tx *gorm.DB, restaurant *models.Restaurant, input ReserveInput) (*models.CapacityClaim, error) {
	input.SlotStart = NormalizeSlot(input.SlotStart, s.granularity)
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	if err := ValidateSlotInFuture(input.SlotStart, s.now()); err != nil {
		return nil, err
	}
	if err := s.validateSeatingType(restaurant, input.SeatingType); err != nil {
		return nil, err
	}

	key := SlotKey{RestaurantID: input.RestaurantID, SlotStart: input.SlotStart, SeatingType: input.SeatingType}
	record, err := s.repo.EnsureRecordTx(tx, restaurant, key)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "ensure availability record")
	}

	ok, err := s.repo.ReserveSeatsTx(tx, key, input.PartySize)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "reserve seats")
	}
	if !ok {
		return nil, errors.New(errors.CodeCapacityExceeded, "not enough seats left").
			WithDetails(map[string]any{
				"requested":     input.PartySize,
				"capacityTotal": record.CapacityTotal,
			})
	}

	claim := &models.CapacityClaim{
		RestaurantID: key.RestaurantID,
		SlotStart:    key.SlotStart,
		SeatingType:  key.SeatingType,
		PartySize:    input.PartySize,
	}
	if err := s.repo.CreateClaimTx(tx, claim); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "create capacity claim")
	}
	return claim, nil
}

func (s *service) Release(ctx context.Context, claimID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.ReleaseTx(tx, claimID)
	})
}

func (s *service) ReleaseTx(tx *gorm.DB, claimID uuid.UUID) error {
	claim, err := s.repo.FindClaimTx(tx, claimID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New(errors.CodeUnknownClaim, "capacity claim not found or already released")
		}
		return errors.Wrap(errors.CodeInternal, err, "load capacity claim")
	}

	deleted, err := s.repo.DeleteClaimTx(tx, claimID)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "delete capacity claim")
	}
	if !deleted {
		return errors.New(errors.CodeUnknownClaim, "capacity claim not found or already released")
	}

	key := SlotKey{RestaurantID: claim.RestaurantID, SlotStart: claim.SlotStart, SeatingType: claim.SeatingType}
	ok, err := s.repo.ReleaseSeatsTx(tx, key, claim.PartySize)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "release seats")
	}
	if !ok {
		return errors.New(errors.CodeInternal, "availability record out of sync with claim")
	}
	return nil
}

func (s *service) Amend(ctx context.Context, claimID uuid.UUID, input ReserveInput) (*models.CapacityClaim, error) {
	var claim *models.CapacityClaim
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.loadRestaurant(tx, input.RestaurantID)
		if err != nil {
			return err
		}
		claim, err = s.AmendTx(tx, restaurant, claimID, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claim, nil
}

// AmendTx swaps one claim for another in a single transaction. When the
// new slot lacks capacity the whole swap rolls back and the original
// claim stays live.
func (s *service) AmendTx(tx *gorm.DB, restaurant *models.Restaurant, claimID uuid.UUID, input ReserveInput) (*models.CapacityClaim, error) {
	if err := s.ReleaseTx(tx, claimID); err != nil {
		return nil, err
	}
	return s.ReserveTx(tx, restaurant, input)
}

func (s *service) loadRestaurant(tx *gorm.DB, id uuid.UUID) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.FindByIDTx(tx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeUnknownRestaurant, "restaurant not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "lookup restaurant")
	}
	return restaurant, nil
}

func (s *service) validateInput(input ReserveInput) error {
	if input.RestaurantID == uuid.Nil {
		return errors.New(errors.CodeValidation, "restaurant id is required")
	}
	if input.PartySize < 1 {
		return errors.New(errors.CodeValidation, "party size must be at least 1")
	}
	return nil
}

func (s *service) validateSeatingType(restaurant *models.Restaurant, seatingType string) error {
	if seatingType == "" {
		return nil
	}
	if !restaurant.SeatingTypes.Contains(seatingType) {
		return errors.New(errors.CodeValidation, "seating type not offered by restaurant").
			WithDetails(map[string]any{"seatingType": seatingType})
	}
	return nil
}
