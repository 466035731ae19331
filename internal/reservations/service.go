package reservations

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesafina/mesafina-backend/internal/ledger"
	"github.com/mesafina/mesafina-backend/pkg/config"
	"github.com/mesafina/mesafina-backend/pkg/db"
	"github.com/mesafina/mesafina-backend/pkg/db/models"
	"github.com/mesafina/mesafina-backend/pkg/enums"
	"github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
	"github.com/mesafina/mesafina-backend/pkg/metrics"
	"github.com/mesafina/mesafina-backend/pkg/outbox"
	"github.com/mesafina/mesafina-backend/pkg/outbox/payloads"
)

const (
	opCreate = "create_reservation"
	opModify = "modify_reservation"
	opCancel = "cancel_reservation"
)

type restaurantSource interface {
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*models.Restaurant, error)
}

type capacityLedger interface {
	ReserveTx(tx *gorm.DB, restaurant *models.Restaurant, input ledger.ReserveInput) (*models.CapacityClaim, error)
	ReleaseTx(tx *gorm.DB, claimID uuid.UUID) error
	AmendTx(tx *gorm.DB, restaurant *models.Restaurant, claimID uuid.UUID, input ledger.ReserveInput) (*models.CapacityClaim, error)
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
	EmitIfNotExists(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type CreateInput struct {
	RestaurantID uuid.UUID
	SlotStart    time.Time
	SeatingType  string
	PartySize    int
	CustomerRef  string
	Channel      string
}

// ModifyInput carries the fields an amend may change. Nil means keep the
// current value.
type ModifyInput struct {
	SlotStart   *time.Time
	SeatingType *string
	PartySize   *int
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (*ReservationDTO, error)
	Modify(ctx context.Context, bookingCode string, input ModifyInput) (*ReservationDTO, error)
	Cancel(ctx context.Context, bookingCode string) (*ReservationDTO, error)
	GetByCode(ctx context.Context, bookingCode string) (*ReservationDTO, error)
	ListByCustomer(ctx context.Context, customerRef string) ([]ReservationDTO, error)
}

type ServiceParams struct {
	DB          *gorm.DB
	Repository  *Repository
	Restaurants restaurantSource
	Ledger      capacityLedger
	Outbox      eventEmitter
	Metrics     *metrics.BookingMetrics
	Booking     config.BookingConfig
	Logger      *logger.Logger
}

type service struct {
	db          *gorm.DB
	repo        *Repository
	restaurants restaurantSource
	ledger      capacityLedger
	outbox      eventEmitter
	metrics     *metrics.BookingMetrics
	booking     config.BookingConfig
	logg        *logger.Logger
}

func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("reservations: db handle is required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("reservations: repository is required")
	}
	if params.Restaurants == nil {
		return nil, fmt.Errorf("reservations: restaurant source is required")
	}
	if params.Ledger == nil {
		return nil, fmt.Errorf("reservations: capacity ledger is required")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("reservations: outbox emitter is required")
	}
	return &service{
		db:          params.DB,
		repo:        params.Repository,
		restaurants: params.Restaurants,
		ledger:      params.Ledger,
		outbox:      params.Outbox,
		metrics:     params.Metrics,
		booking:     params.Booking,
		logg:        params.Logger,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ReservationDTO, error) {
	start := time.Now()
	dto, err := s.create(ctx, input)
	s.record(opCreate, start, "confirmed", err)
	return dto, err
}

func (s *service) create(ctx context.Context, input CreateInput) (*ReservationDTO, error) {
	if strings.TrimSpace(input.CustomerRef) == "" {
		return nil, errors.New(errors.CodeValidation, "customer reference is required")
	}
	if input.PartySize < 1 || input.PartySize > s.booking.MaxPartySize {
		return nil, errors.New(errors.CodeValidation, "party size out of range").
			WithDetails(map[string]any{"max": s.booking.MaxPartySize})
	}

	var row *models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.loadRestaurant(tx, input.RestaurantID)
		if err != nil {
			return err
		}
		slot := ledger.NormalizeSlot(input.SlotStart, s.booking.SlotGranularity())
		if !restaurant.WithinOpeningHours(slot) {
			return errors.New(errors.CodeValidation, "slot is outside opening hours").
				WithDetails(map[string]any{
					"opens":  restaurant.OpeningHour,
					"closes": restaurant.ClosingHour,
				})
		}

		claim, err := s.ledger.ReserveTx(tx, restaurant, ledger.ReserveInput{
			RestaurantID: input.RestaurantID,
			SlotStart:    slot,
			SeatingType:  input.SeatingType,
			PartySize:    input.PartySize,
		})
		if err != nil {
			return err
		}

		row = &models.Reservation{
			ID:           uuid.New(),
			RestaurantID: claim.RestaurantID,
			SlotStart:    claim.SlotStart,
			SeatingType:  claim.SeatingType,
			PartySize:    claim.PartySize,
			CustomerRef:  input.CustomerRef,
			ClaimID:      &claim.ID,
			Status:       enums.ReservationStatusConfirmed,
		}
		if err := s.insertWithFreshCode(tx, row); err != nil {
			return err
		}

		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventReservationConfirmed,
			AggregateType: enums.AggregateReservation,
			AggregateID:   row.ID,
			Actor:         actorFor(input.CustomerRef, input.Channel),
			Version:       1,
			Data: payloads.ReservationConfirmedEvent{
				ReservationID: row.ID,
				BookingCode:   row.BookingCode,
				RestaurantID:  row.RestaurantID,
				SlotStart:     row.SlotStart,
				SeatingType:   row.SeatingType,
				PartySize:     row.PartySize,
				CustomerRef:   row.CustomerRef,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithBookingCode(s.logg.WithRestaurantID(ctx, row.RestaurantID.String()), row.BookingCode),
			"reservation confirmed")
	}
	dto := FromModel(row)
	return &dto, nil
}

// insertWithFreshCode retries the insert with a new booking code while
// the unique index reports a collision.
func (s *service) insertWithFreshCode(tx *gorm.DB, row *models.Reservation) error {
	attempts := s.booking.CodeAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		row.BookingCode = newBookingCode()
		err := s.repo.CreateTx(tx, row)
		if err == nil {
			return nil
		}
		if !db.IsUniqueViolation(err, "booking_code") {
			return errors.Wrap(errors.CodeInternal, err, "insert reservation")
		}
	}
	return errors.New(errors.CodeConflict, "could not allocate a unique booking code")
}

func (s *service) Modify(ctx context.Context, bookingCode string, input ModifyInput) (*ReservationDTO, error) {
	start := time.Now()
	dto, err := s.modify(ctx, bookingCode, input)
	s.record(opModify, start, "modified", err)
	return dto, err
}

func (s *service) modify(ctx context.Context, bookingCode string, input ModifyInput) (*ReservationDTO, error) {
	if input.SlotStart == nil && input.SeatingType == nil && input.PartySize == nil {
		return nil, errors.New(errors.CodeValidation, "nothing to modify")
	}
	if input.PartySize != nil && (*input.PartySize < 1 || *input.PartySize > s.booking.MaxPartySize) {
		return nil, errors.New(errors.CodeValidation, "party size out of range").
			WithDetails(map[string]any{"max": s.booking.MaxPartySize})
	}

	var row *models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = s.loadForUpdate(tx, bookingCode)
		if err != nil {
			return err
		}
		err = s.modifyTx(ctx, tx, row, input)
		if typed := errors.As(err); typed != nil && typed.Code() == errors.CodeUnknownClaim {
			// The claim went away between our read and the release: a
			// concurrent amend committed first and swapped it. Re-read
			// the row and try once against its current claim.
			row, err = s.loadForUpdate(tx, bookingCode)
			if err != nil {
				return err
			}
			err = s.modifyTx(ctx, tx, row, input)
		}
		if typed := errors.As(err); typed != nil && typed.Code() == errors.CodeUnknownClaim {
			return errors.Wrap(errors.CodeInternal, err, "reservation claim missing")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	dto := FromModel(row)
	return &dto, nil
}

func (s *service) modifyTx(ctx context.Context, tx *gorm.DB, row *models.Reservation, input ModifyInput) error {
	if row.ClaimID == nil {
		return errors.New(errors.CodeInternal, "active reservation has no capacity claim")
	}

	restaurant, err := s.loadRestaurant(tx, row.RestaurantID)
	if err != nil {
		return err
	}

	target := ledger.ReserveInput{
		RestaurantID: row.RestaurantID,
		SlotStart:    row.SlotStart,
		SeatingType:  row.SeatingType,
		PartySize:    row.PartySize,
	}
	if input.SlotStart != nil {
		target.SlotStart = ledger.NormalizeSlot(*input.SlotStart, s.booking.SlotGranularity())
	}
	if input.SeatingType != nil {
		target.SeatingType = *input.SeatingType
	}
	if input.PartySize != nil {
		target.PartySize = *input.PartySize
	}
	if !restaurant.WithinOpeningHours(target.SlotStart) {
		return errors.New(errors.CodeValidation, "slot is outside opening hours").
			WithDetails(map[string]any{
				"opens":  restaurant.OpeningHour,
				"closes": restaurant.ClosingHour,
			})
	}

	prevSlot, prevSeating, prevParty := row.SlotStart, row.SeatingType, row.PartySize

	claim, err := s.ledger.AmendTx(tx, restaurant, *row.ClaimID, target)
	if err != nil {
		return err
	}

	if !row.Status.CanTransitionTo(enums.ReservationStatusModified) {
		return errors.New(errors.CodeAlreadyCancelled, "reservation is already cancelled")
	}
	row.SlotStart = claim.SlotStart
	row.SeatingType = claim.SeatingType
	row.PartySize = claim.PartySize
	row.ClaimID = &claim.ID
	row.Status = enums.ReservationStatusModified
	if err := s.repo.SaveTx(tx, row); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "update reservation")
	}

	return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
		EventType:     enums.EventReservationModified,
		AggregateType: enums.AggregateReservation,
		AggregateID:   row.ID,
		Actor:         actorFor(row.CustomerRef, ""),
		Version:       1,
		Data: payloads.ReservationModifiedEvent{
			ReservationID:   row.ID,
			BookingCode:     row.BookingCode,
			RestaurantID:    row.RestaurantID,
			SlotStart:       row.SlotStart,
			SeatingType:     row.SeatingType,
			PartySize:       row.PartySize,
			PrevSlotStart:   prevSlot,
			PrevSeatingType: prevSeating,
			PrevPartySize:   prevParty,
			CustomerRef:     row.CustomerRef,
		},
	})
}

func (s *service) Cancel(ctx context.Context, bookingCode string) (*ReservationDTO, error) {
	start := time.Now()
	dto, err := s.cancel(ctx, bookingCode)
	s.record(opCancel, start, "cancelled", err)
	return dto, err
}

func (s *service) cancel(ctx context.Context, bookingCode string) (*ReservationDTO, error) {
	var row *models.Reservation
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		row, err = s.loadForUpdate(tx, bookingCode)
		if err != nil {
			return err
		}

		if row.ClaimID != nil {
			if err := s.ledger.ReleaseTx(tx, *row.ClaimID); err != nil {
				typed := errors.As(err)
				if typed == nil || typed.Code() != errors.CodeUnknownClaim {
					return err
				}
				// The claim went away between our read and the release.
				// Re-read the row: a concurrent cancel shows up as an
				// AlreadyCancelled here, a concurrent modify leaves a
				// fresh claim to release instead.
				row, err = s.loadForUpdate(tx, bookingCode)
				if err != nil {
					return err
				}
				if row.ClaimID != nil {
					if err := s.ledger.ReleaseTx(tx, *row.ClaimID); err != nil {
						return errors.Wrap(errors.CodeInternal, err, "release capacity claim")
					}
				}
			}
		}

		row.Status = enums.ReservationStatusCancelled
		row.ClaimID = nil
		if err := s.repo.SaveTx(tx, row); err != nil {
			return errors.Wrap(errors.CodeInternal, err, "update reservation")
		}

		return s.outbox.EmitIfNotExists(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventReservationCancelled,
			AggregateType: enums.AggregateReservation,
			AggregateID:   row.ID,
			Actor:         actorFor(row.CustomerRef, ""),
			Version:       1,
			Data: payloads.ReservationCancelledEvent{
				ReservationID: row.ID,
				BookingCode:   row.BookingCode,
				RestaurantID:  row.RestaurantID,
				SlotStart:     row.SlotStart,
				SeatingType:   row.SeatingType,
				PartySize:     row.PartySize,
				CustomerRef:   row.CustomerRef,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithBookingCode(ctx, row.BookingCode), "reservation cancelled")
	}
	dto := FromModel(row)
	return &dto, nil
}

// GetByCode resolves any reservation, cancelled ones included.
func (s *service) GetByCode(ctx context.Context, bookingCode string) (*ReservationDTO, error) {
	row, err := s.repo.FindByCode(ctx, bookingCode)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "reservation not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "lookup reservation")
	}
	dto := FromModel(row)
	return &dto, nil
}

func (s *service) ListByCustomer(ctx context.Context, customerRef string) ([]ReservationDTO, error) {
	if strings.TrimSpace(customerRef) == "" {
		return nil, errors.New(errors.CodeValidation, "customer reference is required")
	}
	rows, err := s.repo.ListByCustomer(ctx, customerRef)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list reservations")
	}
	out := make([]ReservationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out, nil
}

// loadForUpdate fetches an active reservation by code for mutation.
func (s *service) loadForUpdate(tx *gorm.DB, bookingCode string) (*models.Reservation, error) {
	row, err := s.repo.FindByCodeTx(tx, bookingCode)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "reservation not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "lookup reservation")
	}
	if row.Status == enums.ReservationStatusCancelled {
		return nil, errors.New(errors.CodeAlreadyCancelled, "reservation is already cancelled")
	}
	return row, nil
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

func (s *service) record(operation string, start time.Time, success string, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveDuration(operation, time.Since(start))
	outcome := success
	if err != nil {
		outcome = "internal_error"
		if typed := errors.As(err); typed != nil {
			outcome = strings.ToLower(string(typed.Code()))
		}
	}
	s.metrics.IncOutcome(operation, outcome)
}

func actorFor(customerRef, channel string) *outbox.ActorRef {
	if channel == "" {
		channel = "api"
	}
	return &outbox.ActorRef{CustomerRef: customerRef, Channel: channel}
}
