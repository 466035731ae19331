package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mesafina/mesafina-backend/pkg/errors"
)

// Preferences is the free-form profile a conversational client keeps per
// customer, things like dietary notes or favourite seating. The engine
// stores it opaquely and never interprets the keys.
type Preferences map[string]string

type store interface {
	StorePreferences(ctx context.Context, customerRef, blob string, ttl time.Duration) error
	GetPreferences(ctx context.Context, customerRef string) (string, error)
	DeletePreferences(ctx context.Context, customerRef string) error
}

type Service interface {
	Get(ctx context.Context, customerRef string) (Preferences, error)
	Put(ctx context.Context, customerRef string, prefs Preferences) error
	Delete(ctx context.Context, customerRef string) error
}

type service struct {
	store store
	ttl   time.Duration
}

func NewService(st store, ttl time.Duration) (Service, error) {
	if st == nil {
		return nil, fmt.Errorf("preferences: store is required")
	}
	return &service{store: st, ttl: ttl}, nil
}

func (s *service) Get(ctx context.Context, customerRef string) (Preferences, error) {
	if err := validateRef(customerRef); err != nil {
		return nil, err
	}
	blob, err := s.store.GetPreferences(ctx, customerRef)
	if err != nil {
		if err == goredis.Nil {
			return Preferences{}, nil
		}
		return nil, errors.Wrap(errors.CodeDependency, err, "read preferences")
	}
	var prefs Preferences
	if err := json.Unmarshal([]byte(blob), &prefs); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "decode preferences")
	}
	return prefs, nil
}

// Put merges a delta into the stored map. Keys absent from the delta
// keep their prior value; repeated keys take the new one.
func (s *service) Put(ctx context.Context, customerRef string, delta Preferences) error {
	if err := validateRef(customerRef); err != nil {
		return err
	}
	if len(delta) == 0 {
		return errors.New(errors.CodeValidation, "preferences payload is empty")
	}

	current, err := s.Get(ctx, customerRef)
	if err != nil {
		return err
	}
	for key, value := range delta {
		current[key] = value
	}

	blob, err := json.Marshal(current)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "encode preferences")
	}
	if err := s.store.StorePreferences(ctx, customerRef, string(blob), s.ttl); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "write preferences")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, customerRef string) error {
	if err := validateRef(customerRef); err != nil {
		return err
	}
	if err := s.store.DeletePreferences(ctx, customerRef); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "delete preferences")
	}
	return nil
}

func validateRef(customerRef string) error {
	if strings.TrimSpace(customerRef) == "" {
		return errors.New(errors.CodeValidation, "customer reference is required")
	}
	return nil
}
