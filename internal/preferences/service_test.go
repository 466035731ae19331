package preferences

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
)

type fakeStore struct {
	blobs map[string]string
}

func (f *fakeStore) StorePreferences(_ context.Context, customerRef, blob string, _ time.Duration) error {
	f.blobs[customerRef] = blob
	return nil
}

func (f *fakeStore) GetPreferences(_ context.Context, customerRef string) (string, error) {
	blob, ok := f.blobs[customerRef]
	if !ok {
		return "", goredis.Nil
	}
	return blob, nil
}

func (f *fakeStore) DeletePreferences(_ context.Context, customerRef string) error {
	delete(f.blobs, customerRef)
	return nil
}

func TestPreferenceRoundTrip(t *testing.T) {
	t.Parallel()

	st := &fakeStore{blobs: map[string]string{}}
	svc, err := NewService(st, time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if err := svc.Put(ctx, "guest-1", Preferences{"diet": "vegetarian", "seating": "rooftop"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := svc.Get(ctx, "guest-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["diet"] != "vegetarian" || got["seating"] != "rooftop" {
		t.Fatalf("unexpected preferences: %+v", got)
	}

	if err := svc.Delete(ctx, "guest-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = svc.Get(ctx, "guest-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty preferences, got %+v", got)
	}
}

func TestPreferencePutMergesDelta(t *testing.T) {
	t.Parallel()

	st := &fakeStore{blobs: map[string]string{}}
	svc, err := NewService(st, time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if err := svc.Put(ctx, "guest-1", Preferences{"diet": "vegetarian", "budget": "mid"}); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := svc.Put(ctx, "guest-1", Preferences{"seating": "rooftop", "budget": "high"}); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := svc.Get(ctx, "guest-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got["diet"] != "vegetarian" {
		t.Fatalf("untouched key lost after merge: %+v", got)
	}
	if got["seating"] != "rooftop" {
		t.Fatalf("new key missing after merge: %+v", got)
	}
	if got["budget"] != "high" {
		t.Fatalf("repeated key kept stale value: %+v", got)
	}
}

func TestPreferenceValidation(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&fakeStore{blobs: map[string]string{}}, time.Hour)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()

	if err := svc.Put(ctx, " ", Preferences{"a": "b"}); err == nil {
		t.Fatal("expected validation error for blank ref")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Put(ctx, "guest-1", nil); err == nil {
		t.Fatal("expected validation error for empty payload")
	}
}
