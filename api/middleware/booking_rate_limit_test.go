package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type fakeLimiterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (f *fakeLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[key]++
	return f.counts[key], nil
}

func TestBookingRateLimitBlocksByIP(t *testing.T) {
	t.Parallel()

	store := &fakeLimiterStore{}
	policy := NewBookingRateLimitPolicy("create", time.Minute, 2, 0)
	handler := BookingRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil)
		r.RemoteAddr = "10.0.0.9:4567"
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d blocked early: %d", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil)
	r.RemoteAddr = "10.0.0.9:4567"
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}

func TestBookingRateLimitBlocksByCustomer(t *testing.T) {
	t.Parallel()

	store := &fakeLimiterStore{}
	policy := NewBookingRateLimitPolicy("create", time.Minute, 0, 1)
	handler := BookingRateLimit(policy, store, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote string) int {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil)
		r.RemoteAddr = remote
		r = r.WithContext(WithCustomerRef(r.Context(), "guest-1"))
		handler.ServeHTTP(w, r)
		return w.Code
	}

	if code := send("10.0.0.1:1111"); code != http.StatusOK {
		t.Fatalf("first request blocked: %d", code)
	}
	// A different IP does not help; the customer counter carries over.
	if code := send("10.0.0.2:2222"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for same customer, got %d", code)
	}
}

func TestBookingRateLimitDisabledPolicyPassesThrough(t *testing.T) {
	t.Parallel()

	policy := NewBookingRateLimitPolicy("off", 0, 0, 0)
	handler := BookingRateLimit(policy, &fakeLimiterStore{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reservations", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got %d", w.Code)
	}
}
