package enums

import "testing"

func TestReservationStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{ReservationStatusConfirmed, ReservationStatusModified, true},
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusModified, ReservationStatusModified, true},
		{ReservationStatusModified, ReservationStatusCancelled, true},
		{ReservationStatusCancelled, ReservationStatusModified, false},
		{ReservationStatusCancelled, ReservationStatusCancelled, false},
		{ReservationStatusConfirmed, ReservationStatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestParseReservationStatus(t *testing.T) {
	if _, err := ParseReservationStatus("confirmed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseReservationStatus("pending"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestReservationStatusIsActive(t *testing.T) {
	if !ReservationStatusConfirmed.IsActive() || !ReservationStatusModified.IsActive() {
		t.Fatal("confirmed and modified should hold seats")
	}
	if ReservationStatusCancelled.IsActive() {
		t.Fatal("cancelled should not hold seats")
	}
}
