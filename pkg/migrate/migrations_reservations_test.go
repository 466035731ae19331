package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mesafina/mesafina-backend/pkg/migrate"
)

func TestReservationsMigrationContainsIndexes(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_reservations.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no reservations migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS reservations",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_booking_code",
		"CREATE INDEX IF NOT EXISTS idx_reservations_customer_ref",
		"CREATE INDEX IF NOT EXISTS idx_reservations_restaurant_slot",
		"CHECK (party_size > 0)",
		"DROP TABLE IF EXISTS reservations",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestAllMigrationsValidate(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}
