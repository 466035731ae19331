package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAvailabilityMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_availability_records.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no availability migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE IF NOT EXISTS availability_records",
		"PRIMARY KEY (restaurant_id, slot_start, seating_type)",
		"FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE",
		"CHECK (seats_reserved >= 0)",
		"CHECK (seats_reserved <= capacity_total)",
		"DROP TABLE IF EXISTS availability_records",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
