package reservations

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// newBookingCode returns a customer-facing code in the form "R" followed
// by eight uppercase hex characters. Collisions are rare at this length
// but possible, so inserts retry on unique violations.
func newBookingCode() string {
	id := uuid.New()
	return "R" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
