package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReservationNumber returns a unique, human-readable reference like
// RES-20260830-4F9A2C1B.
func NewReservationNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("RES-%s-%s", time.Now().Format("20060102"), suffix)
}
