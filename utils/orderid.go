package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func randomSuffix(length int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:length])
}

// GenerateOrderID returns a human-readable order id of the form
// ORD-YYYYMMDD-XXXXXXXX.
func GenerateOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), randomSuffix(8))
}

// GenerateUPITransactionID returns a simulated UPI transaction reference,
// UPI- followed by 12 upper-alphanumeric characters.
func GenerateUPITransactionID() string {
	return "UPI-" + randomSuffix(12)
}
