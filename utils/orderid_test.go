package utils

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateOrderID(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^ORD-20240315-[A-Z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := GenerateOrderID(now)
		if !pattern.MatchString(id) {
			t.Fatalf("order id %q does not match expected format", id)
		}
		if seen[id] {
			t.Fatalf("duplicate order id generated: %q", id)
		}
		seen[id] = true
	}
}

func TestGenerateUPITransactionID(t *testing.T) {
	pattern := regexp.MustCompile(`^UPI-[A-Z0-9]{12}$`)

	for i := 0; i < 20; i++ {
		id := GenerateUPITransactionID()
		if !pattern.MatchString(id) {
			t.Fatalf("UPI transaction id %q does not match expected format", id)
		}
	}
}
