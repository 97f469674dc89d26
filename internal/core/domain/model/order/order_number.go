package order

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderNumber produces the human-facing order number:
// "ORD" followed by the unix-millisecond timestamp and four random digits.
// Uniqueness is enforced by the store; the random suffix keeps numbers
// generated within the same millisecond apart.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%d%04d", now.UnixMilli(), rand.Intn(10000))
}
