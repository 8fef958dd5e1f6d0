package payments

import (
	"fmt"
	"time"
)

// OrderIDGenerator mints gateway-side order references: a fixed prefix plus
// the current unix-millisecond tick. IDs are unique for calls at least one
// clock tick apart; two calls inside the same millisecond can collide, which
// is accepted here — a caller needing hard uniqueness under concurrent
// creation should wrap Next with a monotonic or random suffix.
type OrderIDGenerator struct {
	now func() time.Time
}

func NewOrderIDGenerator(now func() time.Time) *OrderIDGenerator {
	if now == nil {
		now = time.Now
	}
	return &OrderIDGenerator{now: now}
}

func (g *OrderIDGenerator) Next() string {
	return fmt.Sprintf("order-%d", g.now().UnixMilli())
}
