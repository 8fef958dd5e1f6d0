package presence

import (
	"context"
	"time"
)

type State string

const (
	StateOnline  State = "online"
	StateOffline State = "offline"
)

// Classify derives a device's state from its last-seen heartbeat. Pure:
// calling it twice with the same inputs yields the same answer. A device is
// offline iff its heartbeat is strictly older than the threshold, so
// age == threshold still counts as online.
func Classify(lastSeen int64, now time.Time, threshold time.Duration) State {
	age := now.Unix() - lastSeen
	if age > int64(threshold/time.Second) {
		return StateOffline
	}
	return StateOnline
}

// Store is the realtime key-value port. LastSeen's second return is false
// when the device has never reported; the sampler then skips the tick
// entirely. Reads and writes are single-key, no transaction across the pair.
type Store interface {
	LastSeen(ctx context.Context, deviceID string) (int64, bool, error)
	SetState(ctx context.Context, deviceID string, st State) error
}
