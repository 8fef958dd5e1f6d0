package redisx

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/ariefcatur/go-kiosk-payments.git/internal/presence"
)

// PresenceStore implements presence.Store on top of Redis.
type PresenceStore struct {
	R *redis.Client
}

func (s *PresenceStore) LastSeen(ctx context.Context, deviceID string) (int64, bool, error) {
	key := fmt.Sprintf(KeyDeviceLastSeen, deviceID)
	v, err := s.R.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	ts, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse %s: %w", key, err)
	}
	return ts, true, nil
}

func (s *PresenceStore) SetState(ctx context.Context, deviceID string, st presence.State) error {
	return s.R.Set(ctx, fmt.Sprintf(KeyDevicePower, deviceID), string(st), 0).Err()
}
