package presence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkax "github.com/ariefcatur/go-kiosk-payments.git/internal/kafka"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/metrics"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/payments"
)

// Monitor samples device heartbeats on a fixed cadence and writes the derived
// online/offline state back to the store. One watcher per device; watchers
// share nothing and a slow tick for one device never delays another's.
type Monitor struct {
	Store       Store
	Events      kafkax.Publisher // optional; nil skips transition events
	Log         *zap.Logger
	Service     string
	Tick        time.Duration
	Threshold   time.Duration
	CallTimeout time.Duration

	now func() time.Time
}

func NewMonitor(store Store, events kafkax.Publisher, log *zap.Logger, service string, tick, threshold, callTimeout time.Duration) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	if tick <= 0 {
		tick = 10 * time.Second
	}
	if threshold <= 0 {
		threshold = 7 * time.Second
	}
	if callTimeout <= 0 {
		callTimeout = 3 * time.Second
	}
	return &Monitor{
		Store:       store,
		Events:      events,
		Log:         log,
		Service:     service,
		Tick:        tick,
		Threshold:   threshold,
		CallTimeout: callTimeout,
		now:         time.Now,
	}
}

// Watcher is the handle for one device's sampling loop.
type Watcher struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// Stop halts ticking and waits for the loop to exit. Safe to call twice.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	<-w.done
}

// Watch starts the repeating sampler for one device. A failed tick is logged
// and skipped; the next tick retries naturally. The loop exits on Stop or
// when ctx is cancelled.
func (m *Monitor) Watch(ctx context.Context, deviceID string) *Watcher {
	w := &Watcher{stop: make(chan struct{}), done: make(chan struct{})}
	log := m.Log.With(zap.String("device_id", deviceID))

	go func() {
		defer close(w.done)
		t := time.NewTicker(m.Tick)
		defer t.Stop()

		var prev State // kosong sampai tick pertama yang dapat last_seen
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case <-t.C:
				st, lastSeen, sampled, err := m.sample(ctx, deviceID)
				if err != nil {
					metrics.PresenceTicks.WithLabelValues(deviceID, metrics.TickError).Inc()
					log.Warn("presence tick failed", zap.Error(err))
					continue
				}
				if !sampled {
					// device belum pernah report sama sekali
					metrics.PresenceTicks.WithLabelValues(deviceID, metrics.TickSkipped).Inc()
					continue
				}
				metrics.PresenceTicks.WithLabelValues(deviceID, string(st)).Inc()
				if st != prev {
					age := m.now().Unix() - lastSeen
					if st == StateOffline {
						log.Info("device offline", zap.Int64("last_seen_age_s", age))
					} else {
						log.Info("device online")
					}
					if prev != "" {
						m.publishTransition(deviceID, st, lastSeen, age)
					}
				}
				prev = st
			}
		}
	}()
	return w
}

// sample runs one tick: read last_seen, derive state, write it back. The
// write is unconditional whenever last_seen exists, state change or not.
// Idempotent: identical inputs produce the identical write.
func (m *Monitor) sample(ctx context.Context, deviceID string) (State, int64, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, m.CallTimeout)
	defer cancel()

	lastSeen, ok, err := m.Store.LastSeen(ctx, deviceID)
	if err != nil {
		return "", 0, false, err
	}
	if !ok {
		return "", 0, false, nil
	}

	st := Classify(lastSeen, m.now(), m.Threshold)
	if err := m.Store.SetState(ctx, deviceID, st); err != nil {
		return "", 0, false, err
	}
	return st, lastSeen, true, nil
}

func (m *Monitor) publishTransition(deviceID string, st State, lastSeen, age int64) {
	if m.Events == nil {
		return
	}
	eventType := payments.EventDeviceOnline
	if st == StateOffline {
		eventType = payments.EventDeviceOffline
	}
	ev := payments.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    m.now().UTC(),
		Producer:      m.Service,
		CorrelationID: deviceID,
		Payload: kafkax.MustMarshal(payments.DevicePresencePayload{
			DeviceID:   deviceID,
			State:      string(st),
			LastSeen:   lastSeen,
			AgeSeconds: age,
		}),
	}
	m.Events.Publish(payments.PartitionKey(deviceID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
