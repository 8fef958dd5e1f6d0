package payments

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-kiosk-payments.git/internal/gateway"
	kafkax "github.com/ariefcatur/go-kiosk-payments.git/internal/kafka"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/metrics"
)

// Name of the gateway action carrying the scannable-code URL. Looked up
// first; the top-level redirect URL is the fallback.
const qrCodeAction = "qr-code"

type CreateResult struct {
	QRURL   string `json:"qrUrl"`
	OrderID string `json:"orderId"`
}

// Service holds the two gateway-facing adapters. Stateless: concurrent calls
// never interact, and two simultaneous creations mint two distinct orders.
type Service struct {
	Gateway  gateway.Gateway
	Events   kafkax.Publisher // optional; nil skips event publishing
	Log      *zap.Logger
	Service  string
	OrderIDs *OrderIDGenerator
}

func NewService(gw gateway.Gateway, events kafkax.Publisher, log *zap.Logger, service string) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		Gateway:  gw,
		Events:   events,
		Log:      log,
		Service:  service,
		OrderIDs: NewOrderIDGenerator(nil),
	}
}

// CreateOrder mints an order id, charges the gateway and extracts the
// scannable-code URL. Amount is in currency minor units. One outbound call,
// no retries: the charge is not idempotent-safe to repeat blindly.
func (s *Service) CreateOrder(ctx context.Context, amount int64) (CreateResult, error) {
	if amount <= 0 {
		metrics.OrdersCreated.WithLabelValues(metrics.OutcomeCallerError).Inc()
		return CreateResult{}, callerErr("invalid total amount")
	}

	orderID := s.OrderIDs.Next()
	s.Log.Info("creating transaction", zap.String("order_id", orderID), zap.Int64("gross_amount", amount))

	resp, err := s.Gateway.CreateTransaction(ctx, orderID, amount, gateway.DefaultBuyer)
	if err != nil {
		metrics.OrdersCreated.WithLabelValues(metrics.OutcomeUpstream).Inc()
		s.Log.Error("gateway charge failed", zap.String("order_id", orderID), zap.Error(err))
		return CreateResult{}, upstreamErr("payment gateway error", err)
	}

	// Ambil URL dari actions dulu, redirect_url cuma fallback.
	qrURL := resp.ActionURL(qrCodeAction)
	if qrURL == "" {
		qrURL = resp.RedirectURL
	}
	if qrURL == "" {
		metrics.OrdersCreated.WithLabelValues(metrics.OutcomeDataMissing).Inc()
		s.Log.Error("gateway response carries no QR or redirect URL", zap.String("order_id", orderID))
		return CreateResult{}, dataMissingErr("failed to get QRIS URL from gateway response")
	}

	metrics.OrdersCreated.WithLabelValues(metrics.OutcomeOK).Inc()
	s.publishOrderCreated(orderID, amount, qrURL)

	return CreateResult{QRURL: qrURL, OrderID: orderID}, nil
}

// CheckOrder returns the gateway's settlement view for the order, verbatim.
// No caching: every call is a fresh lookup, polling cadence is the caller's
// problem.
func (s *Service) CheckOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	if strings.TrimSpace(orderID) == "" {
		metrics.StatusChecks.WithLabelValues(metrics.OutcomeCallerError).Inc()
		return nil, callerErr("missing order_id")
	}

	raw, err := s.Gateway.TransactionStatus(ctx, orderID)
	if err != nil {
		metrics.StatusChecks.WithLabelValues(metrics.OutcomeUpstream).Inc()
		s.Log.Error("gateway status check failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, upstreamErr("payment gateway error", err)
	}

	metrics.StatusChecks.WithLabelValues(metrics.OutcomeOK).Inc()
	return raw, nil
}

func (s *Service) publishOrderCreated(orderID string, amount int64, qrURL string) {
	if s.Events == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Service,
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(OrderCreatedPayload{
			OrderID:     orderID,
			GrossAmount: amount,
			QRURL:       qrURL,
		}),
	}
	s.Events.Publish(PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
