package gateway

import (
	"context"
	"encoding/json"
)

// Action is one entry of the gateway's "actions" list; QRIS charges carry the
// scannable-code URL here.
type Action struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

// ChargeResponse is the subset of the gateway's create-transaction response
// this service depends on. The scannable URL lives either in Actions or, for
// hosted checkout flows, in RedirectURL.
type ChargeResponse struct {
	OrderID     string   `json:"order_id"`
	Actions     []Action `json:"actions,omitempty"`
	RedirectURL string   `json:"redirect_url,omitempty"`
}

// ActionURL returns the URL of the action with the given name, or "" when the
// list has no such entry.
func (r *ChargeResponse) ActionURL(name string) string {
	for _, a := range r.Actions {
		if a.Name == name {
			return a.URL
		}
	}
	return ""
}

// Buyer is the customer detail block sent with a charge. The kiosk has no
// real buyer identity, so creation uses DefaultBuyer.
type Buyer struct {
	FirstName string
	Email     string
	Phone     string
}

var DefaultBuyer = Buyer{
	FirstName: "Customer",
	Email:     "customer@example.com",
	Phone:     "081234567890",
}

// Gateway is the payment-gateway port. Implementations are injected into the
// payments service; tests substitute stubs.
type Gateway interface {
	// CreateTransaction charges the given amount (currency minor units) under
	// our generated order id and returns the gateway's response shape.
	CreateTransaction(ctx context.Context, orderID string, amount int64, buyer Buyer) (*ChargeResponse, error)

	// TransactionStatus returns the gateway's current settlement view for the
	// order, verbatim. Callers pass it through without reinterpreting.
	TransactionStatus(ctx context.Context, orderID string) (json.RawMessage, error)
}
