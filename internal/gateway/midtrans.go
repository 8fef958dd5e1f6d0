package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// Midtrans charges through the Midtrans Core API (QRIS) and checks settlement
// through the transaction-status endpoint. One instance is shared by all
// callers; the underlying client is stateless.
type Midtrans struct {
	core coreapi.Client
}

func NewMidtrans(serverKey, clientKey string, production bool) *Midtrans {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	m := &Midtrans{}
	m.core.New(serverKey, env)
	m.core.ClientKey = clientKey
	return m
}

func (m *Midtrans) CreateTransaction(ctx context.Context, orderID string, amount int64, buyer Buyer) (*ChargeResponse, error) {
	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeQris,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetails: &midtrans.CustomerDetails{
			FName: buyer.FirstName,
			Email: buyer.Email,
			Phone: buyer.Phone,
		},
	}

	resp, mErr := m.core.ChargeTransaction(req)
	if mErr != nil {
		return nil, fmt.Errorf("midtrans charge: %w", mErr)
	}

	out := &ChargeResponse{
		OrderID:     resp.OrderID,
		RedirectURL: resp.RedirectURL,
	}
	for _, a := range resp.Actions {
		out.Actions = append(out.Actions, Action{Name: a.Name, Method: a.Method, URL: a.URL})
	}
	return out, nil
}

func (m *Midtrans) TransactionStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	resp, mErr := m.core.CheckTransaction(orderID)
	if mErr != nil {
		return nil, fmt.Errorf("midtrans status: %w", mErr)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode status response: %w", err)
	}
	return raw, nil
}
