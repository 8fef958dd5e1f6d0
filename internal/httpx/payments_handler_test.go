package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-kiosk-payments.git/internal/gateway"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/payments"
)

type stubGateway struct {
	charge    *gateway.ChargeResponse
	chargeErr error
	status    json.RawMessage
	statusErr error

	chargeCalls int
	statusCalls int
}

func (s *stubGateway) CreateTransaction(_ context.Context, _ string, _ int64, _ gateway.Buyer) (*gateway.ChargeResponse, error) {
	s.chargeCalls++
	return s.charge, s.chargeErr
}

func (s *stubGateway) TransactionStatus(_ context.Context, _ string) (json.RawMessage, error) {
	s.statusCalls++
	return s.status, s.statusErr
}

func newTestServer(gw gateway.Gateway) *httptest.Server {
	router := NewRouter()
	h := &PaymentsHandler{Payments: payments.NewService(gw, nil, nil, "test")}
	h.Register(router)
	return httptest.NewServer(router)
}

func TestCreateTransactionEndToEnd(t *testing.T) {
	gw := &stubGateway{charge: &gateway.ChargeResponse{
		Actions: []gateway.Action{{Name: "qr-code", URL: "https://pay.example/qr/abc"}},
	}}
	srv := newTestServer(gw)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/create-transaction", "application/json",
		strings.NewReader(`{"total": 50000}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		QRURL   string `json:"qrUrl"`
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "https://pay.example/qr/abc", body.QRURL)
	assert.NotEmpty(t, body.OrderID)
}

func TestCreateTransactionRejectsBadAmounts(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"non-numeric", `{"total": "abc"}`},
		{"zero", `{"total": 0}`},
		{"negative", `{"total": -5}`},
		{"missing", `{}`},
		{"invalid json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &stubGateway{}
			srv := newTestServer(gw)
			defer srv.Close()

			resp, err := http.Post(srv.URL+"/create-transaction", "application/json",
				strings.NewReader(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, gw.chargeCalls, "gateway must not be called")
		})
	}
}

func TestCreateTransactionGatewayDown(t *testing.T) {
	gw := &stubGateway{chargeErr: errors.New("midtrans charge: connection refused")}
	srv := newTestServer(gw)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/create-transaction", "application/json",
		strings.NewReader(`{"total": 50000}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestCreateTransactionMissingArtifactIs500(t *testing.T) {
	// charge sukses tapi nggak ada QR/redirect URL sama sekali
	gw := &stubGateway{charge: &gateway.ChargeResponse{}}
	srv := newTestServer(gw)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/create-transaction", "application/json",
		strings.NewReader(`{"total": 50000}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestCheckTransactionPassesStatusThrough(t *testing.T) {
	gw := &stubGateway{status: json.RawMessage(`{"transaction_status":"settlement"}`)}
	srv := newTestServer(gw)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/check-transaction?order_id=order-123")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]any{"transaction_status": "settlement"}, body)
}

func TestCheckTransactionRequiresOrderID(t *testing.T) {
	gw := &stubGateway{}
	srv := newTestServer(gw)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/check-transaction")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, gw.statusCalls)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&stubGateway{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
