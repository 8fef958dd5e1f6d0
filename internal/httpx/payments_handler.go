package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-kiosk-payments.git/internal/payments"
)

type PaymentsHandler struct {
	Payments *payments.Service
	Log      *zap.Logger
}

type createTransactionReq struct {
	Total json.Number `json:"total"`
}

func (h *PaymentsHandler) Register(r *chi.Mux) {
	r.Post("/create-transaction", h.createTransaction)
	r.Get("/check-transaction", h.checkTransaction)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch payments.KindOf(err) {
	case payments.KindCaller:
		code = http.StatusBadRequest
	case payments.KindUpstream:
		code = http.StatusBadGateway
	case payments.KindDataMissing:
		// upstream contract violation, bukan salah caller dan bukan gateway down
		code = http.StatusInternalServerError
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (h *PaymentsHandler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	// total harus numeric; non-numeric / kosong ditolak sebelum nyentuh gateway
	total, err := req.Total.Float64()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid total amount"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := h.Payments.CreateOrder(ctx, int64(total))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *PaymentsHandler) checkTransaction(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	raw, err := h.Payments.CheckOrder(ctx, orderID)
	if err != nil {
		writeErr(w, err)
		return
	}

	// status dari gateway diterusin apa adanya
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
