package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionURL(t *testing.T) {
	resp := &ChargeResponse{
		Actions: []Action{
			{Name: "generate-qr-code", URL: "https://api.example/qr/raw"},
			{Name: "qr-code", URL: "https://pay.example/qr/abc"},
		},
	}

	assert.Equal(t, "https://pay.example/qr/abc", resp.ActionURL("qr-code"))
	assert.Equal(t, "", resp.ActionURL("deeplink-redirect"))
	assert.Equal(t, "", (&ChargeResponse{}).ActionURL("qr-code"))
}
