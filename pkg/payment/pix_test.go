package payment

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFallbackPixCodeFormat(t *testing.T) {
	amount := decimal.RequireFromString("14.9")
	code := FallbackPixCode("5f0e9a6c-1c2b-4f3d-8e7a-9b0c1d2e3f40", amount, MerchantConfig{})

	want := "00020126580014br.gov.bcb.pix01365f0e9a6c-1c2b-4f3d-8e7a-9b0c1d2e3f4052040000530398654014.905802BR5913Acai Prime6009SAO PAULO62070503***6304"
	if code != want {
		t.Errorf("unexpected payload\n got: %s\nwant: %s", code, want)
	}
}

func TestFallbackPixCodeIsDeterministic(t *testing.T) {
	amount := decimal.RequireFromString("29.90")

	a := FallbackPixCode("order-a", amount, MerchantConfig{})
	b := FallbackPixCode("order-a", amount, MerchantConfig{})
	if a != b {
		t.Error("same order id and amount must produce the same payload")
	}

	c := FallbackPixCode("order-b", amount, MerchantConfig{})
	if a == c {
		t.Error("different order ids must produce different payloads")
	}
	if !strings.Contains(a, "order-a") || !strings.Contains(c, "order-b") {
		t.Error("payloads must embed their order id")
	}
}

func TestSplitPayerName(t *testing.T) {
	tests := []struct {
		input     string
		firstName string
		lastName  string
	}{
		{"Maria da Silva", "Maria", "da Silva"},
		{"Maria", "Maria", ""},
		{"", "Cliente", ""},
		{"  João   Souza  ", "João", "Souza"},
	}

	for _, test := range tests {
		first, last := SplitPayerName(test.input)
		if first != test.firstName || last != test.lastName {
			t.Errorf("SplitPayerName(%q) = %q, %q; want %q, %q", test.input, first, last, test.firstName, test.lastName)
		}
	}
}

func TestRenderQRCodeBase64(t *testing.T) {
	img, err := RenderQRCodeBase64(FallbackPixCode("some-order", decimal.RequireFromString("9.90"), MerchantConfig{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(img)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Error("expected a PNG image")
	}
}

func TestResolvePixPaymentWithoutGateway(t *testing.T) {
	outcome := ResolvePixPayment(context.Background(), nil, "order-1", decimal.RequireFromString("12.50"), "Maria da Silva", "", MerchantConfig{})

	if !outcome.IsFallback() {
		t.Fatal("expected fallback outcome without a gateway")
	}
	if outcome.GatewayRef != "" {
		t.Error("fallback outcome must not carry a gateway reference")
	}
	if !strings.Contains(outcome.CopyPaste, "order-1") {
		t.Error("fallback payload must embed the order id")
	}
}

func TestResolvePixPaymentGatewaySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/payments" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 12345, "status": "pending", "point_of_interaction": {"transaction_data": {"qr_code": "gateway-pix-code"}}}`))
	}))
	defer srv.Close()

	gw := NewGatewayClient(GatewayConfig{RootURL: srv.URL, AccessToken: "token"})
	outcome := ResolvePixPayment(context.Background(), gw, "order-1", decimal.RequireFromString("12.50"), "Maria da Silva", "maria@example.com", MerchantConfig{})

	if outcome.IsFallback() {
		t.Fatalf("expected gateway outcome, got fallback: %s", outcome.FallbackReason)
	}
	if outcome.GatewayRef != "12345" {
		t.Errorf("unexpected gateway ref: %s", outcome.GatewayRef)
	}
	if outcome.CopyPaste != "gateway-pix-code" {
		t.Errorf("unexpected copy-paste code: %s", outcome.CopyPaste)
	}
}

func TestResolvePixPaymentGatewayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "internal"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := NewGatewayClient(GatewayConfig{RootURL: srv.URL, AccessToken: "token"})
	outcome := ResolvePixPayment(context.Background(), gw, "order-1", decimal.RequireFromString("12.50"), "Maria", "", MerchantConfig{})

	if !outcome.IsFallback() {
		t.Fatal("expected fallback outcome on gateway error")
	}
	if !strings.Contains(outcome.CopyPaste, "order-1") {
		t.Error("fallback payload must embed the order id")
	}
}

func TestResolvePixPaymentGatewayTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	gw := NewGatewayClient(GatewayConfig{RootURL: srv.URL, AccessToken: "token", Timeout: 50 * time.Millisecond})
	outcome := ResolvePixPayment(context.Background(), gw, "order-1", decimal.RequireFromString("12.50"), "Maria", "", MerchantConfig{})

	if !outcome.IsFallback() {
		t.Fatal("expected fallback outcome on gateway timeout")
	}
}
