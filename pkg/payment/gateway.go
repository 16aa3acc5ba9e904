package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const DEFAULT_GATEWAY_TIMEOUT = 10 * time.Second

type GatewayConfig struct {
	RootURL     string        `json:"root_url" yaml:"root_url"`
	AccessToken string        `json:"access_token" yaml:"access_token"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// GatewayClient talks to the PIX payment processor. A nil client means no
// gateway is configured and callers fall back to locally synthesized payloads.
type GatewayClient struct {
	client *resty.Client
}

func NewGatewayClient(conf GatewayConfig) *GatewayClient {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_GATEWAY_TIMEOUT
	}

	client := resty.New().
		SetBaseURL(conf.RootURL).
		SetAuthToken(conf.AccessToken).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &GatewayClient{client: client}
}

type payerPayload struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type createPaymentPayload struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Description       string       `json:"description"`
	PaymentMethodID   string       `json:"payment_method_id"`
	Payer             payerPayload `json:"payer"`
}

type createPaymentResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	PointOfInteraction struct {
		TransactionData struct {
			QrCode string `json:"qr_code"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// PixCharge is a PIX payment request issued by the gateway.
type PixCharge struct {
	GatewayRef string
	CopyPaste  string
}

// CreatePixCharge asks the gateway to create a PIX payment for the order.
// The payer name is split into first and last token the way the gateway
// expects; a timeout counts as gateway failure.
func (gc *GatewayClient) CreatePixCharge(ctx context.Context, orderID string, amount decimal.Decimal, customerName string, customerEmail string) (*PixCharge, error) {
	firstName, lastName := SplitPayerName(customerName)

	email := customerEmail
	if email == "" {
		email = "customer@example.com"
	}

	payload := createPaymentPayload{
		TransactionAmount: amount.InexactFloat64(),
		Description:       fmt.Sprintf("Pedido #%s", orderID),
		PaymentMethodID:   "pix",
		Payer: payerPayload{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
		},
	}

	var result createPaymentResponse
	resp, err := gc.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/v1/payments")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode())
	}
	if result.PointOfInteraction.TransactionData.QrCode == "" {
		return nil, fmt.Errorf("gateway response without PIX code")
	}

	return &PixCharge{
		GatewayRef: fmt.Sprintf("%d", result.ID),
		CopyPaste:  result.PointOfInteraction.TransactionData.QrCode,
	}, nil
}

// SplitPayerName splits a full customer name into the first name token and the
// remainder. Falls back to a generic first name when empty.
func SplitPayerName(name string) (firstName string, lastName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "Cliente", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
