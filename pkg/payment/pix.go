package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

const (
	DEFAULT_MERCHANT_NAME = "Acai Prime"
	DEFAULT_MERCHANT_CITY = "SAO PAULO"
)

type MerchantConfig struct {
	Name string `json:"name" yaml:"name"`
	City string `json:"city" yaml:"city"`
}

func (mc MerchantConfig) withDefaults() MerchantConfig {
	if mc.Name == "" {
		mc.Name = DEFAULT_MERCHANT_NAME
	}
	if mc.City == "" {
		mc.City = DEFAULT_MERCHANT_CITY
	}
	return mc
}

// FallbackPixCode synthesizes a PIX copy-paste payload from the order id and
// amount. The field layout is a legacy format that deployed scanners already
// accept, it must not be changed.
func FallbackPixCode(orderID string, amount decimal.Decimal, merchant MerchantConfig) string {
	merchant = merchant.withDefaults()
	return fmt.Sprintf(
		"00020126580014br.gov.bcb.pix0136%s520400005303986540%s5802BR5913%s6009%s62070503***6304",
		orderID,
		amount.StringFixed(2),
		merchant.Name,
		merchant.City,
	)
}

// PixOutcome is the result of resolving a PIX payment: either the gateway
// issued the charge, or the payload was synthesized locally and
// FallbackReason says why.
type PixOutcome struct {
	GatewayRef     string
	CopyPaste      string
	FallbackReason string
}

func (o PixOutcome) IsFallback() bool {
	return o.FallbackReason != ""
}

// ResolvePixPayment decides between the gateway path and the local fallback.
// The customer always receives a payable artifact, a gateway outage degrades
// to a synthesized payload instead of failing the order.
func ResolvePixPayment(
	ctx context.Context,
	gateway *GatewayClient,
	orderID string,
	amount decimal.Decimal,
	customerName string,
	customerEmail string,
	merchant MerchantConfig,
) PixOutcome {
	if gateway == nil {
		return PixOutcome{
			CopyPaste:      FallbackPixCode(orderID, amount, merchant),
			FallbackReason: "payment gateway not configured",
		}
	}

	charge, err := gateway.CreatePixCharge(ctx, orderID, amount, customerName, customerEmail)
	if err != nil {
		slog.Warn("PIX gateway call failed, using local fallback", slog.String("orderID", orderID), slog.String("error", err.Error()))
		return PixOutcome{
			CopyPaste:      FallbackPixCode(orderID, amount, merchant),
			FallbackReason: "gateway error: " + err.Error(),
		}
	}

	return PixOutcome{
		GatewayRef: charge.GatewayRef,
		CopyPaste:  charge.CopyPaste,
	}
}
