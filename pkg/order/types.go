package order

import (
	"github.com/acai-prime/store-backend/pkg/db/store"
)

type CardDetails struct {
	Number string `json:"cardNumber"`
	Brand  string `json:"cardBrand"`
}

type CreateOrderInput struct {
	CustomerName       string            `json:"customerName"`
	CustomerPhone      string            `json:"customerPhone"`
	CustomerEmail      string            `json:"customerEmail"`
	DeliveryAddress    string            `json:"deliveryAddress"`
	DeliveryCep        string            `json:"deliveryCep"`
	DeliveryCity       string            `json:"deliveryCity"`
	DeliveryState      string            `json:"deliveryState"`
	DeliveryComplement string            `json:"deliveryComplement"`
	Items              []store.OrderItem `json:"items"`
	Toppings           []string          `json:"toppings"`
	TotalAmount        string            `json:"totalAmount"`
	PaymentMethod      string            `json:"paymentMethod"`
	IdempotencyKey     string            `json:"idempotencyKey"`

	// Card data is only ever used to derive the last 4 digits, the raw
	// number is dropped before anything is persisted.
	Card *CardDetails `json:"cardData"`
}

type CreateOrderResult struct {
	OrderID         string `json:"orderId"`
	PaymentMethod   string `json:"paymentMethod"`
	Status          string `json:"status"`
	PixQrCode       string `json:"pixQrCode,omitempty"`
	PixQrCodeBase64 string `json:"pixQrCodeBase64,omitempty"`
	PixCopyPaste    string `json:"pixCopyPaste,omitempty"`
	Message         string `json:"message,omitempty"`

	// Replayed marks a duplicate submission answered from the already
	// persisted order.
	Replayed bool `json:"-"`
}

type OrderDetails struct {
	store.Order
	OrderNumber     string `json:"orderNumber"`
	PixQrCodeBase64 string `json:"pixQrCodeBase64,omitempty"`
	PixCopyPaste    string `json:"pixCopyPaste,omitempty"`
}
