package order

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/acai-prime/store-backend/pkg/db/store"
	"github.com/acai-prime/store-backend/pkg/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStore is the slice of the persistence layer the order service needs.
// Implemented by store.StoreDBService.
type OrderStore interface {
	CreateOrder(order store.Order) (store.Order, error)
	GetOrder(orderID string) (store.Order, error)
	GetOrderByIdempotencyKey(key string) (store.Order, error)
	CreateTransaction(transaction store.Transaction) (store.Transaction, error)
	GetTransactionByOrderID(orderID string) (store.Transaction, error)
}

type Service struct {
	store    OrderStore
	gateway  *payment.GatewayClient
	merchant payment.MerchantConfig
}

// NewService wires the order service. A nil gateway is valid, PIX payloads
// are then always synthesized locally.
func NewService(orderStore OrderStore, gateway *payment.GatewayClient, merchant payment.MerchantConfig) *Service {
	return &Service{
		store:    orderStore,
		gateway:  gateway,
		merchant: merchant,
	}
}

// CreateOrder validates and persists a checkout, then produces exactly one
// transaction whose shape depends on the payment method. A gateway outage
// never fails a PIX order.
func (s *Service) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	amount, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" {
		existing, err := s.store.GetOrderByIdempotencyKey(input.IdempotencyKey)
		if err == nil {
			return s.replayResult(existing)
		}
		if !store.IsErrNoDocuments(err) {
			return nil, err
		}
	}

	newOrder := store.Order{
		ID:                 uuid.NewString(),
		CustomerName:       input.CustomerName,
		CustomerPhone:      input.CustomerPhone,
		CustomerEmail:      input.CustomerEmail,
		DeliveryAddress:    input.DeliveryAddress,
		DeliveryCep:        input.DeliveryCep,
		DeliveryCity:       input.DeliveryCity,
		DeliveryState:      input.DeliveryState,
		DeliveryComplement: input.DeliveryComplement,
		Items:              input.Items,
		Toppings:           input.Toppings,
		TotalAmount:        amount.StringFixed(2),
		PaymentMethod:      input.PaymentMethod,
		Status:             store.ORDER_STATUS_PENDING,
		IdempotencyKey:     input.IdempotencyKey,
		CreatedAt:          time.Now(),
	}

	persistedOrder, err := s.store.CreateOrder(newOrder)
	if err != nil {
		// a concurrent duplicate submission may have won the insert on
		// the idempotency key; answer from the stored order then
		if input.IdempotencyKey != "" {
			if existing, lookupErr := s.store.GetOrderByIdempotencyKey(input.IdempotencyKey); lookupErr == nil {
				return s.replayResult(existing)
			}
		}
		return nil, err
	}

	switch input.PaymentMethod {
	case store.PAYMENT_METHOD_PIX:
		return s.createPixTransaction(ctx, persistedOrder, amount)
	case store.PAYMENT_METHOD_CREDIT_CARD:
		return s.createCardTransaction(persistedOrder, input.Card)
	default:
		return nil, ErrInvalidPaymentMethod
	}
}

func (s *Service) validate(input CreateOrderInput) (decimal.Decimal, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return decimal.Zero, newValidationError("customerName is required")
	}
	if len(input.Items) == 0 {
		return decimal.Zero, newValidationError("order must contain at least one item")
	}
	if input.TotalAmount == "" {
		return decimal.Zero, newValidationError("totalAmount is required")
	}
	amount, err := decimal.NewFromString(input.TotalAmount)
	if err != nil {
		return decimal.Zero, newValidationError("totalAmount is not a valid amount")
	}
	if !amount.IsPositive() {
		return decimal.Zero, newValidationError("totalAmount must be positive")
	}
	if input.PaymentMethod == "" {
		return decimal.Zero, newValidationError("paymentMethod is required")
	}
	return amount, nil
}

func (s *Service) createPixTransaction(ctx context.Context, persistedOrder store.Order, amount decimal.Decimal) (*CreateOrderResult, error) {
	outcome := payment.ResolvePixPayment(
		ctx,
		s.gateway,
		persistedOrder.ID,
		amount,
		persistedOrder.CustomerName,
		persistedOrder.CustomerEmail,
		s.merchant,
	)

	qrCodeBase64, err := payment.RenderQRCodeBase64(outcome.CopyPaste)
	if err != nil {
		slog.Error("QR code rendering failed", slog.String("orderID", persistedOrder.ID), slog.String("error", err.Error()))
		qrCodeBase64 = ""
	}

	transaction := store.Transaction{
		OrderID:         persistedOrder.ID,
		PaymentMethod:   store.PAYMENT_METHOD_PIX,
		Amount:          persistedOrder.TotalAmount,
		Status:          store.TRANSACTION_STATUS_PENDING,
		GatewayRef:      outcome.GatewayRef,
		PixQrCode:       outcome.CopyPaste,
		PixQrCodeBase64: qrCodeBase64,
		PixCopyPaste:    outcome.CopyPaste,
		CreatedAt:       time.Now(),
	}
	if outcome.IsFallback() {
		transaction.Metadata = map[string]string{
			"note": outcome.FallbackReason,
		}
	}

	if _, err := s.store.CreateTransaction(transaction); err != nil {
		// the order stays pending without a transaction, surfaced by the
		// missing transaction record
		return nil, err
	}

	return &CreateOrderResult{
		OrderID:         persistedOrder.ID,
		PaymentMethod:   store.PAYMENT_METHOD_PIX,
		Status:          persistedOrder.Status,
		PixQrCode:       outcome.CopyPaste,
		PixQrCodeBase64: qrCodeBase64,
		PixCopyPaste:    outcome.CopyPaste,
	}, nil
}

func (s *Service) createCardTransaction(persistedOrder store.Order, card *CardDetails) (*CreateOrderResult, error) {
	cardLast4 := "****"
	cardBrand := ""
	if card != nil {
		if len(card.Number) >= 4 {
			cardLast4 = card.Number[len(card.Number)-4:]
		}
		cardBrand = card.Brand
	}

	transaction := store.Transaction{
		OrderID:       persistedOrder.ID,
		PaymentMethod: store.PAYMENT_METHOD_CREDIT_CARD,
		Amount:        persistedOrder.TotalAmount,
		Status:        store.TRANSACTION_STATUS_PENDING,
		CardLast4:     cardLast4,
		CardBrand:     cardBrand,
		Metadata: map[string]string{
			"note":      "credit card capture requires client-side tokenization",
			"timestamp": time.Now().Format(time.RFC3339),
		},
		CreatedAt: time.Now(),
	}

	if _, err := s.store.CreateTransaction(transaction); err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		OrderID:       persistedOrder.ID,
		PaymentMethod: store.PAYMENT_METHOD_CREDIT_CARD,
		Status:        persistedOrder.Status,
		Message:       "payment pending, requires tokenized capture",
	}, nil
}

func (s *Service) replayResult(existing store.Order) (*CreateOrderResult, error) {
	result := &CreateOrderResult{
		OrderID:       existing.ID,
		PaymentMethod: existing.PaymentMethod,
		Status:        existing.Status,
		Replayed:      true,
	}

	transaction, err := s.store.GetTransactionByOrderID(existing.ID)
	if err != nil {
		if store.IsErrNoDocuments(err) {
			return result, nil
		}
		return nil, err
	}

	result.PixQrCode = transaction.PixQrCode
	result.PixQrCodeBase64 = transaction.PixQrCodeBase64
	result.PixCopyPaste = transaction.PixCopyPaste
	if existing.PaymentMethod == store.PAYMENT_METHOD_CREDIT_CARD {
		result.Message = "payment pending, requires tokenized capture"
	}
	return result, nil
}

// GetOrder loads an order together with its payment artifact.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*OrderDetails, error) {
	persistedOrder, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	details := &OrderDetails{
		Order:       persistedOrder,
		OrderNumber: orderNumber(persistedOrder.ID),
	}

	transaction, err := s.store.GetTransactionByOrderID(orderID)
	if err != nil {
		if store.IsErrNoDocuments(err) {
			return details, nil
		}
		return nil, err
	}
	details.PixQrCodeBase64 = transaction.PixQrCodeBase64
	details.PixCopyPaste = transaction.PixCopyPaste
	return details, nil
}

func orderNumber(orderID string) string {
	if len(orderID) < 8 {
		return strings.ToUpper(orderID)
	}
	return strings.ToUpper(orderID[:8])
}
