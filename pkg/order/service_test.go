package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/acai-prime/store-backend/pkg/db/store"
	"github.com/acai-prime/store-backend/pkg/payment"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockOrderStore struct {
	orders       map[string]store.Order
	transactions map[string]store.Transaction // keyed by order id

	failOrderInsert       bool
	failTransactionInsert bool
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{
		orders:       map[string]store.Order{},
		transactions: map[string]store.Transaction{},
	}
}

func (m *mockOrderStore) CreateOrder(order store.Order) (store.Order, error) {
	if m.failOrderInsert {
		return order, errors.New("insert failed")
	}
	if order.IdempotencyKey != "" {
		for _, existing := range m.orders {
			if existing.IdempotencyKey == order.IdempotencyKey {
				return order, errors.New("duplicate key error")
			}
		}
	}
	m.orders[order.ID] = order
	return order, nil
}

func (m *mockOrderStore) GetOrder(orderID string) (store.Order, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return order, mongo.ErrNoDocuments
	}
	return order, nil
}

func (m *mockOrderStore) GetOrderByIdempotencyKey(key string) (store.Order, error) {
	for _, order := range m.orders {
		if order.IdempotencyKey == key {
			return order, nil
		}
	}
	return store.Order{}, mongo.ErrNoDocuments
}

func (m *mockOrderStore) CreateTransaction(transaction store.Transaction) (store.Transaction, error) {
	if m.failTransactionInsert {
		return transaction, errors.New("insert failed")
	}
	m.transactions[transaction.OrderID] = transaction
	return transaction, nil
}

func (m *mockOrderStore) GetTransactionByOrderID(orderID string) (store.Transaction, error) {
	transaction, ok := m.transactions[orderID]
	if !ok {
		return transaction, mongo.ErrNoDocuments
	}
	return transaction, nil
}

func validPixInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Maria da Silva",
		CustomerEmail: "maria@example.com",
		Items: []store.OrderItem{
			{ProductID: "p1", Name: "Açaí 500ml", Price: "14.90", Quantity: 1},
		},
		TotalAmount:   "14.90",
		PaymentMethod: store.PAYMENT_METHOD_PIX,
	}
}

func TestCreateOrderPixWithoutGateway(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	result, err := svc.CreateOrder(context.Background(), validPixInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OrderID == "" {
		t.Fatal("expected an order id")
	}
	if result.PixCopyPaste == "" || result.PixQrCodeBase64 == "" {
		t.Fatal("expected PIX artifact in the response")
	}
	if !strings.Contains(result.PixCopyPaste, result.OrderID) {
		t.Error("fallback payload must embed the order id")
	}

	transaction, ok := mock.transactions[result.OrderID]
	if !ok {
		t.Fatal("expected a transaction for the order")
	}
	if transaction.Status != store.TRANSACTION_STATUS_PENDING {
		t.Errorf("unexpected transaction status: %s", transaction.Status)
	}
	if transaction.Amount != mock.orders[result.OrderID].TotalAmount {
		t.Error("transaction amount must equal the order total")
	}
	if transaction.Metadata["note"] == "" {
		t.Error("fallback transaction must note the fallback reason")
	}
}

func TestCreateOrderPixCodesDifferPerOrder(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	first, err := svc.CreateOrder(context.Background(), validPixInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.CreateOrder(context.Background(), validPixInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.PixCopyPaste == second.PixCopyPaste {
		t.Error("different orders must receive different PIX payloads")
	}
	if !strings.Contains(first.PixCopyPaste, first.OrderID) || !strings.Contains(second.PixCopyPaste, second.OrderID) {
		t.Error("each payload must embed its own order id")
	}
}

func TestCreateOrderCreditCardNeverStoresCardNumber(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	input := validPixInput()
	input.PaymentMethod = store.PAYMENT_METHOD_CREDIT_CARD
	input.Card = &CardDetails{Number: "4111111111111111", Brand: "visa"}

	result, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message == "" {
		t.Error("expected a tokenization notice in the response")
	}

	transaction := mock.transactions[result.OrderID]
	if transaction.CardLast4 != "1111" {
		t.Errorf("unexpected cardLast4: %s", transaction.CardLast4)
	}
	for key, value := range transaction.Metadata {
		if strings.Contains(value, "4111111111111111") {
			t.Errorf("metadata field %s contains the raw card number", key)
		}
	}
	if strings.Contains(transaction.PixQrCode+transaction.PixCopyPaste+transaction.GatewayRef, "4111111111111111") {
		t.Error("raw card number leaked into the transaction")
	}
}

func TestCreateOrderCreditCardWithoutCardData(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	input := validPixInput()
	input.PaymentMethod = store.PAYMENT_METHOD_CREDIT_CARD

	result, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.transactions[result.OrderID].CardLast4 != "****" {
		t.Errorf("expected masked cardLast4, got %s", mock.transactions[result.OrderID].CardLast4)
	}
}

func TestCreateOrderUnsupportedPaymentMethod(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	input := validPixInput()
	input.PaymentMethod = "boleto"

	_, err := svc.CreateOrder(context.Background(), input)
	if !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
	if len(mock.transactions) != 0 {
		t.Error("no transaction may be created for an unsupported payment method")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name  string
		patch func(*CreateOrderInput)
	}{
		{"missing customer name", func(in *CreateOrderInput) { in.CustomerName = " " }},
		{"no items", func(in *CreateOrderInput) { in.Items = nil }},
		{"missing amount", func(in *CreateOrderInput) { in.TotalAmount = "" }},
		{"malformed amount", func(in *CreateOrderInput) { in.TotalAmount = "abc" }},
		{"non-positive amount", func(in *CreateOrderInput) { in.TotalAmount = "0" }},
		{"missing payment method", func(in *CreateOrderInput) { in.PaymentMethod = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mock := newMockOrderStore()
			svc := NewService(mock, nil, payment.MerchantConfig{})

			input := validPixInput()
			test.patch(&input)

			_, err := svc.CreateOrder(context.Background(), input)
			if !IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(mock.orders) != 0 {
				t.Error("invalid input must not persist an order")
			}
		})
	}
}

func TestCreateOrderIdempotentReplay(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	input := validPixInput()
	input.IdempotencyKey = "checkout-123"

	first, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.CreateOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.Replayed {
		t.Error("duplicate submission should be marked as replayed")
	}
	if second.OrderID != first.OrderID {
		t.Error("duplicate submission must return the original order")
	}
	if second.PixCopyPaste != first.PixCopyPaste {
		t.Error("duplicate submission must return the original PIX payload")
	}
	if len(mock.orders) != 1 || len(mock.transactions) != 1 {
		t.Error("duplicate submission must not create new records")
	}
}

func TestCreateOrderTransactionInsertFailureKeepsOrderPending(t *testing.T) {
	mock := newMockOrderStore()
	mock.failTransactionInsert = true
	svc := NewService(mock, nil, payment.MerchantConfig{})

	_, err := svc.CreateOrder(context.Background(), validPixInput())
	if err == nil {
		t.Fatal("expected error from transaction insert")
	}
	if len(mock.orders) != 1 {
		t.Fatal("order must remain persisted")
	}
	for _, persisted := range mock.orders {
		if persisted.Status != store.ORDER_STATUS_PENDING {
			t.Errorf("order should stay pending, got %s", persisted.Status)
		}
	}
	if len(mock.transactions) != 0 {
		t.Error("no transaction may exist after a failed insert")
	}
}

func TestGetOrderIncludesPaymentArtifact(t *testing.T) {
	mock := newMockOrderStore()
	svc := NewService(mock, nil, payment.MerchantConfig{})

	created, err := svc.CreateOrder(context.Background(), validPixInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, err := svc.GetOrder(context.Background(), created.OrderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.OrderNumber != strings.ToUpper(created.OrderID[:8]) {
		t.Errorf("unexpected order number: %s", details.OrderNumber)
	}
	if details.PixCopyPaste != created.PixCopyPaste {
		t.Error("order details must carry the PIX payload of its transaction")
	}
}
