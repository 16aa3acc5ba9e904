package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_PAID      = "paid"
	ORDER_STATUS_FAILED    = "failed"
	ORDER_STATUS_CANCELLED = "cancelled"

	PAYMENT_METHOD_PIX         = "pix"
	PAYMENT_METHOD_CREDIT_CARD = "credit_card"

	TRANSACTION_STATUS_PENDING  = "pending"
	TRANSACTION_STATUS_APPROVED = "approved"
	TRANSACTION_STATUS_REJECTED = "rejected"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       string             `bson:"price" json:"price"`
	Size        string             `bson:"size" json:"size"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	PromoBadge  string             `bson:"promoBadge,omitempty" json:"promoBadge,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Topping struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"` // fruit | topping | extra
	Price        string             `bson:"price" json:"price"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type OrderItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Name      string `bson:"name" json:"name"`
	Size      string `bson:"size,omitempty" json:"size,omitempty"`
	Price     string `bson:"price" json:"price"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Order id is a UUID string, it is embedded into PIX payloads which
// expect a 36 character identifier.
type Order struct {
	ID                 string      `bson:"_id" json:"id"`
	CustomerName       string      `bson:"customerName" json:"customerName"`
	CustomerPhone      string      `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	CustomerEmail      string      `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	DeliveryAddress    string      `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	DeliveryCep        string      `bson:"deliveryCep,omitempty" json:"deliveryCep,omitempty"`
	DeliveryCity       string      `bson:"deliveryCity,omitempty" json:"deliveryCity,omitempty"`
	DeliveryState      string      `bson:"deliveryState,omitempty" json:"deliveryState,omitempty"`
	DeliveryComplement string      `bson:"deliveryComplement,omitempty" json:"deliveryComplement,omitempty"`
	Items              []OrderItem `bson:"items" json:"items"`
	Toppings           []string    `bson:"toppings,omitempty" json:"toppings,omitempty"`
	TotalAmount        string      `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod      string      `bson:"paymentMethod" json:"paymentMethod"`
	Status             string      `bson:"status" json:"status"`
	IdempotencyKey     string      `bson:"idempotencyKey,omitempty" json:"-"`
	CreatedAt          time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Transaction has no field for raw card numbers or CVV, only the
// non-sensitive card reference can be represented at all.
type Transaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	Amount          string             `bson:"amount" json:"amount"`
	Status          string             `bson:"status" json:"status"`
	GatewayRef      string             `bson:"gatewayRef,omitempty" json:"gatewayRef,omitempty"`
	PixQrCode       string             `bson:"pixQrCode,omitempty" json:"pixQrCode,omitempty"`
	PixQrCodeBase64 string             `bson:"pixQrCodeBase64,omitempty" json:"pixQrCodeBase64,omitempty"`
	PixCopyPaste    string             `bson:"pixCopyPaste,omitempty" json:"pixCopyPaste,omitempty"`
	CardLast4       string             `bson:"cardLast4,omitempty" json:"cardLast4,omitempty"`
	CardBrand       string             `bson:"cardBrand,omitempty" json:"cardBrand,omitempty"`
	Metadata        map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CapturedAt      time.Time          `bson:"capturedAt,omitempty" json:"capturedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type AnalyticsEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventType string             `bson:"eventType" json:"eventType"`
	UserID    string             `bson:"userId,omitempty" json:"userId,omitempty"`
	SessionID string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	ProductID string             `bson:"productId,omitempty" json:"productId,omitempty"`
	OrderID   string             `bson:"orderId,omitempty" json:"orderId,omitempty"`
	Metadata  map[string]string  `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Review struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Rating       int                `bson:"rating" json:"rating"`
	Comment      string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Visible      bool               `bson:"visible" json:"visible"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type OrderStatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}
