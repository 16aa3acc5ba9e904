package analytics

import (
	"github.com/acai-prime/store-backend/pkg/db/store"
	"github.com/shopspring/decimal"
)

const (
	EVENT_TYPE_PAGE_VIEW = "page_view"

	recentOrdersLimit = 10
)

// AnalyticsStore is the read-only slice of the persistence layer the
// aggregator needs. Implemented by store.StoreDBService.
type AnalyticsStore interface {
	CountAnalyticsEventsByType(eventType string) (int64, error)
	CountOrders() (int64, error)
	CountOrdersByStatus() ([]store.OrderStatusCount, error)
	CountTransactionsByPaymentMethod(paymentMethod string) (int64, error)
	GetOrderAmountsByStatus(status string) ([]string, error)
	GetRecentOrders(limit int) ([]store.Order, error)
}

type Snapshot struct {
	TotalPageViews    int64                    `json:"totalPageViews"`
	TotalOrders       int64                    `json:"totalOrders"`
	TotalPixGenerated int64                    `json:"totalPixGenerated"`
	TotalCardPayments int64                    `json:"totalCardPayments"`
	TotalRevenue      string                   `json:"totalRevenue"`
	ConversionRate    string                   `json:"conversionRate"`
	OrdersByStatus    []store.OrderStatusCount `json:"ordersByStatus"`
	RecentOrders      []store.Order            `json:"recentOrders"`
}

type Aggregator struct {
	store AnalyticsStore
}

func NewAggregator(analyticsStore AnalyticsStore) *Aggregator {
	return &Aggregator{store: analyticsStore}
}

// Snapshot recomputes all rollups from the source of truth. No caching, every
// call reflects the current data.
func (a *Aggregator) Snapshot() (*Snapshot, error) {
	totalPageViews, err := a.store.CountAnalyticsEventsByType(EVENT_TYPE_PAGE_VIEW)
	if err != nil {
		return nil, err
	}

	totalOrders, err := a.store.CountOrders()
	if err != nil {
		return nil, err
	}

	totalPixGenerated, err := a.store.CountTransactionsByPaymentMethod(store.PAYMENT_METHOD_PIX)
	if err != nil {
		return nil, err
	}

	totalCardPayments, err := a.store.CountTransactionsByPaymentMethod(store.PAYMENT_METHOD_CREDIT_CARD)
	if err != nil {
		return nil, err
	}

	paidAmounts, err := a.store.GetOrderAmountsByStatus(store.ORDER_STATUS_PAID)
	if err != nil {
		return nil, err
	}
	totalRevenue := decimal.Zero
	for _, amount := range paidAmounts {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			// skip unparsable legacy rows instead of failing the whole snapshot
			continue
		}
		totalRevenue = totalRevenue.Add(value)
	}

	conversionRate := decimal.Zero
	if totalPageViews > 0 {
		conversionRate = decimal.NewFromInt(totalOrders).
			Div(decimal.NewFromInt(totalPageViews)).
			Mul(decimal.NewFromInt(100))
	}

	ordersByStatus, err := a.store.CountOrdersByStatus()
	if err != nil {
		return nil, err
	}

	recentOrders, err := a.store.GetRecentOrders(recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		TotalPageViews:    totalPageViews,
		TotalOrders:       totalOrders,
		TotalPixGenerated: totalPixGenerated,
		TotalCardPayments: totalCardPayments,
		TotalRevenue:      totalRevenue.StringFixed(2),
		ConversionRate:    conversionRate.StringFixed(2),
		OrdersByStatus:    ordersByStatus,
		RecentOrders:      recentOrders,
	}, nil
}
