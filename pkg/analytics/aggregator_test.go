package analytics

import (
	"testing"
	"time"

	"github.com/acai-prime/store-backend/pkg/db/store"
)

type mockAnalyticsStore struct {
	pageViews   int64
	orders      []store.Order
	pixCount    int64
	cardCount   int64
	paidAmounts []string
}

func (m *mockAnalyticsStore) CountAnalyticsEventsByType(eventType string) (int64, error) {
	if eventType == EVENT_TYPE_PAGE_VIEW {
		return m.pageViews, nil
	}
	return 0, nil
}

func (m *mockAnalyticsStore) CountOrders() (int64, error) {
	return int64(len(m.orders)), nil
}

func (m *mockAnalyticsStore) CountOrdersByStatus() ([]store.OrderStatusCount, error) {
	counts := map[string]int64{}
	for _, order := range m.orders {
		counts[order.Status]++
	}
	result := []store.OrderStatusCount{}
	for status, count := range counts {
		result = append(result, store.OrderStatusCount{Status: status, Count: count})
	}
	return result, nil
}

func (m *mockAnalyticsStore) CountTransactionsByPaymentMethod(paymentMethod string) (int64, error) {
	switch paymentMethod {
	case store.PAYMENT_METHOD_PIX:
		return m.pixCount, nil
	case store.PAYMENT_METHOD_CREDIT_CARD:
		return m.cardCount, nil
	}
	return 0, nil
}

func (m *mockAnalyticsStore) GetOrderAmountsByStatus(status string) ([]string, error) {
	return m.paidAmounts, nil
}

func (m *mockAnalyticsStore) GetRecentOrders(limit int) ([]store.Order, error) {
	if len(m.orders) <= limit {
		return m.orders, nil
	}
	return m.orders[:limit], nil
}

func TestSnapshotEmptyDataHasZeroConversionRate(t *testing.T) {
	agg := NewAggregator(&mockAnalyticsStore{})

	snapshot, err := agg.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.ConversionRate != "0.00" {
		t.Errorf("expected conversion rate 0.00, got %s", snapshot.ConversionRate)
	}
	if snapshot.TotalRevenue != "0.00" {
		t.Errorf("expected revenue 0.00, got %s", snapshot.TotalRevenue)
	}
	if snapshot.TotalOrders != 0 || snapshot.TotalPageViews != 0 {
		t.Error("expected empty counts")
	}
}

func TestSnapshotRevenueIsDecimalAccurate(t *testing.T) {
	orders := []store.Order{
		{ID: "a", Status: store.ORDER_STATUS_PAID, TotalAmount: "9.90"},
		{ID: "b", Status: store.ORDER_STATUS_PAID, TotalAmount: "14.90"},
		{ID: "c", Status: store.ORDER_STATUS_PAID, TotalAmount: "18.90"},
	}
	agg := NewAggregator(&mockAnalyticsStore{
		orders:      orders,
		paidAmounts: []string{"9.90", "14.90", "18.90"},
	})

	snapshot, err := agg.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.TotalRevenue != "43.70" {
		t.Errorf("expected revenue 43.70, got %s", snapshot.TotalRevenue)
	}
}

func TestSnapshotConversionRate(t *testing.T) {
	agg := NewAggregator(&mockAnalyticsStore{
		pageViews: 200,
		orders: []store.Order{
			{ID: "a", Status: store.ORDER_STATUS_PENDING},
			{ID: "b", Status: store.ORDER_STATUS_PAID},
			{ID: "c", Status: store.ORDER_STATUS_PAID},
		},
	})

	snapshot, err := agg.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.ConversionRate != "1.50" {
		t.Errorf("expected conversion rate 1.50, got %s", snapshot.ConversionRate)
	}
}

func TestSnapshotRecentOrdersLimitedToTen(t *testing.T) {
	orders := make([]store.Order, 0, 15)
	for i := 0; i < 15; i++ {
		orders = append(orders, store.Order{
			ID:        string(rune('a' + i)),
			Status:    store.ORDER_STATUS_PENDING,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		})
	}
	agg := NewAggregator(&mockAnalyticsStore{orders: orders})

	snapshot, err := agg.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.RecentOrders) != 10 {
		t.Errorf("expected 10 recent orders, got %d", len(snapshot.RecentOrders))
	}
}

func TestSnapshotPaymentMethodCounts(t *testing.T) {
	agg := NewAggregator(&mockAnalyticsStore{pixCount: 7, cardCount: 3})

	snapshot, err := agg.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.TotalPixGenerated != 7 || snapshot.TotalCardPayments != 3 {
		t.Errorf("unexpected payment method counts: %d pix, %d card", snapshot.TotalPixGenerated, snapshot.TotalCardPayments)
	}
}
