package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	storeDB "github.com/acai-prime/store-backend/pkg/db/store"
)

func (h *HttpEndpoints) getAnalytics(c *gin.Context) {
	snapshot, err := h.aggregator.Snapshot()
	if err != nil {
		slog.Error("failed to compute analytics snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching analytics"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *HttpEndpoints) getAdminProducts(c *gin.Context) {
	products, err := h.storeDBConn.GetProducts()
	if err != nil {
		slog.Error("failed to fetch products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *HttpEndpoints) createProduct(c *gin.Context) {
	var req storeDB.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" || req.Price == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
		return
	}

	req.CreatedAt = time.Now()
	product, err := h.storeDBConn.CreateProduct(req)
	if err != nil {
		slog.Error("failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *HttpEndpoints) updateProduct(c *gin.Context) {
	productID := c.Param("id")

	var req storeDB.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.storeDBConn.UpdateProduct(productID, req)
	if err != nil {
		if storeDB.IsErrNoDocuments(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		slog.Error("failed to update product", slog.String("productID", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *HttpEndpoints) deleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.storeDBConn.DeleteProduct(productID); err != nil {
		slog.Error("failed to delete product", slog.String("productID", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *HttpEndpoints) getReviews(c *gin.Context) {
	reviews, err := h.storeDBConn.GetReviews()
	if err != nil {
		slog.Error("failed to fetch reviews", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *HttpEndpoints) createReview(c *gin.Context) {
	var req storeDB.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CustomerName == "" || req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerName and a rating between 1 and 5 are required"})
		return
	}

	req.CreatedAt = time.Now()
	review, err := h.storeDBConn.CreateReview(req)
	if err != nil {
		slog.Error("failed to create review", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating review"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *HttpEndpoints) updateReview(c *gin.Context) {
	reviewID := c.Param("id")

	var req storeDB.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.storeDBConn.UpdateReview(reviewID, req)
	if err != nil {
		if storeDB.IsErrNoDocuments(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		slog.Error("failed to update review", slog.String("reviewID", reviewID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating review"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *HttpEndpoints) deleteReview(c *gin.Context) {
	reviewID := c.Param("id")

	if err := h.storeDBConn.DeleteReview(reviewID); err != nil {
		slog.Error("failed to delete review", slog.String("reviewID", reviewID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

func (h *HttpEndpoints) getAdminOrders(c *gin.Context) {
	orders, err := h.storeDBConn.GetOrders()
	if err != nil {
		slog.Error("failed to fetch orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *HttpEndpoints) getAdminOrder(c *gin.Context) {
	orderID := c.Param("id")

	order, err := h.storeDBConn.GetOrder(orderID)
	if err != nil {
		if storeDB.IsErrNoDocuments(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		slog.Error("failed to fetch order", slog.String("orderID", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching order"})
		return
	}

	resp := gin.H{"order": order}
	transaction, err := h.storeDBConn.GetTransactionByOrderID(orderID)
	if err == nil {
		resp["transaction"] = transaction
	} else if !storeDB.IsErrNoDocuments(err) {
		slog.Error("failed to fetch transaction for order", slog.String("orderID", orderID), slog.String("error", err.Error()))
	}
	c.JSON(http.StatusOK, resp)
}

// getTransactions lists transactions with only non-sensitive fields.
func (h *HttpEndpoints) getTransactions(c *gin.Context) {
	transactions, err := h.storeDBConn.GetTransactions()
	if err != nil {
		slog.Error("failed to fetch transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching transactions"})
		return
	}

	type transactionView struct {
		ID            string    `json:"id"`
		OrderID       string    `json:"orderId"`
		PaymentMethod string    `json:"paymentMethod"`
		Amount        string    `json:"amount"`
		Status        string    `json:"status"`
		GatewayRef    string    `json:"gatewayRef,omitempty"`
		CardLast4     string    `json:"cardLast4,omitempty"`
		CardBrand     string    `json:"cardBrand,omitempty"`
		CapturedAt    time.Time `json:"capturedAt,omitempty"`
		CreatedAt     time.Time `json:"createdAt"`
	}

	views := make([]transactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, transactionView{
			ID:            t.ID.Hex(),
			OrderID:       t.OrderID,
			PaymentMethod: t.PaymentMethod,
			Amount:        t.Amount,
			Status:        t.Status,
			GatewayRef:    t.GatewayRef,
			CardLast4:     t.CardLast4,
			CardBrand:     t.CardBrand,
			CapturedAt:    t.CapturedAt,
			CreatedAt:     t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, views)
}
