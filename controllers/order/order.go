package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/models"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNotCancelable = errors.New("only pending orders can be cancelled")
)

// generateOrderRef returns a unique order reference.
// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout turns the user's cart into an order. Order creation, order-item
// insertion (with PriceAtPurchase fixed from the cart snapshot) and the
// cart clear happen in a single transaction, so a failure at any step
// leaves no dangling order behind.
func Checkout(db *gorm.DB, userID string) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	var orderItems []models.OrderItem
	for _, item := range cart.Items {
		total += item.ProductPrice * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductImage:    item.ProductImage,
			PriceAtPurchase: item.ProductPrice,
			Quantity:        item.Quantity,
		})
	}

	order := models.Order{
		UserID:      userID,
		Items:       orderItems,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
		OrderRef:    generateOrderRef(),
		CreatedAt:   time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		order, err := Checkout(db, userID)
		if err != nil {
			status := http.StatusInternalServerError
			if err == ErrEmptyCart {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders/my
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CancelOrder flips a pending order to cancelled. Cancellation is one-way
// and the only transition a customer can trigger.
func CancelOrder(db *gorm.DB, orderID string, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
			return err
		}
		if order.Status != models.OrderStatusPending {
			return ErrNotCancelable
		}
		order.Status = models.OrderStatusCancelled
		return tx.Model(&order).Update("status", models.OrderStatusCancelled).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// PUT /orders/:orderID/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		order, err := CancelOrder(db, c.Param("orderID"), userID)
		switch {
		case err == gorm.ErrRecordNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case err == ErrNotCancelable:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		default:
			c.JSON(http.StatusOK, order)
		}
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
//
// The only admin transition is pending -> delivered; cancelled and
// delivered orders are final.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if models.OrderStatus(req.Status) != models.OrderStatusDelivered {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		var order models.Order
		if err := db.First(&order, c.Param("orderID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if order.Status != models.OrderStatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "only pending orders can be delivered"})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusDelivered).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}
		order.Status = models.OrderStatusDelivered
		c.JSON(http.StatusOK, order)
	}
}
