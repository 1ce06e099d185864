package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/models"
)

func loadGuestCartItems(db *gorm.DB, cartID uint) ([]models.GuestCartItem, error) {
	var items []models.GuestCartItem
	err := db.Where("cart_id = ?", cartID).Order("added_at ASC, id ASC").Find(&items).Error
	return items, err
}

func guestCart(db *gorm.DB, guestID string) (models.GuestCart, bool, error) {
	var cart models.GuestCart
	err := db.Where("guest_id = ?", guestID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return cart, false, nil
	}
	return cart, err == nil, err
}

func requireGuestID(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		cart, found, err := guestCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		if !found {
			c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}})
			return
		}

		items, err := loadGuestCartItems(db, cart.CartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// POST /guest/cart
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				cart, found, _ := guestCart(db, guestID)
				items := []models.GuestCartItem{}
				if found {
					items, _ = loadGuestCartItems(db, cart.CartID)
				}
				c.JSON(http.StatusOK, gin.H{"items": items, "unavailable": true})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
				return
			}
			cart = models.GuestCart{GuestID: guestID}
			if err := db.Create(&cart).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest cart"})
				return
			}
		}

		var item models.GuestCartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).First(&item).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.GuestCartItem{
				CartID:       cart.CartID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductPrice: product.Price,
				ProductImage: product.ImageURL,
				Quantity:     input.Quantity,
				AddedAt:      time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
				return
			}
		case err == nil:
			item.Quantity += input.Quantity
			item.ProductName = product.Name
			item.ProductPrice = product.Price
			item.ProductImage = product.ImageURL
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		items, err := loadGuestCartItems(db, cart.CartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// PUT /guest/cart
func SetGuestCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, found, err := guestCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		if !found {
			c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}})
			return
		}

		if *input.Quantity <= 0 {
			if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				Delete(&models.GuestCartItem{}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove guest cart item"})
				return
			}
		} else {
			if err := db.Model(&models.GuestCartItem{}).
				Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				Updates(map[string]interface{}{"quantity": *input.Quantity, "added_at": time.Now()}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
				return
			}
		}

		items, err := loadGuestCartItems(db, cart.CartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// DELETE /guest/cart/:product_id
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		cart, found, err := guestCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		if !found {
			c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}})
			return
		}

		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			Delete(&models.GuestCartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		items, err := loadGuestCartItems(db, cart.CartID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		cart, found, err := guestCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		if found {
			if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}})
	}
}
