package cartControllers

import (
	"time"

	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/models"
)

// MergeGuestCart moves every guest cart item into the user's account cart
// and retires the guest cart, all in one transaction. A row that already
// exists for the same product has its quantity OVERWRITTEN by the guest
// quantity - quantities are never summed.
//
// Returns true when at least one item was migrated. A missing guest cart is
// not an error; there is simply nothing to merge.
func MergeGuestCart(db *gorm.DB, guestID, userID string) (bool, error) {
	merged := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var guest models.GuestCart
		if err := tx.Preload("Items").Where("guest_id = ?", guestID).First(&guest).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		if len(guest.Items) == 0 {
			// Nothing to migrate; still retire the empty guest cart.
			return tx.Delete(&guest).Error
		}

		var cart models.Cart
		err := tx.Where("user_id = ?", userID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, guestItem := range guest.Items {
			var item models.CartItem
			lookupErr := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, guestItem.ProductID).
				First(&item).Error

			switch {
			case lookupErr == nil:
				// Overwrite, never sum.
				item.Quantity = guestItem.Quantity
				item.ProductName = guestItem.ProductName
				item.ProductPrice = guestItem.ProductPrice
				item.ProductImage = guestItem.ProductImage
				item.AddedAt = time.Now()
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			case lookupErr == gorm.ErrRecordNotFound:
				newItem := models.CartItem{
					CartID:       cart.CartID,
					ProductID:    guestItem.ProductID,
					ProductName:  guestItem.ProductName,
					ProductPrice: guestItem.ProductPrice,
					ProductImage: guestItem.ProductImage,
					Quantity:     guestItem.Quantity,
					AddedAt:      time.Now(),
				}
				if err := tx.Create(&newItem).Error; err != nil {
					return err
				}
			default:
				return lookupErr
			}
		}

		if err := tx.Where("cart_id = ?", guest.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&guest).Error; err != nil {
			return err
		}

		merged = true
		return nil
	})

	return merged, err
}
