package cartControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/models"
)

func seedGuestCart(t *testing.T, db *gorm.DB, guestID string, quantities map[uint]int) {
	t.Helper()

	cart := models.GuestCart{GuestID: guestID}
	require.NoError(t, db.Create(&cart).Error)
	for productID, qty := range quantities {
		require.NoError(t, db.Create(&models.GuestCartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}).Error)
	}
}

func seedUserCart(t *testing.T, db *gorm.DB, userID string, quantities map[uint]int) models.Cart {
	t.Helper()

	cart := models.Cart{UserID: userID}
	require.NoError(t, db.Create(&cart).Error)
	for productID, qty := range quantities {
		require.NoError(t, db.Create(&models.CartItem{
			CartID:    cart.CartID,
			ProductID: productID,
			Quantity:  qty,
			AddedAt:   time.Now(),
		}).Error)
	}
	return cart
}

func cartQuantities(t *testing.T, db *gorm.DB, cartID uint) map[uint]int {
	t.Helper()

	items, err := loadCartItems(db, cartID)
	require.NoError(t, err)
	out := make(map[uint]int, len(items))
	for _, item := range items {
		out[item.ProductID] = item.Quantity
	}
	return out
}

func TestMergeOverwritesQuantities(t *testing.T) {
	db := newTestDB(t)

	// Guest cart {A:2, B:1}, account cart {B:5}.
	seedGuestCart(t, db, "guest-1", map[uint]int{1: 2, 2: 1})
	cart := seedUserCart(t, db, "user-1", map[uint]int{2: 5})

	merged, err := MergeGuestCart(db, "guest-1", "user-1")
	require.NoError(t, err)
	require.True(t, merged)

	// Overwrite, not sum: B ends at 1, never 6.
	require.Equal(t, map[uint]int{1: 2, 2: 1}, cartQuantities(t, db, cart.CartID))

	// The guest store is gone.
	var guestCarts, guestItems int64
	db.Model(&models.GuestCart{}).Count(&guestCarts)
	db.Model(&models.GuestCartItem{}).Count(&guestItems)
	require.Zero(t, guestCarts)
	require.Zero(t, guestItems)
}

func TestMergeCreatesAccountCartLazily(t *testing.T) {
	db := newTestDB(t)

	seedGuestCart(t, db, "guest-2", map[uint]int{1: 4})

	merged, err := MergeGuestCart(db, "guest-2", "user-2")
	require.NoError(t, err)
	require.True(t, merged)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", "user-2").First(&cart).Error)
	require.Equal(t, map[uint]int{1: 4}, cartQuantities(t, db, cart.CartID))
}

func TestMergeWithoutGuestCartIsNoop(t *testing.T) {
	db := newTestDB(t)

	merged, err := MergeGuestCart(db, "nobody", "user-3")
	require.NoError(t, err)
	require.False(t, merged)

	var count int64
	db.Model(&models.Cart{}).Count(&count)
	require.Zero(t, count)
}

func TestMergeEmptyGuestCartRetiresIt(t *testing.T) {
	db := newTestDB(t)

	seedGuestCart(t, db, "guest-4", nil)

	merged, err := MergeGuestCart(db, "guest-4", "user-4")
	require.NoError(t, err)
	require.False(t, merged)

	var count int64
	db.Model(&models.GuestCart{}).Count(&count)
	require.Zero(t, count)
}

func TestMergeKeepsUnrelatedAccountItems(t *testing.T) {
	db := newTestDB(t)

	seedGuestCart(t, db, "guest-5", map[uint]int{1: 1})
	cart := seedUserCart(t, db, "user-5", map[uint]int{2: 3})

	merged, err := MergeGuestCart(db, "guest-5", "user-5")
	require.NoError(t, err)
	require.True(t, merged)

	require.Equal(t, map[uint]int{1: 1, 2: 3}, cartQuantities(t, db, cart.CartID))
}
