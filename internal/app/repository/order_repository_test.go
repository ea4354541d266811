package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/db"
	"gorm.io/gorm"
)

func setupOrderRepoTest(t *testing.T) (*gorm.DB, OrderRepository, *model.Store, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	user := &model.User{
		Email:        fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "hashed-password",
		Name:         "Owner",
	}
	require.NoError(t, testDB.Create(user).Error)

	store := &model.Store{UserID: user.ID, Name: "Test Store"}
	require.NoError(t, testDB.Create(store).Error)

	billboard := &model.Billboard{StoreID: store.ID, Label: "main", ImageURL: "https://cdn.example.com/m.jpg"}
	require.NoError(t, testDB.Create(billboard).Error)
	category := &model.Category{StoreID: store.ID, BillboardID: billboard.ID, Name: "Shirts"}
	require.NoError(t, testDB.Create(category).Error)
	size := &model.Size{StoreID: store.ID, Name: "Large", Value: "L"}
	require.NoError(t, testDB.Create(size).Error)
	color := &model.Color{StoreID: store.ID, Name: "Black", Value: "#000000"}
	require.NoError(t, testDB.Create(color).Error)

	product := &model.Product{
		StoreID:    store.ID,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
		Name:       "Linen Shirt",
		Price:      decimal.RequireFromString("39.00"),
	}
	require.NoError(t, testDB.Create(product).Error)

	return testDB, NewOrderRepository(testDB), store, product
}

func TestOrderRepository_CreateWithItems(t *testing.T) {
	_, orderRepo, store, product := setupOrderRepoTest(t)

	order := &model.Order{
		StoreID:    store.ID,
		Phone:      "010-1234-5678",
		Address:    "서울시 강남구 테스트로 1",
		OrderItems: []model.OrderItem{{ProductID: product.ID}, {ProductID: product.ID}},
	}
	require.NoError(t, orderRepo.Create(order))
	assert.NotEmpty(t, order.ID)

	found, err := orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	require.Len(t, found.OrderItems, 2)
	assert.Equal(t, "Linen Shirt", found.OrderItems[0].Product.Name)
	assert.True(t, found.OrderItems[0].Product.Price.Equal(decimal.RequireFromString("39.00")))
}

func TestOrderRepository_FindPaidByStoreID(t *testing.T) {
	_, orderRepo, store, product := setupOrderRepoTest(t)

	paid := &model.Order{
		StoreID:    store.ID,
		IsPaid:     true,
		OrderItems: []model.OrderItem{{ProductID: product.ID}},
	}
	require.NoError(t, orderRepo.Create(paid))

	unpaid := &model.Order{
		StoreID:    store.ID,
		OrderItems: []model.OrderItem{{ProductID: product.ID}},
	}
	require.NoError(t, orderRepo.Create(unpaid))

	orders, err := orderRepo.FindPaidByStoreID(store.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, paid.ID, orders[0].ID)

	count, err := orderRepo.CountPaidByStoreID(store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOrderRepository_UpdateKeepsItems(t *testing.T) {
	_, orderRepo, store, product := setupOrderRepoTest(t)

	order := &model.Order{
		StoreID:    store.ID,
		OrderItems: []model.OrderItem{{ProductID: product.ID}},
	}
	require.NoError(t, orderRepo.Create(order))

	order.IsPaid = true
	require.NoError(t, orderRepo.Update(order))

	found, err := orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	assert.True(t, found.IsPaid)
	assert.Len(t, found.OrderItems, 1)
}
