package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/internal/db"
	"gorm.io/gorm"
)

// testFixture 서비스 테스트 공통 준비물: 소유자, 타인, 매장, 카탈로그 기본 리소스
type testFixture struct {
	DB *gorm.DB

	StoreRepo     repository.StoreRepository
	BillboardRepo repository.BillboardRepository
	CategoryRepo  repository.CategoryRepository
	SizeRepo      repository.SizeRepository
	ColorRepo     repository.ColorRepository
	ProductRepo   repository.ProductRepository
	OrderRepo     repository.OrderRepository

	Owner    *model.User
	Stranger *model.User
	Store    *model.Store
}

func newTestFixture(t *testing.T) *testFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	f := &testFixture{
		DB:            testDB,
		StoreRepo:     repository.NewStoreRepository(testDB),
		BillboardRepo: repository.NewBillboardRepository(testDB),
		CategoryRepo:  repository.NewCategoryRepository(testDB),
		SizeRepo:      repository.NewSizeRepository(testDB),
		ColorRepo:     repository.NewColorRepository(testDB),
		ProductRepo:   repository.NewProductRepository(testDB),
		OrderRepo:     repository.NewOrderRepository(testDB),
	}

	f.Owner = f.createUser(t, "owner")
	f.Stranger = f.createUser(t, "stranger")
	f.Store = f.createStore(t, f.Owner, "Test Store")

	return f
}

func (f *testFixture) createUser(t *testing.T, prefix string) *model.User {
	user := &model.User{
		Email:        fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano()),
		PasswordHash: "hashed-password",
		Name:         "Test User",
	}
	require.NoError(t, f.DB.Create(user).Error)
	return user
}

func (f *testFixture) createStore(t *testing.T, owner *model.User, name string) *model.Store {
	store := &model.Store{
		UserID: owner.ID,
		Name:   name,
	}
	require.NoError(t, f.DB.Create(store).Error)
	return store
}

func (f *testFixture) createBillboard(t *testing.T, store *model.Store, label string) *model.Billboard {
	billboard := &model.Billboard{
		StoreID:  store.ID,
		Label:    label,
		ImageURL: "https://cdn.example.com/billboards/" + label + ".jpg",
	}
	require.NoError(t, f.DB.Create(billboard).Error)
	return billboard
}

func (f *testFixture) createCategory(t *testing.T, store *model.Store, billboard *model.Billboard, name string) *model.Category {
	category := &model.Category{
		StoreID:     store.ID,
		BillboardID: billboard.ID,
		Name:        name,
	}
	require.NoError(t, f.DB.Create(category).Error)
	return category
}

func (f *testFixture) createSize(t *testing.T, store *model.Store, name, value string) *model.Size {
	size := &model.Size{
		StoreID: store.ID,
		Name:    name,
		Value:   value,
	}
	require.NoError(t, f.DB.Create(size).Error)
	return size
}

func (f *testFixture) createColor(t *testing.T, store *model.Store, name, value string) *model.Color {
	color := &model.Color{
		StoreID: store.ID,
		Name:    name,
		Value:   value,
	}
	require.NoError(t, f.DB.Create(color).Error)
	return color
}

// createCatalog 빌보드-카테고리-사이즈-색상을 한 번에 만든다
func (f *testFixture) createCatalog(t *testing.T, store *model.Store) (*model.Category, *model.Size, *model.Color) {
	billboard := f.createBillboard(t, store, "main")
	category := f.createCategory(t, store, billboard, "Shirts")
	size := f.createSize(t, store, "Large", "L")
	color := f.createColor(t, store, "Black", "#000000")
	return category, size, color
}

func (f *testFixture) createProduct(t *testing.T, store *model.Store, category *model.Category, size *model.Size, color *model.Color, name, price string) *model.Product {
	product := &model.Product{
		StoreID:    store.ID,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
	}
	require.NoError(t, f.DB.Create(product).Error)
	return product
}

func (f *testFixture) createOrder(t *testing.T, store *model.Store, isPaid bool, products ...*model.Product) *model.Order {
	items := make([]model.OrderItem, 0, len(products))
	for _, p := range products {
		items = append(items, model.OrderItem{ProductID: p.ID})
	}
	order := &model.Order{
		StoreID:    store.ID,
		IsPaid:     isPaid,
		Phone:      "010-1234-5678",
		Address:    "서울시 강남구 테스트로 1",
		OrderItems: items,
	}
	require.NoError(t, f.DB.Create(order).Error)
	return order
}
