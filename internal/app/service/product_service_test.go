package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
)

func setupProductService(f *testFixture) ProductService {
	return NewProductService(f.ProductRepo, f.CategoryRepo, f.SizeRepo, f.ColorRepo, f.StoreRepo)
}

func productInput(category, size, color string, urls ...string) ProductInput {
	return ProductInput{
		Name:       "Linen Shirt",
		Price:      decimal.RequireFromString("39.00"),
		CategoryID: category,
		SizeID:     size,
		ColorID:    color,
		ImageURLs:  urls,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	f := newTestFixture(t)
	productService := setupProductService(f)

	category, size, color := f.createCatalog(t, f.Store)

	t.Run("Creates product with images", func(t *testing.T) {
		input := productInput(category.ID, size.ID, color.ID,
			"https://cdn.example.com/p/front.jpg",
			"https://cdn.example.com/p/back.jpg",
		)

		product, err := productService.CreateProduct(f.Owner.ID, f.Store.ID, input)
		require.NoError(t, err)
		assert.NotEmpty(t, product.ID)
		assert.True(t, product.Price.Equal(decimal.RequireFromString("39.00")))
		assert.Len(t, product.Images, 2)
		assert.Equal(t, category.ID, product.Category.ID)
	})

	t.Run("Rejects category from another store", func(t *testing.T) {
		otherStore := f.createStore(t, f.Stranger, "Other Store")
		otherCategory, _, _ := f.createCatalog(t, otherStore)

		input := productInput(otherCategory.ID, size.ID, color.ID, "https://cdn.example.com/x.jpg")
		_, err := productService.CreateProduct(f.Owner.ID, f.Store.ID, input)
		assert.ErrorIs(t, err, ErrCategoryNotInStore)
	})

	t.Run("Rejects size from another store", func(t *testing.T) {
		otherStore := f.createStore(t, f.Stranger, "Size Store")
		_, otherSize, _ := f.createCatalog(t, otherStore)

		input := productInput(category.ID, otherSize.ID, color.ID, "https://cdn.example.com/x.jpg")
		_, err := productService.CreateProduct(f.Owner.ID, f.Store.ID, input)
		assert.ErrorIs(t, err, ErrSizeNotInStore)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		input := productInput(category.ID, size.ID, color.ID, "https://cdn.example.com/x.jpg")
		_, err := productService.CreateProduct(f.Stranger.ID, f.Store.ID, input)
		assert.ErrorIs(t, err, ErrStoreAccessDenied)
	})
}

func TestProductService_UpdateProduct_ReplacesImages(t *testing.T) {
	f := newTestFixture(t)
	productService := setupProductService(f)

	category, size, color := f.createCatalog(t, f.Store)

	created, err := productService.CreateProduct(f.Owner.ID, f.Store.ID,
		productInput(category.ID, size.ID, color.ID, "https://cdn.example.com/old1.jpg", "https://cdn.example.com/old2.jpg"))
	require.NoError(t, err)

	input := productInput(category.ID, size.ID, color.ID, "https://cdn.example.com/new.jpg")
	input.Name = "Silk Shirt"
	input.Price = decimal.RequireFromString("59.50")
	input.IsFeatured = true

	updated, err := productService.UpdateProduct(f.Owner.ID, f.Store.ID, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Silk Shirt", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("59.50")))
	assert.True(t, updated.IsFeatured)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "https://cdn.example.com/new.jpg", updated.Images[0].URL)
}

func TestProductService_ListProducts_Filters(t *testing.T) {
	f := newTestFixture(t)
	productService := setupProductService(f)

	category, size, color := f.createCatalog(t, f.Store)
	secondCategory := f.createCategory(t, f.Store, f.createBillboard(t, f.Store, "second"), "Pants")

	f.createProduct(t, f.Store, category, size, color, "Shirt A", "10.00")
	f.createProduct(t, f.Store, secondCategory, size, color, "Pants A", "20.00")

	archived := f.createProduct(t, f.Store, category, size, color, "Old Shirt", "5.00")
	require.NoError(t, f.DB.Model(archived).Update("is_archived", true).Error)

	featured := f.createProduct(t, f.Store, category, size, color, "Star Shirt", "30.00")
	require.NoError(t, f.DB.Model(featured).Update("is_featured", true).Error)

	t.Run("Archived excluded by default", func(t *testing.T) {
		products, err := productService.ListProducts(repository.ProductFilter{StoreID: f.Store.ID})
		require.NoError(t, err)
		assert.Len(t, products, 3)
		for _, p := range products {
			assert.False(t, p.IsArchived)
		}
	})

	t.Run("Filter by category", func(t *testing.T) {
		products, err := productService.ListProducts(repository.ProductFilter{
			StoreID:    f.Store.ID,
			CategoryID: secondCategory.ID,
		})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Pants A", products[0].Name)
	})

	t.Run("Filter by featured", func(t *testing.T) {
		isFeatured := true
		products, err := productService.ListProducts(repository.ProductFilter{
			StoreID:    f.Store.ID,
			IsFeatured: &isFeatured,
		})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Star Shirt", products[0].Name)
	})

	t.Run("Archived included on request", func(t *testing.T) {
		products, err := productService.ListProducts(repository.ProductFilter{
			StoreID:         f.Store.ID,
			IncludeArchived: true,
		})
		require.NoError(t, err)
		assert.Len(t, products, 4)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	f := newTestFixture(t)
	productService := setupProductService(f)

	category, size, color := f.createCatalog(t, f.Store)
	product := f.createProduct(t, f.Store, category, size, color, "Linen Shirt", "39.00")
	order := f.createOrder(t, f.Store, true, product)

	// 주문 항목이 참조 중이면 거부
	err := productService.DeleteProduct(f.Owner.ID, f.Store.ID, product.ID)
	assert.ErrorIs(t, err, ErrProductInUse)

	_, err = productService.GetProductByID(f.Store.ID, product.ID)
	require.NoError(t, err)

	// 주문 항목 제거 후에는 성공
	require.NoError(t, f.DB.Exec("DELETE FROM order_items WHERE order_id = ?", order.ID).Error)

	err = productService.DeleteProduct(f.Owner.ID, f.Store.ID, product.ID)
	require.NoError(t, err)

	_, err = productService.GetProductByID(f.Store.ID, product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
