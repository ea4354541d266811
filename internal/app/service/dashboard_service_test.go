package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardService(f *testFixture) DashboardService {
	return NewDashboardService(f.OrderRepo, f.ProductRepo, f.StoreRepo)
}

func TestDashboardService_GetOverview_EmptyStore(t *testing.T) {
	f := newTestFixture(t)
	dashboardService := setupDashboardService(f)

	overview, err := dashboardService.GetOverview(f.Owner.ID, f.Store.ID)
	require.NoError(t, err)
	assert.True(t, overview.TotalRevenue.IsZero())
	assert.Equal(t, int64(0), overview.SalesCount)
	assert.Equal(t, int64(0), overview.StockCount)
}

func TestDashboardService_GetOverview_Revenue(t *testing.T) {
	f := newTestFixture(t)
	dashboardService := setupDashboardService(f)

	category, size, color := f.createCatalog(t, f.Store)
	shirt := f.createProduct(t, f.Store, category, size, color, "Shirt", "10.00")
	pants := f.createProduct(t, f.Store, category, size, color, "Pants", "15.50")

	// 결제 완료 주문 1건 (10.00 + 15.50)
	f.createOrder(t, f.Store, true, shirt, pants)

	// 미결제 주문은 매출에 포함되지 않는다
	f.createOrder(t, f.Store, false, shirt)

	overview, err := dashboardService.GetOverview(f.Owner.ID, f.Store.ID)
	require.NoError(t, err)
	assert.True(t, overview.TotalRevenue.Equal(decimal.RequireFromString("25.50")),
		"got %s", overview.TotalRevenue)
	assert.Equal(t, int64(1), overview.SalesCount)
	assert.Equal(t, int64(2), overview.StockCount)
}

func TestDashboardService_GetOverview_DuplicateItemsCountEach(t *testing.T) {
	f := newTestFixture(t)
	dashboardService := setupDashboardService(f)

	category, size, color := f.createCatalog(t, f.Store)
	shirt := f.createProduct(t, f.Store, category, size, color, "Shirt", "10.00")

	// 같은 상품이 두 항목이면 두 번 합산된다
	f.createOrder(t, f.Store, true, shirt, shirt)

	overview, err := dashboardService.GetOverview(f.Owner.ID, f.Store.ID)
	require.NoError(t, err)
	assert.True(t, overview.TotalRevenue.Equal(decimal.RequireFromString("20.00")),
		"got %s", overview.TotalRevenue)
}

func TestDashboardService_GetOverview_StockExcludesArchived(t *testing.T) {
	f := newTestFixture(t)
	dashboardService := setupDashboardService(f)

	category, size, color := f.createCatalog(t, f.Store)
	f.createProduct(t, f.Store, category, size, color, "Shirt", "10.00")
	archived := f.createProduct(t, f.Store, category, size, color, "Old Coat", "99.00")
	require.NoError(t, f.DB.Model(archived).Update("is_archived", true).Error)

	overview, err := dashboardService.GetOverview(f.Owner.ID, f.Store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.StockCount)
}

func TestDashboardService_GetOverview_OwnerOnly(t *testing.T) {
	f := newTestFixture(t)
	dashboardService := setupDashboardService(f)

	_, err := dashboardService.GetOverview(f.Stranger.ID, f.Store.ID)
	assert.ErrorIs(t, err, ErrStoreAccessDenied)

	_, err = dashboardService.GetOverview(f.Owner.ID, "no-such-store")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestDashboardService_GetGraphRevenue(t *testing.T) {
	f := newTestFixture(t)
	dashboardService := setupDashboardService(f)

	category, size, color := f.createCatalog(t, f.Store)
	shirt := f.createProduct(t, f.Store, category, size, color, "Shirt", "10.00")
	pants := f.createProduct(t, f.Store, category, size, color, "Pants", "15.50")

	year := time.Now().Year()

	march := f.createOrder(t, f.Store, true, shirt, pants)
	require.NoError(t, f.DB.Model(march).Update("created_at", time.Date(year, time.March, 5, 12, 0, 0, 0, time.UTC)).Error)

	december := f.createOrder(t, f.Store, true, shirt)
	require.NoError(t, f.DB.Model(december).Update("created_at", time.Date(year, time.December, 24, 12, 0, 0, 0, time.UTC)).Error)

	// 작년 주문은 올해 그래프에서 제외
	lastYear := f.createOrder(t, f.Store, true, pants)
	require.NoError(t, f.DB.Model(lastYear).Update("created_at", time.Date(year-1, time.March, 5, 12, 0, 0, 0, time.UTC)).Error)

	points, err := dashboardService.GetGraphRevenue(f.Owner.ID, f.Store.ID, year)
	require.NoError(t, err)
	require.Len(t, points, 12)

	assert.Equal(t, "Jan", points[0].Name)
	assert.True(t, points[0].Total.IsZero())
	assert.True(t, points[2].Total.Equal(decimal.RequireFromString("25.50")), "march got %s", points[2].Total)
	assert.True(t, points[11].Total.Equal(decimal.RequireFromString("10.00")), "december got %s", points[11].Total)
}
