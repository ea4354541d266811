package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBillboardService(f *testFixture) BillboardService {
	return NewBillboardService(f.BillboardRepo, f.StoreRepo)
}

func TestBillboardService_CreateBillboard(t *testing.T) {
	f := newTestFixture(t)
	billboardService := setupBillboardService(f)

	t.Run("Owner can create", func(t *testing.T) {
		billboard, err := billboardService.CreateBillboard(f.Owner.ID, f.Store.ID, "Summer Sale", "https://cdn.example.com/summer.jpg")
		require.NoError(t, err)
		assert.NotEmpty(t, billboard.ID)
		assert.Equal(t, f.Store.ID, billboard.StoreID)
		assert.Equal(t, "Summer Sale", billboard.Label)
	})

	t.Run("Non-owner is rejected without write", func(t *testing.T) {
		_, err := billboardService.CreateBillboard(f.Stranger.ID, f.Store.ID, "Intruder", "https://cdn.example.com/x.jpg")
		assert.ErrorIs(t, err, ErrStoreAccessDenied)

		billboards, err := billboardService.ListBillboards(f.Store.ID)
		require.NoError(t, err)
		assert.Len(t, billboards, 1)
	})

	t.Run("Unknown store", func(t *testing.T) {
		_, err := billboardService.CreateBillboard(f.Owner.ID, "no-such-store", "Label", "https://cdn.example.com/x.jpg")
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestBillboardService_GetBillboardByID(t *testing.T) {
	f := newTestFixture(t)
	billboardService := setupBillboardService(f)

	billboard := f.createBillboard(t, f.Store, "main")

	found, err := billboardService.GetBillboardByID(f.Store.ID, billboard.ID)
	require.NoError(t, err)
	assert.Equal(t, billboard.ID, found.ID)

	// 다른 매장 경로로는 조회되지 않는다
	otherStore := f.createStore(t, f.Stranger, "Other Store")
	_, err = billboardService.GetBillboardByID(otherStore.ID, billboard.ID)
	assert.ErrorIs(t, err, ErrBillboardNotFound)
}

func TestBillboardService_UpdateBillboard(t *testing.T) {
	f := newTestFixture(t)
	billboardService := setupBillboardService(f)

	billboard := f.createBillboard(t, f.Store, "old")

	updated, err := billboardService.UpdateBillboard(f.Owner.ID, f.Store.ID, billboard.ID, "new", "https://cdn.example.com/new.jpg")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Label)
	assert.Equal(t, "https://cdn.example.com/new.jpg", updated.ImageURL)

	_, err = billboardService.UpdateBillboard(f.Stranger.ID, f.Store.ID, billboard.ID, "hijack", "x")
	assert.ErrorIs(t, err, ErrStoreAccessDenied)
}

func TestBillboardService_DeleteBillboard(t *testing.T) {
	f := newTestFixture(t)
	billboardService := setupBillboardService(f)

	billboard := f.createBillboard(t, f.Store, "main")
	category := f.createCategory(t, f.Store, billboard, "Shirts")

	// 카테고리가 참조 중이면 거부
	err := billboardService.DeleteBillboard(f.Owner.ID, f.Store.ID, billboard.ID)
	assert.ErrorIs(t, err, ErrBillboardInUse)

	_, err = billboardService.GetBillboardByID(f.Store.ID, billboard.ID)
	require.NoError(t, err)

	// 카테고리 제거 후에는 성공
	require.NoError(t, f.CategoryRepo.Delete(category.ID))

	err = billboardService.DeleteBillboard(f.Owner.ID, f.Store.ID, billboard.ID)
	require.NoError(t, err)

	_, err = billboardService.GetBillboardByID(f.Store.ID, billboard.ID)
	assert.ErrorIs(t, err, ErrBillboardNotFound)
}
