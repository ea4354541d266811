package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreService_CreateStore(t *testing.T) {
	f := newTestFixture(t)
	storeService := NewStoreService(f.StoreRepo)

	store, err := storeService.CreateStore(f.Owner.ID, "New Store")
	require.NoError(t, err)
	assert.NotEmpty(t, store.ID)
	assert.Equal(t, f.Owner.ID, store.UserID)
	assert.Equal(t, "New Store", store.Name)
}

func TestStoreService_GetStoresByUserID(t *testing.T) {
	f := newTestFixture(t)
	storeService := NewStoreService(f.StoreRepo)

	f.createStore(t, f.Owner, "Second Store")
	f.createStore(t, f.Stranger, "Other Owner Store")

	stores, err := storeService.GetStoresByUserID(f.Owner.ID)
	require.NoError(t, err)
	assert.Len(t, stores, 2)
	for _, s := range stores {
		assert.Equal(t, f.Owner.ID, s.UserID)
	}
}

func TestStoreService_UpdateStore(t *testing.T) {
	f := newTestFixture(t)
	storeService := NewStoreService(f.StoreRepo)

	t.Run("Owner can update", func(t *testing.T) {
		updated, err := storeService.UpdateStore(f.Owner.ID, f.Store.ID, "Renamed Store")
		require.NoError(t, err)
		assert.Equal(t, "Renamed Store", updated.Name)
	})

	t.Run("Non-owner is rejected without write", func(t *testing.T) {
		_, err := storeService.UpdateStore(f.Stranger.ID, f.Store.ID, "Hijacked")
		assert.ErrorIs(t, err, ErrStoreAccessDenied)

		store, err := storeService.GetStoreByID(f.Store.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Store", store.Name)
	})

	t.Run("Unknown store", func(t *testing.T) {
		_, err := storeService.UpdateStore(f.Owner.ID, "no-such-store", "Name")
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestStoreService_DeleteStore(t *testing.T) {
	f := newTestFixture(t)
	storeService := NewStoreService(f.StoreRepo)

	t.Run("Rejected while dependents exist", func(t *testing.T) {
		billboard := f.createBillboard(t, f.Store, "seasonal")

		err := storeService.DeleteStore(f.Owner.ID, f.Store.ID)
		assert.ErrorIs(t, err, ErrStoreInUse)

		// 거부 후에도 매장은 그대로
		store, err := storeService.GetStoreByID(f.Store.ID)
		require.NoError(t, err)
		assert.Equal(t, f.Store.ID, store.ID)

		require.NoError(t, f.BillboardRepo.Delete(billboard.ID))
	})

	t.Run("Non-owner cannot delete", func(t *testing.T) {
		err := storeService.DeleteStore(f.Stranger.ID, f.Store.ID)
		assert.ErrorIs(t, err, ErrStoreAccessDenied)
	})

	t.Run("Succeeds once empty", func(t *testing.T) {
		err := storeService.DeleteStore(f.Owner.ID, f.Store.ID)
		require.NoError(t, err)

		_, err = storeService.GetStoreByID(f.Store.ID)
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}
