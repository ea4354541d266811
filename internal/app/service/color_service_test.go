package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorService_CRUD(t *testing.T) {
	f := newTestFixture(t)
	colorService := NewColorService(f.ColorRepo, f.StoreRepo)

	color, err := colorService.CreateColor(f.Owner.ID, f.Store.ID, "Navy", "#000080")
	require.NoError(t, err)
	assert.NotEmpty(t, color.ID)
	assert.Equal(t, "#000080", color.Value)

	updated, err := colorService.UpdateColor(f.Owner.ID, f.Store.ID, color.ID, "Midnight", "#191970")
	require.NoError(t, err)
	assert.Equal(t, "Midnight", updated.Name)

	require.NoError(t, colorService.DeleteColor(f.Owner.ID, f.Store.ID, color.ID))

	_, err = colorService.GetColorByID(f.Store.ID, color.ID)
	assert.ErrorIs(t, err, ErrColorNotFound)
}

func TestColorService_DeleteInUse(t *testing.T) {
	f := newTestFixture(t)
	colorService := NewColorService(f.ColorRepo, f.StoreRepo)

	category, size, color := f.createCatalog(t, f.Store)
	product := f.createProduct(t, f.Store, category, size, color, "Linen Shirt", "39.00")

	err := colorService.DeleteColor(f.Owner.ID, f.Store.ID, color.ID)
	assert.ErrorIs(t, err, ErrColorInUse)

	require.NoError(t, f.ProductRepo.Delete(product.ID))
	require.NoError(t, colorService.DeleteColor(f.Owner.ID, f.Store.ID, color.ID))
}

func TestColorService_NonOwnerRejected(t *testing.T) {
	f := newTestFixture(t)
	colorService := NewColorService(f.ColorRepo, f.StoreRepo)

	_, err := colorService.CreateColor(f.Stranger.ID, f.Store.ID, "Red", "#FF0000")
	assert.ErrorIs(t, err, ErrStoreAccessDenied)

	colors, err := colorService.ListColors(f.Store.ID)
	require.NoError(t, err)
	assert.Len(t, colors, 0)
}
