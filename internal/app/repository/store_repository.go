package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	Update(store *model.Store) error
	Delete(id string) error
	FindByID(id string) (*model.Store, error)
	FindByIDAndUserID(id, userID string) (*model.Store, error)
	FindByUserID(userID string) ([]model.Store, error)
	CountDependents(id string) (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	logger.Debug("Creating store in database", map[string]interface{}{
		"name":    store.Name,
		"user_id": store.UserID,
	})

	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name":    store.Name,
			"user_id": store.UserID,
		})
		return err
	}

	logger.Debug("Store created in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return nil
}

func (r *storeRepository) Update(store *model.Store) error {
	logger.Debug("Updating store in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})

	if err := r.db.Save(store).Error; err != nil {
		logger.Error("Failed to update store in database", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

func (r *storeRepository) Delete(id string) error {
	logger.Debug("Deleting store from database", map[string]interface{}{
		"store_id": id,
	})

	if err := r.db.Delete(&model.Store{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete store from database", err, map[string]interface{}{
			"store_id": id,
		})
		return err
	}
	return nil
}

func (r *storeRepository) FindByID(id string) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// FindByIDAndUserID 매장 소유권 검사용 조회. 소유자가 아니면 gorm.ErrRecordNotFound.
func (r *storeRepository) FindByIDAndUserID(id, userID string) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByUserID(userID string) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&stores).Error; err != nil {
		logger.Error("Failed to find stores by user ID", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return stores, nil
}

// CountDependents 매장에 연결된 하위 리소스 수 (삭제 사전 검사용)
func (r *storeRepository) CountDependents(id string) (int64, error) {
	var total int64

	counts := []struct {
		model interface{}
	}{
		{&model.Billboard{}},
		{&model.Category{}},
		{&model.Size{}},
		{&model.Color{}},
		{&model.Product{}},
		{&model.Order{}},
	}

	for _, c := range counts {
		var count int64
		if err := r.db.Model(c.model).Where("store_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}

	return total, nil
}
