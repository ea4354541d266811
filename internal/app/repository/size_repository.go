package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type SizeRepository interface {
	Create(size *model.Size) error
	Update(size *model.Size) error
	Delete(id string) error
	FindByID(id string) (*model.Size, error)
	FindByIDAndStoreID(id, storeID string) (*model.Size, error)
	FindAllByStoreID(storeID string) ([]model.Size, error)
	CountProducts(id string) (int64, error)
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepository {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(size *model.Size) error {
	if err := r.db.Create(size).Error; err != nil {
		logger.Error("Failed to create size in database", err, map[string]interface{}{
			"name":     size.Name,
			"store_id": size.StoreID,
		})
		return err
	}
	return nil
}

func (r *sizeRepository) Update(size *model.Size) error {
	if err := r.db.Save(size).Error; err != nil {
		logger.Error("Failed to update size in database", err, map[string]interface{}{
			"size_id": size.ID,
		})
		return err
	}
	return nil
}

func (r *sizeRepository) Delete(id string) error {
	if err := r.db.Delete(&model.Size{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete size from database", err, map[string]interface{}{
			"size_id": id,
		})
		return err
	}
	return nil
}

func (r *sizeRepository) FindByID(id string) (*model.Size, error) {
	var size model.Size
	if err := r.db.First(&size, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) FindByIDAndStoreID(id, storeID string) (*model.Size, error) {
	var size model.Size
	if err := r.db.First(&size, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) FindAllByStoreID(storeID string) ([]model.Size, error) {
	var sizes []model.Size
	if err := r.db.Where("store_id = ?", storeID).Order("created_at DESC").Find(&sizes).Error; err != nil {
		logger.Error("Failed to find sizes by store ID", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return sizes, nil
}

// CountProducts 이 사이즈를 참조하는 상품 수 (삭제 사전 검사용)
func (r *sizeRepository) CountProducts(id string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Where("size_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
