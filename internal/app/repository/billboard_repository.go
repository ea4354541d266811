package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type BillboardRepository interface {
	Create(billboard *model.Billboard) error
	Update(billboard *model.Billboard) error
	Delete(id string) error
	FindByID(id string) (*model.Billboard, error)
	FindByIDAndStoreID(id, storeID string) (*model.Billboard, error)
	FindAllByStoreID(storeID string) ([]model.Billboard, error)
	CountCategories(id string) (int64, error)
}

type billboardRepository struct {
	db *gorm.DB
}

func NewBillboardRepository(db *gorm.DB) BillboardRepository {
	return &billboardRepository{db: db}
}

func (r *billboardRepository) Create(billboard *model.Billboard) error {
	logger.Debug("Creating billboard in database", map[string]interface{}{
		"label":    billboard.Label,
		"store_id": billboard.StoreID,
	})

	if err := r.db.Create(billboard).Error; err != nil {
		logger.Error("Failed to create billboard in database", err, map[string]interface{}{
			"label":    billboard.Label,
			"store_id": billboard.StoreID,
		})
		return err
	}

	logger.Debug("Billboard created in database", map[string]interface{}{
		"billboard_id": billboard.ID,
		"store_id":     billboard.StoreID,
	})
	return nil
}

func (r *billboardRepository) Update(billboard *model.Billboard) error {
	logger.Debug("Updating billboard in database", map[string]interface{}{
		"billboard_id": billboard.ID,
	})

	if err := r.db.Save(billboard).Error; err != nil {
		logger.Error("Failed to update billboard in database", err, map[string]interface{}{
			"billboard_id": billboard.ID,
		})
		return err
	}
	return nil
}

func (r *billboardRepository) Delete(id string) error {
	logger.Debug("Deleting billboard from database", map[string]interface{}{
		"billboard_id": id,
	})

	if err := r.db.Delete(&model.Billboard{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete billboard from database", err, map[string]interface{}{
			"billboard_id": id,
		})
		return err
	}
	return nil
}

func (r *billboardRepository) FindByID(id string) (*model.Billboard, error) {
	var billboard model.Billboard
	if err := r.db.First(&billboard, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &billboard, nil
}

func (r *billboardRepository) FindByIDAndStoreID(id, storeID string) (*model.Billboard, error) {
	var billboard model.Billboard
	if err := r.db.First(&billboard, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		return nil, err
	}
	return &billboard, nil
}

func (r *billboardRepository) FindAllByStoreID(storeID string) ([]model.Billboard, error) {
	var billboards []model.Billboard
	if err := r.db.Where("store_id = ?", storeID).Order("created_at DESC").Find(&billboards).Error; err != nil {
		logger.Error("Failed to find billboards by store ID", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return billboards, nil
}

// CountCategories 이 빌보드를 참조하는 카테고리 수 (삭제 사전 검사용)
func (r *billboardRepository) CountCategories(id string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Where("billboard_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
