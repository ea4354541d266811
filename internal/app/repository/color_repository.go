package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type ColorRepository interface {
	Create(color *model.Color) error
	Update(color *model.Color) error
	Delete(id string) error
	FindByID(id string) (*model.Color, error)
	FindByIDAndStoreID(id, storeID string) (*model.Color, error)
	FindAllByStoreID(storeID string) ([]model.Color, error)
	CountProducts(id string) (int64, error)
}

type colorRepository struct {
	db *gorm.DB
}

func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(color *model.Color) error {
	if err := r.db.Create(color).Error; err != nil {
		logger.Error("Failed to create color in database", err, map[string]interface{}{
			"name":     color.Name,
			"store_id": color.StoreID,
		})
		return err
	}
	return nil
}

func (r *colorRepository) Update(color *model.Color) error {
	if err := r.db.Save(color).Error; err != nil {
		logger.Error("Failed to update color in database", err, map[string]interface{}{
			"color_id": color.ID,
		})
		return err
	}
	return nil
}

func (r *colorRepository) Delete(id string) error {
	if err := r.db.Delete(&model.Color{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete color from database", err, map[string]interface{}{
			"color_id": id,
		})
		return err
	}
	return nil
}

func (r *colorRepository) FindByID(id string) (*model.Color, error) {
	var color model.Color
	if err := r.db.First(&color, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) FindByIDAndStoreID(id, storeID string) (*model.Color, error) {
	var color model.Color
	if err := r.db.First(&color, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) FindAllByStoreID(storeID string) ([]model.Color, error) {
	var colors []model.Color
	if err := r.db.Where("store_id = ?", storeID).Order("created_at DESC").Find(&colors).Error; err != nil {
		logger.Error("Failed to find colors by store ID", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return colors, nil
}

// CountProducts 이 색상을 참조하는 상품 수 (삭제 사전 검사용)
func (r *colorRepository) CountProducts(id string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Where("color_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
