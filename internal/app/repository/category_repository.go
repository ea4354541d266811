package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	Update(category *model.Category) error
	Delete(id string) error
	FindByID(id string) (*model.Category, error)
	FindByIDAndStoreID(id, storeID string) (*model.Category, error)
	FindAllByStoreID(storeID string) ([]model.Category, error)
	CountProducts(id string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name":         category.Name,
		"store_id":     category.StoreID,
		"billboard_id": category.BillboardID,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name":     category.Name,
			"store_id": category.StoreID,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	logger.Debug("Updating category in database", map[string]interface{}{
		"category_id": category.ID,
	})

	if err := r.db.Save(category).Error; err != nil {
		logger.Error("Failed to update category in database", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) Delete(id string) error {
	logger.Debug("Deleting category from database", map[string]interface{}{
		"category_id": id,
	})

	if err := r.db.Delete(&model.Category{}, "id = ?", id).Error; err != nil {
		logger.Error("Failed to delete category from database", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindByID(id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("Billboard").First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByIDAndStoreID(id, storeID string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("Billboard").First(&category, "id = ? AND store_id = ?", id, storeID).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAllByStoreID(storeID string) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Preload("Billboard").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&categories).Error; err != nil {
		logger.Error("Failed to find categories by store ID", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return categories, nil
}

// CountProducts 이 카테고리를 참조하는 상품 수 (삭제 사전 검사용)
func (r *categoryRepository) CountProducts(id string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
