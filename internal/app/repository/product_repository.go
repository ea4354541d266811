package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

// ProductFilter 상품 목록 필터. 보관 상품은 기본적으로 제외된다.
type ProductFilter struct {
	StoreID         string
	CategoryID      string
	SizeID          string
	ColorID         string
	IsFeatured      *bool
	IncludeArchived bool
	Limit           int
	Offset          int
}

type ProductRepository interface {
	Create(product *model.Product) error
	Update(product *model.Product, images []model.Image) error
	Delete(id string) error
	FindByID(id string) (*model.Product, error)
	FindByIDAndStoreID(id, storeID string) (*model.Product, error)
	FindWithFilter(filter ProductFilter) ([]model.Product, error)
	CountInStock(storeID string) (int64, error)
	CountOrderItems(id string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Images").
		Preload("Category").
		Preload("Size").
		Preload("Color")
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":        product.Name,
		"store_id":    product.StoreID,
		"category_id": product.CategoryID,
		"image_count": len(product.Images),
	})

	// 상품과 이미지가 함께 저장됨 (association)
	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name":     product.Name,
			"store_id": product.StoreID,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

// Update 상품 필드를 저장하고 이미지 집합을 통째로 교체한다.
func (r *productRepository) Update(product *model.Product, images []model.Image) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id":  product.ID,
		"name":        product.Name,
		"image_count": len(images),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		product.Images = nil
		if err := tx.Save(product).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().Where("product_id = ?", product.ID).Delete(&model.Image{}).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].ProductID = product.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}

		product.Images = images
		return nil
	})
	if err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id string) error {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// 이미지는 상품과 함께 삭제 (cascade)
		if err := tx.Where("product_id = ?", id).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
	if err != nil {
		logger.Error("Failed to delete product from database", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	return nil
}

func (r *productRepository) FindByID(id string) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, "products.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByIDAndStoreID(id, storeID string) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, "products.id = ? AND products.store_id = ?", id, storeID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindWithFilter(filter ProductFilter) ([]model.Product, error) {
	logger.Debug("Finding products with filter", map[string]interface{}{
		"store_id":    filter.StoreID,
		"category_id": filter.CategoryID,
		"size_id":     filter.SizeID,
		"color_id":    filter.ColorID,
		"is_featured": filter.IsFeatured,
		"archived":    filter.IncludeArchived,
	})

	query := r.baseQuery().Where("products.store_id = ?", filter.StoreID)

	if filter.CategoryID != "" {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.SizeID != "" {
		query = query.Where("products.size_id = ?", filter.SizeID)
	}
	if filter.ColorID != "" {
		query = query.Where("products.color_id = ?", filter.ColorID)
	}
	if filter.IsFeatured != nil {
		query = query.Where("products.is_featured = ?", *filter.IsFeatured)
	}
	if !filter.IncludeArchived {
		query = query.Where("products.is_archived = ?", false)
	}

	query = query.Order("products.created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		logger.Error("Failed to find products with filter", err, map[string]interface{}{
			"store_id": filter.StoreID,
		})
		return nil, err
	}

	logger.Debug("Products found with filter", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

// CountInStock 판매 중(보관 제외) 상품 수
func (r *productRepository) CountInStock(storeID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Product{}).
		Where("store_id = ? AND is_archived = ?", storeID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountOrderItems 이 상품을 참조하는 주문 항목 수 (삭제 사전 검사용)
func (r *productRepository) CountOrderItems(id string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.OrderItem{}).Where("product_id = ?", id).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
