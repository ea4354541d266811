package service

import (
	"errors"

	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("카테고리를 찾을 수 없습니다")
	ErrCategoryInUse       = errors.New("이 카테고리를 사용하는 상품을 먼저 삭제해주세요")
	ErrBillboardNotInStore = errors.New("같은 매장의 빌보드만 선택할 수 있습니다")
)

type CategoryService interface {
	CreateCategory(userID, storeID, name, billboardID string) (*model.Category, error)
	ListCategories(storeID string) ([]model.Category, error)
	GetCategoryByID(storeID, id string) (*model.Category, error)
	UpdateCategory(userID, storeID, id, name, billboardID string) (*model.Category, error)
	DeleteCategory(userID, storeID, id string) error
}

type categoryService struct {
	categoryRepo  repository.CategoryRepository
	billboardRepo repository.BillboardRepository
	storeRepo     repository.StoreRepository
}

func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	billboardRepo repository.BillboardRepository,
	storeRepo repository.StoreRepository,
) CategoryService {
	return &categoryService{
		categoryRepo:  categoryRepo,
		billboardRepo: billboardRepo,
		storeRepo:     storeRepo,
	}
}

// validateBillboard 빌보드가 같은 매장 소속인지 검사
func (s *categoryService) validateBillboard(storeID, billboardID string) error {
	if _, err := s.billboardRepo.FindByIDAndStoreID(billboardID, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Billboard does not belong to store", map[string]interface{}{
				"billboard_id": billboardID,
				"store_id":     storeID,
			})
			return ErrBillboardNotInStore
		}
		return err
	}
	return nil
}

func (s *categoryService) CreateCategory(userID, storeID, name, billboardID string) (*model.Category, error) {
	logger.Info("Creating category", map[string]interface{}{
		"store_id":     storeID,
		"user_id":      userID,
		"name":         name,
		"billboard_id": billboardID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	if err := s.validateBillboard(storeID, billboardID); err != nil {
		return nil, err
	}

	category := &model.Category{
		StoreID:     storeID,
		BillboardID: billboardID,
		Name:        name,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}

	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"store_id":    storeID,
	})
	return category, nil
}

func (s *categoryService) ListCategories(storeID string) ([]model.Category, error) {
	return s.categoryRepo.FindAllByStoreID(storeID)
}

func (s *categoryService) GetCategoryByID(storeID, id string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(userID, storeID, id, name, billboardID string) (*model.Category, error) {
	logger.Info("Updating category", map[string]interface{}{
		"category_id": id,
		"store_id":    storeID,
		"user_id":     userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if err := s.validateBillboard(storeID, billboardID); err != nil {
		return nil, err
	}

	category.Name = name
	category.BillboardID = billboardID
	category.Billboard = model.Billboard{}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return s.GetCategoryByID(storeID, id)
}

func (s *categoryService) DeleteCategory(userID, storeID, id string) error {
	logger.Info("Deleting category", map[string]interface{}{
		"category_id": id,
		"store_id":    storeID,
		"user_id":     userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return err
	}

	if _, err := s.categoryRepo.FindByIDAndStoreID(id, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	// 참조 중인 상품이 있으면 삭제 거부. DB 외래키 제약이 최종 방어선.
	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		logger.Error("Failed to count products for category", err, map[string]interface{}{
			"category_id": id,
		})
		return err
	}
	if count > 0 {
		logger.Warn("Category delete rejected: products exist", map[string]interface{}{
			"category_id":   id,
			"product_count": count,
		})
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(id)
}
