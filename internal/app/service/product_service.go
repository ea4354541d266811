package service

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound    = errors.New("상품을 찾을 수 없습니다")
	ErrProductInUse       = errors.New("이 상품을 참조하는 주문이 있어 삭제할 수 없습니다")
	ErrCategoryNotInStore = errors.New("같은 매장의 카테고리만 선택할 수 있습니다")
	ErrSizeNotInStore     = errors.New("같은 매장의 사이즈만 선택할 수 있습니다")
	ErrColorNotInStore    = errors.New("같은 매장의 색상만 선택할 수 있습니다")
)

// ProductInput 상품 생성/수정 공통 입력
type ProductInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID string
	SizeID     string
	ColorID    string
	ImageURLs  []string
	IsFeatured bool
	IsArchived bool
}

type ProductService interface {
	CreateProduct(userID, storeID string, input ProductInput) (*model.Product, error)
	ListProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetProductByID(storeID, id string) (*model.Product, error)
	UpdateProduct(userID, storeID, id string, input ProductInput) (*model.Product, error)
	DeleteProduct(userID, storeID, id string) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	sizeRepo     repository.SizeRepository
	colorRepo    repository.ColorRepository
	storeRepo    repository.StoreRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	sizeRepo repository.SizeRepository,
	colorRepo repository.ColorRepository,
	storeRepo repository.StoreRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		colorRepo:    colorRepo,
		storeRepo:    storeRepo,
	}
}

// validateReferences 카테고리/사이즈/색상이 모두 같은 매장 소속인지 확인한다.
func (s *productService) validateReferences(storeID string, input ProductInput) error {
	if _, err := s.categoryRepo.FindByIDAndStoreID(input.CategoryID, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotInStore
		}
		return err
	}
	if _, err := s.sizeRepo.FindByIDAndStoreID(input.SizeID, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSizeNotInStore
		}
		return err
	}
	if _, err := s.colorRepo.FindByIDAndStoreID(input.ColorID, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColorNotInStore
		}
		return err
	}
	return nil
}

func buildImages(urls []string) []model.Image {
	images := make([]model.Image, 0, len(urls))
	for _, url := range urls {
		images = append(images, model.Image{URL: url})
	}
	return images
}

func (s *productService) CreateProduct(userID, storeID string, input ProductInput) (*model.Product, error) {
	logger.Info("Creating product", map[string]interface{}{
		"store_id":    storeID,
		"user_id":     userID,
		"name":        input.Name,
		"price":       input.Price.String(),
		"image_count": len(input.ImageURLs),
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	if err := s.validateReferences(storeID, input); err != nil {
		return nil, err
	}

	product := &model.Product{
		StoreID:    storeID,
		CategoryID: input.CategoryID,
		SizeID:     input.SizeID,
		ColorID:    input.ColorID,
		Name:       input.Name,
		Price:      input.Price,
		IsFeatured: input.IsFeatured,
		IsArchived: input.IsArchived,
		Images:     buildImages(input.ImageURLs),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	return s.GetProductByID(storeID, product.ID)
}

func (s *productService) ListProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindWithFilter(filter)
}

func (s *productService) GetProductByID(storeID, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(userID, storeID, id string, input ProductInput) (*model.Product, error) {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": id,
		"store_id":   storeID,
		"user_id":    userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.validateReferences(storeID, input); err != nil {
		return nil, err
	}

	product.CategoryID = input.CategoryID
	product.SizeID = input.SizeID
	product.ColorID = input.ColorID
	product.Name = input.Name
	product.Price = input.Price
	product.IsFeatured = input.IsFeatured
	product.IsArchived = input.IsArchived

	// preload된 연관 객체가 이전 참조를 물고 있으므로 초기화 후 저장
	product.Category = model.Category{}
	product.Size = model.Size{}
	product.Color = model.Color{}

	if err := s.productRepo.Update(product, buildImages(input.ImageURLs)); err != nil {
		return nil, err
	}

	return s.GetProductByID(storeID, id)
}

func (s *productService) DeleteProduct(userID, storeID, id string) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
		"store_id":   storeID,
		"user_id":    userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return err
	}

	if _, err := s.productRepo.FindByIDAndStoreID(id, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	// 주문 항목이 참조 중이면 삭제 거부. DB 외래키 제약이 최종 방어선.
	count, err := s.productRepo.CountOrderItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Warn("Product delete rejected: order items exist", map[string]interface{}{
			"product_id":       id,
			"order_item_count": count,
		})
		return ErrProductInUse
	}

	return s.productRepo.Delete(id)
}
