package service

import (
	"errors"

	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrColorNotFound = errors.New("색상을 찾을 수 없습니다")
	ErrColorInUse    = errors.New("이 색상을 사용하는 상품을 먼저 삭제해주세요")
)

type ColorService interface {
	CreateColor(userID, storeID, name, value string) (*model.Color, error)
	ListColors(storeID string) ([]model.Color, error)
	GetColorByID(storeID, id string) (*model.Color, error)
	UpdateColor(userID, storeID, id, name, value string) (*model.Color, error)
	DeleteColor(userID, storeID, id string) error
}

type colorService struct {
	colorRepo repository.ColorRepository
	storeRepo repository.StoreRepository
}

func NewColorService(colorRepo repository.ColorRepository, storeRepo repository.StoreRepository) ColorService {
	return &colorService{
		colorRepo: colorRepo,
		storeRepo: storeRepo,
	}
}

func (s *colorService) CreateColor(userID, storeID, name, value string) (*model.Color, error) {
	logger.Info("Creating color", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
		"name":     name,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	color := &model.Color{
		StoreID: storeID,
		Name:    name,
		Value:   value,
	}
	if err := s.colorRepo.Create(color); err != nil {
		return nil, err
	}

	return color, nil
}

func (s *colorService) ListColors(storeID string) ([]model.Color, error) {
	return s.colorRepo.FindAllByStoreID(storeID)
}

func (s *colorService) GetColorByID(storeID, id string) (*model.Color, error) {
	color, err := s.colorRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, err
	}
	return color, nil
}

func (s *colorService) UpdateColor(userID, storeID, id, name, value string) (*model.Color, error) {
	logger.Info("Updating color", map[string]interface{}{
		"color_id": id,
		"store_id": storeID,
		"user_id":  userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	color, err := s.colorRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, err
	}

	color.Name = name
	color.Value = value
	if err := s.colorRepo.Update(color); err != nil {
		return nil, err
	}

	return color, nil
}

func (s *colorService) DeleteColor(userID, storeID, id string) error {
	logger.Info("Deleting color", map[string]interface{}{
		"color_id": id,
		"store_id": storeID,
		"user_id":  userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return err
	}

	if _, err := s.colorRepo.FindByIDAndStoreID(id, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrColorNotFound
		}
		return err
	}

	// 참조 중인 상품이 있으면 삭제 거부. DB 외래키 제약이 최종 방어선.
	count, err := s.colorRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Warn("Color delete rejected: products exist", map[string]interface{}{
			"color_id":      id,
			"product_count": count,
		})
		return ErrColorInUse
	}

	return s.colorRepo.Delete(id)
}
