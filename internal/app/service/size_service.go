package service

import (
	"errors"

	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrSizeNotFound = errors.New("사이즈를 찾을 수 없습니다")
	ErrSizeInUse    = errors.New("이 사이즈를 사용하는 상품을 먼저 삭제해주세요")
)

type SizeService interface {
	CreateSize(userID, storeID, name, value string) (*model.Size, error)
	ListSizes(storeID string) ([]model.Size, error)
	GetSizeByID(storeID, id string) (*model.Size, error)
	UpdateSize(userID, storeID, id, name, value string) (*model.Size, error)
	DeleteSize(userID, storeID, id string) error
}

type sizeService struct {
	sizeRepo  repository.SizeRepository
	storeRepo repository.StoreRepository
}

func NewSizeService(sizeRepo repository.SizeRepository, storeRepo repository.StoreRepository) SizeService {
	return &sizeService{
		sizeRepo:  sizeRepo,
		storeRepo: storeRepo,
	}
}

func (s *sizeService) CreateSize(userID, storeID, name, value string) (*model.Size, error) {
	logger.Info("Creating size", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
		"name":     name,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	size := &model.Size{
		StoreID: storeID,
		Name:    name,
		Value:   value,
	}
	if err := s.sizeRepo.Create(size); err != nil {
		return nil, err
	}

	return size, nil
}

func (s *sizeService) ListSizes(storeID string) ([]model.Size, error) {
	return s.sizeRepo.FindAllByStoreID(storeID)
}

func (s *sizeService) GetSizeByID(storeID, id string) (*model.Size, error) {
	size, err := s.sizeRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSizeNotFound
		}
		return nil, err
	}
	return size, nil
}

func (s *sizeService) UpdateSize(userID, storeID, id, name, value string) (*model.Size, error) {
	logger.Info("Updating size", map[string]interface{}{
		"size_id":  id,
		"store_id": storeID,
		"user_id":  userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	size, err := s.sizeRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSizeNotFound
		}
		return nil, err
	}

	size.Name = name
	size.Value = value
	if err := s.sizeRepo.Update(size); err != nil {
		return nil, err
	}

	return size, nil
}

func (s *sizeService) DeleteSize(userID, storeID, id string) error {
	logger.Info("Deleting size", map[string]interface{}{
		"size_id":  id,
		"store_id": storeID,
		"user_id":  userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return err
	}

	if _, err := s.sizeRepo.FindByIDAndStoreID(id, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSizeNotFound
		}
		return err
	}

	// 참조 중인 상품이 있으면 삭제 거부. DB 외래키 제약이 최종 방어선.
	count, err := s.sizeRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Warn("Size delete rejected: products exist", map[string]interface{}{
			"size_id":       id,
			"product_count": count,
		})
		return ErrSizeInUse
	}

	return s.sizeRepo.Delete(id)
}
