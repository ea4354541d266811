package service

import (
	"errors"

	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrStoreInUse = errors.New("매장에 연결된 데이터가 있어 삭제할 수 없습니다")

type StoreService interface {
	CreateStore(userID, name string) (*model.Store, error)
	GetStoreByID(id string) (*model.Store, error)
	GetStoresByUserID(userID string) ([]model.Store, error)
	UpdateStore(userID, storeID, name string) (*model.Store, error)
	DeleteStore(userID, storeID string) error
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) CreateStore(userID, name string) (*model.Store, error) {
	logger.Info("Creating store", map[string]interface{}{
		"name":    name,
		"user_id": userID,
	})

	store := &model.Store{
		UserID: userID,
		Name:   name,
	}
	if err := s.storeRepo.Create(store); err != nil {
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return store, nil
}

func (s *storeService) GetStoreByID(id string) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Store not found", map[string]interface{}{
				"store_id": id,
			})
			return nil, ErrStoreNotFound
		}
		logger.Error("Failed to fetch store", err, map[string]interface{}{
			"store_id": id,
		})
		return nil, err
	}
	return store, nil
}

func (s *storeService) GetStoresByUserID(userID string) ([]model.Store, error) {
	return s.storeRepo.FindByUserID(userID)
}

func (s *storeService) UpdateStore(userID, storeID, name string) (*model.Store, error) {
	logger.Info("Updating store", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
	})

	store, err := requireStoreOwnership(s.storeRepo, userID, storeID)
	if err != nil {
		return nil, err
	}

	store.Name = name
	if err := s.storeRepo.Update(store); err != nil {
		return nil, err
	}

	logger.Info("Store updated", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return store, nil
}

func (s *storeService) DeleteStore(userID, storeID string) error {
	logger.Info("Deleting store", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return err
	}

	// 하위 리소스가 남아 있으면 삭제 거부 (의존 데이터를 먼저 제거해야 함)
	dependents, err := s.storeRepo.CountDependents(storeID)
	if err != nil {
		logger.Error("Failed to count store dependents", err, map[string]interface{}{
			"store_id": storeID,
		})
		return err
	}
	if dependents > 0 {
		logger.Warn("Store delete rejected: dependents exist", map[string]interface{}{
			"store_id":   storeID,
			"dependents": dependents,
		})
		return ErrStoreInUse
	}

	if err := s.storeRepo.Delete(storeID); err != nil {
		return err
	}

	logger.Info("Store deleted", map[string]interface{}{
		"store_id": storeID,
	})
	return nil
}
