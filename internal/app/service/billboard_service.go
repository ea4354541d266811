package service

import (
	"errors"

	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrBillboardNotFound = errors.New("빌보드를 찾을 수 없습니다")
	ErrBillboardInUse    = errors.New("이 빌보드를 사용하는 카테고리를 먼저 삭제해주세요")
)

type BillboardService interface {
	CreateBillboard(userID, storeID, label, imageURL string) (*model.Billboard, error)
	ListBillboards(storeID string) ([]model.Billboard, error)
	GetBillboardByID(storeID, id string) (*model.Billboard, error)
	UpdateBillboard(userID, storeID, id, label, imageURL string) (*model.Billboard, error)
	DeleteBillboard(userID, storeID, id string) error
}

type billboardService struct {
	billboardRepo repository.BillboardRepository
	storeRepo     repository.StoreRepository
}

func NewBillboardService(billboardRepo repository.BillboardRepository, storeRepo repository.StoreRepository) BillboardService {
	return &billboardService{
		billboardRepo: billboardRepo,
		storeRepo:     storeRepo,
	}
}

func (s *billboardService) CreateBillboard(userID, storeID, label, imageURL string) (*model.Billboard, error) {
	logger.Info("Creating billboard", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
		"label":    label,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	billboard := &model.Billboard{
		StoreID:  storeID,
		Label:    label,
		ImageURL: imageURL,
	}
	if err := s.billboardRepo.Create(billboard); err != nil {
		return nil, err
	}

	logger.Info("Billboard created", map[string]interface{}{
		"billboard_id": billboard.ID,
		"store_id":     storeID,
	})
	return billboard, nil
}

func (s *billboardService) ListBillboards(storeID string) ([]model.Billboard, error) {
	return s.billboardRepo.FindAllByStoreID(storeID)
}

func (s *billboardService) GetBillboardByID(storeID, id string) (*model.Billboard, error) {
	billboard, err := s.billboardRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillboardNotFound
		}
		return nil, err
	}
	return billboard, nil
}

func (s *billboardService) UpdateBillboard(userID, storeID, id, label, imageURL string) (*model.Billboard, error) {
	logger.Info("Updating billboard", map[string]interface{}{
		"billboard_id": id,
		"store_id":     storeID,
		"user_id":      userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	billboard, err := s.billboardRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillboardNotFound
		}
		return nil, err
	}

	billboard.Label = label
	billboard.ImageURL = imageURL
	if err := s.billboardRepo.Update(billboard); err != nil {
		return nil, err
	}

	return billboard, nil
}

func (s *billboardService) DeleteBillboard(userID, storeID, id string) error {
	logger.Info("Deleting billboard", map[string]interface{}{
		"billboard_id": id,
		"store_id":     storeID,
		"user_id":      userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return err
	}

	if _, err := s.billboardRepo.FindByIDAndStoreID(id, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillboardNotFound
		}
		return err
	}

	// 참조 중인 카테고리가 있으면 삭제 거부. DB 외래키 제약이 최종 방어선.
	count, err := s.billboardRepo.CountCategories(id)
	if err != nil {
		logger.Error("Failed to count categories for billboard", err, map[string]interface{}{
			"billboard_id": id,
		})
		return err
	}
	if count > 0 {
		logger.Warn("Billboard delete rejected: categories exist", map[string]interface{}{
			"billboard_id":   id,
			"category_count": count,
		})
		return ErrBillboardInUse
	}

	return s.billboardRepo.Delete(id)
}
