package service

import (
	"errors"

	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound     = errors.New("매장을 찾을 수 없습니다")
	ErrStoreAccessDenied = errors.New("매장 접근 권한이 없습니다")
)

// requireStoreOwnership 모든 변경 작업 전에 매장 소유권을 검사한다.
// 호출마다 다시 검사하며 결과를 캐시하지 않는다.
// 매장이 없으면 ErrStoreNotFound, 소유자가 아니면 ErrStoreAccessDenied.
func requireStoreOwnership(storeRepo repository.StoreRepository, userID, storeID string) (*model.Store, error) {
	if _, err := storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Store not found during ownership check", map[string]interface{}{
				"store_id": storeID,
			})
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	store, err := storeRepo.FindByIDAndUserID(storeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("User does not own the store", map[string]interface{}{
				"user_id":  userID,
				"store_id": storeID,
			})
			return nil, ErrStoreAccessDenied
		}
		return nil, err
	}

	return store, nil
}
