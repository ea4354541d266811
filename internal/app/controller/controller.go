package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
)

// handleGuardError 매장 조회/소유권 검사 실패를 공통으로 처리한다.
// 매장이 없으면 404, 소유자가 아니면 403. 처리했으면 true를 돌려준다.
func handleGuardError(c *gin.Context, log *logger.Logger, err error, storeID string) bool {
	if errors.Is(err, service.ErrStoreNotFound) {
		log.Warn("Store not found", map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.NotFound(c, apperrors.StoreNotFound, "매장을 찾을 수 없습니다")
		return true
	}
	if errors.Is(err, service.ErrStoreAccessDenied) {
		log.Warn("Store access denied", map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthzOwnerOnly, "매장 소유자만 가능한 작업입니다")
		return true
	}
	return false
}
