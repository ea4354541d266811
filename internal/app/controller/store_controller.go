package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

type StoreRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateStore creates a new store owned by the current user
// POST /api/v1/stores
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid store creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "매장 이름을 입력해주세요")
		return
	}

	store, err := ctrl.storeService.CreateStore(userID, req.Name)
	if err != nil {
		log.Error("Failed to create store", err, map[string]interface{}{
			"user_id": userID,
			"name":    req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create store")
		return
	}

	log.Info("Store created successfully", map[string]interface{}{
		"store_id": store.ID,
		"user_id":  userID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"store":   store,
	})
}

// GetMyStores returns all stores owned by the current user
// GET /api/v1/stores
func (ctrl *StoreController) GetMyStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	stores, err := ctrl.storeService.GetStoresByUserID(userID)
	if err != nil {
		log.Error("Failed to fetch stores", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stores": stores,
		"count":  len(stores),
	})
}

// GetStoreByID returns a store by ID
// GET /api/v1/stores/:storeId
func (ctrl *StoreController) GetStoreByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	store, err := ctrl.storeService.GetStoreByID(storeID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "매장을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch store", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store": store,
	})
}

// UpdateStore updates a store's settings (owner only)
// PATCH /api/v1/stores/:storeId
func (ctrl *StoreController) UpdateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid store update request", map[string]interface{}{
			"store_id": storeID,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "매장 이름을 입력해주세요")
		return
	}

	store, err := ctrl.storeService.UpdateStore(userID, storeID, req.Name)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to update store", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update store")
		return
	}

	log.Info("Store updated successfully", map[string]interface{}{
		"store_id": store.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Store updated successfully",
		"store":   store,
	})
}

// DeleteStore deletes a store (owner only, rejected while dependents exist)
// DELETE /api/v1/stores/:storeId
func (ctrl *StoreController) DeleteStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	if err := ctrl.storeService.DeleteStore(userID, storeID); err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrStoreInUse) {
			apperrors.Conflict(c, apperrors.ResourceInUse, "매장에 연결된 데이터를 먼저 삭제해주세요")
			return
		}
		log.Error("Failed to delete store", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete store")
		return
	}

	log.Info("Store deleted successfully", map[string]interface{}{
		"store_id": storeID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Store deleted successfully",
	})
}
