package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type SizeController struct {
	sizeService service.SizeService
}

func NewSizeController(sizeService service.SizeService) *SizeController {
	return &SizeController{
		sizeService: sizeService,
	}
}

type SizeRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// GET /api/v1/stores/:storeId/sizes
func (ctrl *SizeController) ListSizes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	sizes, err := ctrl.sizeService.ListSizes(storeID)
	if err != nil {
		log.Error("Failed to fetch sizes", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sizes": sizes,
		"count": len(sizes),
	})
}

// GET /api/v1/stores/:storeId/sizes/:id
func (ctrl *SizeController) GetSizeByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	id := c.Param("id")

	size, err := ctrl.sizeService.GetSizeByID(storeID, id)
	if err != nil {
		if errors.Is(err, service.ErrSizeNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사이즈를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch size", err, map[string]interface{}{
			"size_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"size": size,
	})
}

// POST /api/v1/stores/:storeId/sizes
func (ctrl *SizeController) CreateSize(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "이름과 값을 입력해주세요")
		return
	}

	size, err := ctrl.sizeService.CreateSize(userID, storeID, req.Name, req.Value)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to create size", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create size")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Size created successfully",
		"size":    size,
	})
}

// PATCH /api/v1/stores/:storeId/sizes/:id
func (ctrl *SizeController) UpdateSize(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	var req SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "이름과 값을 입력해주세요")
		return
	}

	size, err := ctrl.sizeService.UpdateSize(userID, storeID, id, req.Name, req.Value)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrSizeNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사이즈를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update size", err, map[string]interface{}{
			"size_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update size")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Size updated successfully",
		"size":    size,
	})
}

// DELETE /api/v1/stores/:storeId/sizes/:id
func (ctrl *SizeController) DeleteSize(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	if err := ctrl.sizeService.DeleteSize(userID, storeID, id); err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrSizeNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사이즈를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrSizeInUse) {
			apperrors.Conflict(c, apperrors.ResourceInUse, "이 사이즈를 사용하는 상품을 먼저 삭제해주세요")
			return
		}
		log.Error("Failed to delete size", err, map[string]interface{}{
			"size_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete size")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Size deleted successfully",
	})
}
