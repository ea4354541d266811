package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type BillboardController struct {
	billboardService service.BillboardService
}

func NewBillboardController(billboardService service.BillboardService) *BillboardController {
	return &BillboardController{
		billboardService: billboardService,
	}
}

type BillboardRequest struct {
	Label    string `json:"label" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
}

// ListBillboards returns all billboards of a store
// GET /api/v1/stores/:storeId/billboards
func (ctrl *BillboardController) ListBillboards(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	billboards, err := ctrl.billboardService.ListBillboards(storeID)
	if err != nil {
		log.Error("Failed to fetch billboards", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"billboards": billboards,
		"count":      len(billboards),
	})
}

// GetBillboardByID returns a billboard by ID
// GET /api/v1/stores/:storeId/billboards/:id
func (ctrl *BillboardController) GetBillboardByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	id := c.Param("id")

	billboard, err := ctrl.billboardService.GetBillboardByID(storeID, id)
	if err != nil {
		if errors.Is(err, service.ErrBillboardNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "빌보드를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch billboard", err, map[string]interface{}{
			"billboard_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"billboard": billboard,
	})
}

// CreateBillboard creates a billboard (owner only)
// POST /api/v1/stores/:storeId/billboards
func (ctrl *BillboardController) CreateBillboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	var req BillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid billboard creation request", map[string]interface{}{
			"store_id": storeID,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "라벨과 이미지를 입력해주세요")
		return
	}

	billboard, err := ctrl.billboardService.CreateBillboard(userID, storeID, req.Label, req.ImageURL)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to create billboard", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create billboard")
		return
	}

	log.Info("Billboard created successfully", map[string]interface{}{
		"billboard_id": billboard.ID,
		"store_id":     storeID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Billboard created successfully",
		"billboard": billboard,
	})
}

// UpdateBillboard updates a billboard (owner only)
// PATCH /api/v1/stores/:storeId/billboards/:id
func (ctrl *BillboardController) UpdateBillboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	var req BillboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid billboard update request", map[string]interface{}{
			"billboard_id": id,
			"error":        err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "라벨과 이미지를 입력해주세요")
		return
	}

	billboard, err := ctrl.billboardService.UpdateBillboard(userID, storeID, id, req.Label, req.ImageURL)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrBillboardNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "빌보드를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update billboard", err, map[string]interface{}{
			"billboard_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update billboard")
		return
	}

	log.Info("Billboard updated successfully", map[string]interface{}{
		"billboard_id": billboard.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":   "Billboard updated successfully",
		"billboard": billboard,
	})
}

// DeleteBillboard deletes a billboard (owner only, rejected while categories reference it)
// DELETE /api/v1/stores/:storeId/billboards/:id
func (ctrl *BillboardController) DeleteBillboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	if err := ctrl.billboardService.DeleteBillboard(userID, storeID, id); err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrBillboardNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "빌보드를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrBillboardInUse) {
			apperrors.Conflict(c, apperrors.ResourceInUse, "이 빌보드를 사용하는 카테고리를 먼저 삭제해주세요")
			return
		}
		log.Error("Failed to delete billboard", err, map[string]interface{}{
			"billboard_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete billboard")
		return
	}

	log.Info("Billboard deleted successfully", map[string]interface{}{
		"billboard_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Billboard deleted successfully",
	})
}
