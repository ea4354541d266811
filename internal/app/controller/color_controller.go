package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type ColorController struct {
	colorService service.ColorService
}

func NewColorController(colorService service.ColorService) *ColorController {
	return &ColorController{
		colorService: colorService,
	}
}

type ColorRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"` // 헥스 코드 (#RRGGBB)
}

// GET /api/v1/stores/:storeId/colors
func (ctrl *ColorController) ListColors(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	colors, err := ctrl.colorService.ListColors(storeID)
	if err != nil {
		log.Error("Failed to fetch colors", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"colors": colors,
		"count":  len(colors),
	})
}

// GET /api/v1/stores/:storeId/colors/:id
func (ctrl *ColorController) GetColorByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	id := c.Param("id")

	color, err := ctrl.colorService.GetColorByID(storeID, id)
	if err != nil {
		if errors.Is(err, service.ErrColorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "색상을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch color", err, map[string]interface{}{
			"color_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"color": color,
	})
}

// POST /api/v1/stores/:storeId/colors
func (ctrl *ColorController) CreateColor(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "이름과 값을 입력해주세요")
		return
	}

	color, err := ctrl.colorService.CreateColor(userID, storeID, req.Name, req.Value)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to create color", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create color")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Color created successfully",
		"color":   color,
	})
}

// PATCH /api/v1/stores/:storeId/colors/:id
func (ctrl *ColorController) UpdateColor(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	var req ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "이름과 값을 입력해주세요")
		return
	}

	color, err := ctrl.colorService.UpdateColor(userID, storeID, id, req.Name, req.Value)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrColorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "색상을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update color", err, map[string]interface{}{
			"color_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update color")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Color updated successfully",
		"color":   color,
	})
}

// DELETE /api/v1/stores/:storeId/colors/:id
func (ctrl *ColorController) DeleteColor(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	if err := ctrl.colorService.DeleteColor(userID, storeID, id); err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrColorNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "색상을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrColorInUse) {
			apperrors.Conflict(c, apperrors.ResourceInUse, "이 색상을 사용하는 상품을 먼저 삭제해주세요")
			return
		}
		log.Error("Failed to delete color", err, map[string]interface{}{
			"color_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete color")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Color deleted successfully",
	})
}
