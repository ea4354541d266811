package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	BillboardID string `json:"billboard_id" binding:"required"`
}

// ListCategories returns all categories of a store
// GET /api/v1/stores/:storeId/categories
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	categories, err := ctrl.categoryService.ListCategories(storeID)
	if err != nil {
		log.Error("Failed to fetch categories", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategoryByID returns a category by ID
// GET /api/v1/stores/:storeId/categories/:id
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	id := c.Param("id")

	category, err := ctrl.categoryService.GetCategoryByID(storeID, id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// CreateCategory creates a category (owner only)
// POST /api/v1/stores/:storeId/categories
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid category creation request", map[string]interface{}{
			"store_id": storeID,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "이름과 빌보드를 입력해주세요")
		return
	}

	category, err := ctrl.categoryService.CreateCategory(userID, storeID, req.Name, req.BillboardID)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrBillboardNotInStore) {
			apperrors.BadRequest(c, apperrors.CatalogCrossStoreReference, "같은 매장의 빌보드만 선택할 수 있습니다")
			return
		}
		log.Error("Failed to create category", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create category")
		return
	}

	log.Info("Category created successfully", map[string]interface{}{
		"category_id": category.ID,
		"store_id":    storeID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully",
		"category": category,
	})
}

// UpdateCategory updates a category (owner only)
// PATCH /api/v1/stores/:storeId/categories/:id
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid category update request", map[string]interface{}{
			"category_id": id,
			"error":       err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "이름과 빌보드를 입력해주세요")
		return
	}

	category, err := ctrl.categoryService.UpdateCategory(userID, storeID, id, req.Name, req.BillboardID)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrBillboardNotInStore) {
			apperrors.BadRequest(c, apperrors.CatalogCrossStoreReference, "같은 매장의 빌보드만 선택할 수 있습니다")
			return
		}
		log.Error("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update category")
		return
	}

	log.Info("Category updated successfully", map[string]interface{}{
		"category_id": category.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory deletes a category (owner only, rejected while products reference it)
// DELETE /api/v1/stores/:storeId/categories/:id
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	if err := ctrl.categoryService.DeleteCategory(userID, storeID, id); err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "카테고리를 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrCategoryInUse) {
			apperrors.Conflict(c, apperrors.ResourceInUse, "이 카테고리를 사용하는 상품을 먼저 삭제해주세요")
			return
		}
		log.Error("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete category")
		return
	}

	log.Info("Category deleted successfully", map[string]interface{}{
		"category_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}
