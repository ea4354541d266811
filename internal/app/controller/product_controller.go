package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type ProductRequest struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	CategoryID string          `json:"category_id" binding:"required"`
	SizeID     string          `json:"size_id" binding:"required"`
	ColorID    string          `json:"color_id" binding:"required"`
	ImageURLs  []string        `json:"image_urls" binding:"required,min=1"`
	IsFeatured bool            `json:"is_featured"`
	IsArchived bool            `json:"is_archived"`
}

func (req *ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		ColorID:    req.ColorID,
		ImageURLs:  req.ImageURLs,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
	}
}

// cross-store 참조는 400으로 응답한다. 처리했으면 true.
func handleReferenceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrCategoryNotInStore):
		apperrors.BadRequest(c, apperrors.CatalogCrossStoreReference, "같은 매장의 카테고리만 선택할 수 있습니다")
	case errors.Is(err, service.ErrSizeNotInStore):
		apperrors.BadRequest(c, apperrors.CatalogCrossStoreReference, "같은 매장의 사이즈만 선택할 수 있습니다")
	case errors.Is(err, service.ErrColorNotInStore):
		apperrors.BadRequest(c, apperrors.CatalogCrossStoreReference, "같은 매장의 색상만 선택할 수 있습니다")
	default:
		return false
	}
	return true
}

// ListProducts returns store products with optional filters
// GET /api/v1/stores/:storeId/products?category_id=&size_id=&color_id=&is_featured=
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	filter := repository.ProductFilter{
		StoreID:    storeID,
		CategoryID: c.Query("category_id"),
		SizeID:     c.Query("size_id"),
		ColorID:    c.Query("color_id"),
	}

	if v := c.Query("is_featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "is_featured 값이 올바르지 않습니다")
			return
		}
		filter.IsFeatured = &featured
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil {
			filter.Offset = offset
		}
	}

	products, err := ctrl.productService.ListProducts(filter)
	if err != nil {
		log.Error("Failed to fetch products", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductByID returns a product by ID
// GET /api/v1/stores/:storeId/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")
	id := c.Param("id")

	product, err := ctrl.productService.GetProductByID(storeID, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// CreateProduct creates a product with its images (owner only)
// POST /api/v1/stores/:storeId/products
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product creation request", map[string]interface{}{
			"store_id": storeID,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "상품 정보가 올바르지 않습니다")
		return
	}
	if req.Price.IsNegative() {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "가격은 0 이상이어야 합니다")
		return
	}

	product, err := ctrl.productService.CreateProduct(userID, storeID, req.toInput())
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if handleReferenceError(c, err) {
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"store_id": storeID,
			"name":     req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		return
	}

	log.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
		"store_id":   storeID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct updates a product and replaces its image set (owner only)
// PATCH /api/v1/stores/:storeId/products/:id
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid product update request", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "상품 정보가 올바르지 않습니다")
		return
	}
	if req.Price.IsNegative() {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "가격은 0 이상이어야 합니다")
		return
	}

	product, err := ctrl.productService.UpdateProduct(userID, storeID, id, req.toInput())
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if handleReferenceError(c, err) {
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "상품을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	log.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct deletes a product (owner only, rejected while order items reference it)
// DELETE /api/v1/stores/:storeId/products/:id
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	if err := ctrl.productService.DeleteProduct(userID, storeID, id); err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "상품을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrProductInUse) {
			apperrors.Conflict(c, apperrors.ResourceInUse, "이 상품을 참조하는 주문이 있어 삭제할 수 없습니다")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	log.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
