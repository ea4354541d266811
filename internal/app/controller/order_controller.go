package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type CheckoutRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required,min=1"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
}

// Checkout creates an unpaid order. Public storefront endpoint.
// POST /api/v1/stores/:storeId/checkout
func (ctrl *OrderController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID := c.Param("storeId")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"store_id": storeID,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "주문할 상품을 선택해주세요")
		return
	}

	order, err := ctrl.orderService.Checkout(storeID, req.ProductIDs, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "매장을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrOrderEmptyItems) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "주문할 상품을 선택해주세요")
			return
		}
		if errors.Is(err, service.ErrOrderProductInvalid) {
			apperrors.BadRequest(c, apperrors.CatalogProductArchived, "주문할 수 없는 상품이 포함되어 있습니다")
			return
		}
		log.Error("Checkout failed", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create order")
		return
	}

	log.Info("Checkout order created", map[string]interface{}{
		"order_id":   order.ID,
		"store_id":   storeID,
		"item_count": len(order.OrderItems),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// MarkPaid marks an order as paid. Called by the storefront after payment confirmation.
// POST /api/v1/orders/:orderId/pay
func (ctrl *OrderController) MarkPaid(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orderID := c.Param("orderId")

	order, err := ctrl.orderService.MarkPaid(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "주문을 찾을 수 없습니다")
			return
		}
		if errors.Is(err, service.ErrOrderAlreadyPaid) {
			apperrors.Conflict(c, apperrors.OrderAlreadyPaid, "이미 결제된 주문입니다")
			return
		}
		log.Error("Failed to mark order as paid", err, map[string]interface{}{
			"order_id": orderID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update order")
		return
	}

	log.Info("Order marked as paid", map[string]interface{}{
		"order_id": order.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Order paid successfully",
		"order":   order,
	})
}

// ListOrders returns all orders of a store (owner only)
// GET /api/v1/stores/:storeId/orders
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	orders, err := ctrl.orderService.ListOrders(userID, storeID)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to fetch orders", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrderByID returns an order by ID (owner only)
// GET /api/v1/stores/:storeId/orders/:id
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")
	id := c.Param("id")

	order, err := ctrl.orderService.GetOrderByID(userID, storeID, id)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "주문을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// ExportOrders streams the store's orders as an xlsx file (owner only)
// GET /api/v1/stores/:storeId/orders/export
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	f, err := ctrl.orderService.ExportOrders(userID, storeID)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to export orders", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Error("Failed to write excel response", err, map[string]interface{}{
			"store_id": storeID,
		})
	}
}
