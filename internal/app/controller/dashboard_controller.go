package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	apperrors "github.com/yeonlog/storefront-admin-backend/internal/errors"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetOverview returns revenue, sales and stock metrics for a store (owner only)
// GET /api/v1/stores/:storeId/dashboard
func (ctrl *DashboardController) GetOverview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	overview, err := ctrl.dashboardService.GetOverview(userID, storeID)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to build dashboard overview", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overview": overview,
	})
}

// GetGraphRevenue returns monthly revenue buckets for the graph (owner only)
// GET /api/v1/stores/:storeId/dashboard/graph?year=
func (ctrl *DashboardController) GetGraphRevenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	storeID := c.Param("storeId")

	year := 0
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "year 값이 올바르지 않습니다")
			return
		}
		year = parsed
	}

	points, err := ctrl.dashboardService.GetGraphRevenue(userID, storeID, year)
	if err != nil {
		if handleGuardError(c, log, err, storeID) {
			return
		}
		log.Error("Failed to build revenue graph", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"graph": points,
	})
}
