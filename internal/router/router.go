package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeonlog/storefront-admin-backend/config"
	"github.com/yeonlog/storefront-admin-backend/internal/app/controller"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
)

type Router struct {
	authController      *controller.AuthController
	storeController     *controller.StoreController
	billboardController *controller.BillboardController
	categoryController  *controller.CategoryController
	sizeController      *controller.SizeController
	colorController     *controller.ColorController
	productController   *controller.ProductController
	orderController     *controller.OrderController
	dashboardController *controller.DashboardController
	uploadController    *controller.UploadController
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	storeController *controller.StoreController,
	billboardController *controller.BillboardController,
	categoryController *controller.CategoryController,
	sizeController *controller.SizeController,
	colorController *controller.ColorController,
	productController *controller.ProductController,
	orderController *controller.OrderController,
	dashboardController *controller.DashboardController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:      authController,
		storeController:     storeController,
		billboardController: billboardController,
		categoryController:  categoryController,
		sizeController:      sizeController,
		colorController:     colorController,
		productController:   productController,
		orderController:     orderController,
		dashboardController: dashboardController,
		uploadController:    uploadController,
		authMiddleware:      authMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Storefront Admin API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		stores := v1.Group("/stores")
		{
			stores.GET("", r.authMiddleware.Authenticate(), r.storeController.GetMyStores)
			stores.POST("", r.authMiddleware.Authenticate(), r.storeController.CreateStore)
			stores.GET("/:storeId", r.storeController.GetStoreByID)
			stores.PATCH("/:storeId", r.authMiddleware.Authenticate(), r.storeController.UpdateStore)
			stores.DELETE("/:storeId", r.authMiddleware.Authenticate(), r.storeController.DeleteStore)

			// 조회는 공개 상점에서도 쓰므로 인증 없이 허용. 변경은 소유자만.
			billboards := stores.Group("/:storeId/billboards")
			{
				billboards.GET("", r.billboardController.ListBillboards)
				billboards.GET("/:id", r.billboardController.GetBillboardByID)
				billboards.POST("", r.authMiddleware.Authenticate(), r.billboardController.CreateBillboard)
				billboards.PATCH("/:id", r.authMiddleware.Authenticate(), r.billboardController.UpdateBillboard)
				billboards.DELETE("/:id", r.authMiddleware.Authenticate(), r.billboardController.DeleteBillboard)
			}

			categories := stores.Group("/:storeId/categories")
			{
				categories.GET("", r.categoryController.ListCategories)
				categories.GET("/:id", r.categoryController.GetCategoryByID)
				categories.POST("", r.authMiddleware.Authenticate(), r.categoryController.CreateCategory)
				categories.PATCH("/:id", r.authMiddleware.Authenticate(), r.categoryController.UpdateCategory)
				categories.DELETE("/:id", r.authMiddleware.Authenticate(), r.categoryController.DeleteCategory)
			}

			sizes := stores.Group("/:storeId/sizes")
			{
				sizes.GET("", r.sizeController.ListSizes)
				sizes.GET("/:id", r.sizeController.GetSizeByID)
				sizes.POST("", r.authMiddleware.Authenticate(), r.sizeController.CreateSize)
				sizes.PATCH("/:id", r.authMiddleware.Authenticate(), r.sizeController.UpdateSize)
				sizes.DELETE("/:id", r.authMiddleware.Authenticate(), r.sizeController.DeleteSize)
			}

			colors := stores.Group("/:storeId/colors")
			{
				colors.GET("", r.colorController.ListColors)
				colors.GET("/:id", r.colorController.GetColorByID)
				colors.POST("", r.authMiddleware.Authenticate(), r.colorController.CreateColor)
				colors.PATCH("/:id", r.authMiddleware.Authenticate(), r.colorController.UpdateColor)
				colors.DELETE("/:id", r.authMiddleware.Authenticate(), r.colorController.DeleteColor)
			}

			products := stores.Group("/:storeId/products")
			{
				products.GET("", r.productController.ListProducts)
				products.GET("/:id", r.productController.GetProductByID)
				products.POST("", r.authMiddleware.Authenticate(), r.productController.CreateProduct)
				products.PATCH("/:id", r.authMiddleware.Authenticate(), r.productController.UpdateProduct)
				products.DELETE("/:id", r.authMiddleware.Authenticate(), r.productController.DeleteProduct)
			}

			orders := stores.Group("/:storeId/orders")
			orders.Use(r.authMiddleware.Authenticate())
			{
				orders.GET("", r.orderController.ListOrders)
				orders.GET("/export", r.orderController.ExportOrders)
				orders.GET("/:id", r.orderController.GetOrderByID)
			}

			// 공개 상점 결제 흐름
			stores.POST("/:storeId/checkout", r.orderController.Checkout)

			dashboard := stores.Group("/:storeId/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.GetOverview)
				dashboard.GET("/graph", r.dashboardController.GetGraphRevenue)
			}
		}

		// 결제 확정 통보 (공개 상점에서 결제 완료 후 호출)
		v1.POST("/orders/:orderId/pay", r.orderController.MarkPaid)

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
