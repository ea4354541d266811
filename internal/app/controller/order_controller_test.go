package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/internal/app/service"
	"github.com/yeonlog/storefront-admin-backend/internal/db"
	"github.com/yeonlog/storefront-admin-backend/internal/middleware"
	"gorm.io/gorm"
)

type orderTestEnv struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Owner   *model.User
	Store   *model.Store
	Product *model.Product
}

func setupOrderControllerTest(t *testing.T) *orderTestEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	orderRepo := repository.NewOrderRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	orderService := service.NewOrderService(orderRepo, productRepo, storeRepo)
	orderController := NewOrderController(orderService)

	owner := &model.User{
		Email:        fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "hashed-password",
		Name:         "Store Owner",
	}
	require.NoError(t, testDB.Create(owner).Error)

	store := &model.Store{UserID: owner.ID, Name: "Test Store"}
	require.NoError(t, testDB.Create(store).Error)

	billboard := &model.Billboard{StoreID: store.ID, Label: "main", ImageURL: "https://cdn.example.com/m.jpg"}
	require.NoError(t, testDB.Create(billboard).Error)
	category := &model.Category{StoreID: store.ID, BillboardID: billboard.ID, Name: "Shirts"}
	require.NoError(t, testDB.Create(category).Error)
	size := &model.Size{StoreID: store.ID, Name: "Large", Value: "L"}
	require.NoError(t, testDB.Create(size).Error)
	color := &model.Color{StoreID: store.ID, Name: "Black", Value: "#000000"}
	require.NoError(t, testDB.Create(color).Error)

	product := &model.Product{
		StoreID:    store.ID,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
		Name:       "Linen Shirt",
		Price:      decimal.RequireFromString("39.00"),
	}
	require.NoError(t, testDB.Create(product).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	// 공개 결제 경로
	router.POST("/stores/:storeId/checkout", orderController.Checkout)
	router.POST("/orders/:orderId/pay", orderController.MarkPaid)

	// 소유자 경로
	authed := router.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, owner.ID)
		c.Next()
	})
	authed.GET("/stores/:storeId/orders", orderController.ListOrders)
	authed.GET("/stores/:storeId/orders/export", orderController.ExportOrders)

	return &orderTestEnv{
		DB:      testDB,
		Router:  router,
		Owner:   owner,
		Store:   store,
		Product: product,
	}
}

func TestOrderController_CheckoutAndPay(t *testing.T) {
	env := setupOrderControllerTest(t)

	// 주문 생성
	w := postJSON(env.Router, http.MethodPost,
		"/stores/"+env.Store.ID+"/checkout",
		gin.H{
			"product_ids": []string{env.Product.ID},
			"phone":       "010-1234-5678",
			"address":     "서울시 강남구 테스트로 1",
		})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	order := response["order"].(map[string]interface{})
	orderID := order["id"].(string)
	assert.Equal(t, false, order["is_paid"])

	// 결제 확정
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/pay", nil)
	w = httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 두 번째 통보는 409
	req = httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/pay", nil)
	w = httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ORDER_ALREADY_PAID")
}

func TestOrderController_Checkout_EmptyCart(t *testing.T) {
	env := setupOrderControllerTest(t)

	w := postJSON(env.Router, http.MethodPost,
		"/stores/"+env.Store.ID+"/checkout",
		gin.H{"product_ids": []string{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderController_Checkout_ArchivedProduct(t *testing.T) {
	env := setupOrderControllerTest(t)

	require.NoError(t, env.DB.Model(env.Product).Update("is_archived", true).Error)

	w := postJSON(env.Router, http.MethodPost,
		"/stores/"+env.Store.ID+"/checkout",
		gin.H{"product_ids": []string{env.Product.ID}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CATALOG_PRODUCT_ARCHIVED")
}

func TestOrderController_ListOrders(t *testing.T) {
	env := setupOrderControllerTest(t)

	order := &model.Order{
		StoreID:    env.Store.ID,
		IsPaid:     true,
		OrderItems: []model.OrderItem{{ProductID: env.Product.ID}},
	}
	require.NoError(t, env.DB.Create(order).Error)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+env.Store.ID+"/orders", nil)
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
}

func TestOrderController_ExportOrders(t *testing.T) {
	env := setupOrderControllerTest(t)

	order := &model.Order{
		StoreID:    env.Store.ID,
		IsPaid:     true,
		OrderItems: []model.OrderItem{{ProductID: env.Product.ID}},
	}
	require.NoError(t, env.DB.Create(order).Error)

	req := httptest.NewRequest(http.MethodGet, "/stores/"+env.Store.ID+"/orders/export", nil)
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders_")
	assert.NotZero(t, w.Body.Len())
}
