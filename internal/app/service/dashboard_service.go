package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
)

// DashboardOverview 매장 대시보드 요약 지표
type DashboardOverview struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"` // 결제 완료 주문의 매출 합계
	SalesCount   int64           `json:"sales_count"`   // 결제 완료 주문 수
	StockCount   int64           `json:"stock_count"`   // 판매 중(보관 제외) 상품 수
}

// GraphPoint 월별 매출 그래프의 한 점
type GraphPoint struct {
	Name  string          `json:"name"`  // 월 이름 (Jan, Feb, ...)
	Total decimal.Decimal `json:"total"` // 해당 월 매출 합계
}

type DashboardService interface {
	GetOverview(userID, storeID string) (*DashboardOverview, error)
	GetGraphRevenue(userID, storeID string, year int) ([]GraphPoint, error)
}

type dashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) DashboardService {
	return &dashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// orderTotal 주문 항목별 상품 가격의 합. 항목 한 행이 한 단위이므로 수량 곱셈 없음.
func orderTotal(order model.Order) decimal.Decimal {
	total := decimal.Zero
	for _, item := range order.OrderItems {
		total = total.Add(item.Product.Price)
	}
	return total
}

// GetOverview 매출/판매/재고 지표를 매번 새로 집계한다. 캐시 없음.
func (s *dashboardService) GetOverview(userID, storeID string) (*DashboardOverview, error) {
	logger.Info("Building dashboard overview", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	paidOrders, err := s.orderRepo.FindPaidByStoreID(storeID)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	for _, order := range paidOrders {
		totalRevenue = totalRevenue.Add(orderTotal(order))
	}

	salesCount, err := s.orderRepo.CountPaidByStoreID(storeID)
	if err != nil {
		return nil, err
	}

	stockCount, err := s.productRepo.CountInStock(storeID)
	if err != nil {
		return nil, err
	}

	return &DashboardOverview{
		TotalRevenue: totalRevenue,
		SalesCount:   salesCount,
		StockCount:   stockCount,
	}, nil
}

// GetGraphRevenue 결제 완료 주문을 월별로 묶어 12개 점을 돌려준다.
func (s *dashboardService) GetGraphRevenue(userID, storeID string, year int) ([]GraphPoint, error) {
	logger.Info("Building revenue graph", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
		"year":     year,
	})

	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	if year <= 0 {
		year = time.Now().Year()
	}

	paidOrders, err := s.orderRepo.FindPaidByStoreID(storeID)
	if err != nil {
		return nil, err
	}

	monthly := make([]decimal.Decimal, 12)
	for i := range monthly {
		monthly[i] = decimal.Zero
	}
	for _, order := range paidOrders {
		if order.CreatedAt.Year() != year {
			continue
		}
		month := int(order.CreatedAt.Month()) - 1
		monthly[month] = monthly[month].Add(orderTotal(order))
	}

	points := make([]GraphPoint, 12)
	for i := 0; i < 12; i++ {
		points[i] = GraphPoint{
			Name:  time.Month(i + 1).String()[:3],
			Total: monthly[i],
		}
	}
	return points, nil
}
