package service

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/internal/app/repository"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound       = errors.New("주문을 찾을 수 없습니다")
	ErrOrderAlreadyPaid    = errors.New("이미 결제된 주문입니다")
	ErrOrderEmptyItems     = errors.New("주문할 상품을 선택해주세요")
	ErrOrderProductInvalid = errors.New("주문할 수 없는 상품이 포함되어 있습니다")
)

type OrderService interface {
	Checkout(storeID string, productIDs []string, phone, address string) (*model.Order, error)
	MarkPaid(orderID string) (*model.Order, error)
	ListOrders(userID, storeID string) ([]model.Order, error)
	GetOrderByID(userID, storeID, id string) (*model.Order, error)
	ExportOrders(userID, storeID string) (*excelize.File, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// Checkout 미결제 주문을 생성한다. 상품 ID 하나당 주문 항목 한 개.
// 공개 상점에서 호출되므로 소유권 검사는 하지 않는다.
func (s *orderService) Checkout(storeID string, productIDs []string, phone, address string) (*model.Order, error) {
	logger.Info("Creating checkout order", map[string]interface{}{
		"store_id":   storeID,
		"item_count": len(productIDs),
	})

	if len(productIDs) == 0 {
		return nil, ErrOrderEmptyItems
	}

	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(productIDs))
	for _, productID := range productIDs {
		product, err := s.productRepo.FindByIDAndStoreID(productID, storeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOrderProductInvalid
			}
			return nil, err
		}
		// 보관 처리된 상품은 주문 불가
		if product.IsArchived {
			logger.Warn("Checkout rejected: archived product", map[string]interface{}{
				"store_id":   storeID,
				"product_id": productID,
			})
			return nil, ErrOrderProductInvalid
		}
		items = append(items, model.OrderItem{ProductID: productID})
	}

	order := &model.Order{
		StoreID:    storeID,
		IsPaid:     false,
		Phone:      phone,
		Address:    address,
		OrderItems: items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	return s.orderRepo.FindByID(order.ID)
}

// MarkPaid 결제 완료 처리. 결제 수단 연동 없이 확정 통보만 받는다.
func (s *orderService) MarkPaid(orderID string) (*model.Order, error) {
	logger.Info("Marking order as paid", map[string]interface{}{
		"order_id": orderID,
	})

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if order.IsPaid {
		return nil, ErrOrderAlreadyPaid
	}

	order.IsPaid = true
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	logger.Info("Order marked as paid", map[string]interface{}{
		"order_id": order.ID,
		"store_id": order.StoreID,
	})
	return order, nil
}

func (s *orderService) ListOrders(userID, storeID string) ([]model.Order, error) {
	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindAllByStoreID(storeID)
}

func (s *orderService) GetOrderByID(userID, storeID, id string) (*model.Order, error) {
	if _, err := requireStoreOwnership(s.storeRepo, userID, storeID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByIDAndStoreID(id, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// ExportOrders 매장 주문 내역을 엑셀 파일로 만든다.
func (s *orderService) ExportOrders(userID, storeID string) (*excelize.File, error) {
	logger.Info("Exporting orders to excel", map[string]interface{}{
		"store_id": storeID,
		"user_id":  userID,
	})

	store, err := requireStoreOwnership(s.storeRepo, userID, storeID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindAllByStoreID(storeID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Orders"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"주문 ID", "상품", "연락처", "배송지", "결제 여부", "합계", "주문 일시"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDDDDD"}, Pattern: 1},
	})
	f.SetCellStyle(sheet, "A1", "G1", headerStyle)

	for i, order := range orders {
		row := i + 2
		names := ""
		total := orderTotal(order)
		for j, item := range order.OrderItems {
			if j > 0 {
				names += ", "
			}
			names += item.Product.Name
		}

		paid := "미결제"
		if order.IsPaid {
			paid = "결제 완료"
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), order.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), names)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), order.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), order.Address)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), paid)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), total.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), order.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "C", "D", 24)
	f.SetColWidth(sheet, "G", "G", 20)

	logger.Info("Orders exported to excel", map[string]interface{}{
		"store_id":    storeID,
		"store_name":  store.Name,
		"order_count": len(orders),
	})
	return f, nil
}
