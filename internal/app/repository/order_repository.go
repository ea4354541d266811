package repository

import (
	"github.com/yeonlog/storefront-admin-backend/internal/app/model"
	"github.com/yeonlog/storefront-admin-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	Update(order *model.Order) error
	FindByID(id string) (*model.Order, error)
	FindByIDAndStoreID(id, storeID string) (*model.Order, error)
	FindAllByStoreID(storeID string) ([]model.Order, error)
	FindPaidByStoreID(storeID string) ([]model.Order, error)
	CountPaidByStoreID(storeID string) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Order{}).
		Preload("OrderItems").
		Preload("OrderItems.Product")
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"store_id":   order.StoreID,
		"item_count": len(order.OrderItems),
	})

	// 주문과 주문 항목이 함께 저장됨 (association)
	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"store_id": order.StoreID,
		})
		return err
	}

	logger.Debug("Order created in database", map[string]interface{}{
		"order_id": order.ID,
		"store_id": order.StoreID,
	})
	return nil
}

func (r *orderRepository) Update(order *model.Order) error {
	logger.Debug("Updating order in database", map[string]interface{}{
		"order_id": order.ID,
		"is_paid":  order.IsPaid,
	})

	if err := r.db.Omit("OrderItems").Save(order).Error; err != nil {
		logger.Error("Failed to update order in database", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindByID(id string) (*model.Order, error) {
	var order model.Order
	if err := r.baseQuery().First(&order, "orders.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDAndStoreID(id, storeID string) (*model.Order, error) {
	var order model.Order
	if err := r.baseQuery().First(&order, "orders.id = ? AND orders.store_id = ?", id, storeID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAllByStoreID(storeID string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.baseQuery().
		Where("orders.store_id = ?", storeID).
		Order("orders.created_at DESC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by store ID", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return orders, nil
}

// FindPaidByStoreID 결제 완료 주문만 조회 (매출 집계용)
func (r *orderRepository) FindPaidByStoreID(storeID string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.baseQuery().
		Where("orders.store_id = ? AND orders.is_paid = ?", storeID, true).
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find paid orders by store ID", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) CountPaidByStoreID(storeID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Order{}).
		Where("store_id = ? AND is_paid = ?", storeID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
