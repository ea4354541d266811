package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID        string         `gorm:"size:36;primarykey" json:"id"`           // 주문 ID (uuid)
	StoreID   string         `gorm:"size:36;not null;index" json:"store_id"` // 매장 ID
	IsPaid    bool           `gorm:"default:false;index" json:"is_paid"`     // 결제 완료 여부
	Phone     string         `gorm:"default:''" json:"phone"`                // 주문자 연락처
	Address   string         `gorm:"default:''" json:"address"`              // 배송지 주소
	CreatedAt time.Time      `json:"created_at"`                             // 생성 시각
	UpdatedAt time.Time      `json:"updated_at"`                             // 수정 시각
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 삭제 시각(소프트 삭제)

	Store Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	// 주문 항목 (주문 삭제 시 함께 삭제). 단위당 한 행, 수량 컬럼 없음.
	OrderItems []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderItem struct {
	ID        string `gorm:"size:36;primarykey" json:"id"`             // 주문 항목 ID (uuid)
	OrderID   string `gorm:"size:36;not null;index" json:"order_id"`   // 주문 ID
	ProductID string `gorm:"size:36;not null;index" json:"product_id"` // 상품 ID

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
