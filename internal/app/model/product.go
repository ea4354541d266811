package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID         string          `gorm:"size:36;primarykey" json:"id"`              // 상품 ID (uuid)
	StoreID    string          `gorm:"size:36;not null;index" json:"store_id"`    // 매장 ID
	CategoryID string          `gorm:"size:36;not null;index" json:"category_id"` // 같은 매장의 카테고리만 참조 가능
	SizeID     string          `gorm:"size:36;not null;index" json:"size_id"`     // 같은 매장의 사이즈만 참조 가능
	ColorID    string          `gorm:"size:36;not null;index" json:"color_id"`    // 같은 매장의 색상만 참조 가능
	Name       string          `gorm:"not null" json:"name"`                      // 상품명
	Price      decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`  // 가격
	IsFeatured bool            `gorm:"default:false;index" json:"is_featured"`    // 메인 노출 여부
	IsArchived bool            `gorm:"default:false;index" json:"is_archived"`    // 보관 처리 여부 (목록에서 기본 제외)
	CreatedAt  time.Time       `json:"created_at"`                                // 생성 시각
	UpdatedAt  time.Time       `json:"updated_at"`                                // 수정 시각
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`                            // 삭제 시각(소프트 삭제)

	Store    Store    `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
	Size     Size     `gorm:"foreignKey:SizeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"size,omitempty"`
	Color    Color    `gorm:"foreignKey:ColorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"color,omitempty"`

	// 상품 이미지 (상품 삭제 시 함께 삭제)
	Images []Image `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`

	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"` // 이 상품을 참조하는 주문 항목
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Image struct {
	ID        string         `gorm:"size:36;primarykey" json:"id"`             // 이미지 ID (uuid)
	ProductID string         `gorm:"size:36;not null;index" json:"product_id"` // 상품 ID
	URL       string         `gorm:"not null" json:"url"`                      // 이미지 URL
	CreatedAt time.Time      `json:"created_at"`                               // 생성 시각
	UpdatedAt time.Time      `json:"updated_at"`                               // 수정 시각
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 삭제 시각(소프트 삭제)
}

func (Image) TableName() string {
	return "images"
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
