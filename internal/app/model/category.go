package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string         `gorm:"size:36;primarykey" json:"id"`               // 카테고리 ID (uuid)
	StoreID     string         `gorm:"size:36;not null;index" json:"store_id"`     // 매장 ID
	BillboardID string         `gorm:"size:36;not null;index" json:"billboard_id"` // 같은 매장의 빌보드만 참조 가능
	Name        string         `gorm:"not null" json:"name"`                       // 카테고리명
	CreatedAt   time.Time      `json:"created_at"`                                 // 생성 시각
	UpdatedAt   time.Time      `json:"updated_at"`                                 // 수정 시각
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                             // 삭제 시각(소프트 삭제)

	Store     Store     `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Billboard Billboard `gorm:"foreignKey:BillboardID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"billboard,omitempty"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"-"` // 이 카테고리를 참조하는 상품
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
