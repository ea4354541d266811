package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store 멀티테넌시의 루트. 다른 모든 리소스는 정확히 하나의 매장에 속한다.
type Store struct {
	ID        string         `gorm:"size:36;primarykey" json:"id"`   // 매장 ID (uuid)
	UserID    string         `gorm:"size:36;not null;index" json:"user_id"` // 소유자 ID
	Name      string         `gorm:"not null" json:"name"`           // 매장명
	CreatedAt time.Time      `json:"created_at"`                     // 생성 시각
	UpdatedAt time.Time      `json:"updated_at"`                     // 수정 시각
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                 // 삭제 시각(소프트 삭제)

	User       User        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Billboards []Billboard `gorm:"foreignKey:StoreID" json:"billboards,omitempty"` // 빌보드 목록
	Categories []Category  `gorm:"foreignKey:StoreID" json:"categories,omitempty"` // 카테고리 목록
	Sizes      []Size      `gorm:"foreignKey:StoreID" json:"sizes,omitempty"`      // 사이즈 목록
	Colors     []Color     `gorm:"foreignKey:StoreID" json:"colors,omitempty"`     // 색상 목록
	Products   []Product   `gorm:"foreignKey:StoreID" json:"products,omitempty"`   // 상품 목록
	Orders     []Order     `gorm:"foreignKey:StoreID" json:"orders,omitempty"`     // 주문 목록
}

func (Store) TableName() string {
	return "stores"
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
