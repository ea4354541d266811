package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Size struct {
	ID        string         `gorm:"size:36;primarykey" json:"id"`           // 사이즈 ID (uuid)
	StoreID   string         `gorm:"size:36;not null;index" json:"store_id"` // 매장 ID
	Name      string         `gorm:"not null" json:"name"`                   // 사이즈명 (예: "Large")
	Value     string         `gorm:"not null" json:"value"`                  // 표시 값 (예: "L")
	CreatedAt time.Time      `json:"created_at"`                             // 생성 시각
	UpdatedAt time.Time      `json:"updated_at"`                             // 수정 시각
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 삭제 시각(소프트 삭제)

	Store    Store     `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Products []Product `gorm:"foreignKey:SizeID" json:"-"` // 이 사이즈를 참조하는 상품
}

func (Size) TableName() string {
	return "sizes"
}

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
