package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Color struct {
	ID        string         `gorm:"size:36;primarykey" json:"id"`           // 색상 ID (uuid)
	StoreID   string         `gorm:"size:36;not null;index" json:"store_id"` // 매장 ID
	Name      string         `gorm:"not null" json:"name"`                   // 색상명 (예: "Red")
	Value     string         `gorm:"not null" json:"value"`                  // 표시 값 (예: "#ff0000")
	CreatedAt time.Time      `json:"created_at"`                             // 생성 시각
	UpdatedAt time.Time      `json:"updated_at"`                             // 수정 시각
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 삭제 시각(소프트 삭제)

	Store    Store     `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Products []Product `gorm:"foreignKey:ColorID" json:"-"` // 이 색상을 참조하는 상품
}

func (Color) TableName() string {
	return "colors"
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
