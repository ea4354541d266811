package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Billboard 카테고리 상단에 노출되는 홍보 배너
type Billboard struct {
	ID        string         `gorm:"size:36;primarykey" json:"id"`           // 빌보드 ID (uuid)
	StoreID   string         `gorm:"size:36;not null;index" json:"store_id"` // 매장 ID
	Label     string         `gorm:"not null" json:"label"`                  // 배너 문구
	ImageURL  string         `gorm:"not null" json:"image_url"`              // 배너 이미지 URL
	CreatedAt time.Time      `json:"created_at"`                             // 생성 시각
	UpdatedAt time.Time      `json:"updated_at"`                             // 수정 시각
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 삭제 시각(소프트 삭제)

	Store      Store      `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Categories []Category `gorm:"foreignKey:BillboardID" json:"-"` // 이 빌보드를 참조하는 카테고리
}

func (Billboard) TableName() string {
	return "billboards"
}

func (b *Billboard) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
