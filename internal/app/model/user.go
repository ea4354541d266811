package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string         `gorm:"size:36;primarykey" json:"id"`      // 사용자 ID (uuid)
	Email        string         `gorm:"uniqueIndex;not null" json:"email"` // 이메일
	PasswordHash string         `gorm:"not null" json:"-"`                 // 비밀번호 해시
	Name         string         `gorm:"not null" json:"name"`              // 이름
	CreatedAt    time.Time      `json:"created_at"`                        // 생성 시각
	UpdatedAt    time.Time      `json:"updated_at"`                        // 수정 시각
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                    // 삭제 시각(소프트 삭제)

	Stores []Store `gorm:"foreignKey:UserID" json:"stores,omitempty"` // 소유 매장 목록
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
