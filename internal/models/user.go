package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`          // 主键
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`       // 邮箱
	PasswordHash string    `gorm:"not null" json:"-"`                       // 密码哈希（不返回给前端）
	Username     string    `gorm:"type:varchar(100)" json:"username"`       // 用户名
	Phone        string    `gorm:"type:varchar(30)" json:"phone,omitempty"` // 电话
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// BeforeCreate 生成主键
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
