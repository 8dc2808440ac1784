package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review 商品评价表（创建后默认待审核）
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`                  // 主键
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`         // 用户ID
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`      // 商品ID
	Rating     int       `gorm:"not null" json:"rating"`                          // 评分（1-5）
	Comment    string    `gorm:"type:text" json:"comment"`                        // 评论内容
	IsApproved bool      `gorm:"not null;default:false;index" json:"is_approved"` // 是否通过审核
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                         // 创建时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate 生成主键
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
