package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category 分类表
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`         // 主键
	Name      string    `gorm:"type:varchar(255);not null" json:"name"` // 名称
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`       // 唯一标识
	CreatedAt time.Time `gorm:"index" json:"created_at"`                // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate 生成主键
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
