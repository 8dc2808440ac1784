package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`                     // 主键
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`       // 名称
	Description string    `gorm:"type:text" json:"description"`                       // 描述
	Price       Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 价格
	Stock       int       `gorm:"not null;default:0" json:"stock"`                    // 库存数量
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url"`                 // 图片地址
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`        // 分类ID
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`       // 是否上架
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                            // 创建时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 关联分类
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeCreate 生成主键
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
