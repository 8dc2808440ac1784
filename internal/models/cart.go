package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart 购物车表（每个用户至多一个）
type Cart struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`                // 主键
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"` // 用户ID
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// BeforeCreate 生成主键
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CartItem 购物车项（同一购物车中每个商品至多一行）
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`                                    // 主键
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product" json:"cart_id"`    // 购物车ID
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product" json:"product_id"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                          // 数量
	Price     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"`                // 加入时单价
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                        // 更新时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// BeforeCreate 生成主键
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
