package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order 订单表（除状态外创建后不再变更）
type Order struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`                     // 主键
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`            // 用户ID
	Total     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total"` // 总金额
	Status    string    `gorm:"type:varchar(20);not null;index" json:"status"`      // 订单状态
	Address   string    `gorm:"type:text;not null" json:"address"`                  // 收货地址
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间（继承自购物车）
	UpdatedAt time.Time `json:"updated_at"`                                         // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate 生成主键
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem 订单项表（下单时从购物车项拷贝，价格冻结）
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`                     // 主键
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`           // 订单ID
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`         // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	Price     Money     `gorm:"type:decimal(10,2);not null;default:0" json:"price"` // 下单时单价
	CreatedAt time.Time `json:"created_at"`                                         // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeCreate 生成主键
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
