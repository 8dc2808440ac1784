package constants

// 订单状态常量
const (
	OrderStatusCreated    = "CREATED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderStatuses 合法订单状态集合
var OrderStatuses = []string{
	OrderStatusCreated,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// 评分边界常量
const (
	ReviewRatingMin = 1
	ReviewRatingMax = 5
)

// 队列常量
const (
	QueueDefault = "default"

	TaskOrderCreated       = "order:created"
	TaskOrderStatusChanged = "order:status_changed"
)

// 分页默认值
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
