package service

import (
	"strings"

	"github.com/unimart/unimart/internal/constants"
	"github.com/unimart/unimart/internal/logger"
	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/queue"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, userRepo repository.UserRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// Checkout 购物车结算：原子地把购物车项转为订单并清空购物车。
// 事务内：锁定购物车行、拷贝购物车项为订单项、按单价×数量累加总额、
// 写入订单（创建时间继承购物车创建时间）、清空购物车项。
// 任一步失败整体回滚，购物车保持原样。
func (s *OrderService) Checkout(cartID uuid.UUID, address string) (*models.Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrInvalidAddress
	}

	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		cart, err := cartRepo.GetByIDForUpdate(cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return notFoundError(ErrCartNotFound, cartID)
		}

		items, err := cartRepo.ListItems(cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		order = &models.Order{
			UserID:    cart.UserID,
			Total:     models.NewMoneyFromDecimal(total),
			Status:    constants.OrderStatusCreated,
			Address:   address,
			CreatedAt: cart.CreatedAt,
		}
		if err := orderRepo.Create(order, orderItems); err != nil {
			return err
		}
		order.Items = orderItems

		return cartRepo.ClearItems(cart.ID)
	})
	if err != nil {
		return nil, err
	}

	s.enqueueOrderCreated(order)
	return order, nil
}

// UpdateStatus 更新订单状态，仅校验枚举成员资格，不限制状态迁移路径。
func (s *OrderService) UpdateStatus(orderID uuid.UUID, status string) (*models.Order, error) {
	status = strings.TrimSpace(status)
	if !constants.IsValidOrderStatus(status) {
		return nil, invalidStatusError(status)
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFoundError(ErrOrderNotFound, orderID)
	}
	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.enqueueStatusChanged(order, status)
	return order, nil
}

// GetByID 获取订单详情
func (s *OrderService) GetByID(orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFoundError(ErrOrderNotFound, orderID)
	}
	return order, nil
}

// List 订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(userID uuid.UUID, page, pageSize int) ([]models.Order, int64, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, notFoundError(ErrUserNotFound, userID)
	}
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// 通知任务入队失败只记日志，不影响已提交的订单。
func (s *OrderService) enqueueOrderCreated(order *models.Order) {
	if s.queueClient == nil || order == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderCreated(queue.OrderCreatedPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_enqueue_created_failed",
			"order_id", order.ID,
			"error", err,
		)
	}
}

func (s *OrderService) enqueueStatusChanged(order *models.Order, status string) {
	if s.queueClient == nil || order == nil {
		return
	}
	if err := s.queueClient.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{OrderID: order.ID, Status: status}); err != nil {
		logger.Warnw("order_enqueue_status_changed_failed",
			"order_id", order.ID,
			"status", status,
			"error", err,
		)
	}
}
