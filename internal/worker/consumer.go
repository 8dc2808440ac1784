package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/unimart/unimart/internal/logger"
	"github.com/unimart/unimart/internal/provider"
	"github.com/unimart/unimart/internal/queue"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreated, c.handleOrderCreated)
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
}

func (c *Consumer) handleOrderCreated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == uuid.Nil {
		logger.Debugw("worker_order_created_skip_invalid_payload")
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_created_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_created_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	email, err := c.resolveReceiverEmail(order.UserID)
	if err != nil {
		return err
	}
	logger.Infow("worker_order_created_notified",
		"order_id", order.ID,
		"user_id", order.UserID,
		"receiver", email,
		"total", order.Total.String(),
	)
	return nil
}

func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == uuid.Nil {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload")
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_changed_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_changed_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	email, err := c.resolveReceiverEmail(order.UserID)
	if err != nil {
		return err
	}
	logger.Infow("worker_order_status_changed_notified",
		"order_id", order.ID,
		"user_id", order.UserID,
		"receiver", email,
		"status", payload.Status,
	)
	return nil
}

func (c *Consumer) resolveReceiverEmail(userID uuid.UUID) (string, error) {
	user, err := c.UserRepo.GetByID(userID)
	if err != nil {
		logger.Warnw("worker_fetch_user_failed", "user_id", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return strings.TrimSpace(user.Email), nil
}
