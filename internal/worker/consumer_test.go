package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/provider"
	"github.com/unimart/unimart/internal/queue"
	"github.com/unimart/unimart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	container := &provider.Container{
		OrderRepo: repository.NewOrderRepository(db),
		UserRepo:  repository.NewUserRepository(db),
	}
	return NewConsumer(container), db
}

func TestHandleOrderCreated(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	user := &models.User{Email: "worker@example.com", PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	total, _ := models.NewMoneyFromString("42.00")
	order := &models.Order{UserID: user.ID, Total: total, Status: "CREATED", Address: "a"}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	task, err := queue.NewOrderCreatedTask(queue.OrderCreatedPayload{OrderID: order.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderCreated(context.Background(), task); err != nil {
		t.Fatalf("handle order created failed: %v", err)
	}
}

func TestHandleOrderCreatedSkipsMissingOrder(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task, err := queue.NewOrderCreatedTask(queue.OrderCreatedPayload{OrderID: uuid.New()})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderCreated(context.Background(), task); err != nil {
		t.Fatalf("missing order should not fail the task: %v", err)
	}

	nilTask, err := queue.NewOrderCreatedTask(queue.OrderCreatedPayload{})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderCreated(context.Background(), nilTask); err != nil {
		t.Fatalf("nil order id should be skipped: %v", err)
	}
}

func TestHandleOrderCreatedRejectsBadPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskOrderCreated, []byte("not-json"))
	if err := consumer.handleOrderCreated(context.Background(), task); err == nil {
		t.Fatalf("expected unmarshal error for malformed payload")
	}
}

func TestHandleOrderStatusChanged(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	user := &models.User{Email: "change@example.com", PasswordHash: "hash"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	total, _ := models.NewMoneyFromString("10.00")
	order := &models.Order{UserID: user.ID, Total: total, Status: "SHIPPED", Address: "a"}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}

	task, err := queue.NewOrderStatusChangedTask(queue.OrderStatusChangedPayload{OrderID: order.ID, Status: "SHIPPED"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderStatusChanged(context.Background(), task); err != nil {
		t.Fatalf("handle status changed failed: %v", err)
	}
}

func TestRegisterNilSafe(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	consumer.Register(nil)

	mux := asynq.NewServeMux()
	consumer.Register(mux)
}
