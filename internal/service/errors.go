package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// 业务错误哨兵，处理层通过 errors.Is 映射为响应码。
var (
	ErrUserNotFound     = errors.New("User not found")
	ErrCartNotFound     = errors.New("Cart not found")
	ErrCartItemNotFound = errors.New("Cart item not found")
	ErrProductNotFound  = errors.New("Product not found")
	ErrCategoryNotFound = errors.New("Category not found")
	ErrOrderNotFound    = errors.New("Order not found")
	ErrReviewNotFound   = errors.New("Review not found")

	ErrCartEmpty          = errors.New("Cart is empty, cannot proceed to checkout")
	ErrInvalidOrderStatus = errors.New("Invalid order status")
	ErrInvalidQuantity    = errors.New("Quantity must be greater than zero")
	ErrInvalidRating      = errors.New("Rating must be between 1 and 5")
	ErrInvalidAddress     = errors.New("Shipping address is required")
	ErrInvalidEmail       = errors.New("Invalid email address")
	ErrInvalidPassword    = errors.New("Password is required")

	ErrEmailTaken    = errors.New("User with this email already exists")
	ErrSlugTaken     = errors.New("Category with this slug already exists")
	ErrCategoryInUse = errors.New("Category has associated products and cannot be deleted")
)

// notFoundError 包装未找到错误并附带标识，保持 errors.Is 语义。
func notFoundError(sentinel error, id uuid.UUID) error {
	return fmt.Errorf("%w with id: %s", sentinel, id)
}

// invalidStatusError 包装非法状态错误并附带原始输入。
func invalidStatusError(status string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
}
