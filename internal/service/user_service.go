package service

import (
	"net/mail"
	"strings"

	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, cartRepo repository.CartRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// CreateUserInput 创建用户输入
type CreateUserInput struct {
	Email    string
	Password string
	Username string
	Phone    string
}

// UpdateUserInput 更新用户输入
type UpdateUserInput struct {
	Email    string
	Username string
	Phone    string
}

// Create 创建用户并在同一事务内建立其购物车。
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidPassword
	}

	count, err := s.userRepo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Username:     strings.TrimSpace(input.Username),
		Phone:        strings.TrimSpace(input.Phone),
	}
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(user); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).Create(&models.Cart{UserID: user.ID})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID 获取用户
func (s *UserService) GetByID(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundError(ErrUserNotFound, id)
	}
	return user, nil
}

// Update 更新用户资料，邮箱变更时校验唯一性。
func (s *UserService) Update(id uuid.UUID, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundError(ErrUserNotFound, id)
	}

	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" && email != user.Email {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
		count, err := s.userRepo.CountByEmail(email, &user.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		user.Phone = phone
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete 删除用户及其购物车内容。
func (s *UserService) Delete(id uuid.UUID) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return notFoundError(ErrUserNotFound, id)
	}
	return models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		cart, err := cartRepo.GetByUserID(user.ID)
		if err != nil {
			return err
		}
		if cart != nil {
			if err := cartRepo.ClearItems(cart.ID); err != nil {
				return err
			}
			if err := tx.Where("id = ?", cart.ID).Delete(&models.Cart{}).Error; err != nil {
				return err
			}
		}
		return s.userRepo.WithTx(tx).Delete(user.ID)
	})
}
