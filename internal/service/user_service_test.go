package service

import (
	"errors"
	"testing"

	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewCartRepository(db),
	)
}

func TestCreateUserHashesPasswordAndCreatesCart(t *testing.T) {
	db := setupServiceTest(t)
	svc := newUserService(db)

	user, err := svc.Create(CreateUserInput{
		Email:    "Alice@Example.com",
		Password: "secret123",
		Username: "alice",
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("password hash does not match: %v", err)
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		t.Fatalf("cart should be created with user: %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newUserService(db)

	if _, err := svc.Create(CreateUserInput{Email: "not-an-email", Password: "x"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Email: "ok@example.com", Password: "  "}); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupServiceTest(t)
	svc := newUserService(db)

	if _, err := svc.Create(CreateUserInput{Email: "dup@example.com", Password: "a"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Email: "DUP@example.com", Password: "b"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserEmailUniqueness(t *testing.T) {
	db := setupServiceTest(t)
	svc := newUserService(db)

	first, err := svc.Create(CreateUserInput{Email: "first@example.com", Password: "a"})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	if _, err := svc.Create(CreateUserInput{Email: "second@example.com", Password: "b"}); err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	if _, err := svc.Update(first.ID, UpdateUserInput{Email: "second@example.com"}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	updated, err := svc.Update(first.ID, UpdateUserInput{Username: "renamed"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "renamed" {
		t.Fatalf("username want renamed got %s", updated.Username)
	}
}

func TestDeleteUserRemovesCart(t *testing.T) {
	db := setupServiceTest(t)
	svc := newUserService(db)

	user, err := svc.Create(CreateUserInput{Email: "gone@example.com", Password: "a"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var carts int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&carts).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if carts != 0 {
		t.Fatalf("cart should be removed with user")
	}

	if _, err := svc.GetByID(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Delete(uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on missing user, got %v", err)
	}
}
