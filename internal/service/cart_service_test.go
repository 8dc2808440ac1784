package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewUserRepository(db),
	)
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hash",
		Username:     "tester",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uuid.UUID, name, price string) *models.Product {
	t.Helper()
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:       name,
		Price:      amount,
		Stock:      100,
		CategoryID: categoryID,
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createTestCart(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.Cart {
	t.Helper()
	cart := &models.Cart{UserID: userID}
	if err := db.Create(cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	return cart
}

func mustMoney(t *testing.T, value string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", value, err)
	}
	return m
}

func TestAddItemMergesQuantityAndKeepsLatestPrice(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCartService(db)

	user := createTestUser(t, db, "merge@example.com")
	category := createTestCategory(t, db, "Electronics", "electronics")
	product := createTestProduct(t, db, category.ID, "Earbuds", "10.00")
	cart := createTestCart(t, db, user.ID)

	first, err := svc.AddItem(cart.ID, AddItemInput{ProductID: product.ID, Quantity: 2, Price: mustMoney(t, "10.00")})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := svc.AddItem(cart.ID, AddItemInput{ProductID: product.ID, Quantity: 3, Price: mustMoney(t, "12.00")})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected merge into existing item, got new item")
	}
	if second.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", second.Quantity)
	}
	if second.Price.String() != "12.00" {
		t.Fatalf("price want 12.00 got %s", second.Price.String())
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single line item, got %d", count)
	}
}

func TestAddItemDistinctProductsCreateSeparateLines(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCartService(db)

	user := createTestUser(t, db, "lines@example.com")
	category := createTestCategory(t, db, "Books", "books")
	first := createTestProduct(t, db, category.ID, "Book A", "20.00")
	second := createTestProduct(t, db, category.ID, "Book B", "30.00")
	cart := createTestCart(t, db, user.ID)

	if _, err := svc.AddItem(cart.ID, AddItemInput{ProductID: first.ID, Quantity: 1, Price: mustMoney(t, "20.00")}); err != nil {
		t.Fatalf("add first product failed: %v", err)
	}
	if _, err := svc.AddItem(cart.ID, AddItemInput{ProductID: second.ID, Quantity: 1, Price: mustMoney(t, "30.00")}); err != nil {
		t.Fatalf("add second product failed: %v", err)
	}

	items, err := repository.NewCartRepository(db).ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
}

func TestAddItemValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCartService(db)

	user := createTestUser(t, db, "validate@example.com")
	category := createTestCategory(t, db, "Home", "home")
	product := createTestProduct(t, db, category.ID, "Kettle", "15.00")
	cart := createTestCart(t, db, user.ID)

	if _, err := svc.AddItem(cart.ID, AddItemInput{ProductID: product.ID, Quantity: 0, Price: mustMoney(t, "15.00")}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(cart.ID, AddItemInput{ProductID: uuid.New(), Quantity: 1, Price: mustMoney(t, "15.00")}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.AddItem(uuid.New(), AddItemInput{ProductID: product.ID, Quantity: 1, Price: mustMoney(t, "15.00")}); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestUpdateItemOverwritesQuantityAndPrice(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCartService(db)

	user := createTestUser(t, db, "update@example.com")
	category := createTestCategory(t, db, "Audio", "audio")
	product := createTestProduct(t, db, category.ID, "Speaker", "40.00")
	cart := createTestCart(t, db, user.ID)

	item, err := svc.AddItem(cart.ID, AddItemInput{ProductID: product.ID, Quantity: 4, Price: mustMoney(t, "40.00")})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	updated, err := svc.UpdateItem(item.ID, 2, mustMoney(t, "35.50"))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", updated.Quantity)
	}
	if updated.Price.String() != "35.50" {
		t.Fatalf("price want 35.50 got %s", updated.Price.String())
	}

	if _, err := svc.UpdateItem(uuid.New(), 1, mustMoney(t, "1.00")); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
	if _, err := svc.UpdateItem(item.ID, 0, mustMoney(t, "1.00")); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestRemoveItemIsNotIdempotent(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCartService(db)

	user := createTestUser(t, db, "remove@example.com")
	category := createTestCategory(t, db, "Outdoors", "outdoors")
	product := createTestProduct(t, db, category.ID, "Tent", "120.00")
	cart := createTestCart(t, db, user.ID)

	item, err := svc.AddItem(cart.ID, AddItemInput{ProductID: product.ID, Quantity: 1, Price: mustMoney(t, "120.00")})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.RemoveItem(item.ID); err != nil {
		t.Fatalf("first remove failed: %v", err)
	}
	if err := svc.RemoveItem(item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound on second remove, got %v", err)
	}
}

func TestGetCartByUserBackfillsMissingCart(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCartService(db)

	user := createTestUser(t, db, "backfill@example.com")

	cart, err := svc.GetCartByUser(user.ID)
	if err != nil {
		t.Fatalf("get cart by user failed: %v", err)
	}
	if cart.UserID != user.ID {
		t.Fatalf("cart bound to wrong user")
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}

	if _, err := svc.GetCartByUser(uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
