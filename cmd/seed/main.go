package main

import (
	"errors"

	"github.com/unimart/unimart/internal/config"
	"github.com/unimart/unimart/internal/logger"
	"github.com/unimart/unimart/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类（按 slug 幂等）
	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Books", Slug: "books"},
		{Name: "Home & Kitchen", Slug: "home-kitchen"},
	}
	bySlug := make(map[string]models.Category, len(categories))
	for i := range categories {
		category, err := ensureCategory(&categories[i])
		if err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", categories[i].Slug, err)
		}
		bySlug[category.Slug] = *category
	}

	// 添加商品（按名称幂等）
	products := []struct {
		category string
		name     string
		desc     string
		price    string
		stock    int
	}{
		{"electronics", "Wireless Earbuds", "Bluetooth 5.3 earbuds with charging case", "59.99", 120},
		{"electronics", "Mechanical Keyboard", "87-key hot-swappable mechanical keyboard", "89.00", 45},
		{"books", "The Go Programming Language", "Reference book for Go developers", "33.33", 200},
		{"home-kitchen", "Pour-over Coffee Kit", "Glass dripper with paper filters", "24.50", 80},
	}
	for _, p := range products {
		price, err := models.NewMoneyFromString(p.price)
		if err != nil {
			stdLog.Fatalf("Invalid seed price %s: %v", p.price, err)
		}
		category, ok := bySlug[p.category]
		if !ok {
			stdLog.Fatalf("Unknown seed category: %s", p.category)
		}
		if err := ensureProduct(&models.Product{
			Name:        p.name,
			Description: p.desc,
			Price:       price,
			Stock:       p.stock,
			CategoryID:  category.ID,
			IsActive:    true,
		}); err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", p.name, err)
		}
	}

	// 添加演示用户与其购物车（按邮箱幂等）
	if err := ensureDemoUser("demo@example.com", "demo123456", "demo"); err != nil {
		stdLog.Fatalf("Failed to seed demo user: %v", err)
	}

	logger.Infow("seed_completed",
		"categories", len(categories),
		"products", len(products),
	)
}

func ensureCategory(category *models.Category) (*models.Category, error) {
	var existing models.Category
	err := models.DB.Where("slug = ?", category.Slug).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := models.DB.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func ensureProduct(product *models.Product) error {
	var existing models.Product
	err := models.DB.Where("name = ?", product.Name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return models.DB.Create(product).Error
}

func ensureDemoUser(email, password, username string) error {
	var existing models.User
	err := models.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return models.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:        email,
			PasswordHash: string(hash),
			Username:     username,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Cart{UserID: user.ID}).Error
	})
}
