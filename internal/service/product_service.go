package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/unimart/unimart/internal/cache"
	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const productCacheTTL = 5 * time.Minute

func productCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Name        string
	Description string
	Price       models.Money
	Stock       int
	ImageURL    string
	CategoryID  uuid.UUID
	IsActive    *bool
}

// SearchInput 商品检索输入
type SearchInput struct {
	Page         int
	PageSize     int
	Name         string
	CategoryName string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
}

// List 商品列表
func (s *ProductService) List(page, pageSize int) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		WithCategory: true,
	})
}

// ListByCategory 分类下的商品列表
func (s *ProductService) ListByCategory(categoryID uuid.UUID, page, pageSize int) ([]models.Product, int64, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, 0, err
	}
	if category == nil {
		return nil, 0, notFoundError(ErrCategoryNotFound, categoryID)
	}
	return s.productRepo.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
	})
}

// Search 商品检索：名称与分类名大小写不敏感子串匹配，价格为闭区间。
func (s *ProductService) Search(input SearchInput) ([]models.Product, int64, error) {
	return s.productRepo.List(repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		Name:         strings.TrimSpace(input.Name),
		CategoryName: strings.TrimSpace(input.CategoryName),
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		WithCategory: true,
	})
}

// GetByID 获取商品详情，命中缓存时直接返回。
func (s *ProductService) GetByID(id uuid.UUID) (*models.Product, error) {
	ctx := context.Background()
	var cached models.Product
	if hit, err := cache.GetJSON(ctx, productCacheKey(id), &cached); err == nil && hit {
		return &cached, nil
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFoundError(ErrProductNotFound, id)
	}
	_ = cache.SetJSON(ctx, productCacheKey(id), product, productCacheTTL)
	return product, nil
}

// Create 创建商品，分类必须存在。
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		IsActive:    true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品，分类必须存在。
func (s *ProductService) Update(id uuid.UUID, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFoundError(ErrProductNotFound, id)
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID
	product.Category = nil
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	_ = cache.Del(context.Background(), productCacheKey(product.ID))
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uuid.UUID) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return notFoundError(ErrProductNotFound, id)
	}
	if err := s.productRepo.Delete(product.ID); err != nil {
		return err
	}
	_ = cache.Del(context.Background(), productCacheKey(product.ID))
	return nil
}

func (s *ProductService) validateInput(input ProductInput) error {
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return notFoundError(ErrCategoryNotFound, input.CategoryID)
	}
	return nil
}
