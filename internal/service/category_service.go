package service

import (
	"strings"

	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
)

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// List 分类列表
func (s *CategoryService) List(page, pageSize int) ([]models.Category, int64, error) {
	return s.categoryRepo.List(page, pageSize)
}

// GetByID 获取分类
func (s *CategoryService) GetByID(id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFoundError(ErrCategoryNotFound, id)
	}
	return category, nil
}

// Create 创建分类，Slug 全局唯一。
func (s *CategoryService) Create(name, slug string) (*models.Category, error) {
	slug = strings.TrimSpace(slug)
	count, err := s.categoryRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}
	category := &models.Category{
		Name: strings.TrimSpace(name),
		Slug: slug,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类，变更 Slug 时同样校验唯一性。
func (s *CategoryService) Update(id uuid.UUID, name, slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, notFoundError(ErrCategoryNotFound, id)
	}
	slug = strings.TrimSpace(slug)
	count, err := s.categoryRepo.CountBySlug(slug, &category.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}
	category.Name = strings.TrimSpace(name)
	category.Slug = slug
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，仍有商品引用时拒绝。
func (s *CategoryService) Delete(id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return notFoundError(ErrCategoryNotFound, id)
	}
	count, err := s.productRepo.CountByCategory(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(category.ID)
}
