package service

import (
	"strings"

	"github.com/unimart/unimart/internal/constants"
	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
)

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// Create 创建评价，新评价默认未审核。
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrInvalidRating
	}
	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundError(ErrUserNotFound, input.UserID)
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFoundError(ErrProductNotFound, input.ProductID)
	}

	review := &models.Review{
		UserID:     input.UserID,
		ProductID:  input.ProductID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		IsApproved: false,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// Approve 审核通过评价
func (s *ReviewService) Approve(id uuid.UUID) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, notFoundError(ErrReviewNotFound, id)
	}
	review.IsApproved = true
	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListApprovedByProduct 商品已审核评价列表
func (s *ReviewService) ListApprovedByProduct(productID uuid.UUID, page, pageSize int) ([]models.Review, int64, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, 0, err
	}
	if product == nil {
		return nil, 0, notFoundError(ErrProductNotFound, productID)
	}
	return s.reviewRepo.List(repository.ReviewListFilter{
		Page:         page,
		PageSize:     pageSize,
		ProductID:    productID,
		OnlyApproved: true,
	})
}

// Delete 删除评价
func (s *ReviewService) Delete(id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return notFoundError(ErrReviewNotFound, id)
	}
	return s.reviewRepo.Delete(review.ID)
}
