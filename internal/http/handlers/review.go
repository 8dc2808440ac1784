package handlers

import (
	"github.com/unimart/unimart/internal/http/response"
	"github.com/unimart/unimart/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReviewRequest 创建评价请求
type CreateReviewRequest struct {
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required"`
	Comment   string    `json:"comment"`
}

// ListProductReviews 商品已审核评价列表
func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	reviews, total, err := h.ReviewService.ListApprovedByProduct(productID, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, reviews, response.BuildPagination(page, pageSize, total))
}

// CreateReview 创建评价，默认未审核
func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	review, err := h.ReviewService.Create(service.CreateReviewInput{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, review)
}

// ApproveReview 审核通过评价
func (h *Handler) ApproveReview(c *gin.Context) {
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}
	review, err := h.ReviewService.Approve(reviewID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除评价
func (h *Handler) DeleteReview(c *gin.Context) {
	reviewID, ok := parseUUIDParam(c, "review_id")
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(reviewID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
