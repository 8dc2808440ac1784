package handlers

import (
	"strings"

	"github.com/unimart/unimart/internal/http/response"
	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price"`
	Stock       int          `json:"stock"`
	ImageURL    string       `json:"image_url"`
	CategoryID  uuid.UUID    `json:"category_id" binding:"required"`
	IsActive    *bool        `json:"is_active"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		CategoryID:  r.CategoryID,
		IsActive:    r.IsActive,
	}
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	products, total, err := h.ProductService.List(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// SearchProducts 商品检索
func (h *Handler) SearchProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)

	input := service.SearchInput{
		Page:         page,
		PageSize:     pageSize,
		Name:         strings.TrimSpace(c.Query("name")),
		CategoryName: strings.TrimSpace(c.Query("category")),
	}
	if raw := strings.TrimSpace(c.Query("min_price")); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			response.BadRequest(c, "Invalid min_price: "+raw)
			return
		}
		input.MinPrice = &value
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			response.BadRequest(c, "Invalid max_price: "+raw)
			return
		}
		input.MaxPrice = &value
	}

	products, total, err := h.ProductService.Search(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetByID(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// ListCategoryProducts 分类下的商品列表
func (h *Handler) ListCategoryProducts(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "category_id")
	if !ok {
		return
	}
	page, pageSize := parsePagination(c)
	products, total, err := h.ProductService.ListByCategory(categoryID, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, products, response.BuildPagination(page, pageSize, total))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	product, err := h.ProductService.Update(productID, req.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "product_id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(productID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
