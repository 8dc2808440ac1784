package handlers

import (
	"github.com/unimart/unimart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	page, pageSize := parsePagination(c)
	categories, total, err := h.CategoryService.List(page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, categories, response.BuildPagination(page, pageSize, total))
}

// GetCategory 获取分类
func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "category_id")
	if !ok {
		return
	}
	category, err := h.CategoryService.GetByID(categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	category, err := h.CategoryService.Create(req.Name, req.Slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "category_id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	category, err := h.CategoryService.Update(categoryID, req.Name, req.Slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "category_id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(categoryID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}
