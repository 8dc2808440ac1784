package handlers

import (
	"strings"

	"github.com/unimart/unimart/internal/http/response"
	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddCartItemRequest 添加购物车项请求
type AddCartItemRequest struct {
	ProductID uuid.UUID    `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity" binding:"required"`
	Price     models.Money `json:"price"`
}

// UpdateCartItemRequest 更新购物车项请求
type UpdateCartItemRequest struct {
	Quantity int          `json:"quantity" binding:"required"`
	Price    models.Money `json:"price"`
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	Address string `json:"address"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cart_id")
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(cartID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// GetUserCart 获取用户购物车
func (h *Handler) GetUserCart(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "user_id")
	if !ok {
		return
	}
	cart, err := h.CartService.GetCartByUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem 向购物车添加商品，同商品合并数量
func (h *Handler) AddCartItem(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cart_id")
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.CartService.AddItem(cartID, service.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateCartItem 更新购物车项
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "item_id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	item, err := h.CartService.UpdateItem(itemID, req.Quantity, req.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, ok := parseUUIDParam(c, "item_id")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// Checkout 购物车结算，地址取 query 参数或请求体
func (h *Handler) Checkout(c *gin.Context) {
	cartID, ok := parseUUIDParam(c, "cart_id")
	if !ok {
		return
	}
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			address = strings.TrimSpace(req.Address)
		}
	}
	order, err := h.OrderService.Checkout(cartID, address)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, order)
}
