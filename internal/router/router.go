package router

import (
	"fmt"
	"strings"

	"github.com/unimart/unimart/internal/cache"
	"github.com/unimart/unimart/internal/config"
	"github.com/unimart/unimart/internal/http/handlers"
	"github.com/unimart/unimart/internal/logger"
	"github.com/unimart/unimart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "um"
	}
	redisClient := cache.Client()
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:write", redisPrefix),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
	}
	writeLimit := RateLimitMiddleware(redisClient, writeRule, KeyByIP)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 购物车与结算
		apiV1.GET("/carts/:cart_id", handler.GetCart)
		apiV1.POST("/carts/:cart_id/items", writeLimit, handler.AddCartItem)
		apiV1.POST("/carts/:cart_id/checkout", writeLimit, handler.Checkout)
		apiV1.PUT("/cart-items/:item_id", writeLimit, handler.UpdateCartItem)
		apiV1.DELETE("/cart-items/:item_id", writeLimit, handler.RemoveCartItem)

		// 订单
		apiV1.GET("/orders", handler.ListOrders)
		apiV1.GET("/orders/:order_id", handler.GetOrder)
		apiV1.PUT("/orders/:order_id/status", writeLimit, handler.UpdateOrderStatus)

		// 商品
		apiV1.GET("/products", handler.ListProducts)
		apiV1.GET("/products/search", handler.SearchProducts)
		apiV1.GET("/products/:product_id", handler.GetProduct)
		apiV1.GET("/products/:product_id/reviews", handler.ListProductReviews)
		apiV1.POST("/products", handler.CreateProduct)
		apiV1.PUT("/products/:product_id", handler.UpdateProduct)
		apiV1.DELETE("/products/:product_id", handler.DeleteProduct)

		// 分类
		apiV1.GET("/categories", handler.ListCategories)
		apiV1.GET("/categories/:category_id", handler.GetCategory)
		apiV1.GET("/categories/:category_id/products", handler.ListCategoryProducts)
		apiV1.POST("/categories", handler.CreateCategory)
		apiV1.PUT("/categories/:category_id", handler.UpdateCategory)
		apiV1.DELETE("/categories/:category_id", handler.DeleteCategory)

		// 评价
		apiV1.POST("/reviews", handler.CreateReview)
		apiV1.PUT("/reviews/:review_id/approve", handler.ApproveReview)
		apiV1.DELETE("/reviews/:review_id", handler.DeleteReview)

		// 用户
		apiV1.POST("/users", handler.CreateUser)
		apiV1.GET("/users/:user_id", handler.GetUser)
		apiV1.PUT("/users/:user_id", handler.UpdateUser)
		apiV1.DELETE("/users/:user_id", handler.DeleteUser)
		apiV1.GET("/users/:user_id/cart", handler.GetUserCart)
		apiV1.GET("/users/:user_id/orders", handler.ListUserOrders)
	}

	return r
}
