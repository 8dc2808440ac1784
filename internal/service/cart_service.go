package service

import (
	"github.com/unimart/unimart/internal/models"
	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// AddItemInput 添加购物车项输入
type AddItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     models.Money
}

// AddItem 向购物车添加商品。
// 同一购物车已存在该商品时合并：数量累加，单价取本次传入值；否则新建一行。
// 合并在购物车行锁内完成，同一购物车上的并发添加彼此串行。
func (s *CartService) AddItem(cartID uuid.UUID, input AddItemInput) (*models.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFoundError(ErrProductNotFound, input.ProductID)
	}

	var result *models.CartItem
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)

		cart, err := cartRepo.GetByIDForUpdate(cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return notFoundError(ErrCartNotFound, cartID)
		}

		existing, err := cartRepo.GetItemByCartAndProduct(cart.ID, input.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Quantity += input.Quantity
			existing.Price = input.Price
			if err := cartRepo.SaveItem(existing); err != nil {
				return err
			}
			result = existing
			return nil
		}

		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Price:     input.Price,
		}
		if err := cartRepo.CreateItem(item); err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateItem 更新购物车项，数量与单价整体覆盖。
func (s *CartService) UpdateItem(itemID uuid.UUID, quantity int, price models.Money) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFoundError(ErrCartItemNotFound, itemID)
	}
	item.Quantity = quantity
	item.Price = price
	if err := s.cartRepo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 删除购物车项，项不存在视为错误。
func (s *CartService) RemoveItem(itemID uuid.UUID) error {
	item, err := s.cartRepo.GetItemByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFoundError(ErrCartItemNotFound, itemID)
	}
	return s.cartRepo.DeleteItem(item.ID)
}

// GetCart 获取购物车及全部购物车项
func (s *CartService) GetCart(cartID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, notFoundError(ErrCartNotFound, cartID)
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return cart, nil
}

// GetCartByUser 获取用户购物车及全部购物车项
func (s *CartService) GetCartByUser(userID uuid.UUID) (*models.Cart, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundError(ErrUserNotFound, userID)
	}
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return s.EnsureCart(userID)
	}
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return cart, nil
}

// EnsureCart 为用户补建购物车（正常情况下建用户时已创建）
func (s *CartService) EnsureCart(userID uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{UserID: userID}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, err
	}
	cart.Items = []models.CartItem{}
	return cart, nil
}
