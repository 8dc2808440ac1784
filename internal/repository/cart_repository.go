package repository

import (
	"errors"

	"github.com/unimart/unimart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByID(id uuid.UUID) (*models.Cart, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Cart, error)
	GetByUserID(userID uuid.UUID) (*models.Cart, error)
	Create(cart *models.Cart) error
	ListItems(cartID uuid.UUID) ([]models.CartItem, error)
	GetItemByID(itemID uuid.UUID) (*models.CartItem, error)
	GetItemByCartAndProduct(cartID, productID uuid.UUID) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	SaveItem(item *models.CartItem) error
	DeleteItem(itemID uuid.UUID) error
	ClearItems(cartID uuid.UUID) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByID 根据 ID 获取购物车
func (r *GormCartRepository) GetByID(id uuid.UUID) (*models.Cart, error) {
	return r.getByID(r.db, id)
}

// GetByIDForUpdate 根据 ID 加锁获取购物车，用于串行化同一购物车上的变更
func (r *GormCartRepository) GetByIDForUpdate(id uuid.UUID) (*models.Cart, error) {
	return r.getByID(lockForUpdate(r.db), id)
}

func (r *GormCartRepository) getByID(db *gorm.DB, id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("id = ?", id).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetByUserID 根据用户 ID 获取购物车
func (r *GormCartRepository) GetByUserID(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create 创建购物车
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// ListItems 获取购物车项，按加入时间排序
func (r *GormCartRepository) ListItems(cartID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("cart_id = ?", cartID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByID 根据 ID 获取购物车项
func (r *GormCartRepository) GetItemByID(itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetItemByCartAndProduct 按购物车与商品定位购物车项
func (r *GormCartRepository) GetItemByCartAndProduct(cartID, productID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem 创建购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// SaveItem 保存购物车项
func (r *GormCartRepository) SaveItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

// DeleteItem 删除购物车项
func (r *GormCartRepository) DeleteItem(itemID uuid.UUID) error {
	return r.db.Where("id = ?", itemID).Delete(&models.CartItem{}).Error
}

// ClearItems 清空购物车项，购物车本身保留
func (r *GormCartRepository) ClearItems(cartID uuid.UUID) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
