package service

import (
	"errors"
	"testing"

	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
	)
}

func TestCreateProductRequiresCategory(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	_, err := svc.Create(ProductInput{
		Name:       "Orphan",
		Price:      mustMoney(t, "1.00"),
		CategoryID: uuid.New(),
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	category := createTestCategory(t, db, "Electronics", "electronics")
	product, err := svc.Create(ProductInput{
		Name:       "Charger",
		Price:      mustMoney(t, "19.99"),
		Stock:      10,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !product.IsActive {
		t.Fatalf("product should default to active")
	}
}

func TestUpdateProduct(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	category := createTestCategory(t, db, "Books", "books")
	other := createTestCategory(t, db, "Comics", "comics")
	product := createTestProduct(t, db, category.ID, "Novel", "10.00")

	inactive := false
	updated, err := svc.Update(product.ID, ProductInput{
		Name:       "Novel (2nd ed)",
		Price:      mustMoney(t, "11.00"),
		Stock:      5,
		CategoryID: other.ID,
		IsActive:   &inactive,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CategoryID != other.ID || updated.Price.String() != "11.00" || updated.IsActive {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.Update(uuid.New(), ProductInput{Name: "X", CategoryID: category.ID}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSearchByNameIsCaseInsensitiveSubstring(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	category := createTestCategory(t, db, "Electronics", "electronics")
	createTestProduct(t, db, category.ID, "Wireless Mouse", "25.00")
	createTestProduct(t, db, category.ID, "Mechanical Keyboard", "90.00")

	products, total, err := svc.Search(SearchInput{Page: 1, PageSize: 10, Name: "mouse"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("want 1 match, got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Wireless Mouse" {
		t.Fatalf("wrong product matched: %s", products[0].Name)
	}
}

func TestSearchByCategoryName(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	electronics := createTestCategory(t, db, "Electronics", "electronics")
	books := createTestCategory(t, db, "Books", "books")
	createTestProduct(t, db, electronics.ID, "Router", "60.00")
	createTestProduct(t, db, books.ID, "Atlas", "40.00")

	products, total, err := svc.Search(SearchInput{Page: 1, PageSize: 10, CategoryName: "book"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("want 1 match, got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Atlas" {
		t.Fatalf("wrong product matched: %s", products[0].Name)
	}
}

func TestSearchPriceBoundsInclusive(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	category := createTestCategory(t, db, "Home", "home")
	createTestProduct(t, db, category.ID, "Mug", "9.99")
	createTestProduct(t, db, category.ID, "Kettle", "30.00")
	createTestProduct(t, db, category.ID, "Blender", "75.00")

	minPrice := decimal.RequireFromString("9.99")
	maxPrice := decimal.RequireFromString("30.00")
	products, total, err := svc.Search(SearchInput{Page: 1, PageSize: 10, MinPrice: &minPrice, MaxPrice: &maxPrice})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("bounds must be inclusive, got total=%d len=%d", total, len(products))
	}
}

func TestListByCategoryChecksCategoryExists(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	if _, _, err := svc.ListByCategory(uuid.New(), 1, 10); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	db := setupServiceTest(t)
	svc := newProductService(db)

	category := createTestCategory(t, db, "Garden", "garden")
	product := createTestProduct(t, db, category.ID, "Hose", "22.00")

	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
