package service

import (
	"errors"
	"testing"

	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newCategoryService(db *gorm.DB) *CategoryService {
	return NewCategoryService(
		repository.NewCategoryRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCreateCategorySlugConflict(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCategoryService(db)

	if _, err := svc.Create("Electronics", "electronics"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err := svc.Create("Other Electronics", "electronics")
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
	if err.Error() != "Category with this slug already exists" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUpdateCategorySlug(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCategoryService(db)

	first, err := svc.Create("Books", "books")
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	if _, err := svc.Create("Music", "music"); err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	// 保留自身 slug 不算冲突
	if _, err := svc.Update(first.ID, "Paper Books", "books"); err != nil {
		t.Fatalf("update keeping slug failed: %v", err)
	}
	if _, err := svc.Update(first.ID, "Books", "music"); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
	if _, err := svc.Update(uuid.New(), "X", "x"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategoryWithProductsRejected(t *testing.T) {
	db := setupServiceTest(t)
	svc := newCategoryService(db)

	category, err := svc.Create("Home", "home")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	product := createTestProduct(t, db, category.ID, "Chair", "45.00")

	if err := svc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}

	if err := repository.NewProductRepository(db).Delete(product.ID); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if _, err := svc.GetByID(category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
