package service

import (
	"errors"
	"testing"

	"github.com/unimart/unimart/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewUserRepository(db),
		repository.NewProductRepository(db),
	)
}

func TestCreateReviewStartsUnapproved(t *testing.T) {
	db := setupServiceTest(t)
	svc := newReviewService(db)

	user := createTestUser(t, db, "review@example.com")
	category := createTestCategory(t, db, "Books", "books")
	product := createTestProduct(t, db, category.ID, "Novel", "12.00")

	review, err := svc.Create(CreateReviewInput{
		UserID:    user.ID,
		ProductID: product.ID,
		Rating:    5,
		Comment:   "  great read  ",
	})
	if err != nil {
		t.Fatalf("create review failed: %v", err)
	}
	if review.IsApproved {
		t.Fatalf("new review must start unapproved")
	}
	if review.Comment != "great read" {
		t.Fatalf("comment want trimmed, got %q", review.Comment)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	db := setupServiceTest(t)
	svc := newReviewService(db)

	user := createTestUser(t, db, "bounds@example.com")
	category := createTestCategory(t, db, "Games", "games")
	product := createTestProduct(t, db, category.ID, "Puzzle", "9.00")

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.Create(CreateReviewInput{UserID: user.ID, ProductID: product.ID, Rating: rating}); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	if _, err := svc.Create(CreateReviewInput{UserID: uuid.New(), ProductID: product.ID, Rating: 3}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{UserID: user.ID, ProductID: uuid.New(), Rating: 3}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestApproveReviewAndPublicListing(t *testing.T) {
	db := setupServiceTest(t)
	svc := newReviewService(db)

	user := createTestUser(t, db, "approve@example.com")
	category := createTestCategory(t, db, "Audio", "audio")
	product := createTestProduct(t, db, category.ID, "Headphones", "89.00")

	first, err := svc.Create(CreateReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 4, Comment: "good"})
	if err != nil {
		t.Fatalf("create first failed: %v", err)
	}
	if _, err := svc.Create(CreateReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 2, Comment: "meh"}); err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	approved, err := svc.Approve(first.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if !approved.IsApproved {
		t.Fatalf("review should be approved")
	}

	reviews, total, err := svc.ListApprovedByProduct(product.ID, 1, 10)
	if err != nil {
		t.Fatalf("list approved failed: %v", err)
	}
	if total != 1 || len(reviews) != 1 {
		t.Fatalf("want 1 approved review, got total=%d len=%d", total, len(reviews))
	}
	if reviews[0].ID != first.ID {
		t.Fatalf("wrong review listed")
	}

	if _, err := svc.Approve(uuid.New()); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
	if _, _, err := svc.ListApprovedByProduct(uuid.New(), 1, 10); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteReview(t *testing.T) {
	db := setupServiceTest(t)
	svc := newReviewService(db)

	user := createTestUser(t, db, "delete@example.com")
	category := createTestCategory(t, db, "Video", "video")
	product := createTestProduct(t, db, category.ID, "Camera", "400.00")

	review, err := svc.Create(CreateReviewInput{UserID: user.ID, ProductID: product.ID, Rating: 1})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(review.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
