package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradbazar/internal/domain/entity"
	"tradbazar/pkg/errors"
)

type reviewTestEnv struct {
	reviews       *fakeReviewRepo
	products      *fakeProductRepo
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	uc            *ReviewUseCase
}

func newReviewTestEnv() *reviewTestEnv {
	reviews := newFakeReviewRepo()
	products := newFakeProductRepo()
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()
	return &reviewTestEnv{
		reviews:       reviews,
		products:      products,
		users:         users,
		notifications: notifications,
		uc:            NewReviewUseCase(reviews, products, users, NewNotifier(notifications, nil, nil)),
	}
}

func TestCreateReviewSnapshotsAuthorAndSeller(t *testing.T) {
	env := newReviewTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:     "p1",
		Name:   "Himsagar Mango",
		Seller: entity.SellerInfo{Email: "rahim@example.com"},
	}
	env.users.users["karim@example.com"] = &entity.User{
		Email: "karim@example.com",
		Name:  "Karim",
		Photo: "https://example.com/karim.jpg",
	}

	review, err := env.uc.CreateReview(context.Background(), "karim@example.com", CreateReviewInput{
		ProductID: "p1",
		Rating:    4,
		Comment:   "Sweet and fresh",
	})

	require.NoError(t, err)
	assert.Equal(t, "Karim", review.ReviewerName)
	assert.Equal(t, "rahim@example.com", review.SellerEmail)
	assert.Equal(t, 4, review.Rating)
	assert.Len(t, env.notifications.forUser("rahim@example.com"), 1)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	env := newReviewTestEnv()

	for _, rating := range []int{0, 6, -1} {
		_, err := env.uc.CreateReview(context.Background(), "karim@example.com", CreateReviewInput{
			ProductID: "p1",
			Rating:    rating,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	}
}

func TestCreateReviewMissingProduct(t *testing.T) {
	env := newReviewTestEnv()

	_, err := env.uc.CreateReview(context.Background(), "karim@example.com", CreateReviewInput{
		ProductID: "gone",
		Rating:    5,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListReviewsByProductAndSeller(t *testing.T) {
	env := newReviewTestEnv()
	env.reviews.reviews = []*entity.Review{
		{ID: "r1", ProductID: "p1", SellerEmail: "rahim@example.com"},
		{ID: "r2", ProductID: "p2", SellerEmail: "rahim@example.com"},
		{ID: "r3", ProductID: "p1", SellerEmail: "other@example.com"},
	}

	byProduct, err := env.uc.ListProductReviews(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	bySeller, err := env.uc.ListSellerReviews(context.Background(), "rahim@example.com")
	require.NoError(t, err)
	assert.Len(t, bySeller, 2)
}
