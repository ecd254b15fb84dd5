package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradbazar/internal/domain/entity"
	"tradbazar/pkg/errors"
)

type productTestEnv struct {
	products      *fakeProductRepo
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	uc            *ProductUseCase
}

func newProductTestEnv() *productTestEnv {
	products := newFakeProductRepo()
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()
	return &productTestEnv{
		products:      products,
		users:         users,
		notifications: notifications,
		uc:            NewProductUseCase(products, users, NewNotifier(notifications, nil, nil)),
	}
}

func (env *productTestEnv) seedSeller(email string) {
	env.users.users[email] = &entity.User{
		Email: email,
		Name:  "Rahim",
		Role:  entity.RoleSeller,
		SellerRequest: &entity.SellerRequest{
			Status:   entity.SellerRequestApproved,
			District: "Rajshahi",
		},
	}
}

func TestCreateProductStartsPendingVerification(t *testing.T) {
	env := newProductTestEnv()
	env.seedSeller("rahim@example.com")

	product, err := env.uc.CreateProduct(context.Background(), "rahim@example.com", ProductInput{
		Name:     "Himsagar Mango",
		Category: "fresh-fruits",
		Quantity: 50,
		Unit:     "kg",
		Price:    120,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationPending, product.VerificationStatus)
	assert.True(t, product.IsAvailable)
	assert.False(t, product.Featured)
	assert.Equal(t, "rahim@example.com", product.Seller.Email)
	assert.Equal(t, "Rajshahi", product.Seller.District)
}

func TestCreateProductNotifiesSellerAndAdmin(t *testing.T) {
	env := newProductTestEnv()
	env.seedSeller("rahim@example.com")

	_, err := env.uc.CreateProduct(context.Background(), "rahim@example.com", ProductInput{
		Name: "Himsagar Mango", Quantity: 50, Unit: "kg", Price: 120,
	})

	require.NoError(t, err)
	assert.Len(t, env.notifications.forUser("rahim@example.com"), 1)
	assert.Len(t, env.notifications.forUser(entity.AdminInbox), 1)
}

func TestSubmissionNoteReachesAdminInbox(t *testing.T) {
	env := newProductTestEnv()
	env.seedSeller("rahim@example.com")
	inbox := NewNotificationUseCase(env.notifications)

	_, err := env.uc.CreateProduct(context.Background(), "rahim@example.com", ProductInput{
		Name: "Himsagar Mango", Quantity: 50, Unit: "kg", Price: 120,
	})
	require.NoError(t, err)

	feed, err := inbox.GetFeed(context.Background(), entity.AdminInbox, 20, 0)
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "Product pending verification", feed.Items[0].Title)
	assert.Equal(t, int64(1), feed.UnreadCount)

	err = inbox.MarkRead(context.Background(), entity.AdminInbox, feed.Items[0].ID)
	require.NoError(t, err)

	feed, err = inbox.GetFeed(context.Background(), entity.AdminInbox, 20, 0)
	require.NoError(t, err)
	assert.Zero(t, feed.UnreadCount)
}

func TestCreateProductWithoutSellerRequestDistrict(t *testing.T) {
	env := newProductTestEnv()
	env.users.users["rahim@example.com"] = &entity.User{
		Email: "rahim@example.com",
		Name:  "Rahim",
		Role:  entity.RoleSeller,
	}

	product, err := env.uc.CreateProduct(context.Background(), "rahim@example.com", ProductInput{
		Name: "Himsagar Mango", Quantity: 50, Unit: "kg", Price: 120,
	})

	require.NoError(t, err)
	assert.Empty(t, product.Seller.District)
}

func TestCreateProductValidation(t *testing.T) {
	env := newProductTestEnv()
	env.seedSeller("rahim@example.com")

	_, err := env.uc.CreateProduct(context.Background(), "rahim@example.com", ProductInput{
		Name: "Mango", Quantity: -1, Price: 120,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = env.uc.CreateProduct(context.Background(), "rahim@example.com", ProductInput{
		Name: "Mango", Quantity: 1, Price: 0,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListPublicProductsFiltersCatalog(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID: "p1", VerificationStatus: entity.VerificationVerified, IsAvailable: true, Category: "fresh-fruits",
	}
	env.products.products["p2"] = &entity.Product{
		ID: "p2", VerificationStatus: entity.VerificationPending, IsAvailable: true, Category: "fresh-fruits",
	}
	env.products.products["p3"] = &entity.Product{
		ID: "p3", VerificationStatus: entity.VerificationVerified, IsAvailable: false, Category: "fresh-fruits",
	}
	env.products.products["p4"] = &entity.Product{
		ID: "p4", VerificationStatus: entity.VerificationVerified, IsAvailable: true, Category: "vegetables",
	}

	products, total, err := env.uc.ListPublicProducts(context.Background(), "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)

	products, total, err = env.uc.ListPublicProducts(context.Background(), "fresh-fruits", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestUpdateProductOwnershipEnforced(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:     "p1",
		Seller: entity.SellerInfo{Email: "rahim@example.com"},
	}

	_, err := env.uc.UpdateProduct(context.Background(), "p1", "other@example.com", ProductInput{
		Name: "Mango", Quantity: 1, Price: 100,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeleteProductAdminOverridesOwnership(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:     "p1",
		Seller: entity.SellerInfo{Email: "rahim@example.com"},
	}

	err := env.uc.DeleteProduct(context.Background(), "p1", "other@example.com", entity.RoleUser)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = env.uc.DeleteProduct(context.Background(), "p1", "admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotContains(t, env.products.products, "p1")
}

func TestVerifyProductNotifiesSeller(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:                 "p1",
		Name:               "Himsagar Mango",
		Seller:             entity.SellerInfo{Email: "rahim@example.com"},
		VerificationStatus: entity.VerificationPending,
	}

	product, err := env.uc.VerifyProduct(context.Background(), "p1", "admin@example.com", entity.VerificationVerified)

	require.NoError(t, err)
	assert.Equal(t, entity.VerificationVerified, product.VerificationStatus)
	assert.Equal(t, "admin@example.com", product.VerifiedBy)
	assert.Len(t, env.notifications.forUser("rahim@example.com"), 1)
}

func TestVerifyProductRejectionClearsFeatured(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:                 "p1",
		Seller:             entity.SellerInfo{Email: "rahim@example.com"},
		VerificationStatus: entity.VerificationVerified,
		Featured:           true,
	}

	product, err := env.uc.VerifyProduct(context.Background(), "p1", "admin@example.com", entity.VerificationRejected)

	require.NoError(t, err)
	assert.False(t, product.Featured)
}

func TestVerifyProductRejectsUnknownStatus(t *testing.T) {
	env := newProductTestEnv()

	_, err := env.uc.VerifyProduct(context.Background(), "p1", "admin@example.com", "maybe")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSetFeaturedRequiresVerification(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:                 "p1",
		VerificationStatus: entity.VerificationPending,
	}

	_, err := env.uc.SetFeatured(context.Background(), "p1", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	env.products.products["p1"].VerificationStatus = entity.VerificationVerified
	product, err := env.uc.SetFeatured(context.Background(), "p1", true)
	require.NoError(t, err)
	assert.True(t, product.Featured)
}

func TestSetAvailabilityOwnerOnly(t *testing.T) {
	env := newProductTestEnv()
	env.products.products["p1"] = &entity.Product{
		ID:          "p1",
		Seller:      entity.SellerInfo{Email: "rahim@example.com"},
		IsAvailable: true,
	}

	_, err := env.uc.SetAvailability(context.Background(), "p1", "other@example.com", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	product, err := env.uc.SetAvailability(context.Background(), "p1", "rahim@example.com", false)
	require.NoError(t, err)
	assert.False(t, product.IsAvailable)
}
