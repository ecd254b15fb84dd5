package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradbazar/internal/domain/entity"
	"tradbazar/pkg/errors"
)

type userTestEnv struct {
	users         *fakeUserRepo
	notifications *fakeNotificationRepo
	uc            *UserUseCase
}

func newUserTestEnv() *userTestEnv {
	users := newFakeUserRepo()
	notifications := newFakeNotificationRepo()
	return &userTestEnv{
		users:         users,
		notifications: notifications,
		uc:            NewUserUseCase(users, NewNotifier(notifications, nil, nil)),
	}
}

func TestUpsertUserCreatesWithUserRole(t *testing.T) {
	env := newUserTestEnv()

	user, err := env.uc.UpsertUser(context.Background(), "karim@example.com", UpsertUserInput{
		Name:  "Karim",
		Photo: "https://example.com/karim.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "Karim", user.Name)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUpsertUserUpdatesProfileNotRole(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email: "karim@example.com",
		Name:  "Karim",
		Role:  entity.RoleSeller,
	}

	user, err := env.uc.UpsertUser(context.Background(), "karim@example.com", UpsertUserInput{
		Name: "Karim Uddin",
	})

	require.NoError(t, err)
	assert.Equal(t, "Karim Uddin", user.Name)
	assert.Equal(t, entity.RoleSeller, user.Role)
	assert.False(t, user.LastLoginAt.IsZero())
}

func TestSubmitSellerRequestSetsPending(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email: "karim@example.com",
		Role:  entity.RoleUser,
	}

	user, err := env.uc.SubmitSellerRequest(context.Background(), "karim@example.com", SellerRequestInput{
		Phone:       "01700000000",
		ProductType: "fruits",
		District:    "Rajshahi",
	})

	require.NoError(t, err)
	require.NotNil(t, user.SellerRequest)
	assert.Equal(t, entity.SellerRequestPending, user.SellerRequest.Status)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestSubmitSellerRequestWhilePendingConflicts(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email:         "karim@example.com",
		Role:          entity.RoleUser,
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestPending},
	}

	_, err := env.uc.SubmitSellerRequest(context.Background(), "karim@example.com", SellerRequestInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSubmitSellerRequestForSellerRejected(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["rahim@example.com"] = &entity.User{
		Email: "rahim@example.com",
		Role:  entity.RoleSeller,
	}

	_, err := env.uc.SubmitSellerRequest(context.Background(), "rahim@example.com", SellerRequestInput{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSubmitSellerRequestAfterRejectionAllowed(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email:         "karim@example.com",
		Role:          entity.RoleUser,
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestRejected},
	}

	user, err := env.uc.SubmitSellerRequest(context.Background(), "karim@example.com", SellerRequestInput{
		District: "Bogura",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SellerRequestPending, user.SellerRequest.Status)
	assert.Equal(t, "Bogura", user.SellerRequest.District)
}

func TestReviewSellerRequestApprovePromotes(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email:         "karim@example.com",
		Role:          entity.RoleUser,
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestPending},
	}

	user, err := env.uc.ReviewSellerRequest(context.Background(), "karim@example.com", true)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, user.Role)
	assert.Equal(t, entity.SellerRequestApproved, user.SellerRequest.Status)
	assert.NotNil(t, user.SellerRequest.ReviewedAt)
	assert.Len(t, env.notifications.forUser("karim@example.com"), 1)
}

func TestReviewSellerRequestRejectKeepsRole(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email:         "karim@example.com",
		Role:          entity.RoleUser,
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestPending},
	}

	user, err := env.uc.ReviewSellerRequest(context.Background(), "karim@example.com", false)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.SellerRequestRejected, user.SellerRequest.Status)
	assert.Len(t, env.notifications.forUser("karim@example.com"), 1)
}

func TestReviewSellerRequestTwiceConflicts(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email:         "karim@example.com",
		Role:          entity.RoleUser,
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestApproved},
	}

	_, err := env.uc.ReviewSellerRequest(context.Background(), "karim@example.com", false)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestReviewSellerRequestWithoutRequest(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["karim@example.com"] = &entity.User{
		Email: "karim@example.com",
		Role:  entity.RoleUser,
	}

	_, err := env.uc.ReviewSellerRequest(context.Background(), "karim@example.com", true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListPendingSellerRequests(t *testing.T) {
	env := newUserTestEnv()
	env.users.users["a@example.com"] = &entity.User{
		Email:         "a@example.com",
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestPending},
	}
	env.users.users["b@example.com"] = &entity.User{
		Email:         "b@example.com",
		SellerRequest: &entity.SellerRequest{Status: entity.SellerRequestRejected},
	}
	env.users.users["c@example.com"] = &entity.User{Email: "c@example.com"}

	pending, err := env.uc.ListPendingSellerRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a@example.com", pending[0].Email)
}
