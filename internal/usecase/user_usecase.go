package usecase

import (
	"context"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	notifier *Notifier
}

func NewUserUseCase(userRepo repository.UserRepository, notifier *Notifier) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		notifier: notifier,
	}
}

type UpsertUserInput struct {
	Name  string
	Photo string
}

// UpsertUser records the first authenticated contact for an email, or bumps
// last-login and profile fields on subsequent calls. Role is never touched
// here; only the seller request review path mutates it.
func (uc *UserUseCase) UpsertUser(ctx context.Context, email string, input UpsertUserInput) (*entity.User, error) {
	now := time.Now()

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		user = &entity.User{
			Email:       email,
			Name:        input.Name,
			Photo:       input.Photo,
			Role:        entity.RoleUser,
			CreatedAt:   now,
			LastLoginAt: now,
		}
		if err := uc.userRepo.Upsert(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Photo != "" {
		user.Photo = input.Photo
	}
	user.LastLoginAt = now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetUser(ctx context.Context, email string) (*entity.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, email string) error {
	if _, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, email)
}

type SellerRequestInput struct {
	Phone       string
	ProductType string
	Source      string
	District    string
}

// SubmitSellerRequest files a seller application. A pending application
// blocks resubmission; a rejected or approved one may be replaced by a fresh
// pending request.
func (uc *UserUseCase) SubmitSellerRequest(ctx context.Context, email string, input SellerRequestInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.HasPendingSellerRequest() {
		return nil, errors.Conflict("A seller request is already pending for this account")
	}
	if user.Role == entity.RoleSeller || user.Role == entity.RoleAdmin {
		return nil, errors.BadRequest("Account already has seller access", nil)
	}

	user.SellerRequest = &entity.SellerRequest{
		Phone:       input.Phone,
		ProductType: input.ProductType,
		Source:      input.Source,
		District:    input.District,
		Status:      entity.SellerRequestPending,
		RequestedAt: time.Now(),
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) ListPendingSellerRequests(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.ListBySellerRequestStatus(ctx, entity.SellerRequestPending)
}

// ReviewSellerRequest approves or rejects a pending application. Approval
// promotes the user to seller; both outcomes are terminal and a terminal
// request cannot be reviewed again.
func (uc *UserUseCase) ReviewSellerRequest(ctx context.Context, email string, approve bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.SellerRequest == nil {
		return nil, errors.NotFound("Seller request", nil)
	}
	if user.SellerRequest.Status != entity.SellerRequestPending {
		return nil, errors.Conflict("Seller request has already been reviewed")
	}

	now := time.Now()
	user.SellerRequest.ReviewedAt = &now

	var title, message string
	if approve {
		user.SellerRequest.Status = entity.SellerRequestApproved
		user.Role = entity.RoleSeller
		title = "Seller request approved"
		message = "Congratulations! Your seller request has been approved. You can now list products."
	} else {
		user.SellerRequest.Status = entity.SellerRequestRejected
		title = "Seller request rejected"
		message = "Your seller request has been rejected. You may apply again with updated details."
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.notifier.Emit(ctx, &entity.Notification{
		UserEmail: email,
		Title:     title,
		Message:   message,
		Link:      "/dashboard",
		Type:      entity.NotificationSeller,
	}); err != nil {
		return nil, err
	}

	return user, nil
}
