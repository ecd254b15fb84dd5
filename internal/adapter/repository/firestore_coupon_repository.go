package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

const couponsCollection = "coupons"

type firestoreCouponRepository struct {
	client *firestore.Client
}

func NewFirestoreCouponRepository(client *firestore.Client) repository.CouponRepository {
	return &firestoreCouponRepository{
		client: client,
	}
}

func (r *firestoreCouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	// The uppercased code is the document ID; Create makes the store reject
	// duplicate codes atomically.
	_, err := r.client.Collection(couponsCollection).Doc(coupon.Code).Create(ctx, coupon)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("A coupon with this code already exists")
		}
		return errors.Internal("Failed to create coupon", err)
	}
	return nil
}

func (r *firestoreCouponRepository) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	doc, err := r.client.Collection(couponsCollection).Doc(code).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Coupon", err)
		}
		return nil, errors.Internal("Failed to get coupon", err)
	}

	var coupon entity.Coupon
	if err := doc.DataTo(&coupon); err != nil {
		return nil, errors.Internal("Failed to parse coupon data", err)
	}

	return &coupon, nil
}

func (r *firestoreCouponRepository) List(ctx context.Context) ([]*entity.Coupon, error) {
	iter := r.client.Collection(couponsCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)

	var coupons []*entity.Coupon
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate coupons", err)
		}
		var coupon entity.Coupon
		if err := doc.DataTo(&coupon); err != nil {
			return nil, errors.Internal("Failed to parse coupon data", err)
		}
		coupons = append(coupons, &coupon)
	}

	return coupons, nil
}

func (r *firestoreCouponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	_, err := r.client.Collection(couponsCollection).Doc(coupon.Code).Set(ctx, coupon)
	if err != nil {
		return errors.Internal("Failed to update coupon", err)
	}
	return nil
}

func (r *firestoreCouponRepository) Delete(ctx context.Context, code string) error {
	_, err := r.client.Collection(couponsCollection).Doc(code).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete coupon", err)
	}
	return nil
}
