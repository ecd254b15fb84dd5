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

const cartCollection = "cart"

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) Get(ctx context.Context, userEmail, productID string) (*entity.CartItem, error) {
	doc, err := r.client.Collection(cartCollection).Doc(entity.CartItemID(userEmail, productID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Cart item", err)
		}
		return nil, errors.Internal("Failed to get cart item", err)
	}

	var item entity.CartItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse cart item data", err)
	}

	return &item, nil
}

func (r *firestoreCartRepository) Set(ctx context.Context, item *entity.CartItem) error {
	id := entity.CartItemID(item.UserEmail, item.ProductID)
	_, err := r.client.Collection(cartCollection).Doc(id).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to save cart item", err)
	}
	return nil
}

func (r *firestoreCartRepository) ListByUser(ctx context.Context, userEmail string) ([]*entity.CartItem, error) {
	iter := r.client.Collection(cartCollection).
		Where("userEmail", "==", userEmail).
		OrderBy("addedAt", firestore.Desc).
		Documents(ctx)

	var items []*entity.CartItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate cart items", err)
		}
		var item entity.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse cart item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreCartRepository) Delete(ctx context.Context, userEmail, productID string) error {
	_, err := r.client.Collection(cartCollection).Doc(entity.CartItemID(userEmail, productID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete cart item", err)
	}
	return nil
}

func (r *firestoreCartRepository) Clear(ctx context.Context, userEmail string) error {
	iter := r.client.Collection(cartCollection).
		Where("userEmail", "==", userEmail).
		Documents(ctx)

	batch := r.client.Batch()
	count := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate cart items", err)
		}
		batch.Delete(doc.Ref)
		count++
	}

	if count == 0 {
		return nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to clear cart", err)
	}
	return nil
}
