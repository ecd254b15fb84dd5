package usecase

import (
	"context"
	"fmt"
	"sort"

	"tradbazar/internal/domain/entity"
	"tradbazar/pkg/errors"
)

// In-memory repository fakes shared by the usecase tests.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.Email]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, email string) error {
	delete(r.users, email)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, int64, error) {
	emails := make([]string, 0, len(r.users))
	for email := range r.users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	var users []*entity.User
	for _, email := range emails {
		users = append(users, r.users[email])
	}
	return paginate(users, limit, offset), int64(len(r.users)), nil
}

func (r *fakeUserRepo) ListBySellerRequestStatus(_ context.Context, status string) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range r.users {
		if user.SellerRequest != nil && user.SellerRequest.Status == status {
			users = append(users, user)
		}
	}
	return users, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; ok {
		return errors.Conflict("A category with this name already exists")
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == "" {
		r.nextID++
		product.ID = fmt.Sprintf("product-%d", r.nextID)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) List(_ context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	ids := make([]string, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var matched []*entity.Product
	for _, id := range ids {
		product := r.products[id]
		if productMatches(product, filter) {
			matched = append(matched, product)
		}
	}
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func productMatches(product *entity.Product, filter map[string]interface{}) bool {
	for key, value := range filter {
		switch key {
		case "verificationStatus":
			if product.VerificationStatus != value.(string) {
				return false
			}
		case "isAvailable":
			if product.IsAvailable != value.(bool) {
				return false
			}
		case "category":
			if product.Category != value.(string) {
				return false
			}
		case "seller.email":
			if product.Seller.Email != value.(string) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (r *fakeProductRepo) ListBySeller(ctx context.Context, sellerEmail string, limit, offset int) ([]*entity.Product, int64, error) {
	return r.List(ctx, map[string]interface{}{"seller.email": sellerEmail}, limit, offset)
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementQuantity(_ context.Context, id string, quantity int) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	if product.Quantity < quantity {
		return errors.Conflict("Insufficient stock for product " + product.Name)
	}
	product.Quantity -= quantity
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == "" {
		r.nextID++
		order.ID = fmt.Sprintf("order-%d", r.nextID)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	orders := r.all()
	return paginate(orders, limit, offset), int64(len(orders)), nil
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, buyerEmail string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.all() {
		if order.BuyerEmail == buyerEmail {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) ListBySeller(_ context.Context, sellerEmail string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.all() {
		if order.Seller != nil && order.Seller.Email == sellerEmail {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) ListByPaymentStatus(_ context.Context, paymentStatus string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.all() {
		if order.PaymentStatus == paymentStatus {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) all() []*entity.Order {
	ids := make([]string, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	orders := make([]*entity.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, r.orders[id])
	}
	return orders
}

type fakeReviewRepo struct {
	reviews []*entity.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if review.ID == "" {
		r.nextID++
		review.ID = fmt.Sprintf("review-%d", r.nextID)
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) ListBySeller(_ context.Context, sellerEmail string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.SellerEmail == sellerEmail {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

type fakeCouponRepo struct {
	coupons map[string]*entity.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*entity.Coupon)}
}

func (r *fakeCouponRepo) Create(_ context.Context, coupon *entity.Coupon) error {
	if _, ok := r.coupons[coupon.Code]; ok {
		return errors.Conflict("A coupon with this code already exists")
	}
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *fakeCouponRepo) GetByCode(_ context.Context, code string) (*entity.Coupon, error) {
	coupon, ok := r.coupons[code]
	if !ok {
		return nil, errors.NotFound("Coupon", nil)
	}
	return coupon, nil
}

func (r *fakeCouponRepo) List(_ context.Context) ([]*entity.Coupon, error) {
	var coupons []*entity.Coupon
	for _, coupon := range r.coupons {
		coupons = append(coupons, coupon)
	}
	return coupons, nil
}

func (r *fakeCouponRepo) Update(_ context.Context, coupon *entity.Coupon) error {
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, code string) error {
	delete(r.coupons, code)
	return nil
}

type fakeCartRepo struct {
	items map[string]*entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]*entity.CartItem)}
}

func (r *fakeCartRepo) Get(_ context.Context, userEmail, productID string) (*entity.CartItem, error) {
	item, ok := r.items[entity.CartItemID(userEmail, productID)]
	if !ok {
		return nil, errors.NotFound("Cart item", nil)
	}
	copied := *item
	return &copied, nil
}

func (r *fakeCartRepo) Set(_ context.Context, item *entity.CartItem) error {
	r.items[entity.CartItemID(item.UserEmail, item.ProductID)] = item
	return nil
}

func (r *fakeCartRepo) ListByUser(_ context.Context, userEmail string) ([]*entity.CartItem, error) {
	var items []*entity.CartItem
	for _, item := range r.items {
		if item.UserEmail == userEmail {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeCartRepo) Delete(_ context.Context, userEmail, productID string) error {
	delete(r.items, entity.CartItemID(userEmail, productID))
	return nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userEmail string) error {
	for id, item := range r.items {
		if item.UserEmail == userEmail {
			delete(r.items, id)
		}
	}
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		r.nextID++
		notification.ID = fmt.Sprintf("notification-%d", r.nextID)
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userEmail string, limit, offset int) ([]*entity.Notification, int64, error) {
	var matched []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserEmail == userEmail {
			matched = append(matched, notification)
		}
	}
	return paginate(matched, limit, offset), int64(len(matched)), nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userEmail string) (int64, error) {
	var count int64
	for _, notification := range r.notifications {
		if notification.UserEmail == userEmail && !notification.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, userEmail, id string) error {
	for _, notification := range r.notifications {
		if notification.ID == id {
			if notification.UserEmail != userEmail {
				return errors.Forbidden("You don't have permission to update this notification", nil)
			}
			notification.IsRead = true
			return nil
		}
	}
	return errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userEmail string) error {
	for _, notification := range r.notifications {
		if notification.UserEmail == userEmail {
			notification.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) forUser(userEmail string) []*entity.Notification {
	var matched []*entity.Notification
	for _, notification := range r.notifications {
		if notification.UserEmail == userEmail {
			matched = append(matched, notification)
		}
	}
	return matched
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
