package usecase

import (
	"context"
	"sort"
	"time"

	"tradbazar/internal/domain/entity"
	"tradbazar/internal/domain/repository"
	"tradbazar/pkg/errors"
)

// removedProductName is rendered when an order references a product that has
// since been deleted.
const removedProductName = "Product Removed"

// ReportUseCase serves the read-only derived views: seller earnings, platform
// top sellers and the per-seller monthly overview. Everything here is a
// point-in-time snapshot; no mutation.
type ReportUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewReportUseCase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

type EarningsSummary struct {
	OrderCount      int     `json:"order_count"`
	TotalEarnings   float64 `json:"total_earnings"`
	PaidEarnings    float64 `json:"paid_earnings"`
	PendingEarnings float64 `json:"pending_earnings"`
}

// SellerEarnings sums totalPrice over the seller's orders, partitioned by
// payment status.
func (uc *ReportUseCase) SellerEarnings(ctx context.Context, sellerEmail string) (*EarningsSummary, error) {
	orders, err := uc.orderRepo.ListBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}

	summary := &EarningsSummary{}
	for _, order := range orders {
		if order.OrderStatus == entity.OrderCancelled {
			continue
		}
		summary.OrderCount++
		summary.TotalEarnings += order.TotalPrice
		if order.PaymentStatus == entity.PaymentPaid {
			summary.PaidEarnings += order.TotalPrice
		} else {
			summary.PendingEarnings += order.TotalPrice
		}
	}

	return summary, nil
}

type TopProduct struct {
	Product      *entity.Product `json:"product"`
	QuantitySold int             `json:"quantity_sold"`
}

const topSellingLimit = 6

// TopSelling ranks products by units sold across paid orders and joins the
// winners back to the catalog, keeping only products that still exist and are
// available.
func (uc *ReportUseCase) TopSelling(ctx context.Context) ([]*TopProduct, error) {
	orders, err := uc.orderRepo.ListByPaymentStatus(ctx, entity.PaymentPaid)
	if err != nil {
		return nil, err
	}

	sold := make(map[string]int)
	for _, order := range orders {
		if order.OrderStatus == entity.OrderCancelled {
			continue
		}
		sold[order.ProductID] += order.Quantity
	}

	type ranked struct {
		productID string
		quantity  int
	}
	ranking := make([]ranked, 0, len(sold))
	for id, qty := range sold {
		ranking = append(ranking, ranked{productID: id, quantity: qty})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].quantity != ranking[j].quantity {
			return ranking[i].quantity > ranking[j].quantity
		}
		return ranking[i].productID < ranking[j].productID
	})

	top := make([]*TopProduct, 0, topSellingLimit)
	for _, entry := range ranking {
		if len(top) == topSellingLimit {
			break
		}
		product, err := uc.productRepo.GetByID(ctx, entry.productID)
		if err != nil {
			if errors.Is(err, "NOT_FOUND") {
				continue
			}
			return nil, err
		}
		if !product.IsAvailable {
			continue
		}
		top = append(top, &TopProduct{
			Product:      product,
			QuantitySold: entry.quantity,
		})
	}

	return top, nil
}

type DailyEarnings struct {
	Day      int     `json:"day"`
	Earnings float64 `json:"earnings"`
}

type RecentOrder struct {
	Order       *entity.Order `json:"order"`
	ProductName string        `json:"product_name"`
}

type SellerOverview struct {
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	DailyEarnings []*DailyEarnings `json:"daily_earnings"`
	RecentOrders  []*RecentOrder   `json:"recent_orders"`
}

const recentOrderLimit = 10

// Overview groups the seller's paid earnings for one month by day-of-month
// and attaches the most recent orders with a product join. A product deleted
// after the order renders as a placeholder instead of failing the report.
func (uc *ReportUseCase) Overview(ctx context.Context, sellerEmail string, year, month int) (*SellerOverview, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, errors.BadRequest("Month must be between 1 and 12", nil)
	}

	orders, err := uc.orderRepo.ListBySeller(ctx, sellerEmail)
	if err != nil {
		return nil, err
	}

	daily := make(map[int]float64)
	for _, order := range orders {
		if order.PaymentStatus != entity.PaymentPaid {
			continue
		}
		if order.CreatedAt.Year() != year || int(order.CreatedAt.Month()) != month {
			continue
		}
		daily[order.CreatedAt.Day()] += order.TotalPrice
	}

	days := make([]int, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Ints(days)

	overview := &SellerOverview{
		Year:  year,
		Month: month,
	}
	for _, day := range days {
		overview.DailyEarnings = append(overview.DailyEarnings, &DailyEarnings{
			Day:      day,
			Earnings: daily[day],
		})
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	for _, order := range orders {
		if len(overview.RecentOrders) == recentOrderLimit {
			break
		}
		name := order.ProductName
		if _, err := uc.productRepo.GetByID(ctx, order.ProductID); err != nil {
			if !errors.Is(err, "NOT_FOUND") {
				return nil, err
			}
			name = removedProductName
		}
		overview.RecentOrders = append(overview.RecentOrders, &RecentOrder{
			Order:       order,
			ProductName: name,
		})
	}

	return overview, nil
}
