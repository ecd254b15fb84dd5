package handler

import (
	"tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/domain/service"
	"tradbazar/internal/infrastructure/push"
	"tradbazar/internal/usecase"
)

var (
	userHandler         *UserHandler
	categoryHandler     *CategoryHandler
	productHandler      *ProductHandler
	orderHandler        *OrderHandler
	reviewHandler       *ReviewHandler
	couponHandler       *CouponHandler
	cartHandler         *CartHandler
	notificationHandler *NotificationHandler
	reportHandler       *ReportHandler
	paymentHandler      *PaymentHandler
)

type Setup struct {
	UserUseCase         *usecase.UserUseCase
	CategoryUseCase     *usecase.CategoryUseCase
	ProductUseCase      *usecase.ProductUseCase
	OrderUseCase        *usecase.OrderUseCase
	ReviewUseCase       *usecase.ReviewUseCase
	CouponUseCase       *usecase.CouponUseCase
	CartUseCase         *usecase.CartUseCase
	NotificationUseCase *usecase.NotificationUseCase
	ReportUseCase       *usecase.ReportUseCase
	Payments            service.PaymentIntentCreator
	CallToken           *service.CallTokenService
	Verifier            middleware.TokenVerifier
	PushHub             *push.Hub
}

func (s Setup) Apply() {
	userHandler = NewUserHandler(s.UserUseCase)
	categoryHandler = NewCategoryHandler(s.CategoryUseCase)
	productHandler = NewProductHandler(s.ProductUseCase)
	orderHandler = NewOrderHandler(s.OrderUseCase)
	reviewHandler = NewReviewHandler(s.ReviewUseCase)
	couponHandler = NewCouponHandler(s.CouponUseCase)
	cartHandler = NewCartHandler(s.CartUseCase)
	notificationHandler = NewNotificationHandler(s.NotificationUseCase, s.Verifier, s.PushHub)
	reportHandler = NewReportHandler(s.ReportUseCase)
	paymentHandler = NewPaymentHandler(s.Payments, s.CallToken)
}

func GetUserHandler() *UserHandler                 { return userHandler }
func GetCategoryHandler() *CategoryHandler         { return categoryHandler }
func GetProductHandler() *ProductHandler           { return productHandler }
func GetOrderHandler() *OrderHandler               { return orderHandler }
func GetReviewHandler() *ReviewHandler             { return reviewHandler }
func GetCouponHandler() *CouponHandler             { return couponHandler }
func GetCartHandler() *CartHandler                 { return cartHandler }
func GetNotificationHandler() *NotificationHandler { return notificationHandler }
func GetReportHandler() *ReportHandler             { return reportHandler }
func GetPaymentHandler() *PaymentHandler           { return paymentHandler }
