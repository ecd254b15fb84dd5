package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"tradbazar/internal/adapter/api"
	"tradbazar/internal/adapter/api/handler"
	apimiddleware "tradbazar/internal/adapter/api/middleware"
	"tradbazar/internal/adapter/api/router"
	"tradbazar/internal/adapter/repository"
	"tradbazar/internal/domain/service"
	"tradbazar/internal/infrastructure/eventstream"
	"tradbazar/internal/infrastructure/firebase"
	"tradbazar/internal/infrastructure/push"
	"tradbazar/internal/usecase"
	"tradbazar/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewAuthClient(fbAuth)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	couponRepo := repository.NewFirestoreCouponRepository(firestoreClient)
	cartRepo := repository.NewFirestoreCartRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	var events usecase.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := eventstream.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		events = producer
		log.Printf("Notification events streaming to %s (%s)", cfg.KafkaBrokers, cfg.KafkaTopic)
	}

	pushHub := push.NewHub()
	notifier := usecase.NewNotifier(notificationRepo, events, pushHub)

	paymentService := service.NewStripePaymentService(cfg.StripeSecretKey)
	callTokenService := service.NewCallTokenService(cfg.CallTokenSecret, time.Duration(cfg.CallTokenExpiry)*time.Second)

	handler.Setup{
		UserUseCase:         usecase.NewUserUseCase(userRepo, notifier),
		CategoryUseCase:     usecase.NewCategoryUseCase(categoryRepo),
		ProductUseCase:      usecase.NewProductUseCase(productRepo, userRepo, notifier),
		OrderUseCase:        usecase.NewOrderUseCase(orderRepo, productRepo, cartRepo, notifier),
		ReviewUseCase:       usecase.NewReviewUseCase(reviewRepo, productRepo, userRepo, notifier),
		CouponUseCase:       usecase.NewCouponUseCase(couponRepo),
		CartUseCase:         usecase.NewCartUseCase(cartRepo, productRepo),
		NotificationUseCase: usecase.NewNotificationUseCase(notificationRepo),
		ReportUseCase:       usecase.NewReportUseCase(orderRepo, productRepo),
		Payments:            paymentService,
		CallToken:           callTokenService,
		Verifier:            authClient,
		PushHub:             pushHub,
	}.Apply()

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
