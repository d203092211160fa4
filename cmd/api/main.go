package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"github.com/ErniyazCode/kazproperty/internal/adapter/api"
	"github.com/ErniyazCode/kazproperty/internal/adapter/api/handler"
	apimiddleware "github.com/ErniyazCode/kazproperty/internal/adapter/api/middleware"
	"github.com/ErniyazCode/kazproperty/internal/adapter/api/router"
	"github.com/ErniyazCode/kazproperty/internal/adapter/repository"
	"github.com/ErniyazCode/kazproperty/internal/usecase"
	"github.com/ErniyazCode/kazproperty/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	transactionRepo := repository.NewFirestoreTransactionRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)

	if err := repository.Seed(ctx, adminRepo, propertyRepo, userRepo); err != nil {
		log.Printf("Warning: failed to seed initial data: %v", err)
	}

	userUseCase := usecase.NewUserUseCase(userRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, transactionRepo)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, cfg.JWTSecret, cfg.JWTExpiry)

	handler.Setup(userUseCase, propertyUseCase, adminUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	adminMiddleware := apimiddleware.NewAdminMiddleware(cfg.JWTSecret)

	router.Setup(e, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
