package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"playpark/internal/adapter/api"
	"playpark/internal/adapter/api/handler"
	"playpark/internal/adapter/api/router"
	"playpark/internal/adapter/repository"
	"playpark/internal/infrastructure/storage"
	"playpark/internal/usecase"
	"playpark/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), file path
	// (local development), or application default credentials.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewLocalStorageClient(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	gameRepo := repository.NewFirestoreGameRepository(firestoreClient)
	reservationRepo := repository.NewFirestoreReservationRepository(firestoreClient)

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	gameUseCase := usecase.NewGameUseCase(gameRepo, categoryRepo)
	reservationUseCase := usecase.NewReservationUseCase(reservationRepo)

	handler.Setup(categoryUseCase, gameUseCase, reservationUseCase, storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())

	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.ErrorHandler

	router.Setup(e)

	// Uploaded images are served read-only straight from the upload directory
	e.Static("/uploads", cfg.UploadDir)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
