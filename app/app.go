package app

import (
	"fmt"
	"os"

	"github.com/Imraj-Rabbani/GoCart/app/controller"
	"github.com/Imraj-Rabbani/GoCart/app/router"
	"github.com/Imraj-Rabbani/GoCart/db"
	"github.com/Imraj-Rabbani/GoCart/design"
	"github.com/Imraj-Rabbani/GoCart/pricing"
	"github.com/Imraj-Rabbani/GoCart/repository"
	"github.com/Imraj-Rabbani/GoCart/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Credentials for the image storage collaborator
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}
	rootFolderID := os.Getenv("DRIVE_ROOT_FOLDER_ID")
	if rootFolderID == "" {
		return fmt.Errorf("DRIVE_ROOT_FOLDER_ID environment variable is not set")
	}

	storageService, err := service.NewStorageService(credentialsPath, rootFolderID)
	if err != nil {
		return err
	}

	// External auth provider
	verifyURL := os.Getenv("AUTH_VERIFY_URL")
	if verifyURL == "" {
		return fmt.Errorf("AUTH_VERIFY_URL environment variable is not set")
	}
	authService := service.NewAuthService(verifyURL)

	// Pricing engine
	pricingConfigPath := os.Getenv("PRICING_CONFIG")
	if pricingConfigPath == "" {
		pricingConfigPath = "configs/pricing.json"
	}
	pricingEngine, err := pricing.NewEngine(pricingConfigPath)
	if err != nil {
		return err
	}

	// Base garment artwork for the design compositor
	garmentsDir := os.Getenv("GARMENT_ASSETS_DIR")
	if garmentsDir == "" {
		garmentsDir = "static/garments"
	}
	baseLibrary, err := design.LoadBaseLibrary(garmentsDir)
	if err != nil {
		return fmt.Errorf("failed to load garment assets: %w", err)
	}

	// Initialize repositories
	storeRepo := repository.NewStoreRepository()
	productRepo := repository.NewProductRepository()
	orderRepo := repository.NewOrderRepository()
	userRepo := repository.NewUserRepository()

	// Design engine
	compositor := design.NewCompositor(baseLibrary)
	submitter := design.NewSubmitter(storageService, productRepo, pricingEngine.DesignMRP())

	// Catalog export
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	catalogService := service.NewCatalogService(productRepo, baseURL)

	// Create controllers
	controllers := &router.Controllers{
		Design:  controller.NewDesignController(authService, storeRepo, productRepo, compositor, submitter),
		Store:   controller.NewStoreController(authService, storageService, storeRepo, productRepo),
		Product: controller.NewProductController(authService, storageService, storeRepo, productRepo),
		Cart:    controller.NewCartController(authService, userRepo),
		Order:   controller.NewOrderController(authService, storeRepo, productRepo, orderRepo, userRepo),
		Admin:   controller.NewAdminController(authService, storeRepo),
		Catalog: controller.NewCatalogController(authService, storeRepo, catalogService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
