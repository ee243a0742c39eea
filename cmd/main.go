package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/time/rate"

	"catalog-service/internal/api"
	"catalog-service/internal/config"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/migrations"
)

func connectDB(filename string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg := config.Load()

	db, err := connectDB(cfg.SQLiteFilename)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", cfg.SQLiteFilename, err)
	}
	defer db.Close()

	// Serving against a schema we cannot guarantee is not an option.
	if err := migrations.AutoMigrateProducts(db); err != nil {
		log.Fatalf("Failed to migrate products table: %v", err)
	}
	if err := migrations.AutoMigrateUsers(db); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	productService := service.NewProductService(*productRepo)
	productHandler := api.NewProductHandler(*productService)

	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(*userRepo)
	userHandler := api.NewUserHandler(*userService)

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(20),
				Burst:     60,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.POST("/api/products/create-product", productHandler.CreateProduct)
	e.POST("/api/products/create-products-bulk", productHandler.CreateProductsBulk)
	e.GET("/api/products/list-all-products", productHandler.ListAllProducts)
	e.GET("/api/products/list-product-by-id", productHandler.ListProductByID)
	e.GET("/api/products/list-products-by-filters", productHandler.ListProductsByFilters)
	e.DELETE("/api/products/delete-product-by-id", productHandler.DeleteProductByID)
	e.DELETE("/api/products/delete-products-by-id-bulk", productHandler.DeleteProductsByIDBulk)

	e.POST("/api/users/create-user", userHandler.CreateUser)
	e.GET("/api/users/list-all-users", userHandler.ListAllUsers)
	e.DELETE("/api/users/delete-user-by-id", userHandler.DeleteUserByID)

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "catalog-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	go func() {
		if err := e.Start(cfg.HTTPAddress()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(ctxShutdown); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
