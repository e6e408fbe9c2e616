package main

import (
	"context"
	"encoding/gob"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-ordering-platform/internal/config"
	"food-ordering-platform/internal/database"
	"food-ordering-platform/internal/handlers"
	"food-ordering-platform/internal/middleware"
	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/repositories"
	"food-ordering-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Register types for session serialization
	gob.Register(&models.Cart{})
	gob.Register(models.CartItem{})
	gob.Register([]models.CartItem{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	foodRepo := repositories.NewFoodRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)

	// Services
	authService := services.NewAuthService(userRepo)
	foodService := services.NewFoodService(foodRepo)
	categoryService := services.NewCategoryService(categoryRepo, foodRepo)
	orderService := services.NewOrderService(orderRepo)

	storageFactory := services.NewStorageFactory(cfg)
	imageService, err := storageFactory.CreateImageService()
	if err != nil {
		log.Fatal("Failed to initialize image service:", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, sessionStore)
	publicHandler := handlers.NewPublicHandler(foodService, categoryService)
	cartHandler := handlers.NewCartHandler(foodService, sessionStore)
	orderHandler := handlers.NewOrderHandler(orderService, sessionStore)
	adminFoodHandler := handlers.NewAdminFoodHandler(foodService)
	adminCategoryHandler := handlers.NewAdminCategoryHandler(categoryService)
	adminOrderHandler := handlers.NewAdminOrderHandler(orderService)
	uploadHandler := handlers.NewUploadHandler(imageService)

	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	loginLimiter := middleware.NewLoginRateLimiter(10, time.Minute)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.LoggingMiddleware)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecurityHeadersMiddleware)
	router.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	router.Use(authMiddleware.LoadUser)

	router.Route("/api", func(r chi.Router) {
		// Public menu
		r.Get("/foods", publicHandler.ListFoods)
		r.Get("/foods/{foodID}", publicHandler.GetFood)
		r.Get("/categories/{categoryID}", publicHandler.GetCategory)

		// Session cart, available to anonymous visitors
		r.Get("/cart", cartHandler.GetCart)
		r.Delete("/cart", cartHandler.ClearCart)
		r.Post("/cart/items", cartHandler.AddItem)
		r.Put("/cart/items/{foodID}", cartHandler.UpdateItem)
		r.Delete("/cart/items/{foodID}", cartHandler.RemoveItem)

		// Auth
		r.Post("/auth/register", authHandler.Register)
		r.With(loginLimiter.Limit).Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/auth/me", authHandler.Me)

		// Customer orders
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/orders", orderHandler.PlaceOrder)
			r.Get("/orders", orderHandler.ListOrders)
			r.Get("/orders/{orderID}", orderHandler.GetOrder)
		})

		// Admin back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/foods", adminFoodHandler.ListFoods)
			r.Post("/foods", adminFoodHandler.CreateFood)
			r.Put("/foods/{foodID}", adminFoodHandler.UpdateFood)
			r.Delete("/foods/{foodID}", adminFoodHandler.DeleteFood)
			r.Get("/categories", adminCategoryHandler.ListCategories)
			r.Post("/categories", adminCategoryHandler.CreateCategory)
			r.Put("/categories/{categoryID}", adminCategoryHandler.UpdateCategory)
			r.Delete("/categories/{categoryID}", adminCategoryHandler.DeleteCategory)
			r.Get("/orders", adminOrderHandler.ListOrders)
			r.Put("/orders/{orderID}/status", adminOrderHandler.UpdateStatus)
			r.Post("/uploads", uploadHandler.Upload)
			r.Delete("/uploads/*", uploadHandler.Delete)
		})
	})

	// Locally stored uploads
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(services.UploadsDir)))
	router.Get("/uploads/*", fileServer.ServeHTTP)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}
	log.Println("Server stopped")
}
