// ==============================================================================
// FLASHLINK API MAIN - cmd/server/main.go
// ==============================================================================
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/JoelOnyedika/flutterpay/internal/auth"
	"github.com/JoelOnyedika/flutterpay/internal/catalog"
	"github.com/JoelOnyedika/flutterpay/internal/forex"
	"github.com/JoelOnyedika/flutterpay/internal/handler"
	"github.com/JoelOnyedika/flutterpay/internal/middleware"
	"github.com/JoelOnyedika/flutterpay/internal/notification"
	"github.com/JoelOnyedika/flutterpay/internal/session"
	"github.com/JoelOnyedika/flutterpay/internal/settlement"
	"github.com/JoelOnyedika/flutterpay/internal/wallet"
	"github.com/JoelOnyedika/flutterpay/internal/wizard"
	"github.com/JoelOnyedika/flutterpay/pkg/config"
	"github.com/JoelOnyedika/flutterpay/pkg/logger"
	"github.com/JoelOnyedika/flutterpay/pkg/validator"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("flashlink-api")

	if err := cfg.ValidateCore(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Starting FlashLink API", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	// Initialize services
	catalogService := catalog.NewService()
	forexService := forex.NewService()
	settler := settlement.NewMockEngine(settlement.DefaultDelay, forexService, catalogService, log)

	sessions := session.NewStore(cfg.Session.TTL, cfg.Session.SweepInterval, log)
	defer sessions.Close()

	hub := notification.NewHub(log)

	authService := auth.NewService(cfg.JWT.Secret, cfg.JWT.Expiration, sessions, log)
	walletService := wallet.NewService(catalogService, forexService, settlement.DefaultDelay, log)

	deps := wizard.Deps{Catalog: catalogService, Rates: forexService}

	// Initialize handlers
	val := validator.New()
	authHandler := handler.NewAuthHandler(authService, val, log)
	catalogHandler := handler.NewCatalogHandler(catalogService, log)
	flowHandler := handler.NewFlowHandler(sessions, deps, settler, hub, log)
	walletHandler := handler.NewWalletHandler(walletService, val, log)

	// Setup router
	r := mux.NewRouter()

	// Middleware
	r.Use(middleware.CORS)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Recovery)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.NewLoggingMiddleware(log).Log)
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB global cap
	r.Use(middleware.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window).Limit)

	authMW := middleware.NewAuthMiddleware(cfg.JWT.Secret)
	idemMW := middleware.NewIdempotencyMiddleware(24 * time.Hour)

	// Routes
	r.HandleFunc("/health", handler.Health).Methods("GET")
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	// Public routes
	public := r.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/auth/signup/validate", authHandler.ValidateProfile).Methods("POST")
	public.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	public.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	public.HandleFunc("/catalog/payment-methods", catalogHandler.PaymentMethods).Methods("GET")
	public.HandleFunc("/catalog/networks", catalogHandler.Networks).Methods("GET")
	public.HandleFunc("/catalog/networks/{network}/plans", catalogHandler.DataPlans).Methods("GET")
	public.HandleFunc("/catalog/preset-amounts", catalogHandler.PresetAmounts).Methods("GET")
	public.HandleFunc("/catalog/service-types", catalogHandler.ServiceTypes).Methods("GET")
	public.HandleFunc("/catalog/utility-providers", catalogHandler.UtilityProviders).Methods("GET")

	// Protected routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(authMW.Authenticate)

	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	api.HandleFunc("/auth/logout", flowHandler.Logout).Methods("POST")

	api.HandleFunc("/catalog/recent-numbers", catalogHandler.RecentNumbers).Methods("GET")
	api.HandleFunc("/catalog/recent-payments", catalogHandler.RecentPayments).Methods("GET")
	api.HandleFunc("/catalog/contacts", catalogHandler.Contacts).Methods("GET")

	api.HandleFunc("/flows/{flow}", flowHandler.Open).Methods("POST")
	api.HandleFunc("/flows/{flow}", flowHandler.State).Methods("GET")
	api.HandleFunc("/flows/{flow}", flowHandler.Close).Methods("DELETE")
	api.HandleFunc("/flows/{flow}/draft", flowHandler.UpdateDraft).Methods("PUT")
	api.HandleFunc("/flows/{flow}/advance", flowHandler.Advance).Methods("POST")
	api.HandleFunc("/flows/{flow}/back", flowHandler.Back).Methods("POST")
	api.Handle("/flows/{flow}/confirm", idemMW.Require(http.HandlerFunc(flowHandler.Confirm))).Methods("POST")
	api.HandleFunc("/flows/{flow}/reset", flowHandler.Reset).Methods("POST")

	api.HandleFunc("/notifications", flowHandler.Toasts).Methods("GET")
	api.HandleFunc("/notifications/stream", flowHandler.Stream).Methods("GET")

	api.HandleFunc("/wallet/balances", walletHandler.Balances).Methods("GET")
	api.HandleFunc("/wallet/convert", walletHandler.Convert).Methods("POST")
	api.HandleFunc("/wallet/receive/{currency}", walletHandler.Receive).Methods("GET")
	api.Handle("/wallet/fund", idemMW.Require(http.HandlerFunc(walletHandler.Fund))).Methods("POST")
	api.HandleFunc("/wallet/transactions", walletHandler.Transactions).Methods("GET")

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		log.Info("FlashLink API started", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down FlashLink API...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("FlashLink API forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("FlashLink API stopped gracefully", nil)
}
