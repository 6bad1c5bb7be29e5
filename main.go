package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"guitar-storefront/internal/api"
	"guitar-storefront/internal/auth"
	"guitar-storefront/internal/catalog"
	"guitar-storefront/internal/config"
	"guitar-storefront/internal/contact"
	"guitar-storefront/internal/db"
	"guitar-storefront/internal/featureflags"
	mw "guitar-storefront/internal/http/middleware"
	"guitar-storefront/internal/logger"
	"guitar-storefront/internal/session"
)

func main() {
	// 1) Config
	cfg, err := config.Load(os.Getenv("STOREFRONT_CONFIG"))
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// 2) Feature flags init (non-fatal)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := featureflags.Init(ctx, cfg.Flags.Key); err != nil {
		log.Printf("feature flags init warning: %v", err)
	} else {
		log.Printf("feature flags ready: offline=%v, logLevel=%s",
			featureflags.Values().Offline.IsEnabled(nil),
			featureflags.Values().LogLevel.GetValue(nil))
	}
	defer featureflags.Shutdown()

	// 2a) Initialize levelled logger from flag & watch for flips
	logger.Init(featureflags.Values().LogLevel.GetValue(nil))
	logger.Infof("log level set to %s", logger.GetLevel())

	go func() {
		prev := featureflags.Values().LogLevel.GetValue(nil)
		for {
			time.Sleep(5 * time.Second)
			cur := featureflags.Values().LogLevel.GetValue(nil)
			if cur != prev {
				logger.SetLevel(cur)
				logger.Infof("log level changed to %s", logger.GetLevel())
				prev = cur
			}
		}
	}()

	// 3) Product data source
	var provider catalog.Provider
	var ready func() error
	switch cfg.Catalog.Source {
	case "postgres":
		sqlDB, err := db.Init(cfg.Database.DSN)
		if err != nil {
			log.Fatalf("database init failed: %v", err)
		}
		defer sqlDB.Close()

		store := catalog.NewPGStore(sqlDB)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema init failed: %v", err)
		}
		if err := store.Seed(ctx, catalog.DefaultCatalog()); err != nil {
			log.Fatalf("catalog seed failed: %v", err)
		}
		provider = store
		ready = sqlDB.Ping
	default:
		provider = catalog.NewMemoryProvider(catalog.DefaultCatalog(), cfg.Catalog.Latency())
		ready = func() error { return nil }
	}

	// 4) Router
	r := mux.NewRouter()

	// 4a) Offline kill-switch middleware (placed immediately after router creation)
	offlineGate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// always allow health checks
			if r.URL.Path == "/health" || r.URL.Path == "/ready" {
				next.ServeHTTP(w, r)
				return
			}
			// block all other requests when Offline flag is ON
			if featureflags.Values().Offline.IsEnabled(nil) {
				http.Error(w, "service temporarily offline", http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
	r.Use(offlineGate)

	// 4b) Request logger (skip noisy health endpoints)
	r.Use(mw.LogRequests(mw.WithSkips("/health", "/ready")))

	// 5) Health endpoints
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if err := ready(); err != nil {
			http.Error(w, "data source not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}).Methods(http.MethodGet)

	// 6) Inspect current flag values (admin only)
	secret := []byte(cfg.Auth.JWTSecret)
	r.HandleFunc("/_flags", auth.RequireRole(secret, "admin", func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]interface{}{
			"offline":  featureflags.Values().Offline.IsEnabled(nil),
			"logLevel": featureflags.Values().LogLevel.GetValue(nil),
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})).Methods(http.MethodGet)

	// 7) Storefront endpoints
	sessions := session.NewRegistry()

	catalogHandler := api.NewCatalogHandler(provider, sessions)
	r.HandleFunc("/api/products", catalogHandler.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/featured", catalogHandler.Featured).Methods(http.MethodGet)
	r.HandleFunc("/api/products/search", catalogHandler.SearchProducts).Methods(http.MethodGet)
	r.HandleFunc("/api/products/price-range", catalogHandler.ProductsByPriceRange).Methods(http.MethodGet)
	r.HandleFunc("/api/products/stats", catalogHandler.Stats).Methods(http.MethodGet)
	r.HandleFunc("/api/products/{id}", catalogHandler.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/api/categories/{category}/products", catalogHandler.ProductsByCategory).Methods(http.MethodGet)

	cartHandler := api.NewCartHandler(provider, sessions)
	r.HandleFunc("/api/cart", cartHandler.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", cartHandler.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/api/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/items/{id}", cartHandler.UpdateItem).Methods(http.MethodPut)
	r.HandleFunc("/api/cart/items/{id}", cartHandler.RemoveItem).Methods(http.MethodDelete)

	authHandler := api.NewAuthHandler(auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.LoginDelay()), sessions)
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	contactHandler := contact.NewHandler()
	r.HandleFunc("/api/contact", contactHandler.Submit).Methods(http.MethodPost)

	// 8) Product images; the asset root differs between production and dev
	r.PathPrefix("/images/").Handler(http.FileServer(http.Dir(cfg.AssetRoot)))

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Infof("guitar-storefront listening on %s (catalog source: %s)", s.Addr, cfg.Catalog.Source)
	log.Fatal(s.ListenAndServe())
}
