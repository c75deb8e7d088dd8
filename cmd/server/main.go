package main

import (
    "context"
    "encoding/json"
    "log"
    "math/rand"
    "net/http"
    "os"
    "os/signal"
    "time"

    "github.com/joho/godotenv"
    "github.com/rs/cors"

    "gne-trainer/internal/attempts"
    "gne-trainer/internal/auth"
    "gne-trainer/internal/config"
    "gne-trainer/internal/items"
    "gne-trainer/internal/models"
    "gne-trainer/internal/practice"
    "gne-trainer/pkg/cache"
    "gne-trainer/pkg/database"

    "github.com/gorilla/mux"
)

func main() {
    // Load environment variables
    if err := godotenv.Load(); err != nil {
        log.Printf("Warning: .env file not found")
    }

    cfg := config.Load()

    router := mux.NewRouter()

    var recorder *attempts.Recorder

    if !cfg.Ready() {
        // Missing backend connection info disables data operations but must
        // not crash the server.
        log.Printf("Warning: backend connection info missing; data operations disabled")
        mountUnconfigured(router)
    } else {
        db, err := database.NewPostgresDB(cfg.Database)
        if err != nil {
            log.Fatalf("Failed to connect to database: %v", err)
        }
        err = db.AutoMigrate(
            &models.Profile{},
            &models.Item{},
            &models.Attempt{},
        )
        if err != nil {
            log.Fatalf("Failed to migrate database: %v", err)
        }

        redisCache := cache.NewRedisCache(cfg.RedisAddr)

        // Initialize repositories
        authRepo := auth.NewRepository(db)
        itemRepo := items.NewRepository(db)
        attemptRepo := attempts.NewRepository(db)

        // Initialize services
        authService := auth.NewService(authRepo, redisCache, cfg.JWTSecret)
        itemService := items.NewService(itemRepo)
        recorder = attempts.NewRecorder(attemptRepo)
        historyService := attempts.NewService(attemptRepo, itemRepo)

        rng := rand.New(rand.NewSource(time.Now().UnixNano()))
        engine := practice.NewEngine(itemService, redisCache, recorder, rng)

        // Initialize handlers
        authHandler := auth.NewHandler(authService)
        itemHandler := items.NewHandler(itemService)
        practiceHandler := practice.NewHandler(engine)
        historyHandler := attempts.NewHandler(historyService)

        // Landing status: reachable without identity, reports whether the
        // backend answers at all.
        router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
            if _, err := itemRepo.ListRecent(1); err != nil {
                w.WriteHeader(http.StatusServiceUnavailable)
                json.NewEncoder(w).Encode(map[string]string{"status": "connection failed"})
                return
            }
            json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
        }).Methods("GET")

        // Auth routes - no session required
        router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
        router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

        // Session-gated routes
        apiRouter := router.PathPrefix("/api").Subrouter()
        apiRouter.Use(auth.Middleware(cfg.JWTSecret, redisCache))

        apiRouter.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST", "OPTIONS")
        apiRouter.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
        apiRouter.HandleFunc("/practice/next", practiceHandler.Next).Methods("GET")
        apiRouter.HandleFunc("/practice/answer", practiceHandler.Submit).Methods("POST", "OPTIONS")
        apiRouter.HandleFunc("/history", historyHandler.History).Methods("GET")

        // Admin routes - role == admin required on top of the session
        adminRouter := apiRouter.PathPrefix("/admin").Subrouter()
        adminRouter.Use(auth.AdminOnly(authRepo))

        adminRouter.HandleFunc("/items", itemHandler.List).Methods("GET")
        adminRouter.HandleFunc("/items", itemHandler.Create).Methods("POST", "OPTIONS")
        adminRouter.HandleFunc("/items/import", itemHandler.Import).Methods("POST", "OPTIONS")
        adminRouter.HandleFunc("/items/{id:[0-9]+}", itemHandler.Delete).Methods("DELETE", "OPTIONS")
    }

    // CORS middleware configuration
    corsMiddleware := cors.New(cors.Options{
        AllowedOrigins:   []string{cfg.AllowedOrigin},
        AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
        AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
        ExposedHeaders:   []string{"Content-Length"},
        AllowCredentials: true,
        MaxAge:           300,
    })
    handler := corsMiddleware.Handler(router)

    srv := &http.Server{
        Addr:         cfg.ServerAddr,
        Handler:      handler,
        ReadTimeout:  15 * time.Second,
        WriteTimeout: 15 * time.Second,
    }

    // Start server in a goroutine
    go func() {
        log.Printf("Server starting on %s", cfg.ServerAddr)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatalf("Failed to start server: %v", err)
        }
    }()

    // Graceful shutdown setup
    c := make(chan os.Signal, 1)
    signal.Notify(c, os.Interrupt)
    <-c

    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Server forced to shutdown: %v", err)
    }

    if recorder != nil {
        recorder.Wait()
    }

    log.Println("Server shutdown gracefully")
}

// mountUnconfigured serves the degraded state: every data route answers 503.
func mountUnconfigured(router *mux.Router) {
    router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusServiceUnavailable)
        json.NewEncoder(w).Encode(map[string]string{"status": "not configured"})
    }).Methods("GET")

    router.PathPrefix("/api").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "Server is not configured", http.StatusServiceUnavailable)
    })
}
