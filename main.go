package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/auth"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/handlers"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/loaders"
	"github.com/oru-pavam-nair/BJPMission2025-sub002/middleware"
)

type HealthResponse struct {
	Status      string `json:"status"`
	DBStatus    string `json:"db_status"`
	MongoStatus string `json:"mongo_status"`
	Error       string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:      "ok",
		DBStatus:    "connected",
		MongoStatus: "connected",
	}

	if err := config.CheckPostgresHealth(); err != nil {
		response.Status = "error"
		response.DBStatus = "connection_error"
		response.Error = err.Error()
	}
	if config.MongoClient == nil {
		response.MongoStatus = "not_configured"
	} else if err := config.CheckMongoHealth(); err != nil {
		response.Status = "error"
		response.MongoStatus = "connection_error"
		response.Error = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func registerRoutes(api *mux.Router, sessions *auth.Store) {
	api.HandleFunc("/auth/login", handlers.Login).Methods("POST")

	// Everything past login requires a valid coordinator session
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(sessions))

	protected.HandleFunc("/auth/logout", handlers.Logout).Methods("POST")
	protected.HandleFunc("/auth/session", handlers.GetSession).Methods("GET")

	protected.HandleFunc("/map/zones", handlers.GetZones).Methods("GET")
	protected.HandleFunc("/map/zones/{zone}/districts", handlers.GetDistrictsInZone).Methods("GET")
	protected.HandleFunc("/map/zones/{zone}/districts/{district}/acs", handlers.GetACsInDistrict).Methods("GET")
	protected.HandleFunc("/map/zones/{zone}/districts/{district}/acs/{ac}/mandals", handlers.GetMandalsInAC).Methods("GET")
	protected.HandleFunc("/map/mandals/{mandal}/localbodies", handlers.GetLocalBodiesInMandal).Methods("GET")

	protected.HandleFunc("/voteshare/ac", handlers.GetACVoteShare).Methods("POST")
	protected.HandleFunc("/voteshare/mandal", handlers.GetMandalVoteShare).Methods("POST")
	protected.HandleFunc("/target/ac", handlers.GetACTarget).Methods("POST")

	protected.HandleFunc("/reports/entities", handlers.GenerateEntityReport).Methods("POST")
	protected.HandleFunc("/reports/voters", handlers.GenerateVoterReport).Methods("POST")
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	// Load environment variables first
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := config.ServerPort()

	// Initialize PostgreSQL database with retries
	log.Println("Initializing PostgreSQL database...")
	if err := config.InitDBWithRetry(5); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("PostgreSQL database initialized successfully")
	defer config.CloseDB()

	if err := config.InitPostgreSQL(); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	// Session store: MongoDB with a TTL index when configured, in-process
	// fallback otherwise (sessions then die with the server)
	var sessionBackend auth.Backend
	if os.Getenv("MONGO_URI") != "" {
		log.Println("Initializing MongoDB session store...")
		if err := config.ConnectWithRetry(5); err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		sessionBackend = auth.NewMongoBackend(config.MongoDB)
	} else {
		log.Println("MONGO_URI not set, using in-process session store")
		sessionBackend = auth.NewMemoryBackend()
	}
	sessions := auth.NewStore(sessionBackend)

	config.InitCache()
	fetcher := loaders.NewFetcher(config.DataBaseURL())
	lookups := loaders.New(fetcher, config.LookupCache)
	handlers.Init(lookups, sessions)

	// Warm the lookup caches so the first dashboard request is fast
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		_, acStatus := lookups.ACVoteShare(ctx)
		_, mandalStatus := lookups.MandalVoteShare(ctx)
		_, targetStatus := lookups.ACTarget(ctx)
		log.Printf("Lookup warmup: ac=%s mandal=%s target=%s", acStatus, mandalStatus, targetStatus)
	}()

	r := mux.NewRouter()

	// CORS configuration
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"https://mission2025.kerala.bjp.org",
		},
		AllowedMethods: []string{
			"GET", "POST", "PUT", "DELETE", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"X-Report-Download",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api, sessions)
	log.Println("Routes registered successfully")

	// Health check endpoint
	api.HandleFunc("/health", healthCheck).Methods("GET")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      30 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server stopped")
}
