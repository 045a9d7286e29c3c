package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"cavern-realm/server/config"
	"cavern-realm/server/generation"
	"cavern-realm/server/handlers"
	"cavern-realm/server/persistence"
	"cavern-realm/server/services"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := openStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize persistence: %v", err)
	}
	defer db.Close()

	log.Println("Persistence initialized successfully")

	generator, err := generation.NewGenerator(cfg.Generation)
	if err != nil {
		log.Fatalf("Invalid generation parameters: %v", err)
	}

	worldCache := services.NewWorldCache(generator, cfg.Cache.Capacity)
	worldService := services.NewWorldService(worldCache, db, cfg.Viewport)
	playerService := services.NewPlayerService(db)
	clientManager := handlers.NewClientManager()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			// Allow connections from any origin during development
			return true
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Failed to upgrade connection: %v", err)
			return
		}
		handlers.HandleClientConnection(conn, cfg.Server.SendQueue, playerService, worldService, clientManager)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: mux,
	}

	ctx, cancel := signalContext()
	defer cancel()

	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		clientManager.CloseAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on port %s (storage: %s)", cfg.Server.Port, cfg.Storage.Type)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

func openStorage(cfg config.StorageConfig) (persistence.Storage, error) {
	switch cfg.Type {
	case config.StoragePostgres:
		log.Println("Using PostgreSQL persistence")
		return persistence.NewPostgresStore(cfg.DatabaseURL)
	case config.StorageSQLite:
		log.Println("Using SQLite persistence")
		return persistence.NewSQLiteStore(cfg.SQLitePath)
	default:
		log.Println("Using JSON persistence")
		return persistence.NewJSONStore(cfg.File)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
