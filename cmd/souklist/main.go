package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rghanem/souklist/internal/database"
	"github.com/rghanem/souklist/internal/logging"
	"github.com/rghanem/souklist/internal/server"
)

func main() {
	port := os.Getenv("SOUKLIST_PORT")
	if port == "" {
		port = "8090"
	}

	dbPath := os.Getenv("SOUKLIST_DB_PATH")
	if dbPath == "" {
		dbPath = "souklist.db"
	}

	logger := logging.Setup(os.Getenv("SOUKLIST_LOG_LEVEL"))

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	srv, err := server.New(db, logger)
	if err != nil {
		log.Fatalf("failed to load store: %v", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Souklist running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
