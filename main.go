package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"jahbot/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}
