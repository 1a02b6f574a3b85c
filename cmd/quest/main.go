package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/quest-chronicles/internal/config"
	"github.com/KirkDiggler/quest-chronicles/internal/handlers/console"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, closeApp := console.NewRootCmd(cfg)
	err = root.ExecuteContext(ctx)
	if closeErr := closeApp(); closeErr != nil {
		log.Println(closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", console.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}
