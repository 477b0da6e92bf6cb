// Package main is the entry point for trapmaze.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/trapmaze/internal/game"
	"github.com/samdwyer/trapmaze/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// The terminal belongs to tcell once the game starts.
	if path := os.Getenv("TRAPMAZE_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		return
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_TRAPMAZE_API_KEY")
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_TRAPMAZE_DATASET")
	if dataset == "" {
		dataset = "trapmaze"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
