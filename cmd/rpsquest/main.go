// Package main is the entry point for RPS Quest.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/rpsquest/internal/combatlog"
	"github.com/samdwyer/rpsquest/internal/config"
	"github.com/samdwyer/rpsquest/internal/game"
	"github.com/samdwyer/rpsquest/internal/telemetry"
	"github.com/samdwyer/rpsquest/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	if cfg.Tracing {
		setupOTelEnv()
	}
	shutdown, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	clog := combatlog.NewNop()
	if cfg.CombatLog != "" {
		clog, err = combatlog.New(cfg.CombatLog)
		if err != nil {
			log.Fatalf("Failed to open combat log: %v", err)
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	g, err := game.New(cfg, screen, clog)
	if err != nil {
		screen.Close()
		log.Fatalf("Failed to initialize game: %v", err)
	}

	runErr := g.Run(ctx)
	g.Close()
	if runErr != nil {
		log.Printf("Game error: %v", runErr)
	}
	log.Printf("Game over: %s", g.Outcome())
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// provided and no endpoint is configured.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_RPSQUEST_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_RPSQUEST_DATASET")
	if dataset == "" {
		dataset = "rpsquest"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
