package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/predforge/predforge/internal/ai"
	"github.com/predforge/predforge/internal/build"
	"github.com/predforge/predforge/internal/config"
	"github.com/predforge/predforge/internal/db"
	"github.com/predforge/predforge/internal/httpapi"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	reg := ai.NewRegistry()
	reg.Register("openai", func() (ai.Provider, error) {
		return ai.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout), nil
	})
	reg.Register("anthropic", func() (ai.Provider, error) {
		return ai.NewAnthropicProvider(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.LLMTimeout), nil
	})

	switch cfg.AIProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("FATAL: OPENAI_API_KEY is not set")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("FATAL: ANTHROPIC_API_KEY is not set")
		}
	}

	provider, err := reg.Get(cfg.AIProvider)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("FATAL: open database: %v", err)
	}

	rosterStore := roster.NewStore(gdb)
	cache := omeda.NewCache(cfg.OmedaBaseURL, &http.Client{Timeout: cfg.OmedaTimeout}, nil)
	engine := build.NewEngine(provider)
	repo := build.NewRepo(gdb)
	svc := build.NewService(rosterStore, cache, engine, repo)

	go cache.Warm(context.Background())

	r := httpapi.NewRouter(rosterStore, cache, svc)

	log.Printf("[server] listening on :%s (provider=%s)", cfg.Port, cfg.AIProvider)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("FATAL: server: %v", err)
	}
}
