package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Kub1991/4sciana/internal/adapters/gatewaylocal"
	httpadapter "github.com/Kub1991/4sciana/internal/adapters/http"
	"github.com/Kub1991/4sciana/internal/adapters/openai"
	firestorestore "github.com/Kub1991/4sciana/internal/adapters/storage/firestore"
	memstore "github.com/Kub1991/4sciana/internal/adapters/storage/memory"
	"github.com/Kub1991/4sciana/internal/app/chatproxy"
	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/config"
	"github.com/Kub1991/4sciana/internal/domain"
	"github.com/Kub1991/4sciana/internal/observability"
)

func main() {
	ctx := context.Background()

	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.Logger()

	assistants := cfg.AssistantIDs
	if cfg.GatewayBackend == config.GatewayLocal {
		// Local assistants run straight off the character catalog, so every
		// character without a configured id gets one equal to its own id.
		if assistants == nil {
			assistants = make(map[domain.CharacterID]string)
		}
		for _, ch := range characters.Catalog() {
			if _, ok := assistants[ch.ID]; !ok {
				assistants[ch.ID] = string(ch.ID)
			}
		}
	}
	registry := characters.NewRegistry(assistants)

	// Gateway: real OpenAI assistants, or the local Gemini-backed emulation
	// for development.
	var gateway domain.AssistantGateway

	switch cfg.GatewayBackend {
	case config.GatewayLocal:
		// Thread storage, local gateway only: Firestore or memory.
		var store domain.ThreadStore
		switch cfg.StorageBackend {
		case "firestore":
			logger.Info("using Firestore thread storage", "project", cfg.GCPProjectID)
			fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
			if err != nil {
				log.Fatalf("error initializing Firestore store: %v", err)
			}
			store = fsStore
		default:
			logger.Info("using in-memory thread storage")
			store = memstore.NewThreadStore()
		}

		logger.Info("using local assistant gateway",
			"project", cfg.GCPProjectID,
			"model", cfg.ModelName,
		)
		g, err := gatewaylocal.New(ctx, gatewaylocal.Config{
			ProjectID: cfg.GCPProjectID,
			Location:  cfg.GCPLocation,
			ModelName: cfg.ModelName,
		}, registry, store)
		if err != nil {
			log.Fatalf("error initializing local gateway: %v", err)
		}
		gateway = g

	default:
		logger.Info("using OpenAI assistant gateway")
		gateway = openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)
	}

	svc := chatproxy.NewService(gateway, registry)
	e := httpadapter.NewServer(svc, registry)

	logger.Info("chat proxy listening", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
