package config

import (
	"log"
	"os"

	"github.com/Kub1991/4sciana/internal/domain"
)

type GatewayBackend string

const (
	GatewayOpenAI GatewayBackend = "openai"
	GatewayLocal  GatewayBackend = "local"
)

type Config struct {
	Port string

	GatewayBackend GatewayBackend

	// OpenAI assistant gateway
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Assistant id per character, resolved from named env entries. An absent
	// entry is a user-facing error at request time, not a startup failure.
	AssistantIDs map[domain.CharacterID]string

	// Local gateway (dev mode, Gemini-backed)
	GCPProjectID   string
	GCPLocation    string
	ModelName      string
	StorageBackend string // "memory" or "firestore"
}

// assistantEnv names the configuration entry carrying each character's
// assistant id.
var assistantEnv = map[domain.CharacterID]string{
	"walter-white":       "WALTER_ASSISTANT_ID",
	"jon-snow":           "JON_ASSISTANT_ID",
	"eleven":             "ELEVEN_ASSISTANT_ID",
	"tony-stark":         "TONY_ASSISTANT_ID",
	"hannibal-lecter":    "HANNIBAL_ASSISTANT_ID",
	"thomas-shelby":      "THOMAS_ASSISTANT_ID",
	"marty-mcfly":        "MARTY_MCFLY_ASSISTANT_ID",
	"mathilda":           "MATHILDA_ASSISTANT_ID",
	"joseph-cooper":      "COOPER_ASSISTANT_ID",
	"jack-shephard":      "JACK_ASSISTANT_ID",
	"mark-scout":         "MARK_ASSISTANT_ID",
	"rose-dewitt-bukater": "ROSE_ASSISTANT_ID",
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads all env vars and builds the config.
func Load() *Config {
	backend := GatewayBackend(getEnv("CHAT_GATEWAY_BACKEND", string(GatewayOpenAI)))
	switch backend {
	case GatewayOpenAI, GatewayLocal:
	default:
		log.Fatalf("unknown CHAT_GATEWAY_BACKEND %q (want openai or local)", backend)
	}

	assistants := make(map[domain.CharacterID]string, len(assistantEnv))
	for id, envName := range assistantEnv {
		if v := os.Getenv(envName); v != "" {
			assistants[id] = v
		}
	}

	cfg := &Config{
		Port: getEnv("CHAT_PORT", "8080"),

		GatewayBackend: backend,

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		AssistantIDs: assistants,

		GCPProjectID:   getEnv("CHAT_GCP_PROJECT", ""),
		GCPLocation:    getEnv("CHAT_GCP_LOCATION", "us-central1"),
		ModelName:      getEnv("CHAT_MODEL_NAME", "gemini-2.5-flash-lite"),
		StorageBackend: getEnv("CHAT_STORAGE_BACKEND", "memory"),
	}

	if cfg.GatewayBackend == GatewayLocal && cfg.GCPProjectID == "" {
		log.Fatal("CHAT_GCP_PROJECT must be set for the local gateway backend")
	}

	return cfg
}
