package session

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/Kub1991/4sciana/internal/adapters/proxy"
	"github.com/Kub1991/4sciana/internal/domain"
)

// FailureKind classifies a failed turn. Timeout, network and server failures
// are transient and worth retrying automatically; everything else needs the
// user (usually missing configuration).
type FailureKind int

const (
	FailureTimeout FailureKind = iota
	FailureNetwork
	FailureServer
	FailureOther
)

func (k FailureKind) Retryable() bool {
	return k != FailureOther
}

// User-facing copy.
const (
	msgOffline  = "Brak połączenia z internetem. Sprawdź połączenie i spróbuj ponownie."
	msgTimeout  = "Żądanie przekroczyło limit czasu. Sprawdź połączenie internetowe."
	msgNetwork  = "Błąd połączenia sieciowego. Sprawdź internet i spróbuj ponownie."
	msgServer   = "Tymczasowy błąd serwera. Spróbuj ponownie za chwilę."
	msgFallback = "Przepraszam, ale mam problem z połączeniem. Sprawdź komunikat błędu powyżej lub spróbuj ponownie."
)

// classify maps a turn error to a failure kind and the message to show.
// Configuration errors keep their server-provided text, augmented with setup
// guidance where we can name the missing entry.
func classify(err error, characterID domain.CharacterID) (FailureKind, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout, msgTimeout
	}

	var apiErr *proxy.APIError
	if errors.As(err, &apiErr) {
		// Configuration errors come back as both 400s (unmapped character)
		// and 500s (missing credential). Neither gets better by retrying,
		// and both carry a message worth showing verbatim.
		if isConfigurationMessage(apiErr.Message) {
			return FailureOther, augmentSetupGuidance(apiErr.Error(), characterID)
		}
		if apiErr.StatusCode >= 500 {
			return FailureServer, msgServer
		}
		return FailureOther, augmentSetupGuidance(apiErr.Error(), characterID)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout, msgTimeout
		}
		return FailureNetwork, msgNetwork
	}

	return FailureOther, err.Error()
}

func isConfigurationMessage(msg string) bool {
	return strings.Contains(msg, "OpenAI API key not configured") ||
		strings.Contains(msg, "No assistant configured")
}

// augmentSetupGuidance gives configuration errors a hint naming the
// environment entry to add.
func augmentSetupGuidance(msg string, characterID domain.CharacterID) string {
	if strings.Contains(msg, "OpenAI API key not configured") {
		return msg + "\n\nPlease add your OPENAI_API_KEY to the server environment."
	}
	if strings.Contains(msg, "No assistant configured") {
		envName := strings.ToUpper(strings.ReplaceAll(string(characterID), "-", "_")) + "_ASSISTANT_ID"
		return msg + "\n\nPlease add the " + envName + " entry to the server environment."
	}
	return msg
}
