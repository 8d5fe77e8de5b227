package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Kub1991/4sciana/internal/adapters/openai"
	"github.com/Kub1991/4sciana/internal/app/chatproxy"
	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/domain"
)

type Server struct {
	svc      *chatproxy.Service
	registry *characters.Registry
}

// NewServer wires the chat routes onto an echo instance. CORS stays fully
// open: the front-end is served from a different origin.
func NewServer(svc *chatproxy.Service, registry *characters.Registry) *echo.Echo {
	s := &Server{svc: svc, registry: registry}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	e.GET("/healthz", s.handleHealthz)
	e.GET("/characters", s.handleListCharacters)
	e.POST("/chat", s.handleChat)

	return e
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	Message     string `json:"message"`
	CharacterID string `json:"characterId"`
	ThreadID    string `json:"threadId,omitempty"`
}

type chatResponse struct {
	Message  string `json:"message"`
	ThreadID string `json:"threadId"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type characterResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Title              string   `json:"title"`
	Source             string   `json:"source"`
	Type               string   `json:"type"`
	Avatar             string   `json:"avatar"`
	Greeting           string   `json:"greeting"`
	SuggestedQuestions []string `json:"suggestedQuestions"`
	Personality        string   `json:"personality"`
	Background         string   `json:"background,omitempty"`
	IntroSoundURL      string   `json:"introSoundUrl,omitempty"`
	Volume             float64  `json:"volume,omitempty"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCharacters(c echo.Context) error {
	all := s.registry.All()
	out := make([]characterResponse, 0, len(all))
	for _, ch := range all {
		out = append(out, toCharacterResponse(ch))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleChat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
	}

	if strings.TrimSpace(req.Message) == "" || req.CharacterID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error: "Message and characterId are required",
		})
	}

	out, err := s.svc.Turn(c.Request().Context(), domain.TurnRequest{
		Message:     req.Message,
		CharacterID: domain.CharacterID(req.CharacterID),
		ThreadID:    domain.ThreadID(req.ThreadID),
	})
	if err != nil {
		return s.chatError(c, err)
	}

	return c.JSON(http.StatusOK, chatResponse{
		Message:  out.Message,
		ThreadID: string(out.ThreadID),
	})
}

// chatError maps service failures onto the wire taxonomy: configuration
// problems get their own top-level messages, everything downstream collapses
// into a generic processing failure with the cause in details. The gateway
// credential never appears in any payload.
func (s *Server) chatError(c echo.Context, err error) error {
	var noAssistant *characters.NoAssistantError
	if errors.As(err, &noAssistant) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: noAssistant.Error()})
	}

	if errors.Is(err, openai.ErrAPIKeyMissing) {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Error: openai.ErrAPIKeyMissing.Error(),
		})
	}

	return c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "Failed to process chat request",
		Details: err.Error(),
	})
}

func toCharacterResponse(ch domain.Character) characterResponse {
	return characterResponse{
		ID:                 string(ch.ID),
		Name:               ch.Name,
		Title:              ch.Title,
		Source:             ch.Source,
		Type:               string(ch.Type),
		Avatar:             ch.Avatar,
		Greeting:           ch.Greeting,
		SuggestedQuestions: ch.SuggestedQuestions,
		Personality:        ch.Personality,
		Background:         ch.Background,
		IntroSoundURL:      ch.IntroSoundURL,
		Volume:             ch.Volume,
	}
}
