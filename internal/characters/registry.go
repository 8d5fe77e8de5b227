// Package characters holds the static persona catalog and resolves each
// character to its configured assistant id.
package characters

import (
	"fmt"

	"github.com/Kub1991/4sciana/internal/domain"
)

// NoAssistantError means a known character has no assistant id configured.
// Distinct from a missing gateway credential: this one names the character and
// is shown to the user as setup guidance.
type NoAssistantError struct {
	ID domain.CharacterID
}

func (e *NoAssistantError) Error() string {
	return fmt.Sprintf("No assistant configured for character: %s", e.ID)
}

type Registry struct {
	byID       map[domain.CharacterID]domain.Character
	order      []domain.CharacterID
	assistants map[domain.CharacterID]string
}

// NewRegistry builds a registry over the built-in catalog. assistants maps
// character ids to assistant ids (from configuration, never user input).
func NewRegistry(assistants map[domain.CharacterID]string) *Registry {
	r := &Registry{
		byID:       make(map[domain.CharacterID]domain.Character, len(catalog)),
		order:      make([]domain.CharacterID, 0, len(catalog)),
		assistants: assistants,
	}
	for _, c := range catalog {
		r.byID[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

// Catalog returns the built-in personas in display order.
func Catalog() []domain.Character {
	out := make([]domain.Character, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns a character by id.
func (r *Registry) Get(id domain.CharacterID) (domain.Character, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// All returns the catalog in its fixed display order.
func (r *Registry) All() []domain.Character {
	out := make([]domain.Character, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// AssistantFor resolves the assistant id for a character. Unknown characters
// and characters without a configured assistant both yield *NoAssistantError:
// either way nothing can answer for that id.
func (r *Registry) AssistantFor(id domain.CharacterID) (string, error) {
	if aid, ok := r.assistants[id]; ok && aid != "" {
		return aid, nil
	}
	return "", &NoAssistantError{ID: id}
}
