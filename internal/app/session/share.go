package session

import "github.com/Kub1991/4sciana/internal/domain"

// Share builds a snapshot of the last exchange for the share card. Returns
// nil when the log carries no assistant message to quote (cannot happen after
// the greeting, but the guard keeps it total).
func Share(character domain.Character, messages []domain.Message, baseURL string) *domain.ShareSnapshot {
	var confession, topic string
	for _, m := range messages {
		switch m.Author {
		case domain.RoleAssistant:
			confession = m.Text
		case domain.RoleUser:
			topic = m.Text
		}
	}
	if confession == "" {
		return nil
	}
	if topic == "" {
		topic = "General conversation"
	}

	return &domain.ShareSnapshot{
		CharacterName: character.Name,
		Confession:    confession,
		Topic:         topic,
		Source:        character.Source,
		ChatLink:      baseURL + "?character=" + string(character.ID),
	}
}
