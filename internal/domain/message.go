package domain

// Message is one entry in a session's log (user or assistant).
// Messages are appended in strict chronological order: a user message always
// precedes the assistant message that answers it.
type Message struct {
	ID        MessageID
	Author    Role
	Text      string
	CreatedAt Timestamp
}

// ThreadMessage is a message as the assistant gateway reports it when listing
// a thread. Separate from Message because the gateway's view of a thread may
// diverge from the local session log (retries can double-append).
type ThreadMessage struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt Timestamp
}

// ShareSnapshot is a read-only projection of the last exchange, built on
// demand when the user asks to share the conversation.
type ShareSnapshot struct {
	CharacterName string
	Confession    string // last assistant message
	Topic         string // last user message
	Source        string
	ChatLink      string
}
