package domain

// CharacterType distinguishes where a character comes from.
type CharacterType string

const (
	TypeMovie  CharacterType = "movie"
	TypeSeries CharacterType = "series"
)

// Character is a persona from the static catalog. Loaded once at startup and
// never mutated afterwards.
type Character struct {
	ID                 CharacterID
	Name               string
	Title              string
	Source             string
	Type               CharacterType
	Avatar             string
	Greeting           string
	SuggestedQuestions []string
	Personality        string

	// Presentation hints; the chat core never reads them.
	Background    string
	IntroSoundURL string
	Volume        float64
}
