package characters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/domain"
)

func TestCatalogIsComplete(t *testing.T) {
	reg := characters.NewRegistry(nil)

	all := reg.All()
	require.Len(t, all, 12)

	seen := make(map[domain.CharacterID]bool)
	for _, c := range all {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Greeting)
		assert.NotEmpty(t, c.SuggestedQuestions)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}

	walter, ok := reg.Get("walter-white")
	require.True(t, ok)
	assert.Equal(t, "Walter White", walter.Name)
	assert.Equal(t, domain.TypeSeries, walter.Type)
}

func TestAssistantResolution(t *testing.T) {
	reg := characters.NewRegistry(map[domain.CharacterID]string{
		"walter-white": "asst_w1",
	})

	aid, err := reg.AssistantFor("walter-white")
	require.NoError(t, err)
	assert.Equal(t, "asst_w1", aid)

	_, err = reg.AssistantFor("unknown-character")
	require.Error(t, err)
	assert.Equal(t, "No assistant configured for character: unknown-character", err.Error())

	var noAssistant *characters.NoAssistantError
	require.ErrorAs(t, err, &noAssistant)
	assert.Equal(t, domain.CharacterID("unknown-character"), noAssistant.ID)

	// A known character without a configured assistant fails the same way.
	_, err = reg.AssistantFor("eleven")
	require.ErrorAs(t, err, &noAssistant)
}
