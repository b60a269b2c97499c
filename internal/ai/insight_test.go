package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unwind-backend/internal/recommend"
)

func TestBuildInsightPrompt(t *testing.T) {
	p := BuildInsightPrompt("The Wired Worrier", recommend.Answers{
		Energy:       "high",
		Concern:      "anxiety",
		Context:      "racing_thoughts",
		SupportStyle: "gentle",
	})

	assert.Contains(t, p, "archetype: The Wired Worrier\n")
	assert.Contains(t, p, "energy: high\n")
	assert.Contains(t, p, "concern: anxiety\n")
	assert.Contains(t, p, "context: racing_thoughts\n")
	assert.Contains(t, p, "support_style: gentle\n")
	assert.NotContains(t, p, "approach:")
}

func TestBuildInsightPromptDeterministic(t *testing.T) {
	a := recommend.Answers{Energy: "low", Concern: "exhausted"}
	assert.Equal(t,
		BuildInsightPrompt("The Collapsed Stack", a),
		BuildInsightPrompt("The Collapsed Stack", a),
	)
}
