package ai

import (
	"encoding/json"
	"net/http"
	"strings"

	"unwind-backend/internal/auth"
	"unwind-backend/internal/recommend"
)

// BuildInsightPrompt — формирует user prompt для "deep insight".
// Field-per-line, same shape the model is instructed to expect.
func BuildInsightPrompt(archetype string, a recommend.Answers) string {

	var b strings.Builder

	b.WriteString("archetype: ")
	b.WriteString(archetype)
	b.WriteString("\n")

	b.WriteString("energy: ")
	b.WriteString(a.Energy)
	b.WriteString("\n")

	b.WriteString("concern: ")
	b.WriteString(a.Concern)
	b.WriteString("\n")

	if a.Context != "" {
		b.WriteString("context: ")
		b.WriteString(a.Context)
		b.WriteString("\n")
	}

	if a.Approach != "" {
		b.WriteString("approach: ")
		b.WriteString(a.Approach)
		b.WriteString("\n")
	}

	if a.SupportStyle != "" {
		b.WriteString("support_style: ")
		b.WriteString(a.SupportStyle)
		b.WriteString("\n")
	}

	return b.String()
}

type InsightRequest struct {
	Archetype string            `json:"archetype"`
	Answers   recommend.Answers `json:"answers"`
}

// InsightHandler runs the secondary "deep insight" prompt through the LLM.
// The recommendation engine never calls the model; this endpoint is the
// one place the backend does.
func (c *OpenAIClient) InsightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req InsightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Archetype == "" {
			http.Error(w, "archetype required", http.StatusBadRequest)
			return
		}

		prompt := BuildInsightPrompt(req.Archetype, req.Answers)

		text, err := c.Complete(r.Context(), companionSystemPrompt, prompt)
		if err != nil {
			http.Error(w, "ai error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"insight": text,
		})
	}
}
