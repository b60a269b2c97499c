package onboarding

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"unwind-backend/internal/analytics"
	"unwind-backend/internal/auth"
	"unwind-backend/internal/recommend"
)

// CompleteHandler takes the six onboarding answers, runs the recommendation
// engine and stores the resulting profile. The engine itself does no I/O;
// everything that touches the database lives here.
func CompleteHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var answers recommend.Answers
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		profile := recommend.GenerateProfile(answers)

		payload, err := json.Marshal(profile)
		if err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
			return
		}

		id := uuid.NewString()
		_, err = dbx.Exec(`
			INSERT INTO wellness_profiles (id, user_id, archetype, urgency_level, profile, created_at)
			VALUES ($1, $2, $3, $4, $5::jsonb, $6)
		`, id, uid, profile.Archetype, profile.UrgencyLevel, string(payload), time.Now().UTC())
		if err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		// analytics: onboarding_completed (НЕ логируем сырые ответы)
		{
			env := analytics.FromRequest(r)
			env.UserID = uid

			props := map[string]any{
				"profile_id": id,
				"archetype":  profile.Archetype,
				"urgency":    profile.UrgencyLevel,
				"tool_count": len(profile.Tools),
				"has_limit":  answers.Time != "" && answers.Time != "30+",
			}
			_ = analytics.Log(r.Context(), dbx, env, "onboarding_completed", props, analytics.SourceEventKeyFromRequest(r))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"profile_id": id,
			"profile":    profile,
		})
	}
}

// LatestProfileHandler returns the most recent stored profile for the user.
func LatestProfileHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			id        string
			payload   []byte
			createdAt time.Time
		)
		err := dbx.QueryRow(`
			SELECT id, profile, created_at
			FROM wellness_profiles
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT 1
		`, uid).Scan(&id, &payload, &createdAt)
		if err != nil {
			http.Error(w, "no profile", http.StatusNotFound)
			return
		}

		var profile recommend.Profile
		if err := json.Unmarshal(payload, &profile); err != nil {
			http.Error(w, "decode error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"profile_id": id,
			"profile":    profile,
			"created_at": createdAt,
		})
	}
}

// PreviewHandler runs the engine without persisting anything; the wizard
// uses it for the "here's your profile" screen before the user confirms.
func PreviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var answers recommend.Answers
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recommend.GenerateProfile(answers))
	}
}
