package analytics

import (
	"database/sql"
	"encoding/json"
	"net/http"
)

// tool_started — пользователь открыл упражнение с дашборда
func ToolStartedHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			ToolID   string `json:"tool_id"`
			Slot     string `json:"slot"`   // list/primary/quick_relief/deeper_work
			Source   string `json:"source"` // dashboard/chat/push/unknown
			Duration int    `json:"duration"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		env := FromRequest(r)
		env.UserID = uid

		props := map[string]any{
			"tool_id":  body.ToolID,
			"slot":     body.Slot,
			"source":   body.Source,
			"duration": body.Duration,
		}

		_ = Log(r.Context(), dbx, env, "tool_started", props, SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

// crisis_line_opened — кто-то открыл экстренные контакты.
// Только факт открытия, без какого-либо текста.
func CrisisLineOpenedHandler(dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var body struct {
			Screen  string `json:"screen"`  // dashboard/chat/onboarding
			Urgency string `json:"urgency"` // tier shown at the time
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		env := FromRequest(r)
		env.UserID = uid

		props := map[string]any{
			"screen":  body.Screen,
			"urgency": body.Urgency,
		}

		_ = Log(r.Context(), dbx, env, "crisis_line_opened", props, SourceEventKeyFromRequest(r))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
