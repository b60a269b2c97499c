package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"unwind-backend/internal/ai"
	"unwind-backend/internal/analytics"
	"unwind-backend/internal/auth"
	"unwind-backend/internal/config"
	"unwind-backend/internal/db"
	"unwind-backend/internal/onboarding"
)

// ----------------------
//        MAIN
// ----------------------

func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		log.Fatal("❌ Failed to connect DB:", err)
	}
	defer database.Close()

	log.Println("✅ Connected to PostgreSQL!")

	secret := []byte(cfg.JWTSecret)
	mw := auth.New(secret)
	aiClient := ai.New(cfg.OpenAIKey, cfg.OpenAIModel)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- AUTH API -----
	mux.HandleFunc("/auth/register", auth.RegisterHandler(database, secret))
	mux.HandleFunc("/auth/login", auth.LoginHandler(database, secret))
	mux.HandleFunc("/auth/me", mw.Wrap(auth.MeHandler(database)))
	mux.HandleFunc("/auth/logout", mw.Wrap(auth.LogoutHandler()))
	mux.HandleFunc("/auth/delete", mw.Wrap(auth.DeleteAccountHandler(database)))

	// ----- ONBOARDING / PROFILE API -----
	// preview работает без токена: визард показывает профиль до регистрации
	mux.HandleFunc("/onboarding/preview", onboarding.PreviewHandler())
	mux.HandleFunc("/onboarding/complete", mw.Wrap(onboarding.CompleteHandler(database)))
	mux.HandleFunc("/profile", mw.Wrap(onboarding.LatestProfileHandler(database)))

	// ----- AI API -----
	mux.HandleFunc("/ai/insight", mw.Wrap(aiClient.InsightHandler()))

	// ----- ANALYTICS API -----
	mux.HandleFunc("/analytics/tool-started", mw.Wrap(analytics.ToolStartedHandler(database)))
	mux.HandleFunc("/analytics/crisis-line", mw.Wrap(analytics.CrisisLineOpenedHandler(database)))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Idempotency-Key", "X-Platform", "X-App-Version", "X-Session-Id", "X-Device-Locale"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
