package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/hotelmadagascar/concierge/internal/http/middleware"
	"github.com/hotelmadagascar/concierge/internal/records"
	"github.com/hotelmadagascar/concierge/internal/webchat"
	"github.com/hotelmadagascar/concierge/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	WebchatHandler     *webchat.Handler
	RecordsHandler     *records.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Requests per second allowed per IP on chat routes. Zero disables
	// rate limiting.
	ChatRateLimit float64
	ChatRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.WebchatHandler != nil {
		r.Route("/chat", func(chat chi.Router) {
			if cfg.ChatRateLimit > 0 {
				burst := cfg.ChatRateBurst
				if burst <= 0 {
					burst = int(cfg.ChatRateLimit)
				}
				chat.Use(httpmiddleware.RateLimit(cfg.ChatRateLimit, burst))
			}
			chat.Post("/message", cfg.WebchatHandler.HandleMessage)
			chat.Get("/history", cfg.WebchatHandler.HandleHistory)
			chat.Get("/suggestions", cfg.WebchatHandler.HandleSuggestions)
			chat.Get("/ws", cfg.WebchatHandler.HandleWebSocket)
		})
	}

	if cfg.RecordsHandler != nil {
		r.Mount("/admin", cfg.RecordsHandler.Routes())
	}

	return r
}
