package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Shivam28kumar/cyber-suraksha/internal/handler/chat"
	"github.com/Shivam28kumar/cyber-suraksha/internal/handler/webhook"
	middlewarePkg "github.com/Shivam28kumar/cyber-suraksha/internal/middleware"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/fulfillment"
	"github.com/Shivam28kumar/cyber-suraksha/internal/service/relay"
	"github.com/Shivam28kumar/cyber-suraksha/pkg/utils"
)

// NewRouter wires HTTP routes to core services. staticDir may be empty to
// disable front-end serving.
func NewRouter(relaySvc *relay.Service, pipeline *fulfillment.Pipeline, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chat.New(relaySvc).RegisterRoutes(r)
	webhook.New(pipeline).RegisterRoutes(r)

	r.Get("/health", handleHealth)

	if staticDir != "" {
		// FileServer resolves "/" to index.html on its own.
		fs := http.FileServer(http.Dir(staticDir))
		r.Get("/*", fs.ServeHTTP)
	}

	return r
}

// handleHealth answers the liveness probe.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
