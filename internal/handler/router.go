package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/roster/backend/internal/handler/live"
	"github.com/zhouzirui/roster/backend/internal/handler/roster"
	rosterService "github.com/zhouzirui/roster/backend/internal/service/roster"
	"github.com/zhouzirui/roster/backend/internal/view"
	"github.com/zhouzirui/roster/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(rosterSvc *rosterService.Service, renderer *view.Renderer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	rosterHandler := roster.New(rosterSvc, renderer)
	liveHandler := live.NewWebSocketHandler(rosterSvc)

	// Page and form actions
	rosterHandler.RegisterRoutes(r)

	// Live roster snapshots
	liveHandler.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		rosterHandler.RegisterAPIRoutes(api)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
