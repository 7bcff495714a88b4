package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/stock-ahora/api-dwh/internal/http/handlers"
	"github.com/stock-ahora/api-dwh/internal/repository"
	"github.com/stock-ahora/api-dwh/internal/service/pipeline"
)

const APIBasePath = "/api/v1/dwh"
const RunsBasePath = APIBasePath + "/runs"
const HealthPath = "/api/v1" + "/health"

func NewRouter(db *gorm.DB, pipelineSvc pipeline.PipelineService) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Logger, middleware.Recoverer)
	h := handlers.NewStatusHandler()
	warehouseRepo := repository.NewWarehouseRepo(db)
	handleRuns := &handlers.RunHandler{Service: pipelineSvc, Warehouse: warehouseRepo}

	initHealthRoutes(r, h)

	initRunRoutes(r, handleRuns)

	return r
}

func initHealthRoutes(r *chi.Mux, h *handlers.StatusHandler) {
	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		h.Health(w)
	})
}

func initRunRoutes(r *chi.Mux, handleRuns *handlers.RunHandler) {
	r.Route(RunsBasePath, func(r chi.Router) {
		r.Get("/", handleRuns.List)
		r.Post("/", handleRuns.Trigger)
		r.Get("/{id}", handleRuns.Get)
	})
}
