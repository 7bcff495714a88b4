package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stock-ahora/api-dwh/internal/dto"
	"github.com/stock-ahora/api-dwh/internal/repository"
	"github.com/stock-ahora/api-dwh/internal/service/pipeline"
)

type RunHandler struct {
	Service   pipeline.PipelineService
	Warehouse repository.WarehouseRepo
}

// Trigger dispara una corrida completa del pipeline de forma síncrona.
func (h *RunHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	run, err := h.Service.Run(r.Context(), "api")
	if err != nil {
		http.Error(w, "corrida falló: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto.RunToDto(run))
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := parsePagination(r)

	runs, total, err := h.Warehouse.ListRuns(page, size)
	if err != nil {
		http.Error(w, "error listando corridas: "+err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]dto.RunListDto, 0, len(runs))
	for _, run := range runs {
		items = append(items, dto.RunListDto{
			ID:         run.ID,
			Status:     run.Status,
			Trigger:    run.Trigger,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
		})
	}

	result := dto.Page[dto.RunListDto]{
		Data:       items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *RunHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "UUID inválido", http.StatusBadRequest)
		return
	}

	run, err := h.Warehouse.GetRun(id)
	if err != nil {
		http.Error(w, "error al obtener la corrida: "+err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.RunToDto(run))
}

func parsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size < 1 || size > 100 {
		size = 20
	}
	return page, size
}
