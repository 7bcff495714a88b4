package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/stock-ahora/api-dwh/internal/models"
)

type RunListDto struct {
	ID         uuid.UUID        `json:"id"`
	Status     models.RunStatus `json:"status"`
	Trigger    string           `json:"trigger"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
}

type RunDto struct {
	ID         uuid.UUID        `json:"id"`
	Status     models.RunStatus `json:"status"`
	Trigger    string           `json:"trigger"`
	Error      string           `json:"error,omitempty"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
	Counts     RunCountsDto     `json:"counts"`
}

// RunCountsDto expone los contadores de auditoría de la corrida: filas
// descartadas por identidad nula y lookups de hechos sin resolver.
type RunCountsDto struct {
	RawCustomers        int64 `json:"raw_customers"`
	CleanCustomers      int64 `json:"clean_customers"`
	DroppedCustomers    int64 `json:"dropped_customers"`
	RawProducts         int64 `json:"raw_products"`
	CleanProducts       int64 `json:"clean_products"`
	DroppedProducts     int64 `json:"dropped_products"`
	CleanSalesLines     int64 `json:"clean_sales_lines"`
	DimCustomers        int64 `json:"dim_customers"`
	DimProducts         int64 `json:"dim_products"`
	FactRows            int64 `json:"fact_rows"`
	UnresolvedProducts  int64 `json:"unresolved_products"`
	UnresolvedCustomers int64 `json:"unresolved_customers"`
}

func RunToDto(run models.PipelineRun) RunDto {
	return RunDto{
		ID:         run.ID,
		Status:     run.Status,
		Trigger:    run.Trigger,
		Error:      run.Error,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Counts: RunCountsDto{
			RawCustomers:        run.RawCustomers,
			CleanCustomers:      run.CleanCustomers,
			DroppedCustomers:    run.DroppedCustomers,
			RawProducts:         run.RawProducts,
			CleanProducts:       run.CleanProducts,
			DroppedProducts:     run.DroppedProducts,
			CleanSalesLines:     run.CleanSalesLines,
			DimCustomers:        run.DimCustomers,
			DimProducts:         run.DimProducts,
			FactRows:            run.FactRows,
			UnresolvedProducts:  run.UnresolvedProducts,
			UnresolvedCustomers: run.UnresolvedCustomers,
		},
	}
}

type Page[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}
