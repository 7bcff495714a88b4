package models

import (
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusFinished RunStatus = "finished"
	RunStatusFailed   RunStatus = "failed"
)

// PipelineRun es el registro de auditoría de cada corrida completa
// (cleansing + build dimensional).
type PipelineRun struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Status     RunStatus  `gorm:"column:status;type:varchar(20)" json:"status"`
	Trigger    string     `gorm:"column:run_trigger;type:varchar(50)" json:"trigger"`
	Error      string     `gorm:"column:error;type:varchar(500)" json:"error,omitempty"`
	StartedAt  time.Time  `gorm:"column:started_at;autoCreateTime" json:"started_at"`
	FinishedAt *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`

	RawCustomers     int64 `gorm:"column:raw_customers" json:"raw_customers"`
	CleanCustomers   int64 `gorm:"column:clean_customers" json:"clean_customers"`
	DroppedCustomers int64 `gorm:"column:dropped_customers" json:"dropped_customers"`
	RawProducts      int64 `gorm:"column:raw_products" json:"raw_products"`
	CleanProducts    int64 `gorm:"column:clean_products" json:"clean_products"`
	DroppedProducts  int64 `gorm:"column:dropped_products" json:"dropped_products"`
	CleanSalesLines  int64 `gorm:"column:clean_sales_lines" json:"clean_sales_lines"`

	DimCustomers        int64 `gorm:"column:dim_customers" json:"dim_customers"`
	DimProducts         int64 `gorm:"column:dim_products" json:"dim_products"`
	FactRows            int64 `gorm:"column:fact_rows" json:"fact_rows"`
	UnresolvedProducts  int64 `gorm:"column:unresolved_products" json:"unresolved_products"`
	UnresolvedCustomers int64 `gorm:"column:unresolved_customers" json:"unresolved_customers"`
}

func (PipelineRun) TableName() string {
	return "pipeline_run"
}
