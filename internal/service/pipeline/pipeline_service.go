package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/stock-ahora/api-dwh/internal/models"
	"github.com/stock-ahora/api-dwh/internal/repository"
	"github.com/stock-ahora/api-dwh/internal/service/cleanse"
	"github.com/stock-ahora/api-dwh/internal/service/dimension"
	"github.com/stock-ahora/api-dwh/internal/service/eventservice"
	"golang.org/x/sync/errgroup"
)

// SnapshotExporter sube el modelo dimensional a S3 para el servicio de
// reportes. Puede ser nil cuando el export está apagado.
type SnapshotExporter interface {
	Export(ctx context.Context, runID string, dims repository.DimensionalSet) error
}

type PipelineService interface {
	// Run ejecuta una corrida completa: staging -> capa limpia -> modelo
	// dimensional. Recalcula todo desde cero; correrla dos veces con el
	// mismo snapshot deja exactamente el mismo resultado.
	Run(ctx context.Context, trigger string) (models.PipelineRun, error)
}

type pipelineService struct {
	extracts  repository.ExtractRepo
	warehouse repository.WarehouseRepo
	events    eventservice.EventPublisher
	exporter  SnapshotExporter
	now       func() time.Time
}

func NewPipelineService(
	extracts repository.ExtractRepo,
	warehouse repository.WarehouseRepo,
	events eventservice.EventPublisher,
	exporter SnapshotExporter,
) PipelineService {
	return &pipelineService{
		extracts:  extracts,
		warehouse: warehouse,
		events:    events,
		exporter:  exporter,
		now:       time.Now,
	}
}

func (p *pipelineService) Run(ctx context.Context, trigger string) (models.PipelineRun, error) {
	run := models.PipelineRun{
		Status:    models.RunStatusRunning,
		Trigger:   trigger,
		StartedAt: p.now().UTC(),
	}
	if err := p.warehouse.CreateRun(&run); err != nil {
		return run, err
	}

	snap, err := p.extracts.LoadSnapshot()
	if err != nil {
		return p.failRun(run, err)
	}

	clean, stats := p.runCleansing(ctx, snap)

	dims := repository.DimensionalSet{}
	dims.Customers = dimension.BuildCustomerDim(clean.Customers, clean.Demographics, clean.Locations)
	dims.Products = dimension.BuildProductDim(clean.Products, clean.Categories)
	facts, factStats := dimension.BuildSalesFacts(clean.SalesLines, dims.Products, dims.Customers)
	dims.Facts = facts

	if err := p.warehouse.Replace(clean, dims); err != nil {
		return p.failRun(run, err)
	}

	if p.exporter != nil {
		if err := p.exporter.Export(ctx, run.ID.String(), dims); err != nil {
			// el snapshot en S3 es un subproducto, no voltea la corrida
			log.Printf("export snapshot error: %v", err)
		}
	}

	finished := p.now().UTC()
	run.Status = models.RunStatusFinished
	run.FinishedAt = &finished
	run.RawCustomers = stats.customers.In
	run.CleanCustomers = stats.customers.Out
	run.DroppedCustomers = stats.customers.Dropped
	run.RawProducts = stats.products.In
	run.CleanProducts = stats.products.Out
	run.DroppedProducts = stats.products.Dropped
	run.CleanSalesLines = stats.sales.Out
	run.DimCustomers = int64(len(dims.Customers))
	run.DimProducts = int64(len(dims.Products))
	run.FactRows = factStats.Rows
	run.UnresolvedProducts = factStats.UnresolvedProducts
	run.UnresolvedCustomers = factStats.UnresolvedCustomers

	if err := p.warehouse.UpdateRun(&run); err != nil {
		return run, err
	}

	if err := p.events.PublishRunCompleted(eventservice.RunCompletedEvent{
		RunID:               run.ID,
		Status:              string(run.Status),
		DimCustomers:        run.DimCustomers,
		DimProducts:         run.DimProducts,
		FactRows:            run.FactRows,
		DroppedCustomers:    run.DroppedCustomers,
		DroppedProducts:     run.DroppedProducts,
		UnresolvedProducts:  run.UnresolvedProducts,
		UnresolvedCustomers: run.UnresolvedCustomers,
	}); err != nil {
		log.Printf("publish run completed error: %v", err)
	}

	return run, nil
}

type cleanseStats struct {
	customers cleanse.Stats
	products  cleanse.Stats
	sales     cleanse.Stats
}

// runCleansing corre las seis transformaciones en paralelo (fan-out) y
// espera todas antes de devolver (fan-in). Cada goroutine escribe solo su
// campo del set, no hay estado compartido.
func (p *pipelineService) runCleansing(ctx context.Context, snap *repository.Snapshot) (repository.CleanSet, cleanseStats) {
	var (
		clean repository.CleanSet
		stats cleanseStats
	)
	today := p.now().UTC()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		clean.Customers, stats.customers = cleanse.Customers(snap.Customers)
		return nil
	})
	g.Go(func() error {
		clean.Products, stats.products = cleanse.Products(snap.Products)
		return nil
	})
	g.Go(func() error {
		clean.SalesLines, stats.sales = cleanse.SalesLines(snap.SalesLines)
		return nil
	})
	g.Go(func() error {
		clean.Locations, _ = cleanse.Locations(snap.Locations)
		return nil
	})
	g.Go(func() error {
		clean.Demographics, _ = cleanse.Demographics(snap.Demographics, today)
		return nil
	})
	g.Go(func() error {
		clean.Categories, _ = cleanse.Categories(snap.Categories)
		return nil
	})
	// las transformaciones no devuelven error: toda fila mala se sanea
	_ = g.Wait()

	return clean, stats
}

func (p *pipelineService) failRun(run models.PipelineRun, cause error) (models.PipelineRun, error) {
	finished := p.now().UTC()
	run.Status = models.RunStatusFailed
	run.FinishedAt = &finished
	run.Error = cause.Error()
	if err := p.warehouse.UpdateRun(&run); err != nil {
		log.Printf("update failed run error: %v", err)
	}
	return run, cause
}
