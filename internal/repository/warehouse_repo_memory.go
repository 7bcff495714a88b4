package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stock-ahora/api-dwh/internal/models"
)

// Dobles en memoria para tests del pipeline, sin Postgres de por medio.

type memoryExtractRepo struct {
	snapshot Snapshot
}

func NewMemoryExtractRepo(snapshot Snapshot) ExtractRepo {
	return &memoryExtractRepo{snapshot: snapshot}
}

func (m *memoryExtractRepo) LoadSnapshot() (*Snapshot, error) {
	if missing := m.snapshot.MissingCollections(); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingCollection, "%v", missing)
	}
	snap := m.snapshot
	return &snap, nil
}

type MemoryWarehouseRepo struct {
	Clean CleanSet
	Dims  DimensionalSet
	Runs  []models.PipelineRun
}

func NewMemoryWarehouseRepo() *MemoryWarehouseRepo {
	return &MemoryWarehouseRepo{}
}

func (m *MemoryWarehouseRepo) Replace(clean CleanSet, dims DimensionalSet) error {
	m.Clean = clean
	m.Dims = dims
	return nil
}

func (m *MemoryWarehouseRepo) CreateRun(run *models.PipelineRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	m.Runs = append(m.Runs, *run)
	return nil
}

func (m *MemoryWarehouseRepo) UpdateRun(run *models.PipelineRun) error {
	for i := range m.Runs {
		if m.Runs[i].ID == run.ID {
			m.Runs[i] = *run
			return nil
		}
	}
	return errors.New("run no encontrada")
}

func (m *MemoryWarehouseRepo) GetRun(id uuid.UUID) (models.PipelineRun, error) {
	for _, run := range m.Runs {
		if run.ID == id {
			return run, nil
		}
	}
	return models.PipelineRun{}, errors.New("run no encontrada")
}

func (m *MemoryWarehouseRepo) ListRuns(page, size int) ([]models.PipelineRun, int64, error) {
	return m.Runs, int64(len(m.Runs)), nil
}
