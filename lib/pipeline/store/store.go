package pipelinestore

import (
	"hr-pipeline/models"
	"slices"
	"sync"
)

// Provider - хранилище каталога кандидатов. Все методы отдают копии записей,
// изменение записи выполняется только через Update
type Provider interface {
	List() []models.Candidate
	ListByStatus(status models.StageID) []models.Candidate
	GetByID(id int) (rec models.Candidate, found bool)
	// Update копирует запись, передаёт копию в updFn и, если updFn вернул true,
	// заменяет запись целиком
	Update(id int, updFn func(rec *models.Candidate) bool) (rec models.Candidate, applied bool)
	Stages() []models.PipelineStage
	Staff() []models.StaffRecord
}

func NewInstance(candidates []models.Candidate, stages []models.PipelineStage, staff []models.StaffRecord) Provider {
	list := make([]models.Candidate, 0, len(candidates))
	for _, rec := range candidates {
		list = append(list, rec.Clone())
	}
	return &impl{
		candidates: list,
		stages:     slices.Clone(stages),
		staff:      slices.Clone(staff),
	}
}

type impl struct {
	mu         sync.RWMutex
	candidates []models.Candidate
	stages     []models.PipelineStage
	staff      []models.StaffRecord
}

func (i *impl) List() []models.Candidate {
	i.mu.RLock()
	defer i.mu.RUnlock()
	list := make([]models.Candidate, 0, len(i.candidates))
	for _, rec := range i.candidates {
		list = append(list, rec.Clone())
	}
	return list
}

func (i *impl) ListByStatus(status models.StageID) []models.Candidate {
	i.mu.RLock()
	defer i.mu.RUnlock()
	list := []models.Candidate{}
	for _, rec := range i.candidates {
		if rec.Status == status {
			list = append(list, rec.Clone())
		}
	}
	return list
}

func (i *impl) GetByID(id int) (models.Candidate, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	idx := i.indexOf(id)
	if idx == -1 {
		return models.Candidate{}, false
	}
	return i.candidates[idx].Clone(), true
}

func (i *impl) Update(id int, updFn func(rec *models.Candidate) bool) (models.Candidate, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	idx := i.indexOf(id)
	if idx == -1 {
		return models.Candidate{}, false
	}
	updated := i.candidates[idx].Clone()
	if !updFn(&updated) {
		return i.candidates[idx].Clone(), false
	}
	i.candidates[idx] = updated
	return updated.Clone(), true
}

func (i *impl) Stages() []models.PipelineStage {
	return slices.Clone(i.stages)
}

func (i *impl) Staff() []models.StaffRecord {
	return slices.Clone(i.staff)
}

func (i *impl) indexOf(id int) int {
	return slices.IndexFunc(i.candidates, func(rec models.Candidate) bool {
		return rec.ID == id
	})
}
