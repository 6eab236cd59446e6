package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
	"catalogo_equipamentos/internal/infrastructure/logger"
	"catalogo_equipamentos/internal/usecase"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

// EquipmentViewCache serves list pages and detail views from an expiring LRU
// in front of a query use case. Any committed change drops every cached page
// and the changed record's detail view.
type EquipmentViewCache struct {
	inner   usecase.IEquipmentQueryUseCase
	details *expirable.LRU[string, entities.Equipment]
	pages   *expirable.LRU[usecase.ListEquipmentsQuery, usecase.EquipmentPage]

	// generation is bumped on every change; fills started under an older
	// generation are discarded. mu makes the check-and-add of a fill atomic
	// with the bump-and-purge of a change.
	mu         sync.Mutex
	generation uint64
}

var (
	_ usecase.IEquipmentQueryUseCase      = (*EquipmentViewCache)(nil)
	_ interfaces.IEquipmentChangeNotifier = (*EquipmentViewCache)(nil)
)

func NewEquipmentViewCache(inner usecase.IEquipmentQueryUseCase, size int, ttl time.Duration) *EquipmentViewCache {
	return &EquipmentViewCache{
		inner:   inner,
		details: expirable.NewLRU[string, entities.Equipment](size, nil, ttl),
		pages:   expirable.NewLRU[usecase.ListEquipmentsQuery, usecase.EquipmentPage](size, nil, ttl),
	}
}

func (c *EquipmentViewCache) List(ctx context.Context, q usecase.ListEquipmentsQuery) (usecase.EquipmentPage, error) {
	if page, ok := c.pages.Get(q); ok {
		return page, nil
	}

	gen := c.currentGeneration()
	page, err := c.inner.List(ctx, q)
	if err != nil {
		return usecase.EquipmentPage{}, err
	}
	c.fill(gen, func() { c.pages.Add(q, page) })
	return page, nil
}

func (c *EquipmentViewCache) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	if e, ok := c.details.Get(id); ok {
		return e, nil
	}

	gen := c.currentGeneration()
	e, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	c.fill(gen, func() { c.details.Add(e.ID, e) })
	return e, nil
}

func (c *EquipmentViewCache) Types() []schema.TypeDescriptor {
	return c.inner.Types()
}

func (c *EquipmentViewCache) EquipmentChanged(ctx context.Context, change entities.EquipmentChange) {
	c.mu.Lock()
	c.generation++
	c.details.Remove(change.ID)
	c.pages.Purge()
	c.mu.Unlock()

	logger.Debug(ctx, "[equipment][cache] invalidated",
		logger.String("equipment_id", change.ID),
		logger.String("kind", string(change.Kind)),
	)
}

func (c *EquipmentViewCache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// fill runs add only if no change landed since gen was read.
func (c *EquipmentViewCache) fill(gen uint64, add func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.generation {
		add()
	}
}
