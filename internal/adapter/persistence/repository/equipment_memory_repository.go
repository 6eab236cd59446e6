package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

var ErrEquipmentAlreadyExists = errors.New("equipment already exists")

// EquipmentMemoryRepository keeps equipment in process memory. When built
// with a data file it rewrites the whole file (a JSON array of records) after
// each mutation and reverts the mutation if the write fails.
type EquipmentMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Equipment
	path  string
}

var _ interfaces.IEquipmentRepository = (*EquipmentMemoryRepository)(nil)

func NewEquipmentMemoryRepository() *EquipmentMemoryRepository {
	return &EquipmentMemoryRepository{items: make(map[string]entities.Equipment)}
}

// NewEquipmentFileRepository loads path when it exists. A missing file is an
// empty catalog.
func NewEquipmentFileRepository(path string) (*EquipmentMemoryRepository, error) {
	const op = "repository.NewEquipmentFileRepository"

	r := &EquipmentMemoryRepository{items: make(map[string]entities.Equipment), path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(raw) == 0 {
		return r, nil
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", op, path, err)
	}
	for _, rec := range records {
		e, err := equipmentFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		r.items[e.ID] = e
	}
	return r, nil
}

func (r *EquipmentMemoryRepository) FindMany(ctx context.Context, filter interfaces.EquipmentFilter, skip, take int) ([]entities.Equipment, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	matched := make([]entities.Equipment, 0, len(r.items))
	for _, e := range r.items {
		if matchesFilter(e, filter) {
			matched = append(matched, e)
		}
	}
	r.mu.RUnlock()

	sortEquipments(matched)
	return slices.Clone(paginate(matched, skip, take)), len(matched), nil
}

func (r *EquipmentMemoryRepository) FindByID(ctx context.Context, id string) (entities.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Equipment{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *EquipmentMemoryRepository) Insert(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Equipment{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[e.ID]; ok {
		return entities.Equipment{}, fmt.Errorf("%w: %s", ErrEquipmentAlreadyExists, e.ID)
	}
	r.items[e.ID] = e
	if err := r.persist(); err != nil {
		delete(r.items, e.ID)
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentMemoryRepository) Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Equipment{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[e.ID]
	if !ok {
		return entities.Equipment{}, nil
	}
	r.items[e.ID] = e
	if err := r.persist(); err != nil {
		r.items[e.ID] = prev
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[id]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	if err := r.persist(); err != nil {
		r.items[id] = prev
		return false, err
	}
	return true, nil
}

// persist must be called with r.mu held.
func (r *EquipmentMemoryRepository) persist() error {
	const op = "repository.EquipmentMemoryRepository.persist"

	if r.path == "" {
		return nil
	}

	all := make([]entities.Equipment, 0, len(r.items))
	for _, e := range r.items {
		all = append(all, e)
	}
	slices.SortFunc(all, func(a, b entities.Equipment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareEquipments(a, b)
	})

	records := make([]map[string]any, 0, len(all))
	for _, e := range all {
		records = append(records, equipmentToRecord(e))
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
