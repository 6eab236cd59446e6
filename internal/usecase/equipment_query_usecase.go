package usecase

import (
	"context"
	"fmt"
	"strings"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

const (
	DefaultPageSize = 9
	MaxPageSize     = 100
)

// ListEquipmentsQuery selects a page of the catalog. Zero Page and Limit fall
// back to the first page and the configured page size; Type "Todos" or empty
// disables the type filter.
type ListEquipmentsQuery struct {
	Text  string
	Type  string
	Page  int
	Limit int
}

type EquipmentPage struct {
	Items       []entities.Equipment
	TotalItems  int
	TotalPages  int
	CurrentPage int
	Limit       int
}

type IEquipmentQueryUseCase interface {
	List(ctx context.Context, q ListEquipmentsQuery) (EquipmentPage, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	Types() []schema.TypeDescriptor
}

type EquipmentQueryUseCase struct {
	repo     interfaces.IEquipmentRepository
	pageSize int
}

var _ IEquipmentQueryUseCase = (*EquipmentQueryUseCase)(nil)

func NewEquipmentQueryUseCase(repo interfaces.IEquipmentRepository, pageSize int) *EquipmentQueryUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &EquipmentQueryUseCase{repo: repo, pageSize: min(pageSize, MaxPageSize)}
}

// Normalize resolves defaults and bounds so equal queries compare equal.
func (u *EquipmentQueryUseCase) Normalize(q ListEquipmentsQuery) ListEquipmentsQuery {
	q.Text = strings.TrimSpace(q.Text)
	q.Type = strings.TrimSpace(q.Type)
	if q.Type == string(entities.EquipmentTypeAll) {
		q.Type = ""
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = u.pageSize
	}
	q.Limit = min(q.Limit, MaxPageSize)
	return q
}

func (u *EquipmentQueryUseCase) List(ctx context.Context, q ListEquipmentsQuery) (EquipmentPage, error) {
	q = u.Normalize(q)
	filter := interfaces.EquipmentFilter{Type: entities.EquipmentType(q.Type), Text: q.Text}

	items, total, err := u.repo.FindMany(ctx, filter, (q.Page-1)*q.Limit, q.Limit)
	if err != nil {
		return EquipmentPage{}, fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	current := max(1, min(q.Page, totalPages))
	if current != q.Page && totalPages > 0 {
		items, total, err = u.repo.FindMany(ctx, filter, (current-1)*q.Limit, q.Limit)
		if err != nil {
			return EquipmentPage{}, fmt.Errorf("%w: %w", ErrEquipmentStore, err)
		}
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	if items == nil {
		items = []entities.Equipment{}
	}

	return EquipmentPage{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: current,
		Limit:       q.Limit,
	}, nil
}

func (u *EquipmentQueryUseCase) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}

	e, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("%w: %w", ErrEquipmentStore, err)
	}
	if e.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (u *EquipmentQueryUseCase) Types() []schema.TypeDescriptor {
	return schema.Describe()
}
