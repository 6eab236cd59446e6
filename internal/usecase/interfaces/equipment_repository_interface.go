package interfaces

import (
	"context"

	"catalogo_equipamentos/internal/domain/entities"
)

// EquipmentFilter narrows FindMany. An empty Type means every type; Text is
// matched case-insensitively as a substring of marca or modelo.
type EquipmentFilter struct {
	Type entities.EquipmentType
	Text string
}

// IEquipmentRepository abstracts the record store for Equipment.
//
// Contract shared by every adapter (DynamoDB, SQL, memory):
//   - FindMany sorts by updatedAt desc (id asc on ties) and returns the total match count
//   - FindByID returns the zero value when the id is absent
//   - Update replaces the whole record and returns the zero value when the id is absent
//   - Delete reports whether a record was removed

type IEquipmentRepository interface {
	FindMany(ctx context.Context, filter EquipmentFilter, skip, take int) ([]entities.Equipment, int, error)
	FindByID(ctx context.Context, id string) (entities.Equipment, error)
	Insert(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
