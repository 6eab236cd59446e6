package interfaces

import (
	"context"

	"catalogo_equipamentos/internal/domain/entities"
)

// IEquipmentChangeNotifier is told about every committed mutation so cached
// views and downstream consumers can refetch. Implementations must not block
// the caller for long and never fail the mutation.
type IEquipmentChangeNotifier interface {
	EquipmentChanged(ctx context.Context, change entities.EquipmentChange)
}
