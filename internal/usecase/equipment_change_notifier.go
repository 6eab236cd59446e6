package usecase

import (
	"context"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

// ChangeNotifiers fans a change out to every notifier in order.
type ChangeNotifiers []interfaces.IEquipmentChangeNotifier

var _ interfaces.IEquipmentChangeNotifier = ChangeNotifiers(nil)

func (n ChangeNotifiers) EquipmentChanged(ctx context.Context, change entities.EquipmentChange) {
	for _, notifier := range n {
		if notifier != nil {
			notifier.EquipmentChanged(ctx, change)
		}
	}
}
