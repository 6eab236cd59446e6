package usecase

import (
	"maps"
	"time"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
)

// PlanEquipmentUpdate computes the record that replaces current once patch is
// applied at now. It performs no I/O.
//
//  1. snapshot the stored record in form shape
//  2. when the patch switches the type, drop every technical key from the snapshot
//  3. overlay the patch (system keys ignored) and validate the result
//
// The returned record keeps ID and CreatedAt; UpdatedAt never precedes CreatedAt.
func PlanEquipmentUpdate(s *schema.Schema, current entities.Equipment, patch map[string]any, now time.Time) (entities.Equipment, error) {
	merged := schema.FormValues(current.EquipmentData)

	if typeChanged(current.Type, patch) {
		for _, f := range schema.TechnicalFieldNames() {
			delete(merged, f)
		}
	}

	overlay := maps.Clone(patch)
	for _, f := range schema.SystemFields {
		delete(overlay, f)
	}
	maps.Copy(merged, overlay)

	data, err := s.Parse(merged)
	if err != nil {
		return entities.Equipment{}, err
	}

	updatedAt := now.UTC()
	if updatedAt.Before(current.CreatedAt) {
		updatedAt = current.CreatedAt
	}

	return entities.Equipment{
		ID:            current.ID,
		EquipmentData: data,
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     updatedAt,
	}, nil
}

// typeChanged reports whether patch carries a type different from stored. An
// absent type key keeps the stored type; a present but malformed one counts
// as a change and fails validation later.
func typeChanged(stored entities.EquipmentType, patch map[string]any) bool {
	v, ok := patch[schema.FieldType]
	if !ok {
		return false
	}
	s, isString := v.(string)
	return !isString || entities.EquipmentType(s) != stored
}
