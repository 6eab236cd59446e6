package response

import (
	"time"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
	"catalogo_equipamentos/internal/usecase"
)

// EquipmentResponse is the flat form shape of a record plus its system fields.
// Technical keys of inactive variants are absent; unset active ones are null.
type EquipmentResponse map[string]any

type EquipmentCreatedResponse struct {
	ID string `json:"id"`
}

type EquipmentPageResponse struct {
	Items       []EquipmentResponse `json:"items"`
	TotalItems  int                 `json:"totalItems"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
	Limit       int                 `json:"limit"`
}

func FromEquipment(e entities.Equipment) EquipmentResponse {
	res := EquipmentResponse(schema.FormValues(e.EquipmentData))
	res[schema.FieldID] = e.ID
	res[schema.FieldCreatedAt] = e.CreatedAt.UTC().Format(time.RFC3339Nano)
	res[schema.FieldUpdatedAt] = e.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return res
}

func FromEquipmentPage(p usecase.EquipmentPage) EquipmentPageResponse {
	items := make([]EquipmentResponse, 0, len(p.Items))
	for _, e := range p.Items {
		items = append(items, FromEquipment(e))
	}
	return EquipmentPageResponse{
		Items:       items,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Limit:       p.Limit,
	}
}
