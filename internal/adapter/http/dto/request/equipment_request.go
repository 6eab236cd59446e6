package request

import (
	"errors"

	"catalogo_equipamentos/internal/usecase"
)

var ErrEmptyEquipmentPayload = errors.New("equipment payload must be a JSON object")

// ListEquipmentsRequest binds the catalog query string.
type ListEquipmentsRequest struct {
	Q     string `form:"q"`
	Type  string `form:"type"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r ListEquipmentsRequest) ToQuery() usecase.ListEquipmentsQuery {
	return usecase.ListEquipmentsQuery{
		Text:  r.Q,
		Type:  r.Type,
		Page:  r.Page,
		Limit: r.Limit,
	}
}

// EquipmentPayload is the flat form object accepted by create and update.
// Keys are validated by the schema, not by binding tags.
type EquipmentPayload map[string]any

func (p EquipmentPayload) Validate() error {
	if p == nil {
		return ErrEmptyEquipmentPayload
	}
	return nil
}
