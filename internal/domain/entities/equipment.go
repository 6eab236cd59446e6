package entities

import "time"

// EquipmentData is the canonical, validated form of an equipment record without
// system fields. Absent optional values are nil, never empty strings.
//
// Media (Photo/PDF) are data-URI strings stored as opaque blobs.
type EquipmentData struct {
	Type        EquipmentType
	Marca       string
	Modelo      string
	Notas       *string
	DataFabrico *string // YYYY-MM-DD
	Photo       *string
	PhotoName   *string
	PDF         *string
	PDFName     *string
	Specs       Specs
}

// Technical returns the flat projection of the active variant. Fields of other
// variants are nil.
func (d EquipmentData) Technical() TechnicalFields {
	if d.Specs == nil {
		return TechnicalFields{}
	}
	return d.Specs.Technical()
}

// Equipment is the persisted equipment entity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - technical attributes flattened, inactive ones absent
//
// CreatedAt/UpdatedAt are owned by the lifecycle use case.
type Equipment struct {
	ID string
	EquipmentData
	CreatedAt time.Time
	UpdatedAt time.Time
}
