package schema

import "catalogo_equipamentos/internal/domain/entities"

// Field names of the flat form shape.
const (
	FieldID          = "id"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
	FieldType        = "type"
	FieldMarca       = "marca"
	FieldModelo      = "modelo"
	FieldNotas       = "notas"
	FieldDataFabrico = "dataFabrico"
	FieldPhoto       = "photo"
	FieldPhotoName   = "photoName"
	FieldPDF         = "pdf"
	FieldPDFName     = "pdfName"

	FieldEnergia               = "energia"
	FieldPotencia              = "potencia"
	FieldRendimentoBase        = "rendimentoBase"
	FieldRendimentoCorrigido   = "rendimentoCorrigido"
	FieldVolume                = "volume"
	FieldRendimento            = "rendimento"
	FieldTemQPR                = "temQPR"
	FieldValorQPR              = "valorQPR"
	FieldPotenciaArrefecimento = "potenciaArrefecimento"
	FieldPotenciaAquecimento   = "potenciaAquecimento"
	FieldSeer                  = "seer"
	FieldScop                  = "scop"
	FieldCop                   = "cop"
)

// SystemFields are owned by the lifecycle service and never read from input.
var SystemFields = []string{FieldID, FieldCreatedAt, FieldUpdatedAt}

// TechnicalFieldNames is the full cross-variant technical field list.
func TechnicalFieldNames() []string {
	return []string{
		FieldEnergia, FieldPotencia, FieldRendimentoBase, FieldRendimentoCorrigido,
		FieldVolume, FieldRendimento, FieldTemQPR, FieldValorQPR,
		FieldPotenciaArrefecimento, FieldPotenciaAquecimento, FieldSeer, FieldScop, FieldCop,
	}
}

// FieldsFor returns the technical fields of t in form order.
func FieldsFor(t entities.EquipmentType) []string {
	switch t {
	case entities.EquipmentTypeEsquentador, entities.EquipmentTypeCaldeira:
		return []string{FieldEnergia, FieldPotencia, FieldRendimentoBase, FieldRendimentoCorrigido}
	case entities.EquipmentTypeTermoacumulador:
		return []string{FieldVolume, FieldPotencia, FieldRendimento, FieldTemQPR, FieldValorQPR}
	case entities.EquipmentTypeArCondicionado:
		return []string{FieldPotenciaArrefecimento, FieldPotenciaAquecimento, FieldSeer, FieldScop, FieldCop}
	case entities.EquipmentTypeBombaCalor:
		return []string{FieldEnergia, FieldVolume, FieldPotencia, FieldRendimentoBase, FieldRendimentoCorrigido, FieldCop}
	}
	return nil
}

// EnergiasFor returns the energy sources accepted by t, or nil when the variant
// has no energia field.
func EnergiasFor(t entities.EquipmentType) []string {
	switch t {
	case entities.EquipmentTypeEsquentador:
		return entities.EsquentadorEnergias
	case entities.EquipmentTypeCaldeira:
		return entities.CaldeiraEnergias
	case entities.EquipmentTypeBombaCalor:
		return entities.BombaCalorEnergias
	case entities.EquipmentTypeTermoacumulador, entities.EquipmentTypeArCondicionado:
		return nil
	}
	return nil
}

var labels = map[string]string{
	FieldType:                  "Tipo de Equipamento",
	FieldMarca:                 "Marca",
	FieldModelo:                "Modelo",
	FieldNotas:                 "Notas",
	FieldDataFabrico:           "Data de fabrico",
	FieldEnergia:               "Energia",
	FieldPotencia:              "Potência",
	FieldRendimentoBase:        "Rendimento Base",
	FieldRendimentoCorrigido:   "Rendimento Corrigido",
	FieldVolume:                "Volume",
	FieldRendimento:            "Rendimento",
	FieldTemQPR:                "QPR",
	FieldValorQPR:              "Valor QPR",
	FieldPotenciaArrefecimento: "Potência Arrefecimento",
	FieldPotenciaAquecimento:   "Potência Aquecimento",
	FieldSeer:                  "SEER",
	FieldScop:                  "SCOP",
	FieldCop:                   "COP",
}

var units = map[string]string{
	FieldPotencia:              "kW",
	FieldPotenciaArrefecimento: "kW",
	FieldPotenciaAquecimento:   "kW",
	FieldVolume:                "litros",
	FieldRendimento:            "%",
	FieldRendimentoBase:        "%",
	FieldRendimentoCorrigido:   "%",
}

// Label returns the Portuguese label of a form field.
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}

type FieldKind string

const (
	FieldKindNumber  FieldKind = "number"
	FieldKindEnum    FieldKind = "enum"
	FieldKindBoolean FieldKind = "boolean"
)

// FieldDescriptor describes one technical field for form rendering.
type FieldDescriptor struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Unit    string    `json:"unit,omitempty"`
	Options []string  `json:"options,omitempty"`
}

type TypeDescriptor struct {
	Type   entities.EquipmentType `json:"type"`
	Fields []FieldDescriptor      `json:"fields"`
}

// Describe returns the registry for every equipment type in display order.
func Describe() []TypeDescriptor {
	out := make([]TypeDescriptor, 0, len(entities.EquipmentTypes()))
	for _, t := range entities.EquipmentTypes() {
		td := TypeDescriptor{Type: t}
		for _, f := range FieldsFor(t) {
			fd := FieldDescriptor{Name: f, Label: Label(f), Kind: FieldKindNumber, Unit: units[f]}
			switch f {
			case FieldEnergia:
				fd.Kind = FieldKindEnum
				fd.Options = EnergiasFor(t)
			case FieldTemQPR:
				fd.Kind = FieldKindBoolean
			}
			td.Fields = append(td.Fields, fd)
		}
		out = append(out, td)
	}
	return out
}
