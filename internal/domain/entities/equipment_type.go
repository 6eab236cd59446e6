package entities

// EquipmentType is the discriminant of the equipment union.
//
// Domain notes:
//   - The set is closed: every switch over EquipmentType must handle the five tags.
//   - The tag can change on an existing record; the lifecycle service then clears
//     every technical field before applying the new variant.

type EquipmentType string

const (
	EquipmentTypeEsquentador     EquipmentType = "Esquentador"
	EquipmentTypeTermoacumulador EquipmentType = "Termoacumulador"
	EquipmentTypeArCondicionado  EquipmentType = "Ar Condicionado"
	EquipmentTypeCaldeira        EquipmentType = "Caldeira"
	EquipmentTypeBombaCalor      EquipmentType = "Bomba de Calor"
)

// EquipmentTypeAll is the list filter value meaning "no type filter".
const EquipmentTypeAll = "Todos"

// EquipmentTypes returns the five tags in display order.
func EquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentTypeEsquentador,
		EquipmentTypeTermoacumulador,
		EquipmentTypeArCondicionado,
		EquipmentTypeCaldeira,
		EquipmentTypeBombaCalor,
	}
}

func (t EquipmentType) Valid() bool {
	switch t {
	case EquipmentTypeEsquentador,
		EquipmentTypeTermoacumulador,
		EquipmentTypeArCondicionado,
		EquipmentTypeCaldeira,
		EquipmentTypeBombaCalor:
		return true
	}
	return false
}

// Energy sources accepted by each variant. The lists differ in membership and casing
// ("Gás Natural" vs "Gás natural") and must stay separate.
var (
	EsquentadorEnergias = []string{
		"Electricidade",
		"Electricidade vazio",
		"Gás Natural",
		"Gás propano (garrafa)",
		"Gás propano (rede)",
		"Pellets (granulados)",
		"Biomassa sólida",
		"Gás butano",
	}

	CaldeiraEnergias = []string{
		"Electricidade",
		"Electricidade vazio",
		"Gás natural",
		"Gás propano (garrafa)",
		"Gás propano (rede)",
		"Gás butano",
		"Gasóleo",
		"Lenha",
		"Carvão vegetal",
		"Pellets (granulados)",
		"Biomassa sólida",
		"Biomassa líquida",
		"Biomassa gasosa",
	}

	BombaCalorEnergias = []string{
		"Electricidade",
		"Electricidade vazio",
		"padrão",
	}
)
