package entities

// Specs is the variant-specific payload of an equipment record.
//
// Exactly one implementation exists per EquipmentType. The interface is sealed
// through the unexported marker so the union cannot grow outside this package.
type Specs interface {
	EquipmentType() EquipmentType
	Technical() TechnicalFields
	isSpecs()
}

type EsquentadorSpecs struct {
	Energia             *string
	Potencia            *float64
	RendimentoBase      *float64
	RendimentoCorrigido *float64
}

type TermoacumuladorSpecs struct {
	Volume     *float64
	Potencia   *float64
	Rendimento *float64
	TemQPR     bool
	ValorQPR   *float64
}

type ArCondicionadoSpecs struct {
	PotenciaArrefecimento *float64
	PotenciaAquecimento   *float64
	Seer                  *float64
	Scop                  *float64
	Cop                   *float64
}

type CaldeiraSpecs struct {
	Energia             *string
	Potencia            *float64
	RendimentoBase      *float64
	RendimentoCorrigido *float64
}

type BombaCalorSpecs struct {
	Energia             *string
	Volume              *float64
	Potencia            *float64
	RendimentoBase      *float64
	RendimentoCorrigido *float64
	Cop                 *float64
}

func (EsquentadorSpecs) EquipmentType() EquipmentType     { return EquipmentTypeEsquentador }
func (TermoacumuladorSpecs) EquipmentType() EquipmentType { return EquipmentTypeTermoacumulador }
func (ArCondicionadoSpecs) EquipmentType() EquipmentType  { return EquipmentTypeArCondicionado }
func (CaldeiraSpecs) EquipmentType() EquipmentType        { return EquipmentTypeCaldeira }
func (BombaCalorSpecs) EquipmentType() EquipmentType      { return EquipmentTypeBombaCalor }

func (EsquentadorSpecs) isSpecs()     {}
func (TermoacumuladorSpecs) isSpecs() {}
func (ArCondicionadoSpecs) isSpecs()  {}
func (CaldeiraSpecs) isSpecs()        {}
func (BombaCalorSpecs) isSpecs()      {}

func (s EsquentadorSpecs) Technical() TechnicalFields {
	return TechnicalFields{
		Energia:             s.Energia,
		Potencia:            s.Potencia,
		RendimentoBase:      s.RendimentoBase,
		RendimentoCorrigido: s.RendimentoCorrigido,
	}
}

func (s TermoacumuladorSpecs) Technical() TechnicalFields {
	temQPR := s.TemQPR
	return TechnicalFields{
		Volume:     s.Volume,
		Potencia:   s.Potencia,
		Rendimento: s.Rendimento,
		TemQPR:     &temQPR,
		ValorQPR:   s.ValorQPR,
	}
}

func (s ArCondicionadoSpecs) Technical() TechnicalFields {
	return TechnicalFields{
		PotenciaArrefecimento: s.PotenciaArrefecimento,
		PotenciaAquecimento:   s.PotenciaAquecimento,
		Seer:                  s.Seer,
		Scop:                  s.Scop,
		Cop:                   s.Cop,
	}
}

func (s CaldeiraSpecs) Technical() TechnicalFields {
	return TechnicalFields{
		Energia:             s.Energia,
		Potencia:            s.Potencia,
		RendimentoBase:      s.RendimentoBase,
		RendimentoCorrigido: s.RendimentoCorrigido,
	}
}

func (s BombaCalorSpecs) Technical() TechnicalFields {
	return TechnicalFields{
		Energia:             s.Energia,
		Volume:              s.Volume,
		Potencia:            s.Potencia,
		RendimentoBase:      s.RendimentoBase,
		RendimentoCorrigido: s.RendimentoCorrigido,
		Cop:                 s.Cop,
	}
}

// TechnicalFields is the flat, cross-variant projection of the technical attributes.
//
// Storage adapters persist one column/attribute per field; a field that does not
// belong to the record's type is always nil here.
type TechnicalFields struct {
	Energia               *string  `json:"energia"`
	Potencia              *float64 `json:"potencia"`
	RendimentoBase        *float64 `json:"rendimentoBase"`
	RendimentoCorrigido   *float64 `json:"rendimentoCorrigido"`
	Volume                *float64 `json:"volume"`
	Rendimento            *float64 `json:"rendimento"`
	TemQPR                *bool    `json:"temQPR"`
	ValorQPR              *float64 `json:"valorQPR"`
	PotenciaArrefecimento *float64 `json:"potenciaArrefecimento"`
	PotenciaAquecimento   *float64 `json:"potenciaAquecimento"`
	Seer                  *float64 `json:"seer"`
	Scop                  *float64 `json:"scop"`
	Cop                   *float64 `json:"cop"`
}

// SpecsFromTechnical rebuilds the variant payload for t from a flat projection.
// Fields outside t's subset are dropped. It returns nil for an unknown tag.
func SpecsFromTechnical(t EquipmentType, f TechnicalFields) Specs {
	switch t {
	case EquipmentTypeEsquentador:
		return EsquentadorSpecs{
			Energia:             f.Energia,
			Potencia:            f.Potencia,
			RendimentoBase:      f.RendimentoBase,
			RendimentoCorrigido: f.RendimentoCorrigido,
		}
	case EquipmentTypeTermoacumulador:
		return TermoacumuladorSpecs{
			Volume:     f.Volume,
			Potencia:   f.Potencia,
			Rendimento: f.Rendimento,
			TemQPR:     f.TemQPR != nil && *f.TemQPR,
			ValorQPR:   f.ValorQPR,
		}
	case EquipmentTypeArCondicionado:
		return ArCondicionadoSpecs{
			PotenciaArrefecimento: f.PotenciaArrefecimento,
			PotenciaAquecimento:   f.PotenciaAquecimento,
			Seer:                  f.Seer,
			Scop:                  f.Scop,
			Cop:                   f.Cop,
		}
	case EquipmentTypeCaldeira:
		return CaldeiraSpecs{
			Energia:             f.Energia,
			Potencia:            f.Potencia,
			RendimentoBase:      f.RendimentoBase,
			RendimentoCorrigido: f.RendimentoCorrigido,
		}
	case EquipmentTypeBombaCalor:
		return BombaCalorSpecs{
			Energia:             f.Energia,
			Volume:              f.Volume,
			Potencia:            f.Potencia,
			RendimentoBase:      f.RendimentoBase,
			RendimentoCorrigido: f.RendimentoCorrigido,
			Cop:                 f.Cop,
		}
	}
	return nil
}
