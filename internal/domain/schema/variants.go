package schema

import (
	"math"

	"catalogo_equipamentos/internal/domain/entities"
)

const (
	unbounded  = math.MaxFloat64
	percentage = 100
)

func parseSpecs(t entities.EquipmentType, r *fieldReader) entities.Specs {
	switch t {
	case entities.EquipmentTypeEsquentador:
		return entities.EsquentadorSpecs{
			Energia:             r.energia(entities.EsquentadorEnergias),
			Potencia:            r.requiredNumber(FieldPotencia, unbounded),
			RendimentoBase:      r.requiredNumber(FieldRendimentoBase, percentage),
			RendimentoCorrigido: r.requiredNumber(FieldRendimentoCorrigido, percentage),
		}
	case entities.EquipmentTypeTermoacumulador:
		s := entities.TermoacumuladorSpecs{
			Volume:     r.requiredNumber(FieldVolume, unbounded),
			Potencia:   r.requiredNumber(FieldPotencia, unbounded),
			Rendimento: r.requiredNumber(FieldRendimento, percentage),
			TemQPR:     r.boolean(FieldTemQPR),
			ValorQPR:   r.number(FieldValorQPR),
		}
		if s.TemQPR && s.ValorQPR == nil {
			if !r.failed(FieldValorQPR) {
				r.fail(FieldValorQPR, "Valor QPR é obrigatório quando QPR está marcado")
			}
		}
		return s
	case entities.EquipmentTypeArCondicionado:
		return entities.ArCondicionadoSpecs{
			PotenciaArrefecimento: r.requiredNumber(FieldPotenciaArrefecimento, unbounded),
			PotenciaAquecimento:   r.requiredNumber(FieldPotenciaAquecimento, unbounded),
			Seer:                  r.number(FieldSeer),
			Scop:                  r.number(FieldScop),
			Cop:                   r.number(FieldCop),
		}
	case entities.EquipmentTypeCaldeira:
		return entities.CaldeiraSpecs{
			Energia:             r.energia(entities.CaldeiraEnergias),
			Potencia:            r.requiredNumber(FieldPotencia, unbounded),
			RendimentoBase:      r.requiredNumber(FieldRendimentoBase, percentage),
			RendimentoCorrigido: r.requiredNumber(FieldRendimentoCorrigido, percentage),
		}
	case entities.EquipmentTypeBombaCalor:
		return entities.BombaCalorSpecs{
			Energia:             r.energia(entities.BombaCalorEnergias),
			Volume:              r.number(FieldVolume),
			Potencia:            r.requiredNumber(FieldPotencia, unbounded),
			RendimentoBase:      r.requiredNumber(FieldRendimentoBase, unbounded),
			RendimentoCorrigido: r.requiredNumber(FieldRendimentoCorrigido, unbounded),
			Cop:                 r.requiredNumber(FieldCop, unbounded),
		}
	}
	return nil
}
