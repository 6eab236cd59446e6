package schema

import "catalogo_equipamentos/internal/domain/entities"

// FormValues projects canonical data onto the flat form shape: every base field
// plus the technical fields of the active variant, absences as nil.
// Parse(FormValues(d)) yields d again.
func FormValues(d entities.EquipmentData) map[string]any {
	m := map[string]any{
		FieldType:        string(d.Type),
		FieldMarca:       d.Marca,
		FieldModelo:      d.Modelo,
		FieldNotas:       deref(d.Notas),
		FieldDataFabrico: deref(d.DataFabrico),
		FieldPhoto:       deref(d.Photo),
		FieldPhotoName:   deref(d.PhotoName),
		FieldPDF:         deref(d.PDF),
		FieldPDFName:     deref(d.PDFName),
	}

	switch s := d.Specs.(type) {
	case entities.EsquentadorSpecs:
		m[FieldEnergia] = deref(s.Energia)
		m[FieldPotencia] = deref(s.Potencia)
		m[FieldRendimentoBase] = deref(s.RendimentoBase)
		m[FieldRendimentoCorrigido] = deref(s.RendimentoCorrigido)
	case entities.TermoacumuladorSpecs:
		m[FieldVolume] = deref(s.Volume)
		m[FieldPotencia] = deref(s.Potencia)
		m[FieldRendimento] = deref(s.Rendimento)
		m[FieldTemQPR] = s.TemQPR
		m[FieldValorQPR] = deref(s.ValorQPR)
	case entities.ArCondicionadoSpecs:
		m[FieldPotenciaArrefecimento] = deref(s.PotenciaArrefecimento)
		m[FieldPotenciaAquecimento] = deref(s.PotenciaAquecimento)
		m[FieldSeer] = deref(s.Seer)
		m[FieldScop] = deref(s.Scop)
		m[FieldCop] = deref(s.Cop)
	case entities.CaldeiraSpecs:
		m[FieldEnergia] = deref(s.Energia)
		m[FieldPotencia] = deref(s.Potencia)
		m[FieldRendimentoBase] = deref(s.RendimentoBase)
		m[FieldRendimentoCorrigido] = deref(s.RendimentoCorrigido)
	case entities.BombaCalorSpecs:
		m[FieldEnergia] = deref(s.Energia)
		m[FieldVolume] = deref(s.Volume)
		m[FieldPotencia] = deref(s.Potencia)
		m[FieldRendimentoBase] = deref(s.RendimentoBase)
		m[FieldRendimentoCorrigido] = deref(s.RendimentoCorrigido)
		m[FieldCop] = deref(s.Cop)
	}
	return m
}

// deref keeps nil pointers as untyped nil so JSON renders null.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
