package schema

import (
	"fmt"
	"slices"

	"catalogo_equipamentos/internal/domain/entities"
)

// Options tunes the rule set applied by Schema.
//
// Strict reinstates the energy-efficiency domain rules (required numerics,
// min 0, percentages up to 100, required energia). The default keeps every
// technical field optional.
type Options struct {
	Strict bool
}

// Schema validates raw form objects against the equipment union.
type Schema struct {
	strict bool
}

func New(opts Options) *Schema {
	return &Schema{strict: opts.Strict}
}

func (s *Schema) Strict() bool { return s.strict }

// Parse reads the type discriminant, dispatches to the variant rules and returns
// the canonical record. Every failing field is reported in a single
// *ValidationError; an unknown discriminant yields *UnknownVariantError.
// Keys that do not belong to the selected variant are ignored.
func (s *Schema) Parse(raw map[string]any) (entities.EquipmentData, error) {
	t, err := Discriminant(raw)
	if err != nil {
		return entities.EquipmentData{}, err
	}

	r := &fieldReader{raw: raw, strict: s.strict}
	data := entities.EquipmentData{
		Type:        t,
		Marca:       r.requiredString(FieldMarca, "Marca é obrigatória"),
		Modelo:      r.requiredString(FieldModelo, "Modelo é obrigatório"),
		Notas:       r.optionalString(FieldNotas),
		DataFabrico: r.date(FieldDataFabrico),
		Photo:       r.optionalString(FieldPhoto),
		PhotoName:   r.optionalString(FieldPhotoName),
		PDF:         r.optionalString(FieldPDF),
		PDFName:     r.optionalString(FieldPDFName),
	}
	data.Specs = parseSpecs(t, r)

	if len(r.errs) > 0 {
		return entities.EquipmentData{}, &ValidationError{Fields: r.errs}
	}
	return data, nil
}

// Discriminant returns the equipment type declared by raw.
func Discriminant(raw map[string]any) (entities.EquipmentType, error) {
	v, ok := raw[FieldType]
	if !ok || v == nil {
		return "", &UnknownVariantError{}
	}
	s, ok := v.(string)
	if !ok {
		return "", &UnknownVariantError{Value: fmt.Sprint(v)}
	}
	t := entities.EquipmentType(s)
	if !t.Valid() {
		return "", &UnknownVariantError{Value: s}
	}
	return t, nil
}

type fieldReader struct {
	raw    map[string]any
	strict bool
	errs   []FieldError
}

func (r *fieldReader) fail(field, message string) {
	r.errs = append(r.errs, FieldError{Field: field, Message: message})
}

func (r *fieldReader) failed(field string) bool {
	for _, e := range r.errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (r *fieldReader) optionalString(field string) *string {
	return OptionalString(r.raw[field])
}

func (r *fieldReader) requiredString(field, message string) string {
	s, err := RequiredString(r.raw[field], message)
	if err != nil {
		r.fail(field, err.Error())
	}
	return s
}

func (r *fieldReader) date(field string) *string {
	d, err := OptionalDate(r.raw[field], Label(field))
	if err != nil {
		r.fail(field, err.Error())
	}
	return d
}

func (r *fieldReader) boolean(field string) bool {
	b, err := NormalizeBoolean(r.raw[field], Label(field))
	if err != nil {
		r.fail(field, err.Error())
	}
	return b
}

func (r *fieldReader) number(field string) *float64 {
	n, err := OptionalNumber(r.raw[field], Label(field))
	if err != nil {
		r.fail(field, err.Error())
	}
	return n
}

// requiredNumber is lenient unless the schema is strict; upper bounds the value
// in strict mode.
func (r *fieldReader) requiredNumber(field string, upper float64) *float64 {
	n, err := OptionalNumber(r.raw[field], Label(field))
	if err != nil {
		r.fail(field, err.Error())
		return nil
	}
	if !r.strict {
		return n
	}
	switch {
	case n == nil:
		r.fail(field, Label(field)+" é obrigatório")
	case *n < 0:
		r.fail(field, "Valor deve ser positivo")
	case *n > upper:
		r.fail(field, fmt.Sprintf("Valor deve ser no máximo %g", upper))
	}
	return n
}

func (r *fieldReader) energia(allowed []string) *string {
	v := OptionalString(r.raw[FieldEnergia])
	if v == nil {
		if r.strict {
			r.fail(FieldEnergia, "Energia é obrigatória")
		}
		return nil
	}
	if !slices.Contains(allowed, *v) {
		r.fail(FieldEnergia, "Energia inválida")
		return nil
	}
	return v
}
