package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
)

func storedEquipment(t *testing.T, raw map[string]any) entities.Equipment {
	t.Helper()
	data, err := schema.New(schema.Options{}).Parse(raw)
	require.NoError(t, err)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return entities.Equipment{ID: "eq-1", EquipmentData: data, CreatedAt: created, UpdatedAt: created}
}

func TestPlanEquipmentUpdate(t *testing.T) {
	s := schema.New(schema.Options{})
	now := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

	t.Run("type switch clears every technical field", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{
			"type": "Ar Condicionado", "marca": "Daikin", "modelo": "Perfera", "seer": 16,
		})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{
			"type": "Esquentador", "energia": "Gás Natural",
		}, now)
		require.NoError(t, err)

		assert.Equal(t, entities.EquipmentTypeEsquentador, next.Type)
		specs, ok := next.Specs.(entities.EsquentadorSpecs)
		require.True(t, ok)
		assert.Equal(t, "Gás Natural", *specs.Energia)
		assert.Nil(t, specs.Potencia)

		form := schema.FormValues(next.EquipmentData)
		assert.NotContains(t, form, "seer")
		assert.Nil(t, next.Technical().Seer)
		assert.Equal(t, "Daikin", next.Marca)
		assert.Equal(t, "Perfera", next.Modelo)
	})

	t.Run("air conditioner to water heater with new technical values", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{
			"type": "Ar Condicionado", "marca": "Daikin", "modelo": "Perfera",
			"seer": 16, "scop": 4.6, "cop": 3.9, "potenciaArrefecimento": 3.5, "potenciaAquecimento": 4,
		})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{
			"type": "Esquentador", "potencia": 20, "rendimentoBase": 90, "rendimentoCorrigido": 88,
			"marca": "Vulcano", "modelo": "Click", "energia": "Gás Natural",
		}, now)
		require.NoError(t, err)

		tech := next.Technical()
		require.NotNil(t, tech.Potencia)
		assert.Equal(t, 20.0, *tech.Potencia)
		assert.Equal(t, 90.0, *tech.RendimentoBase)
		assert.Equal(t, 88.0, *tech.RendimentoCorrigido)
		assert.Equal(t, "Gás Natural", *tech.Energia)
		assert.Nil(t, tech.Seer)
		assert.Nil(t, tech.Scop)
		assert.Nil(t, tech.Cop)
		assert.Nil(t, tech.PotenciaArrefecimento)
		assert.Nil(t, tech.PotenciaAquecimento)
		assert.Equal(t, "Vulcano", next.Marca)
		assert.Equal(t, "Click", next.Modelo)
		assert.Equal(t, current.CreatedAt, next.CreatedAt)
		assert.Equal(t, now, next.UpdatedAt)
	})

	t.Run("shared fields do not survive a type switch", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{
			"type": "Esquentador", "marca": "Vulcano", "modelo": "Sensor",
			"energia": "Gás Natural", "potencia": 20, "rendimentoBase": 90,
		})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{"type": "Caldeira"}, now)
		require.NoError(t, err)

		specs := next.Specs.(entities.CaldeiraSpecs)
		assert.Nil(t, specs.Energia)
		assert.Nil(t, specs.Potencia)
		assert.Nil(t, specs.RendimentoBase)
	})

	t.Run("same type merges and preserves technical values", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{
			"type": "Termoacumulador", "marca": "Ariston", "modelo": "Velis",
			"volume": 80, "temQPR": true, "valorQPR": 1.2,
		})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{"notas": "x"}, now)
		require.NoError(t, err)

		assert.Equal(t, "x", *next.Notas)
		specs := next.Specs.(entities.TermoacumuladorSpecs)
		assert.Equal(t, 80.0, *specs.Volume)
		assert.True(t, specs.TemQPR)
		assert.Equal(t, 1.2, *specs.ValorQPR)
	})

	t.Run("repeating the stored type keeps technical values", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{
			"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens", "potencia": 24,
		})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{"type": "Caldeira", "modelo": "Neodens Plus"}, now)
		require.NoError(t, err)
		assert.Equal(t, 24.0, *next.Technical().Potencia)
		assert.Equal(t, "Neodens Plus", next.Modelo)
	})

	t.Run("explicit null or empty clears a field", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{
			"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens",
			"potencia": 24, "notas": "antiga", "dataFabrico": "2019-01-02",
		})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{"potencia": nil, "notas": "", "dataFabrico": ""}, now)
		require.NoError(t, err)
		assert.Nil(t, next.Technical().Potencia)
		assert.Nil(t, next.Notas)
		assert.Nil(t, next.DataFabrico)
	})

	t.Run("system keys in the patch are ignored", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens"})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{
			"id": "hijack", "createdAt": "2000-01-01T00:00:00Z", "updatedAt": "2000-01-01T00:00:00Z",
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "eq-1", next.ID)
		assert.Equal(t, current.CreatedAt, next.CreatedAt)
		assert.Equal(t, now, next.UpdatedAt)
	})

	t.Run("updatedAt never precedes createdAt", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens"})

		next, err := PlanEquipmentUpdate(s, current, map[string]any{"notas": "y"}, current.CreatedAt.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, current.CreatedAt, next.UpdatedAt)
	})

	t.Run("invalid merged record", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens"})

		_, err := PlanEquipmentUpdate(s, current, map[string]any{"marca": "", "potencia": "forte"}, now)
		var ve *schema.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 2)
	})

	t.Run("unknown target type", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens"})

		for _, typ := range []any{"Frigorífico", nil, 7} {
			_, err := PlanEquipmentUpdate(s, current, map[string]any{"type": typ}, now)
			var uve *schema.UnknownVariantError
			assert.ErrorAs(t, err, &uve)
		}
	})

	t.Run("does not mutate the patch", func(t *testing.T) {
		current := storedEquipment(t, map[string]any{"type": "Caldeira", "marca": "Baxi", "modelo": "Neodens"})
		patch := map[string]any{"id": "x", "notas": "n"}

		_, err := PlanEquipmentUpdate(s, current, patch, now)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "x", "notas": "n"}, patch)
	})
}
