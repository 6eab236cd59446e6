package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

var baseTime = time.Date(2024, 3, 10, 9, 0, 0, 123456789, time.UTC)

func equipmentFixture(id string, typ entities.EquipmentType, marca, modelo string, minutes int) entities.Equipment {
	at := baseTime.Add(time.Duration(minutes) * time.Minute)
	return entities.Equipment{
		ID: id,
		EquipmentData: entities.EquipmentData{
			Type:   typ,
			Marca:  marca,
			Modelo: modelo,
			Specs:  entities.SpecsFromTechnical(typ, entities.TechnicalFields{}),
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func ids(items []entities.Equipment) []string {
	return lo.Map(items, func(e entities.Equipment, _ int) string { return e.ID })
}

// runRepositoryContract exercises the behaviour every adapter must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) interfaces.IEquipmentRepository) {
	ctx := context.Background()

	t.Run("insert and find round-trip", func(t *testing.T) {
		repo := newRepo(t)
		e := entities.Equipment{
			ID: "eq-1",
			EquipmentData: entities.EquipmentData{
				Type:        entities.EquipmentTypeTermoacumulador,
				Marca:       "Ariston",
				Modelo:      "Velis Evo",
				Notas:       lo.ToPtr("sótão"),
				DataFabrico: lo.ToPtr("2021-05-06"),
				Photo:       lo.ToPtr("data:image/png;base64,iVBORw0KGgo="),
				PhotoName:   lo.ToPtr("velis.png"),
				Specs: entities.TermoacumuladorSpecs{
					Volume:   lo.ToPtr(80.0),
					Potencia: lo.ToPtr(1.5),
					TemQPR:   false,
				},
			},
			CreatedAt: baseTime,
			UpdatedAt: baseTime,
		}

		created, err := repo.Insert(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, e, created)

		found, err := repo.FindByID(ctx, "eq-1")
		require.NoError(t, err)
		assert.Equal(t, e, found)
	})

	t.Run("absent id is the zero value", func(t *testing.T) {
		repo := newRepo(t)
		found, err := repo.FindByID(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, found.ID)
	})

	t.Run("duplicate insert fails", func(t *testing.T) {
		repo := newRepo(t)
		e := equipmentFixture("eq-1", entities.EquipmentTypeCaldeira, "Baxi", "Neodens", 0)
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
		_, err = repo.Insert(ctx, e)
		assert.Error(t, err)
	})

	t.Run("update replaces the whole record", func(t *testing.T) {
		repo := newRepo(t)
		e := equipmentFixture("eq-1", entities.EquipmentTypeArCondicionado, "Daikin", "Perfera", 0)
		e.Specs = entities.ArCondicionadoSpecs{Seer: lo.ToPtr(16.0), Scop: lo.ToPtr(4.6)}
		e.Notas = lo.ToPtr("sala")
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)

		next := e
		next.Type = entities.EquipmentTypeEsquentador
		next.Notas = nil
		next.Specs = entities.EsquentadorSpecs{Energia: lo.ToPtr("Gás Natural")}
		next.UpdatedAt = e.UpdatedAt.Add(time.Hour)

		updated, err := repo.Update(ctx, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated)

		found, err := repo.FindByID(ctx, "eq-1")
		require.NoError(t, err)
		assert.Equal(t, next, found)
		assert.Nil(t, found.Technical().Seer)
		assert.Nil(t, found.Notas)
	})

	t.Run("update of an absent id is the zero value", func(t *testing.T) {
		repo := newRepo(t)
		updated, err := repo.Update(ctx, equipmentFixture("ghost", entities.EquipmentTypeCaldeira, "x", "y", 0))
		require.NoError(t, err)
		assert.Empty(t, updated.ID)

		found, err := repo.FindByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, found.ID)
	})

	t.Run("delete reports whether something was removed", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Insert(ctx, equipmentFixture("eq-1", entities.EquipmentTypeCaldeira, "Baxi", "Neodens", 0))
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, "eq-1")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "eq-1")
		require.NoError(t, err)
		assert.False(t, deleted)

		found, err := repo.FindByID(ctx, "eq-1")
		require.NoError(t, err)
		assert.Empty(t, found.ID)
	})

	t.Run("find many filters sorts and pages", func(t *testing.T) {
		repo := newRepo(t)
		fixtures := []entities.Equipment{
			equipmentFixture("a", entities.EquipmentTypeArCondicionado, "Daikin", "Perfera", 1),
			equipmentFixture("b", entities.EquipmentTypeArCondicionado, "Mitsubishi", "MSZ-LN", 2),
			equipmentFixture("c", entities.EquipmentTypeBombaCalor, "Mitsubishi", "Ecodan", 3),
			equipmentFixture("d", entities.EquipmentTypeEsquentador, "Vulcano", "Daily Sensor", 4),
			equipmentFixture("e", entities.EquipmentTypeCaldeira, "ÉLCO", "Thision", 4),
			equipmentFixture("f", entities.EquipmentTypeCaldeira, "100% Eco", "Lenha_1", 0),
		}
		for _, f := range fixtures {
			_, err := repo.Insert(ctx, f)
			require.NoError(t, err)
		}

		cases := []struct {
			name   string
			filter interfaces.EquipmentFilter
			skip   int
			take   int
			want   []string
			total  int
		}{
			{name: "everything newest first with id tie-break", take: 10, want: []string{"d", "e", "c", "b", "a", "f"}, total: 6},
			{name: "second page", skip: 2, take: 2, want: []string{"c", "b"}, total: 6},
			{name: "past the end", skip: 10, take: 2, want: []string{}, total: 6},
			{name: "by type", filter: interfaces.EquipmentFilter{Type: entities.EquipmentTypeArCondicionado}, take: 10, want: []string{"b", "a"}, total: 2},
			{name: "text on marca or modelo", filter: interfaces.EquipmentFilter{Text: "DAI"}, take: 10, want: []string{"d", "a"}, total: 2},
			{name: "text and type", filter: interfaces.EquipmentFilter{Type: entities.EquipmentTypeArCondicionado, Text: "dai"}, take: 10, want: []string{"a"}, total: 1},
			{name: "unicode folding", filter: interfaces.EquipmentFilter{Text: "élco"}, take: 10, want: []string{"e"}, total: 1},
			{name: "wildcards are literal", filter: interfaces.EquipmentFilter{Text: "%"}, take: 10, want: []string{"f"}, total: 1},
			{name: "underscore is literal", filter: interfaces.EquipmentFilter{Text: "a_1"}, take: 10, want: []string{"f"}, total: 1},
			{name: "no match", filter: interfaces.EquipmentFilter{Text: "bosch"}, take: 10, want: []string{}, total: 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				items, total, err := repo.FindMany(ctx, tc.filter, tc.skip, tc.take)
				require.NoError(t, err)
				assert.Equal(t, tc.want, ids(items))
				assert.Equal(t, tc.total, total)
			})
		}
	})

	t.Run("find many pages through a larger catalog", func(t *testing.T) {
		repo := newRepo(t)
		for i := range 20 {
			_, err := repo.Insert(ctx, equipmentFixture(fmt.Sprintf("eq-%02d", i), entities.EquipmentTypeCaldeira, "Baxi", "Neodens", i))
			require.NoError(t, err)
		}

		items, total, err := repo.FindMany(ctx, interfaces.EquipmentFilter{}, 18, 9)
		require.NoError(t, err)
		assert.Equal(t, 20, total)
		assert.Equal(t, []string{"eq-01", "eq-00"}, ids(items))
	})
}
