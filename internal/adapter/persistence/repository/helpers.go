package repository

import (
	"cmp"
	"database/sql"
	"slices"
	"strings"
	"time"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// timestampLayout is fixed width so stored timestamps sort lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// fold applies Unicode case folding. A Caser is stateful, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

func matchesFilter(e entities.Equipment, f interfaces.EquipmentFilter) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Text == "" {
		return true
	}
	needle := fold(f.Text)
	return strings.Contains(fold(e.Marca), needle) || strings.Contains(fold(e.Modelo), needle)
}

func compareEquipments(a, b entities.Equipment) int {
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func sortEquipments(items []entities.Equipment) {
	slices.SortFunc(items, compareEquipments)
}

func paginate(items []entities.Equipment, skip, take int) []entities.Equipment {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []entities.Equipment{}
	}
	end := len(items)
	if take > 0 && skip+take < end {
		end = skip + take
	}
	return items[skip:end]
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return lo.ToPtr(v.String)
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return lo.ToPtr(v.Float64)
}

func boolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	return lo.ToPtr(v.Bool)
}
