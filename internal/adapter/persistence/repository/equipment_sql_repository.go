package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/usecase/interfaces"
)

const equipmentsTable = "equipments"

type equipmentRow struct {
	ID                    string          `db:"id"`
	Type                  string          `db:"type"`
	Marca                 string          `db:"marca"`
	Modelo                string          `db:"modelo"`
	MarcaFold             string          `db:"marca_fold"`
	ModeloFold            string          `db:"modelo_fold"`
	Notas                 sql.NullString  `db:"notas"`
	DataFabrico           sql.NullString  `db:"data_fabrico"`
	Photo                 sql.NullString  `db:"photo"`
	PhotoName             sql.NullString  `db:"photo_name"`
	PDF                   sql.NullString  `db:"pdf"`
	PDFName               sql.NullString  `db:"pdf_name"`
	Energia               sql.NullString  `db:"energia"`
	Potencia              sql.NullFloat64 `db:"potencia"`
	RendimentoBase        sql.NullFloat64 `db:"rendimento_base"`
	RendimentoCorrigido   sql.NullFloat64 `db:"rendimento_corrigido"`
	Volume                sql.NullFloat64 `db:"volume"`
	Rendimento            sql.NullFloat64 `db:"rendimento"`
	TemQPR                sql.NullBool    `db:"tem_qpr"`
	ValorQPR              sql.NullFloat64 `db:"valor_qpr"`
	PotenciaArrefecimento sql.NullFloat64 `db:"potencia_arrefecimento"`
	PotenciaAquecimento   sql.NullFloat64 `db:"potencia_aquecimento"`
	Seer                  sql.NullFloat64 `db:"seer"`
	Scop                  sql.NullFloat64 `db:"scop"`
	Cop                   sql.NullFloat64 `db:"cop"`
	CreatedAt             string          `db:"created_at"`
	UpdatedAt             string          `db:"updated_at"`
}

var equipmentColumns = []string{
	"id", "type", "marca", "modelo", "marca_fold", "modelo_fold",
	"notas", "data_fabrico", "photo", "photo_name", "pdf", "pdf_name",
	"energia", "potencia", "rendimento_base", "rendimento_corrigido", "volume", "rendimento",
	"tem_qpr", "valor_qpr", "potencia_arrefecimento", "potencia_aquecimento", "seer", "scop", "cop",
	"created_at", "updated_at",
}

// EquipmentSQLRepository persists Equipment in one row per record. Columns of
// technical fields outside the record's type are NULL.
//
// The same code serves SQLite and PostgreSQL; only the placeholder format
// differs.
type EquipmentSQLRepository struct {
	db *sqlx.DB
	sb sq.StatementBuilderType
}

var _ interfaces.IEquipmentRepository = (*EquipmentSQLRepository)(nil)

func NewEquipmentSQLRepository(db *sqlx.DB) *EquipmentSQLRepository {
	format := sq.PlaceholderFormat(sq.Question)
	if db.DriverName() == "postgres" {
		format = sq.Dollar
	}
	return &EquipmentSQLRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(format),
	}
}

func (r *EquipmentSQLRepository) FindMany(ctx context.Context, filter interfaces.EquipmentFilter, skip, take int) ([]entities.Equipment, int, error) {
	where := sq.And{}
	if filter.Type != "" {
		where = append(where, sq.Eq{"type": string(filter.Type)})
	}
	if filter.Text != "" {
		pattern := "%" + escapeLike(fold(filter.Text)) + "%"
		where = append(where, sq.Or{
			sq.Expr(`marca_fold LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`modelo_fold LIKE ? ESCAPE '\'`, pattern),
		})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From(equipmentsTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, err
	}

	q := r.sb.Select(equipmentColumns...).
		From(equipmentsTable).
		Where(where).
		OrderBy("updated_at DESC", "id ASC")
	// SQLite only accepts OFFSET after a LIMIT.
	limit := uint64(math.MaxInt64)
	if take > 0 {
		limit = uint64(take)
	}
	q = q.Limit(limit).Offset(uint64(max(skip, 0)))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var rows []equipmentRow
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, 0, err
	}

	out := make([]entities.Equipment, 0, len(rows))
	for _, row := range rows {
		e, err := fromEquipmentRow(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, e)
	}
	return out, total, nil
}

func (r *EquipmentSQLRepository) FindByID(ctx context.Context, id string) (entities.Equipment, error) {
	sqlStr, args, err := r.sb.Select(equipmentColumns...).From(equipmentsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.Equipment{}, err
	}

	var row equipmentRow
	if err := r.db.GetContext(ctx, &row, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Equipment{}, nil
		}
		return entities.Equipment{}, err
	}
	return fromEquipmentRow(row)
}

func (r *EquipmentSQLRepository) Insert(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	sqlStr, args, err := r.sb.Insert(equipmentsTable).SetMap(toEquipmentRow(e).values()).ToSql()
	if err != nil {
		return entities.Equipment{}, err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentSQLRepository) Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	set := toEquipmentRow(e).values()
	delete(set, "id")
	delete(set, "created_at")

	sqlStr, args, err := r.sb.Update(equipmentsTable).SetMap(set).Where(sq.Eq{"id": e.ID}).ToSql()
	if err != nil {
		return entities.Equipment{}, err
	}
	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entities.Equipment{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.Equipment{}, err
	}
	if n == 0 {
		return entities.Equipment{}, nil
	}
	return e, nil
}

func (r *EquipmentSQLRepository) Delete(ctx context.Context, id string) (bool, error) {
	sqlStr, args, err := r.sb.Delete(equipmentsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (row equipmentRow) values() map[string]any {
	return map[string]any{
		"id":                     row.ID,
		"type":                   row.Type,
		"marca":                  row.Marca,
		"modelo":                 row.Modelo,
		"marca_fold":             row.MarcaFold,
		"modelo_fold":            row.ModeloFold,
		"notas":                  row.Notas,
		"data_fabrico":           row.DataFabrico,
		"photo":                  row.Photo,
		"photo_name":             row.PhotoName,
		"pdf":                    row.PDF,
		"pdf_name":               row.PDFName,
		"energia":                row.Energia,
		"potencia":               row.Potencia,
		"rendimento_base":        row.RendimentoBase,
		"rendimento_corrigido":   row.RendimentoCorrigido,
		"volume":                 row.Volume,
		"rendimento":             row.Rendimento,
		"tem_qpr":                row.TemQPR,
		"valor_qpr":              row.ValorQPR,
		"potencia_arrefecimento": row.PotenciaArrefecimento,
		"potencia_aquecimento":   row.PotenciaAquecimento,
		"seer":                   row.Seer,
		"scop":                   row.Scop,
		"cop":                    row.Cop,
		"created_at":             row.CreatedAt,
		"updated_at":             row.UpdatedAt,
	}
}

func toEquipmentRow(e entities.Equipment) equipmentRow {
	t := e.Technical()
	return equipmentRow{
		ID:                    e.ID,
		Type:                  string(e.Type),
		Marca:                 e.Marca,
		Modelo:                e.Modelo,
		MarcaFold:             fold(e.Marca),
		ModeloFold:            fold(e.Modelo),
		Notas:                 nullString(e.Notas),
		DataFabrico:           nullString(e.DataFabrico),
		Photo:                 nullString(e.Photo),
		PhotoName:             nullString(e.PhotoName),
		PDF:                   nullString(e.PDF),
		PDFName:               nullString(e.PDFName),
		Energia:               nullString(t.Energia),
		Potencia:              nullFloat(t.Potencia),
		RendimentoBase:        nullFloat(t.RendimentoBase),
		RendimentoCorrigido:   nullFloat(t.RendimentoCorrigido),
		Volume:                nullFloat(t.Volume),
		Rendimento:            nullFloat(t.Rendimento),
		TemQPR:                nullBool(t.TemQPR),
		ValorQPR:              nullFloat(t.ValorQPR),
		PotenciaArrefecimento: nullFloat(t.PotenciaArrefecimento),
		PotenciaAquecimento:   nullFloat(t.PotenciaAquecimento),
		Seer:                  nullFloat(t.Seer),
		Scop:                  nullFloat(t.Scop),
		Cop:                   nullFloat(t.Cop),
		CreatedAt:             formatTimestamp(e.CreatedAt),
		UpdatedAt:             formatTimestamp(e.UpdatedAt),
	}
}

func fromEquipmentRow(row equipmentRow) (entities.Equipment, error) {
	createdAt, err := parseTimestamp(row.CreatedAt)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("equipment %s created_at: %w", row.ID, err)
	}
	updatedAt, err := parseTimestamp(row.UpdatedAt)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("equipment %s updated_at: %w", row.ID, err)
	}

	t := entities.EquipmentType(row.Type)
	return entities.Equipment{
		ID: row.ID,
		EquipmentData: entities.EquipmentData{
			Type:        t,
			Marca:       row.Marca,
			Modelo:      row.Modelo,
			Notas:       stringPtr(row.Notas),
			DataFabrico: stringPtr(row.DataFabrico),
			Photo:       stringPtr(row.Photo),
			PhotoName:   stringPtr(row.PhotoName),
			PDF:         stringPtr(row.PDF),
			PDFName:     stringPtr(row.PDFName),
			Specs: entities.SpecsFromTechnical(t, entities.TechnicalFields{
				Energia:               stringPtr(row.Energia),
				Potencia:              floatPtr(row.Potencia),
				RendimentoBase:        floatPtr(row.RendimentoBase),
				RendimentoCorrigido:   floatPtr(row.RendimentoCorrigido),
				Volume:                floatPtr(row.Volume),
				Rendimento:            floatPtr(row.Rendimento),
				TemQPR:                boolPtr(row.TemQPR),
				ValorQPR:              floatPtr(row.ValorQPR),
				PotenciaArrefecimento: floatPtr(row.PotenciaArrefecimento),
				PotenciaAquecimento:   floatPtr(row.PotenciaAquecimento),
				Seer:                  floatPtr(row.Seer),
				Scop:                  floatPtr(row.Scop),
				Cop:                   floatPtr(row.Cop),
			}),
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
