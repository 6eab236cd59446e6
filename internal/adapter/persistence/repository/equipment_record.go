package repository

import (
	"fmt"
	"time"

	"catalogo_equipamentos/internal/domain/entities"
	"catalogo_equipamentos/internal/domain/schema"
)

// records are validated on write; decoding only needs the permissive rules.
var recordSchema = schema.New(schema.Options{})

// equipmentToRecord flattens e into the JSON document layout of the file store.
func equipmentToRecord(e entities.Equipment) map[string]any {
	m := schema.FormValues(e.EquipmentData)
	m[schema.FieldID] = e.ID
	m[schema.FieldCreatedAt] = formatTimestamp(e.CreatedAt)
	m[schema.FieldUpdatedAt] = formatTimestamp(e.UpdatedAt)
	return m
}

func equipmentFromRecord(raw map[string]any) (entities.Equipment, error) {
	id, _ := raw[schema.FieldID].(string)
	if id == "" {
		return entities.Equipment{}, fmt.Errorf("record without id")
	}

	data, err := recordSchema.Parse(raw)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("record %s: %w", id, err)
	}

	createdAt, err := recordTime(raw, schema.FieldCreatedAt)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("record %s: %w", id, err)
	}
	updatedAt, err := recordTime(raw, schema.FieldUpdatedAt)
	if err != nil {
		return entities.Equipment{}, fmt.Errorf("record %s: %w", id, err)
	}

	return entities.Equipment{ID: id, EquipmentData: data, CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}

func recordTime(raw map[string]any, field string) (time.Time, error) {
	s, _ := raw[field].(string)
	t, err := parseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}
