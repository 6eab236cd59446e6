package entities

import "time"

type EquipmentChangeKind string

const (
	EquipmentCreated EquipmentChangeKind = "created"
	EquipmentUpdated EquipmentChangeKind = "updated"
	EquipmentDeleted EquipmentChangeKind = "deleted"
)

// EquipmentChange describes a committed mutation. Dependents (view caches,
// event consumers) use it to refetch.
type EquipmentChange struct {
	Kind         EquipmentChangeKind `json:"kind"`
	ID           string              `json:"id"`
	Type         EquipmentType       `json:"type"`
	PreviousType EquipmentType       `json:"previousType,omitempty"`
	At           time.Time           `json:"at"`
}
