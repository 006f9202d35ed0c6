package models

import "time"

// SnapshotSchemaVersion is bumped whenever the exported record layout changes.
const SnapshotSchemaVersion = 1

// Snapshot is a point-in-time export of every owner and renter.
type Snapshot struct {
	SchemaVersion int       `json:"schema_version"`
	TakenAt       time.Time `json:"taken_at"`
	Owners        []*Owner  `json:"owners"`
	Renters       []*Renter `json:"renters"`
}
