package models

import "gorm.io/gorm"

// SystemMarker records one-time startup steps (e.g. admin seeding) so they
// run exactly once across restarts and replicas, instead of being guarded by
// in-memory process state.
type SystemMarker struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}
