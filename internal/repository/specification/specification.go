package specification

import "gorm.io/gorm"

// Specification is a composable query fragment; repositories fold a list of
// them over the base query.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
