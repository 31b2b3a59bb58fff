package migration

import (
	"github.com/lifelinehq/lifeline-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for the events table. Safe to run on every boot:
// the table is created if absent and left alone otherwise.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Event{})
}
