package database

import (
	"fmt"

	"github.com/markoco14/ennytime-sub000/internal/logger"
	"github.com/markoco14/ennytime-sub000/internal/models"
	"gorm.io/gorm"
)

// AddIndexes ensures lookup-critical indexes exist. AutoMigrate creates
// them for fresh databases; this covers databases migrated before the
// index definitions were added.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model interface{}
		name  string
	}{
		// Range scans for the month view hit (user_id, date).
		{&models.ShiftAssignment{}, "idx_shift_assignments_user_date"},
		{&models.ShiftAssignment{}, "idx_shift_assignments_shift_type_id"},
		// Session resolution happens on every authenticated request.
		{&models.Session{}, "idx_sessions_token"},
		{&models.ShiftType{}, "idx_shift_types_user_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}
		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		logger.L().Infow("created index", "index", idx.name)
	}

	return nil
}
