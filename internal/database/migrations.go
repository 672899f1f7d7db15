package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds lookup indexes that AutoMigrate does not derive from tags.
// Only meaningful on postgres; other drivers skip it.
func AddIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// The admin gate hits this on every privileged request.
		{"admins", "idx_admins_email", "email"},

		// Careers page filter and ordering.
		{"job_postings", "idx_job_postings_status_created", "status, created_at"},

		// Gallery drill-down and cover lookups.
		{"gallery_events", "idx_gallery_events_category_id", "category_id"},
		{"gallery_images", "idx_gallery_images_event_created", "event_id, created_at"},
		{"gallery_images", "idx_gallery_images_category_created", "category_id, created_at"},

		{"skills", "idx_skills_team_member_id", "team_member_id"},
		{"contact_submissions", "idx_contact_submissions_created_at", "created_at"},
		{"testimonials", "idx_testimonials_created_at", "created_at"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
