package database

import (
	"template-catalog-be/internal/model"

	"gorm.io/gorm"
)

// Migrate creates the catalog schema if absent. There is no migration
// mechanism beyond this; schema changes require manual intervention.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Template{},
		&model.Feature{},
		&model.Link{},
	); err != nil {
		return err
	}

	// Referential integrity for links. AutoMigrate does not emit FK
	// constraints for plain id columns, so they are added idempotently here.
	constraintSQL := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_links_feature') THEN ALTER TABLE links ADD CONSTRAINT fk_links_feature FOREIGN KEY (feature_id) REFERENCES features (id); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_links_template') THEN ALTER TABLE links ADD CONSTRAINT fk_links_template FOREIGN KEY (template_id) REFERENCES templates (id); END IF; END $$;`,
	}
	for _, sql := range constraintSQL {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}

	return nil
}
