package db

import (
	"fmt"

	"github.com/KAsare1/donation-server/cmd/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables for every model. It is safe to run
// on every start.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	for _, model := range models.All() {
		name := tableName(db, model)
		log.Debug().Str("table", name).Msg("migrating table")
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %s table: %w", name, err)
		}
	}
	log.Info().Int("tables", len(models.All())).Msg("migrations completed")
	return nil
}

// Clear drops the given tables, or every model table when none are given.
// Failures on individual tables are logged and skipped.
func Clear(db *gorm.DB, log zerolog.Logger, tables ...interface{}) {
	if len(tables) == 0 {
		all := models.All()
		// drop dependents first
		for i := len(all) - 1; i >= 0; i-- {
			tables = append(tables, all[i])
		}
	}

	for _, table := range tables {
		name := tableName(db, table)
		if err := db.Migrator().DropTable(table); err != nil {
			log.Warn().Err(err).Str("table", name).Msg("could not drop table")
			continue
		}
		log.Info().Str("table", name).Msg("table dropped")
	}
}

// ModelByTable resolves a table name such as "donations" to its model.
func ModelByTable(db *gorm.DB, name string) (interface{}, bool) {
	for _, model := range models.All() {
		if tableName(db, model) == name {
			return model, true
		}
	}
	return nil, false
}

func tableName(db *gorm.DB, model interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}
