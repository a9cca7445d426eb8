package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

const NotesTable = "notes"

const createNotesTable = `CREATE TABLE IF NOT EXISTS notes (
	id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
	title      TEXT            NOT NULL,
	content    TEXT            NOT NULL,
	created_at DATETIME(6)     NOT NULL,
	updated_at DATETIME(6)     NOT NULL,
	PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

const countTables = `SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?`

// TableSetup makes sure the tables the note store needs are there.
//
// This is bootstrapping for fresh databases, not a migration tool: existing tables are
// never altered
type TableSetup interface {

	// Check returns TablesNotInstalled if any table is missing
	Check(ctx context.Context) error

	// Run creates whatever tables are missing
	Run(ctx context.Context) error
}

// TablesNotInstalled is returned by Check when tables are missing
type TablesNotInstalled struct {
	Missing []string
}

func (e TablesNotInstalled) Error() string {
	return fmt.Sprintf("Tables not installed: %v", e.Missing)
}

type tableDefinition struct {
	name   string
	create string
}

var defaultTables = []tableDefinition{
	{
		name:   NotesTable,
		create: createNotesTable,
	},
}

func DefaultTableSetup(db *sql.DB) TableSetup {
	return &tableSetupImpl{
		db:     db,
		tables: defaultTables,
	}
}

type tableSetupImpl struct {
	db     *sql.DB
	tables []tableDefinition
}

func (t *tableSetupImpl) Check(ctx context.Context) error {
	var missing []string
	for _, table := range t.tables {
		var count int
		if err := t.db.QueryRowContext(ctx, countTables, table.name).Scan(&count); err != nil {
			return fmt.Errorf("failed to check for table [%s]: %w", table.name, err)
		}
		if count == 0 {
			missing = append(missing, table.name)
		}
	}
	if len(missing) > 0 {
		return TablesNotInstalled{Missing: missing}
	} else {
		return nil
	}
}

func (t *tableSetupImpl) Run(ctx context.Context) error {
	for _, table := range t.tables {
		log.Info().Str("table", table.name).Msg("Creating table if needed")
		if _, err := t.db.ExecContext(ctx, table.create); err != nil {
			return fmt.Errorf("failed to create table [%s]: %w", table.name, err)
		}
	}
	return nil
}
