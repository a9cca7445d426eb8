package server

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/notably/internal/infra/mysql/schema"
)

// Setup abstracts away:
//
// 1. Setting up the database for running Notably
// 2. Checking that things are set up
type Setup interface {

	// Check returns an error if all the necessary setup is not complete
	Check(ctx context.Context) error

	// RunIfNeeded attempts to run the subroutines necessary, no more no less
	RunIfNeeded(ctx context.Context) error
}

type setupImpl struct {
	tableSetup schema.TableSetup
}

// NewSetup returns a Setup implementation
func NewSetup(db *sql.DB) Setup {
	return &setupImpl{
		tableSetup: schema.DefaultTableSetup(db),
	}
}

func (i *setupImpl) Check(ctx context.Context) error {
	return i.tableSetup.Check(ctx)
}

func (i *setupImpl) RunIfNeeded(ctx context.Context) error {
	if err := i.tableSetup.Check(ctx); err != nil {
		var notInstalled schema.TablesNotInstalled
		if errors.As(err, &notInstalled) {
			log.Info().Strs("missing", notInstalled.Missing).Msg("Setting up tables")
			if err := i.tableSetup.Run(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to set up tables")
				return err
			}
		} else {
			log.Error().Err(err).Msg("Could not check tables, skipping table setup")
			return err
		}
	}
	log.Info().Msg("Setup complete")
	return nil
}
