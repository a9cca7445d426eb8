package note

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/notably/internal/domain/metadata"
	"github.com/lloydmeta/notably/internal/domain/note"
	"github.com/lloydmeta/notably/internal/infra/mysql/common"
)

const (
	insertNote = `INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`

	selectNoteColumns = `SELECT id, title, content, created_at, updated_at FROM notes`

	selectNoteById = selectNoteColumns + ` WHERE id = ?`

	selectNoteByIdForUpdate = selectNoteById + ` FOR UPDATE`

	selectNotesPage = selectNoteColumns + ` ORDER BY id ASC LIMIT ? OFFSET ?`

	updateNote = `UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`

	deleteNote = `DELETE FROM notes WHERE id = ?`
)

// NewService returns a MySQL-backed note.Service.
//
// Every call is bounded by operationTimeout, so waiting on an exhausted pool ends in
// StoreUnavailable instead of hanging.
func NewService(db *sql.DB, operationTimeout time.Duration) note.Service {
	return &mysqlNoteService{
		db:               db,
		operationTimeout: operationTimeout,
		getUTC: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type mysqlNoteService struct {
	db               *sql.DB
	operationTimeout time.Duration
	getUTC           func() time.Time
}

func (m *mysqlNoteService) Create(ctx context.Context, newNote *note.NewNote) (*note.Note, error) {
	if err := newNote.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	meta := metadata.New(m.getUTC())
	result, err := m.db.ExecContext(
		ctx,
		insertNote,
		string(newNote.Title),
		string(newNote.Content),
		time.Time(meta.CreatedAt),
		time.Time(meta.UpdatedAt),
	)
	if err != nil {
		return nil, unavailable("create", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, unavailable("create", err)
	}
	if log.Debug().Enabled() {
		log.Debug().Int64("id", id).Msg("Created note")
	}
	created, err := scanNote(m.db.QueryRowContext(ctx, selectNoteById, id))
	if err != nil {
		// includes sql.ErrNoRows: the row we just inserted is gone or invisible
		return nil, unavailable("create", err)
	}
	return created, nil
}

func (m *mysqlNoteService) List(ctx context.Context, page note.Page) ([]note.Note, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	page = page.Normalised()
	rows, err := m.db.QueryContext(ctx, selectNotesPage, page.Size, page.Offset())
	if err != nil {
		return nil, unavailable("list", err)
	}
	defer rows.Close()

	notes := make([]note.Note, 0, page.Size)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, unavailable("list", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list", err)
	}
	return notes, nil
}

func (m *mysqlNoteService) Get(ctx context.Context, id note.Id) (*note.Note, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	n, err := scanNote(m.db.QueryRowContext(ctx, selectNoteById, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, note.NotFound{ID: id}
	} else if err != nil {
		return nil, unavailable("get", err)
	}
	return n, nil
}

// Patch reads the row with FOR UPDATE inside a transaction, so concurrent patches of
// the same note are serialised by InnoDB's row lock and the last commit wins.
func (m *mysqlNoteService) Patch(ctx context.Context, id note.Id, patch *note.NotePatch) (result *note.Note, err error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, unavailable("patch", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				log.Error().Err(rollbackErr).Int64("id", int64(id)).Msg("Failed to roll back note patch")
			}
		}
	}()

	existing, err := scanNote(tx.QueryRowContext(ctx, selectNoteByIdForUpdate, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, note.NotFound{ID: id}
	} else if err != nil {
		return nil, unavailable("patch", err)
	}

	existing.Apply(patch, m.getUTC())
	if _, err = tx.ExecContext(
		ctx,
		updateNote,
		string(existing.Title),
		string(existing.Content),
		time.Time(existing.Metadata.UpdatedAt),
		int64(id),
	); err != nil {
		return nil, unavailable("patch", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, unavailable("patch", err)
	}
	return existing, nil
}

func (m *mysqlNoteService) Delete(ctx context.Context, id note.Id) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	result, err := m.db.ExecContext(ctx, deleteNote, int64(id))
	if err != nil {
		return unavailable("delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return unavailable("delete", err)
	}
	if affected == 0 {
		return note.NotFound{ID: id}
	}
	return nil
}

func (m *mysqlNoteService) Ping(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	if err := m.db.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (m *mysqlNoteService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.operationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.operationTimeout)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row scanner) (*note.Note, error) {
	var (
		id        int64
		title     string
		content   string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &title, &content, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &note.Note{
		ID:      note.Id(id),
		Title:   note.Title(title),
		Content: note.Content(content),
		Metadata: metadata.Metadata{
			CreatedAt: metadata.CreatedAt(createdAt.UTC()),
			UpdatedAt: metadata.UpdatedAt(updatedAt.UTC()),
		},
	}, nil
}

func unavailable(op string, err error) note.StoreUnavailable {
	if log.Error().Enabled() {
		event := log.Error().Err(err).Str("op", op)
		if number, ok := common.ServerErrorNumber(err); ok {
			event = event.Uint16("mysql_error", number)
		}
		event.Msg("Note store operation failed")
	}
	return note.StoreUnavailable{Op: op, Cause: err}
}
