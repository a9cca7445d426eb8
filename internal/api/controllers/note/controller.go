package note

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lloydmeta/notably/internal/api/models/common"
	apiNote "github.com/lloydmeta/notably/internal/api/models/note"
	"github.com/lloydmeta/notably/internal/domain/note"
)

type Controller interface {

	// Create returns a Note based on the passed in NewNote
	Create(ctx context.Context, newNote *apiNote.NewNote) (*apiNote.Note, *common.ApiError)

	// List returns a page of Notes
	List(ctx context.Context, query *apiNote.ListQuery) ([]apiNote.Note, *common.ApiError)

	// Get returns a Note by Id
	Get(ctx context.Context, id note.Id) (*apiNote.Note, *common.ApiError)

	// Patch updates the given fields of a Note and returns it
	Patch(ctx context.Context, id note.Id, patch *apiNote.NotePatch) (*apiNote.Note, *common.ApiError)

	// Delete deletes a Note by Id
	Delete(ctx context.Context, id note.Id) *common.ApiError
}

func New(notesService note.Service) Controller {
	return &impl{
		notesService: notesService,
	}
}

type impl struct {
	notesService note.Service
}

func (c *impl) Create(ctx context.Context, newNote *apiNote.NewNote) (*apiNote.Note, *common.ApiError) {
	domainNewNote := newNote.ToDomainNewNote()
	result, err := c.notesService.Create(ctx, &domainNewNote)
	if err != nil {
		return nil, handleErr(err)
	} else {
		n := apiNote.FromDomainNote(result)
		return &n, nil
	}
}

func (c *impl) List(ctx context.Context, query *apiNote.ListQuery) ([]apiNote.Note, *common.ApiError) {
	results, err := c.notesService.List(ctx, query.ToDomainPage())
	if err != nil {
		return nil, handleErr(err)
	} else {
		notes := make([]apiNote.Note, 0, len(results))
		for _, result := range results {
			notes = append(notes, apiNote.FromDomainNote(&result))
		}
		return notes, nil
	}
}

func (c *impl) Get(ctx context.Context, id note.Id) (*apiNote.Note, *common.ApiError) {
	result, err := c.notesService.Get(ctx, id)
	if err != nil {
		return nil, handleErr(err)
	} else {
		n := apiNote.FromDomainNote(result)
		return &n, nil
	}
}

func (c *impl) Patch(ctx context.Context, id note.Id, patch *apiNote.NotePatch) (*apiNote.Note, *common.ApiError) {
	domainPatch := patch.ToDomainNotePatch()
	result, err := c.notesService.Patch(ctx, id, &domainPatch)
	if err != nil {
		return nil, handleErr(err)
	} else {
		n := apiNote.FromDomainNote(result)
		return &n, nil
	}
}

func (c *impl) Delete(ctx context.Context, id note.Id) *common.ApiError {
	if err := c.notesService.Delete(ctx, id); err != nil {
		return handleErr(err)
	} else {
		return nil
	}
}

func handleErr(err error) *common.ApiError {
	var notFound note.NotFound
	var invalid note.InvalidNote
	var unavailable note.StoreUnavailable
	switch {
	case errors.As(err, &notFound):
		return common.NewApiError(http.StatusNotFound, notFound.Error())
	case errors.As(err, &invalid):
		return common.NewApiError(http.StatusBadRequest, invalid.Error())
	case errors.As(err, &unavailable):
		// the cause has already been logged by the store
		return common.NewApiError(http.StatusServiceUnavailable, unavailable.Error())
	default:
		log.Error().Err(err).Msg("Unhandled error from note store")
		return common.NewApiError(http.StatusInternalServerError, "Something went wrong :(")
	}
}
