package note

import (
	"github.com/lloydmeta/notably/internal/api/models/common"
	"github.com/lloydmeta/notably/internal/domain/note"
)

// A Note that is yet to be persisted
type NewNote struct {
	Title   string `json:"title" binding:"required,notBlank" example:"Groceries"`
	Content string `json:"content" binding:"required,notBlank" example:"Eggs, milk"`
}

// Partial update for an existing Note; omitted fields are left untouched
type NotePatch struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,notBlank" example:"Groceries (weekend)"`
	Content *string `json:"content,omitempty" binding:"omitempty,notBlank" example:"Eggs, milk, bread"`
}

type Note struct {
	ID      int64  `json:"id" binding:"required" example:"1"`
	Title   string `json:"title" binding:"required" example:"Groceries"`
	Content string `json:"content" binding:"required" example:"Eggs, milk"`
	common.Metadata
}

// ListQuery is the pagination asked for on the list endpoint. Both page_size and
// pageSize are accepted; page_size wins when both are given.
type ListQuery struct {
	Page          *uint32 `form:"page" binding:"omitempty,min=1"`
	PageSize      *uint32 `form:"page_size" binding:"omitempty,min=1,max=100"`
	PageSizeCamel *uint32 `form:"pageSize" binding:"omitempty,min=1,max=100"`
}

func (n *NewNote) ToDomainNewNote() note.NewNote {
	return note.NewNote{
		Title:   note.Title(n.Title),
		Content: note.Content(n.Content),
	}
}

func (p *NotePatch) ToDomainNotePatch() note.NotePatch {
	var patch note.NotePatch
	if p.Title != nil {
		title := note.Title(*p.Title)
		patch.Title = &title
	}
	if p.Content != nil {
		content := note.Content(*p.Content)
		patch.Content = &content
	}
	return patch
}

func (q *ListQuery) ToDomainPage() note.Page {
	var page note.Page
	if q.Page != nil {
		page.Number = *q.Page
	}
	if q.PageSize != nil {
		page.Size = *q.PageSize
	} else if q.PageSizeCamel != nil {
		page.Size = *q.PageSizeCamel
	}
	return page.Normalised()
}

func FromDomainNote(n *note.Note) Note {
	return Note{
		ID:       int64(n.ID),
		Title:    string(n.Title),
		Content:  string(n.Content),
		Metadata: common.FromDomainMetadata(&n.Metadata),
	}
}
