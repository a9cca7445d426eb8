package note

import (
	"strings"
	"time"

	"github.com/lloydmeta/notably/internal/domain/metadata"
)

// Id is assigned by the store on insert and never changes afterwards
type Id int64

type Title string

type Content string

const (
	DefaultPageSize uint32 = 10
	MaxPageSize     uint32 = 100
)

// A Note that is yet to be persisted
type NewNote struct {
	Title   Title
	Content Content
}

// NotePatch holds the fields to replace on an existing Note. A nil field is
// left untouched.
type NotePatch struct {
	Title   *Title
	Content *Content
}

type Note struct {
	ID       Id
	Title    Title
	Content  Content
	Metadata metadata.Metadata
}

// Page is a 1-based page of notes, ordered by Id ascending
type Page struct {
	Number uint32
	Size   uint32
}

func (n *NewNote) Validate() error {
	if isBlank(string(n.Title)) {
		return InvalidNote{Reason: "title must not be blank"}
	}
	if isBlank(string(n.Content)) {
		return InvalidNote{Reason: "content must not be blank"}
	}
	return nil
}

func (p *NotePatch) Validate() error {
	if p.Title != nil && isBlank(string(*p.Title)) {
		return InvalidNote{Reason: "title must not be blank"}
	}
	if p.Content != nil && isBlank(string(*p.Content)) {
		return InvalidNote{Reason: "content must not be blank"}
	}
	return nil
}

// IsEmpty is true when the patch carries no fields at all
func (p *NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Apply replaces the fields present in the patch and refreshes UpdatedAt
func (n *Note) Apply(patch *NotePatch, now time.Time) {
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	n.Metadata.Touch(now)
}

// Normalised fills in defaults and clamps the size to MaxPageSize
func (p Page) Normalised() Page {
	if p.Number == 0 {
		p.Number = 1
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset is the number of notes to skip. Computed in 64 bits so it cannot overflow.
func (p Page) Offset() uint64 {
	normalised := p.Normalised()
	return uint64(normalised.Number-1) * uint64(normalised.Size)
}

func isBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
