package note

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/notably/internal/domain/metadata"
	"github.com/lloydmeta/notably/internal/domain/note"
)

func TestNotePatch_ToDomainNotePatch(t *testing.T) {
	title := "T2"
	tests := []struct {
		name  string
		patch NotePatch
		want  note.NotePatch
	}{
		{
			name:  "empty",
			patch: NotePatch{},
			want:  note.NotePatch{},
		},
		{
			name:  "title only",
			patch: NotePatch{Title: &title},
			want: func() note.NotePatch {
				t := note.Title("T2")
				return note.NotePatch{Title: &t}
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.want, tt.patch.ToDomainNotePatch())
		})
	}
}

func TestNotePatch_absentVsEmpty(t *testing.T) {
	var absent NotePatch
	assert.NoError(t, json.Unmarshal([]byte(`{"content":"new"}`), &absent))
	assert.Nil(t, absent.Title)
	assert.EqualValues(t, "new", *absent.Content)

	var empty NotePatch
	assert.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &empty))
	if assert.NotNil(t, empty.Title) {
		assert.EqualValues(t, "", *empty.Title)
	}
}

func TestListQuery_ToDomainPage(t *testing.T) {
	two := uint32(2)
	five := uint32(5)
	seven := uint32(7)
	tests := []struct {
		name  string
		query ListQuery
		want  note.Page
	}{
		{
			name:  "defaults",
			query: ListQuery{},
			want:  note.Page{Number: 1, Size: note.DefaultPageSize},
		},
		{
			name:  "snake case",
			query: ListQuery{Page: &two, PageSize: &five},
			want:  note.Page{Number: 2, Size: 5},
		},
		{
			name:  "camel case",
			query: ListQuery{PageSizeCamel: &seven},
			want:  note.Page{Number: 1, Size: 7},
		},
		{
			name:  "snake case wins",
			query: ListQuery{PageSize: &five, PageSizeCamel: &seven},
			want:  note.Page{Number: 1, Size: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.want, tt.query.ToDomainPage())
		})
	}
}

func TestFromDomainNote_json(t *testing.T) {
	at := time.Date(2020, 3, 1, 10, 0, 0, 123000, time.UTC)
	domainNote := note.Note{
		ID:       42,
		Title:    "A",
		Content:  "B",
		Metadata: metadata.New(at),
	}
	asJson, err := json.Marshal(FromDomainNote(&domainNote))
	if err != nil {
		t.Error(err)
	} else {
		assert.JSONEq(
			t,
			`{"id":42,"title":"A","content":"B","created_at":"2020-03-01T10:00:00.000123Z","updated_at":"2020-03-01T10:00:00.000123Z"}`,
			string(asJson),
		)
	}
}
