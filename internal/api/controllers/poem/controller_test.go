package poem

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apiPoem "github.com/lloydmeta/notably/internal/api/models/poem"
	"github.com/lloydmeta/notably/internal/domain/poem"
)

type mockReader struct {
	readCalled   uint
	readOverride func() (*poem.Poem, error)
}

func (m *mockReader) Read(ctx context.Context) (*poem.Poem, error) {
	m.readCalled++
	if m.readOverride != nil {
		return m.readOverride()
	} else {
		return &poem.Poem{Title: "t", Text: "x"}, nil
	}
}

func Test_impl_Get(t *testing.T) {
	tests := []struct {
		name           string
		reader         *mockReader
		want           *apiPoem.Poem
		wantStatusCode int
	}{
		{
			name:   "ok",
			reader: &mockReader{},
			want:   &apiPoem.Poem{Title: "t", Text: "x"},
		},
		{
			name: "missing file",
			reader: &mockReader{
				readOverride: func() (*poem.Poem, error) {
					return nil, poem.FileAccess{Path: "poem.yaml", Cause: errors.New("no such file")}
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.reader)
			got, err := c.Get(context.Background())
			assert.EqualValues(t, 1, tt.reader.readCalled)
			if tt.wantStatusCode != 0 {
				if assert.NotNil(t, err) {
					assert.EqualValues(t, tt.wantStatusCode, err.StatusCode)
				}
			} else {
				assert.Nil(t, err)
				assert.EqualValues(t, tt.want, got)
			}
		})
	}
}
