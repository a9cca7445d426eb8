package note

import (
	"context"
	"time"

	"github.com/lloydmeta/notably/internal/domain/metadata"
)

var MockNow = metadata.Truncate(time.Now())

var MockDomainNote = Note{
	ID:       1,
	Title:    "mock",
	Content:  "mocked content",
	Metadata: metadata.New(MockNow),
}

type MockNotesService struct {
	CreateCalled   uint
	CreateOverride func() (*Note, error)
	ListCalled     uint
	ListOverride   func() ([]Note, error)
	GetCalled      uint
	GetOverride    func() (*Note, error)
	PatchCalled    uint
	PatchOverride  func() (*Note, error)
	DeleteCalled   uint
	DeleteOverride func() error
	PingCalled     uint
	PingOverride   func() error
}

func (m *MockNotesService) Create(ctx context.Context, newNote *NewNote) (*Note, error) {
	m.CreateCalled++
	if m.CreateOverride != nil {
		return m.CreateOverride()
	} else {
		return &MockDomainNote, nil
	}
}

func (m *MockNotesService) List(ctx context.Context, page Page) ([]Note, error) {
	m.ListCalled++
	if m.ListOverride != nil {
		return m.ListOverride()
	} else {
		return []Note{MockDomainNote}, nil
	}
}

func (m *MockNotesService) Get(ctx context.Context, id Id) (*Note, error) {
	m.GetCalled++
	if m.GetOverride != nil {
		return m.GetOverride()
	} else {
		return &MockDomainNote, nil
	}
}

func (m *MockNotesService) Patch(ctx context.Context, id Id, patch *NotePatch) (*Note, error) {
	m.PatchCalled++
	if m.PatchOverride != nil {
		return m.PatchOverride()
	} else {
		return &MockDomainNote, nil
	}
}

func (m *MockNotesService) Delete(ctx context.Context, id Id) error {
	m.DeleteCalled++
	if m.DeleteOverride != nil {
		return m.DeleteOverride()
	} else {
		return nil
	}
}

func (m *MockNotesService) Ping(ctx context.Context) error {
	m.PingCalled++
	if m.PingOverride != nil {
		return m.PingOverride()
	} else {
		return nil
	}
}
