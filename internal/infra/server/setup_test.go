package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/notably/internal/infra/mysql/schema"
)

type mockTableSetup struct {
	checkCalled   uint
	checkOverride func() error
	runCalled     uint
	runOverride   func() error
}

func (m *mockTableSetup) Check(ctx context.Context) error {
	m.checkCalled++
	if m.checkOverride != nil {
		return m.checkOverride()
	} else {
		return nil
	}
}

func (m *mockTableSetup) Run(ctx context.Context) error {
	m.runCalled++
	if m.runOverride != nil {
		return m.runOverride()
	} else {
		return nil
	}
}

func Test_setupImpl_RunIfNeeded(t *testing.T) {
	connectionErr := errors.New("connection refused")
	runErr := errors.New("no privileges")
	tests := []struct {
		name          string
		tableSetup    *mockTableSetup
		wantRunCalled uint
		wantErr       error
	}{
		{
			name:          "already set up",
			tableSetup:    &mockTableSetup{},
			wantRunCalled: 0,
		},
		{
			name: "missing tables",
			tableSetup: &mockTableSetup{
				checkOverride: func() error {
					return schema.TablesNotInstalled{Missing: []string{schema.NotesTable}}
				},
			},
			wantRunCalled: 1,
		},
		{
			name: "missing tables but run fails",
			tableSetup: &mockTableSetup{
				checkOverride: func() error {
					return schema.TablesNotInstalled{Missing: []string{schema.NotesTable}}
				},
				runOverride: func() error {
					return runErr
				},
			},
			wantRunCalled: 1,
			wantErr:       runErr,
		},
		{
			name: "check fails",
			tableSetup: &mockTableSetup{
				checkOverride: func() error {
					return connectionErr
				},
			},
			wantRunCalled: 0,
			wantErr:       connectionErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupImpl{tableSetup: tt.tableSetup}
			err := s.RunIfNeeded(context.Background())
			assert.EqualValues(t, 1, tt.tableSetup.checkCalled)
			assert.EqualValues(t, tt.wantRunCalled, tt.tableSetup.runCalled)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_setupImpl_Check(t *testing.T) {
	missing := schema.TablesNotInstalled{Missing: []string{schema.NotesTable}}
	tableSetup := &mockTableSetup{
		checkOverride: func() error {
			return missing
		},
	}
	s := setupImpl{tableSetup: tableSetup}
	err := s.Check(context.Background())
	assert.EqualValues(t, missing, err)
	assert.EqualValues(t, 0, tableSetup.runCalled)
}
