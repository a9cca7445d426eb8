package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestCheck(t *testing.T) {
	ok := pingerFunc(func(ctx context.Context) error { return nil })
	broken := pingerFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name           string
		dependencies   []Dependency
		wantDependency string
	}{
		{
			name:         "no dependencies",
			dependencies: nil,
		},
		{
			name:         "all healthy",
			dependencies: []Dependency{{Name: "a", Pinger: ok}, {Name: "b", Pinger: ok}},
		},
		{
			name:           "first failure wins",
			dependencies:   []Dependency{{Name: "a", Pinger: ok}, {Name: "b", Pinger: broken}, {Name: "c", Pinger: broken}},
			wantDependency: "b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(context.Background(), tt.dependencies)
			if tt.wantDependency == "" {
				assert.NoError(t, err)
			} else {
				var unhealthy Unhealthy
				if assert.True(t, errors.As(err, &unhealthy)) {
					assert.Equal(t, tt.wantDependency, unhealthy.Dependency)
					assert.NotContains(t, unhealthy.Error(), "connection refused")
				}
			}
		})
	}
}
