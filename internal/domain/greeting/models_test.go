package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Format(t *testing.T) {
	hi := "Hi"
	bob := "Bob"
	tests := []struct {
		name    string
		request Request
		want    string
	}{
		{
			name:    "defaults",
			request: Request{},
			want:    "Hello, World!",
		},
		{
			name:    "name only",
			request: Request{Name: &bob},
			want:    "Hello, Bob!",
		},
		{
			name:    "both",
			request: Request{Salutation: &hi, Name: &bob},
			want:    "Hi, Bob!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.request.Format())
		})
	}
}
