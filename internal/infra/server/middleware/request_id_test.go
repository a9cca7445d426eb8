package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func Test_RequestId(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{
			name: "generated",
		},
		{
			name:     "propagated",
			incoming: "abc-123",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			engine := gin.New()
			engine.Use(RequestId())
			engine.GET("/", func(c *gin.Context) {
				seen = GetRequestId(c)
				c.Status(http.StatusOK)
			})
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIdHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			returned := w.Header().Get(RequestIdHeader)
			assert.EqualValues(t, seen, returned)
			if tt.incoming != "" {
				assert.EqualValues(t, tt.incoming, returned)
			} else {
				_, err := uuid.Parse(returned)
				assert.NoError(t, err)
			}
		})
	}
}
