package greetings

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func Test_Greetings(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		url      string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "root get",
			method:   http.MethodGet,
			url:      "/",
			wantCode: http.StatusOK,
			wantBody: "Hello, World!",
		},
		{
			name:     "root post",
			method:   http.MethodPost,
			url:      "/",
			wantCode: http.StatusOK,
			wantBody: "Hello, World!",
		},
		{
			name:     "path",
			method:   http.MethodGet,
			url:      "/greet/Bob",
			wantCode: http.StatusOK,
			wantBody: "Hello, Bob!",
		},
		{
			name:     "query with both",
			method:   http.MethodGet,
			url:      "/greet?salutation=Hi&name=Bob",
			wantCode: http.StatusOK,
			wantBody: "Hi, Bob!",
		},
		{
			name:     "query with none",
			method:   http.MethodGet,
			url:      "/greet",
			wantCode: http.StatusOK,
			wantBody: "Hello, World!",
		},
		{
			name:     "body with name",
			method:   http.MethodPost,
			url:      "/greet",
			body:     `{"name":"Alice"}`,
			wantCode: http.StatusOK,
			wantBody: "Hello, Alice!",
		},
		{
			name:     "body with both",
			method:   http.MethodPost,
			url:      "/greet",
			body:     `{"salutation":"Yo","name":"Alice"}`,
			wantCode: http.StatusOK,
			wantBody: "Yo, Alice!",
		},
		{
			name:     "ping",
			method:   http.MethodGet,
			url:      "/ping",
			wantCode: http.StatusOK,
			wantBody: PingResponse,
		},
		{
			name:     "king",
			method:   http.MethodGet,
			url:      "/kingkong/king",
			wantCode: http.StatusOK,
			wantBody: KingResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter()
			resp := performRequest(router, tt.method, tt.url, tt.body)
			assert.EqualValues(t, tt.wantCode, resp.Code)
			assert.EqualValues(t, tt.wantBody, resp.Body.String())
		})
	}
}

func Test_GreetBody_Malformed(t *testing.T) {
	for _, body := range []string{"", "{", `{"name":5}`} {
		router := setupRouter()
		resp := performRequest(router, http.MethodPost, "/greet", body)
		assert.EqualValues(t, http.StatusBadRequest, resp.Code)
	}
}

func setupRouter() *gin.Engine {
	engine := gin.New()
	handler := RoutesHandler{}
	handler.RegisterRoutes(routing.NewTopLevelRoutesGroup(engine))
	return engine
}

func performRequest(r http.Handler, method, url string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
