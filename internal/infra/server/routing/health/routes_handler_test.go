package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/notably/internal/api/models/common"
	apiHealth "github.com/lloydmeta/notably/internal/api/models/health"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockHealthController struct {
	checkCalled   uint
	checkOverride func() (*apiHealth.Status, *common.ApiError)
}

func (m *mockHealthController) Check(ctx context.Context) (*apiHealth.Status, *common.ApiError) {
	m.checkCalled++
	if m.checkOverride != nil {
		return m.checkOverride()
	} else {
		return &apiHealth.Status{Status: apiHealth.StatusOk, Message: "API Services"}, nil
	}
}

func Test_Check_Ok(t *testing.T) {
	router, mockController := setupRouter()
	resp := performRequest(router)
	assert.EqualValues(t, http.StatusOK, resp.Code)
	assert.EqualValues(t, 1, mockController.checkCalled)
	assert.JSONEq(t, `{"status":"ok","message":"API Services"}`, resp.Body.String())
}

func Test_Check_Unavailable(t *testing.T) {
	router, mockController := setupRouter()
	apiErr := common.NewApiError(http.StatusServiceUnavailable, "Dependency [mysql] is unavailable")
	mockController.checkOverride = func() (*apiHealth.Status, *common.ApiError) {
		return nil, apiErr
	}
	resp := performRequest(router)
	assert.EqualValues(t, http.StatusServiceUnavailable, resp.Code)
	var respBody common.Body
	if err := json.Unmarshal(resp.Body.Bytes(), &respBody); err != nil {
		t.Error(err)
	} else {
		assert.EqualValues(t, apiErr.Body, respBody)
	}
}

func setupRouter() (*gin.Engine, *mockHealthController) {
	engine := gin.New()
	mockController := &mockHealthController{}
	handler := RoutesHandler{Controller: mockController}
	handler.RegisterRoutes(routing.NewTopLevelRoutesGroup(engine))
	return engine, mockController
}

func performRequest(r http.Handler) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, Path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
