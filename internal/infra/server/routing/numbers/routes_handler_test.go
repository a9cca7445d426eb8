package numbers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	numberController "github.com/lloydmeta/notably/internal/api/controllers/number"
	"github.com/lloydmeta/notably/internal/api/models/common"
	apiNumber "github.com/lloydmeta/notably/internal/api/models/number"
	"github.com/lloydmeta/notably/internal/domain/registry"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func Test_List_Empty(t *testing.T) {
	router, _ := setupRouter()
	resp := performRequest(router, http.MethodGet, "/numbers", "")
	assert.EqualValues(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func Test_Add(t *testing.T) {
	router, _ := setupRouter()
	resp := performRequest(router, http.MethodPost, "/numbers", "5")
	assert.EqualValues(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[5]", resp.Body.String())

	resp = performRequest(router, http.MethodPost, "/numbers", "-7")
	assert.EqualValues(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[5,-7]", resp.Body.String())

	resp = performRequest(router, http.MethodGet, "/numbers", "")
	assert.JSONEq(t, "[5,-7]", resp.Body.String())
}

func Test_Add_Malformed(t *testing.T) {
	for _, body := range []string{"", "five", "5.5", "3000000000", `{"n":5}`, "[5]", "null", " null\n"} {
		t.Run(body, func(t *testing.T) {
			router, numbers := setupRouter()
			resp := performRequest(router, http.MethodPost, "/numbers", body)
			assert.EqualValues(t, http.StatusBadRequest, resp.Code)
			assert.Empty(t, numbers.Snapshot())
			var respBody common.Body
			if err := json.Unmarshal(resp.Body.Bytes(), &respBody); err != nil {
				t.Error(err)
			} else {
				assert.EqualValues(t, "Bad Request", respBody.Status)
			}
		})
	}
}

func Test_Add_Concurrent(t *testing.T) {
	router, numbers := setupRouter()
	resp := performRequest(router, http.MethodPost, "/numbers", "5")
	assert.EqualValues(t, http.StatusOK, resp.Code)

	var wg sync.WaitGroup
	for _, body := range []string{"7", "9"} {
		wg.Add(1)
		go func(body string) {
			defer wg.Done()
			resp := performRequest(router, http.MethodPost, "/numbers", body)
			assert.EqualValues(t, http.StatusOK, resp.Code)
		}(body)
	}
	wg.Wait()

	final := numbers.Snapshot()
	assert.Len(t, final, 3)
	assert.ElementsMatch(t, []int32{5, 7, 9}, final)
}

func Test_Lookup(t *testing.T) {
	router, numbers := setupRouter()
	numbers.Append(3)

	resp := performRequest(router, http.MethodGet, "/lookup/3", "")
	assert.EqualValues(t, http.StatusOK, resp.Code)
	var found apiNumber.LookupResult
	if err := json.Unmarshal(resp.Body.Bytes(), &found); err != nil {
		t.Error(err)
	} else {
		assert.EqualValues(t, apiNumber.LookupResult{Number: 3, Found: true}, found)
	}

	resp = performRequest(router, http.MethodGet, "/lookup/4", "")
	assert.EqualValues(t, http.StatusNotFound, resp.Code)
	var notFound apiNumber.LookupResult
	if err := json.Unmarshal(resp.Body.Bytes(), &notFound); err != nil {
		t.Error(err)
	} else {
		assert.EqualValues(t, apiNumber.LookupResult{Number: 4, Found: false}, notFound)
	}
}

func Test_Lookup_Invalid(t *testing.T) {
	router, _ := setupRouter()
	for _, number := range []string{"abc", "3000000000", "1e3"} {
		resp := performRequest(router, http.MethodGet, "/lookup/"+number, "")
		assert.EqualValues(t, http.StatusBadRequest, resp.Code)
	}
}

func setupRouter() (*gin.Engine, registry.Registry) {
	engine := gin.New()
	numbers := registry.NewRegistry()
	handler := RoutesHandler{Controller: numberController.New(numbers)}
	handler.RegisterRoutes(routing.NewTopLevelRoutesGroup(engine))
	return engine, numbers
}

func performRequest(r http.Handler, method, url string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(""))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
