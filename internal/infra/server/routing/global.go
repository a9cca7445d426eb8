package routing

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/lloydmeta/notably/internal/api/models/common"
)

var notFoundErr = common.NewApiError(http.StatusNotFound, "No such route.")

var noMethodErr = common.NewApiError(http.StatusMethodNotAllowed, "Method not allowed on this route.")

// RoutesHandler is implemented by every resource's handler
type RoutesHandler interface {
	RegisterRoutes(routerGroup *gin.RouterGroup)
}

func NewTopLevelRoutesGroup(ginEngine *gin.Engine) *gin.RouterGroup {
	return ginEngine.Group("")
}

func NoRoute(c *gin.Context) {
	HandleApiErr(c, notFoundErr)
}

func NoMethod(c *gin.Context) {
	HandleApiErr(c, noMethodErr)
}

func HandleApiErr(c *gin.Context, apiError *common.ApiError) {
	c.JSON(apiError.StatusCode, apiError.Body)
}

var NullBodyErr = errors.New("Request body must not be null")

var jsonNull = []byte("null")

// ShouldBindNonNullJSON works like ShouldBindJSON but rejects a literal null body,
// which encoding/json would otherwise accept and leave obj at its zero value
func ShouldBindNonNullJSON(c *gin.Context, obj interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if bytes.Equal(bytes.TrimSpace(body), jsonNull) {
		return NullBodyErr
	}
	return binding.JSON.BindBody(body, obj)
}

func HandleJsonSerdesErr(c *gin.Context, err error) {
	HandleApiErr(c, common.NewApiError(http.StatusBadRequest, err.Error()))
}

// ParseInt64Param reads a path parameter as a positive int64, writing a 400 and
// returning false if it is not one
func ParseInt64Param(c *gin.Context, key string) (int64, bool) {
	raw := c.Param(key)
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		HandleApiErr(c, common.NewApiError(http.StatusBadRequest, fmt.Sprintf("Invalid %s [%s]: must be a positive integer", key, raw)))
		return 0, false
	}
	return parsed, true
}

// ParseInt32Param reads a path parameter as an int32, writing a 400 and returning
// false if it is not one
func ParseInt32Param(c *gin.Context, key string) (int32, bool) {
	raw := c.Param(key)
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		HandleApiErr(c, common.NewApiError(http.StatusBadRequest, fmt.Sprintf("Invalid %s [%s]: must be a 32-bit integer", key, raw)))
		return 0, false
	}
	return int32(parsed), true
}
