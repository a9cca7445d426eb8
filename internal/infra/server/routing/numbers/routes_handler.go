package numbers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	numberController "github.com/lloydmeta/notably/internal/api/controllers/number"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

var numbersPath = "numbers"

var lookupPath = "lookup"

var numberKey = "number"

type RoutesHandler struct {
	Controller numberController.Controller
}

func (h *RoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET(numbersPath, h.list)
	routerGroup.POST(numbersPath, h.add)
	routerGroup.GET(lookupPath+"/:"+numberKey, h.lookup)
}

// @Summary List numbers
// @ID list-numbers
// @Tags numbers
// @Description Returns every registered number in insertion order
// @Produce  json
// @Success 200 {array} integer
// @Router /numbers [get]
func (h *RoutesHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.Controller.List(c.Request.Context()))
}

// @Summary Register a number
// @ID add-number
// @Tags numbers
// @Description Appends a number and returns every registered number right after the append
// @Accept  json
// @Produce  json
// @Param   number body integer true "A 32-bit integer"
// @Success 200 {array} integer
// @Failure 400 {object} common.Body "Not a 32-bit integer"
// @Router /numbers [post]
func (h *RoutesHandler) add(c *gin.Context) {
	var number int32
	if err := routing.ShouldBindNonNullJSON(c, &number); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		c.JSON(http.StatusOK, h.Controller.Add(c.Request.Context(), number))
	}
}

// @Summary Look a number up
// @ID lookup-number
// @Tags numbers
// @Description Tells whether a number has been registered
// @Produce  json
// @Param   number path integer true "A 32-bit integer"
// @Success 200 {object} number.LookupResult
// @Failure 404 {object} number.LookupResult
// @Failure 400 {object} common.Body "Not a 32-bit integer"
// @Router /lookup/{number} [get]
func (h *RoutesHandler) lookup(c *gin.Context) {
	if number, ok := routing.ParseInt32Param(c, numberKey); ok {
		result := h.Controller.Lookup(c.Request.Context(), number)
		if result.Found {
			c.JSON(http.StatusOK, result)
		} else {
			c.JSON(http.StatusNotFound, result)
		}
	}
}
