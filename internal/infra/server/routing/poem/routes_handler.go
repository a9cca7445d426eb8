package poem

import (
	"net/http"

	"github.com/gin-gonic/gin"

	poemController "github.com/lloydmeta/notably/internal/api/controllers/poem"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

var poemPath = "poem"

type RoutesHandler struct {
	Controller poemController.Controller
}

func (h *RoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET(poemPath, h.get)
}

// @Summary Get the poem
// @ID get-poem
// @Tags poem
// @Description Reads the configured poem file
// @Produce  json
// @Success 200 {object} poem.Poem
// @Failure 500 {object} common.Body "The poem file could not be read"
// @Router /poem [get]
func (h *RoutesHandler) get(c *gin.Context) {
	if p, err := h.Controller.Get(c.Request.Context()); err != nil {
		routing.HandleApiErr(c, err)
	} else {
		c.JSON(http.StatusOK, p)
	}
}
