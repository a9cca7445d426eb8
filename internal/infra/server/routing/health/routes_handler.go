package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	healthController "github.com/lloydmeta/notably/internal/api/controllers/health"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

const Path = "/healthcheck"

type RoutesHandler struct {
	Controller healthController.Controller
}

func (h *RoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET(Path, h.check)
}

// @Summary Health check
// @ID health-check
// @Tags health
// @Description Reports whether the service and its dependencies are available
// @Produce  json
// @Success 200 {object} health.Status
// @Failure 503 {object} common.Body "A dependency is unavailable"
// @Router /healthcheck [get]
func (h *RoutesHandler) check(c *gin.Context) {
	if status, err := h.Controller.Check(c.Request.Context()); err != nil {
		routing.HandleApiErr(c, err)
	} else {
		c.JSON(http.StatusOK, status)
	}
}
