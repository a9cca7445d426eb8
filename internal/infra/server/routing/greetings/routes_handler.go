package greetings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apiGreeting "github.com/lloydmeta/notably/internal/api/models/greeting"
	"github.com/lloydmeta/notably/internal/domain/greeting"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

const (
	PingResponse = "pong"
	KingResponse = "Kong"
)

var greetPath = "greet"

var nameKey = "name"

// RoutesHandler serves the plain-text greeting endpoints, which need no collaborators
type RoutesHandler struct{}

func (h *RoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", h.root)
	routerGroup.POST("/", h.root)
	routerGroup.GET(greetPath+"/:"+nameKey, h.greetPath)
	routerGroup.GET(greetPath, h.greetQuery)
	routerGroup.POST(greetPath, h.greetBody)
	routerGroup.GET("ping", h.ping)

	kingKong := routerGroup.Group("kingkong")
	kingKong.GET("king", h.king)
}

// @Summary Default greeting
// @ID root-greeting
// @Tags greetings
// @Produce plain
// @Success 200 {string} string "Hello, World!"
// @Router / [get]
func (h *RoutesHandler) root(c *gin.Context) {
	var request greeting.Request
	c.String(http.StatusOK, request.Format())
}

// @Summary Greet by name
// @ID greet-path
// @Tags greetings
// @Produce plain
// @Param   name path string true "Who to greet"
// @Success 200 {string} string "Hello, Bob!"
// @Router /greet/{name} [get]
func (h *RoutesHandler) greetPath(c *gin.Context) {
	name := c.Param(nameKey)
	request := greeting.Request{Name: &name}
	c.String(http.StatusOK, request.Format())
}

// @Summary Greet from query parameters
// @ID greet-query
// @Tags greetings
// @Produce plain
// @Param   salutation query string false "Defaults to Hello"
// @Param   name query string false "Defaults to World"
// @Success 200 {string} string "Hi, Bob!"
// @Failure 400 {object} common.Body "Invalid query"
// @Router /greet [get]
func (h *RoutesHandler) greetQuery(c *gin.Context) {
	var request apiGreeting.Request
	if err := c.ShouldBindQuery(&request); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		h.greet(c, &request)
	}
}

// @Summary Greet from a JSON body
// @ID greet-body
// @Tags greetings
// @Accept  json
// @Produce plain
// @Param   greeting body greeting.Request true "How to greet"
// @Success 200 {string} string "Hi, Bob!"
// @Failure 400 {object} common.Body "Invalid JSON"
// @Router /greet [post]
func (h *RoutesHandler) greetBody(c *gin.Context) {
	var request apiGreeting.Request
	if err := c.ShouldBindJSON(&request); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		h.greet(c, &request)
	}
}

func (h *RoutesHandler) greet(c *gin.Context, request *apiGreeting.Request) {
	domainRequest := request.ToDomainRequest()
	c.String(http.StatusOK, domainRequest.Format())
}

// @Summary Ping
// @ID ping
// @Tags greetings
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /ping [get]
func (h *RoutesHandler) ping(c *gin.Context) {
	c.String(http.StatusOK, PingResponse)
}

// @Summary King
// @ID kingkong-king
// @Tags greetings
// @Produce plain
// @Success 200 {string} string "Kong"
// @Router /kingkong/king [get]
func (h *RoutesHandler) king(c *gin.Context) {
	c.String(http.StatusOK, KingResponse)
}
