package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	noteController "github.com/lloydmeta/notably/internal/api/controllers/note"
	apiNote "github.com/lloydmeta/notably/internal/api/models/note"
	"github.com/lloydmeta/notably/internal/domain/note"
	"github.com/lloydmeta/notably/internal/infra/server/routing"
)

var subPath = "api/notes"

var noteIdKey = "note_id"

type RoutesHandler struct {
	Controller noteController.Controller
}

func (h *RoutesHandler) RegisterRoutes(routerGroup *gin.RouterGroup) {
	subGroup := routerGroup.Group(subPath)
	subGroup.POST("", h.create)
	subGroup.GET("", h.list)
	subGroup.GET("/:"+noteIdKey, h.get)
	subGroup.PATCH("/:"+noteIdKey, h.patch)
	subGroup.DELETE("/:"+noteIdKey, h.delete)
}

// @Summary Add a new Note
// @ID create-note
// @Tags notes
// @Description Creates a new Note
// @Accept  json
// @Produce  json
// @Param   newNote body note.NewNote true "The request body"
// @Success 201 {object} note.Note
// @Failure 400 {object} common.Body "Invalid JSON or blank fields"
// @Failure 503 {object} common.Body "Store unavailable"
// @Router /api/notes [post]
func (h *RoutesHandler) create(c *gin.Context) {
	var newNote apiNote.NewNote
	if err := c.ShouldBindJSON(&newNote); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		if n, err := h.Controller.Create(c.Request.Context(), &newNote); err == nil {
			c.JSON(http.StatusCreated, n)
		} else {
			routing.HandleApiErr(c, err)
		}
	}
}

// @Summary List Notes
// @ID list-notes
// @Tags notes
// @Description Lists Notes by id ascending, one page at a time. Pages past the end are empty.
// @Accept  json
// @Produce  json
// @Param   page query int false "1-based page number" default(1)
// @Param   page_size query int false "Notes per page (max 100)" default(10)
// @Success 200 {array} note.Note
// @Failure 400 {object} common.Body "Invalid pagination"
// @Failure 503 {object} common.Body "Store unavailable"
// @Router /api/notes [get]
func (h *RoutesHandler) list(c *gin.Context) {
	var query apiNote.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		routing.HandleJsonSerdesErr(c, err)
	} else {
		if notes, err := h.Controller.List(c.Request.Context(), &query); err == nil {
			c.JSON(http.StatusOK, notes)
		} else {
			routing.HandleApiErr(c, err)
		}
	}
}

// @Summary Get a Note
// @ID get-existing-note
// @Tags notes
// @Description Retrieves a persisted Note
// @Accept  json
// @Produce  json
// @Param   note_id path int true "The id of the Note"
// @Success 200 {object} note.Note
// @Failure 400 {object} common.Body "Invalid id"
// @Failure 404 {object} common.Body "Note does not exist"
// @Router /api/notes/{note_id} [get]
func (h *RoutesHandler) get(c *gin.Context) {
	if id, ok := routing.ParseInt64Param(c, noteIdKey); ok {
		if n, err := h.Controller.Get(c.Request.Context(), note.Id(id)); err == nil {
			c.JSON(http.StatusOK, n)
		} else {
			routing.HandleApiErr(c, err)
		}
	}
}

// @Summary Patch a Note
// @ID patch-existing-note
// @Tags notes
// @Description Replaces only the given fields of a persisted Note
// @Accept  json
// @Produce  json
// @Param   note_id path int true "The id of the Note"
// @Param   notePatch body note.NotePatch true "The request body"
// @Success 200 {object} note.Note
// @Failure 400 {object} common.Body "Invalid id, JSON or blank fields"
// @Failure 404 {object} common.Body "Note does not exist"
// @Router /api/notes/{note_id} [patch]
func (h *RoutesHandler) patch(c *gin.Context) {
	if id, ok := routing.ParseInt64Param(c, noteIdKey); ok {
		var patch apiNote.NotePatch
		if err := routing.ShouldBindNonNullJSON(c, &patch); err != nil {
			routing.HandleJsonSerdesErr(c, err)
		} else {
			if n, err := h.Controller.Patch(c.Request.Context(), note.Id(id), &patch); err == nil {
				c.JSON(http.StatusOK, n)
			} else {
				routing.HandleApiErr(c, err)
			}
		}
	}
}

// @Summary Delete a Note
// @ID delete-existing-note
// @Tags notes
// @Description Hard-deletes a persisted Note
// @Accept  json
// @Produce  json
// @Param   note_id path int true "The id of the Note"
// @Success 204
// @Failure 400 {object} common.Body "Invalid id"
// @Failure 404 {object} common.Body "Note does not exist"
// @Router /api/notes/{note_id} [delete]
func (h *RoutesHandler) delete(c *gin.Context) {
	if id, ok := routing.ParseInt64Param(c, noteIdKey); ok {
		if err := h.Controller.Delete(c.Request.Context(), note.Id(id)); err == nil {
			c.Status(http.StatusNoContent)
		} else {
			routing.HandleApiErr(c, err)
		}
	}
}
