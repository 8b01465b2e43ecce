package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"tiendaapi/internal/resource"

	"github.com/gin-gonic/gin"
)

// Resource maps the generic CRUD operations of a resource.Service onto gin.
type Resource[T any] struct {
	service  *resource.Service[T]
	basePath string
}

func NewResource[T any](service *resource.Service[T], basePath string) *Resource[T] {
	return &Resource[T]{service: service, basePath: basePath}
}

// List handles GET <base>
func (h *Resource[T]) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get handles GET <base>/:id
func (h *Resource[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create handles POST <base>
func (h *Resource[T]) Create(c *gin.Context) {
	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", h.basePath, h.service.ID(created)))
	c.JSON(http.StatusCreated, created)
}

// Replace handles PUT <base>/:id
func (h *Resource[T]) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload T
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, payload); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE <base>/:id
func (h *Resource[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID accepts ids in the range of the SERIAL key columns. A well-formed
// number outside that range cannot name a row, so it is answered with 404
// without querying the database.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found: id out of range"})
			return 0, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return int(id), true
}

// respondError turns a service outcome into a status code. Internal failures
// were already logged by the service and carry no detail to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resource.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, resource.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, resource.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
