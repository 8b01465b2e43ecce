package handlers

import (
	"net/http"
	"strings"

	"tiendaapi/internal/models"
	"tiendaapi/internal/resource"
	"tiendaapi/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*Resource[models.User]
}

func NewUserHandler(service *resource.Service[models.User]) *UserHandler {
	return &UserHandler{Resource: NewResource(service, "/api/users")}
}

// ByName handles GET /api/users/name/:value. "asc" and "desc" sort by
// username; any other value is a username substring search.
func (h *UserHandler) ByName(c *gin.Context) {
	token := c.Param("value")

	var (
		users []models.User
		err   error
	)
	if resource.IsDirection(token) {
		users, err = h.service.Sort(c.Request.Context(), "username", token)
	} else {
		users, err = h.service.Filter(c.Request.Context(), store.Like("username", token))
	}

	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ByDomain handles GET /api/users/domain/:suffix
func (h *UserHandler) ByDomain(c *gin.Context) {
	suffix := strings.TrimSpace(c.Param("suffix"))
	if suffix == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Domain is required"})
		return
	}

	users, err := h.service.Filter(c.Request.Context(), store.Suffix("email", suffix))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ByEmail handles GET /api/users/email/:address and returns a single user.
func (h *UserHandler) ByEmail(c *gin.Context) {
	address := strings.TrimSpace(c.Param("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	user, err := h.service.FindOne(c.Request.Context(), store.Eq("email", address))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
