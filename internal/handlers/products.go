package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"tiendaapi/internal/models"
	"tiendaapi/internal/resource"
	"tiendaapi/internal/store"

	"github.com/gin-gonic/gin"
)

const lowStockThreshold = 10

type ProductHandler struct {
	*Resource[models.Product]
}

func NewProductHandler(service *resource.Service[models.Product]) *ProductHandler {
	return &ProductHandler{Resource: NewResource(service, "/api/products")}
}

// ByPrice handles GET /api/products/price/:value. "asc" and "desc" sort the
// catalogue by price; a number filters on exact price.
func (h *ProductHandler) ByPrice(c *gin.Context) {
	token := c.Param("value")

	var (
		products []models.Product
		err      error
	)
	if resource.IsDirection(token) {
		products, err = h.service.Sort(c.Request.Context(), "price", token)
	} else {
		price, ok := parsePrice(token)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a number, or 'asc'/'desc' to sort"})
			return
		}
		products, err = h.service.Filter(c.Request.Context(), store.Eq("price", price))
	}

	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// LowStock handles GET /api/products/stockbajo
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.service.Filter(c.Request.Context(), store.Lt("stock", lowStockThreshold))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchDescription handles GET /api/products/search/:word
func (h *ProductHandler) SearchDescription(c *gin.Context) {
	word := c.Param("word")
	if strings.TrimSpace(word) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search word is required"})
		return
	}

	products, err := h.service.Filter(c.Request.Context(), store.Like("description", word))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func parsePrice(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
