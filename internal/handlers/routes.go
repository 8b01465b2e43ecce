package handlers

import (
	"database/sql"
	"time"

	"tiendaapi/internal/middleware"
	"tiendaapi/internal/monitoring"
	"tiendaapi/internal/resource"
	"tiendaapi/internal/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the product and user resources, status and monitoring
// endpoints onto router, all backed by db.
func RegisterRoutes(router *gin.Engine, db *sql.DB) {
	productTable := store.NewProductTable(db)
	userTable := store.NewUserTable(db)

	products := NewProductHandler(resource.NewProductService(productTable))
	users := NewUserHandler(resource.NewUserService(userTable))
	monitor := NewMonitorHandler(monitoring.NewService(time.Now(), db, productTable, userTable))

	router.Use(middleware.RequestIDMiddleware())
	router.Use(monitoring.RequestMetricsMiddleware())

	router.GET("/health", HealthCheck)

	api := router.Group("/api")
	api.GET("/status", Status)

	productRoutes := api.Group("/products")
	{
		productRoutes.GET("", products.List)
		productRoutes.POST("", products.Create)
		productRoutes.GET("/stockbajo", products.LowStock)
		productRoutes.GET("/price/:value", products.ByPrice)
		productRoutes.GET("/search/:word", products.SearchDescription)
		productRoutes.GET("/:id", products.Get)
		productRoutes.PUT("/:id", products.Replace)
		productRoutes.DELETE("/:id", products.Delete)
	}

	userRoutes := api.Group("/users")
	{
		userRoutes.GET("", users.List)
		userRoutes.POST("", users.Create)
		userRoutes.GET("/name/:value", users.ByName)
		userRoutes.GET("/domain/:suffix", users.ByDomain)
		userRoutes.GET("/email/:address", users.ByEmail)
		userRoutes.GET("/:id", users.Get)
		userRoutes.PUT("/:id", users.Replace)
		userRoutes.DELETE("/:id", users.Delete)
	}

	monitorRoutes := api.Group("/monitor")
	{
		monitorRoutes.GET("/status", monitor.Status)
		monitorRoutes.GET("/snapshot", monitor.Snapshot)
	}
}
