package main

import (
	"log"

	"tiendaapi/internal/config"
	"tiendaapi/internal/database"
	"tiendaapi/internal/handlers"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.InitDB()
	defer database.CloseDB()
	database.CreateTables()

	router := gin.Default()
	handlers.RegisterRoutes(router, database.DB)

	port := config.Port()
	log.Printf("Tienda API starting on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
