package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/priyankar997/ejWireless/internal/pos"
)

// InitRoutes registers the form endpoints on the given Gin engine: the three
// menus of the application (Add Sale, Inventory, Reports) plus the store
// selector and a liveness check.
func InitRoutes(e *gin.Engine, service *pos.Service, logger *zap.Logger) {
	handler := NewPOSHandler(service, logger)

	e.Use(RequestLogger(logger))

	e.GET("/stores", handler.handleListStores)
	e.POST("/sales", handler.handleSubmitSale)
	e.GET("/inventory/:store", handler.handleGetInventory)
	e.POST("/inventory", handler.handleAddInventory)
	e.GET("/reports", handler.handleGetReport)
	e.GET("/reports/employees", handler.handleListEmployees)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
