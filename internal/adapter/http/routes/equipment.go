package routes

import (
	"catalogo_equipamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing           = "/ping"
	PathEquipments     = "/equipments"
	PathEquipmentTypes = "/equipment-types"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addEquipmentRoutes(rg *gin.RouterGroup, h *handlers.EquipmentHandler) {
	equipments := rg.Group(PathEquipments)
	{
		equipments.GET("", h.ListEquipments)
		equipments.POST("", h.CreateEquipment)
		equipments.GET("/:id", h.GetEquipment)
		equipments.PATCH("/:id", h.UpdateEquipment)
		equipments.DELETE("/:id", h.DeleteEquipment)
	}

	rg.GET(PathEquipmentTypes, h.ListEquipmentTypes)
}
