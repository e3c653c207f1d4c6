package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Всё, кроме health-check,
// закрыто API-ключом.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Карта: слои, видимая область, видимость групп
	m := secured.Group("/map")
	{
		m.GET("/layers", h.getLayers)
		m.PUT("/layers/:key/visibility", h.setLayerVisibility)
		m.POST("/layers/:key/toggle", h.toggleLayer)
		m.PUT("/markers/visibility", h.setAllMarkersVisibility)
		m.GET("/status", h.getMapStatus)
		m.GET("/viewport", h.getViewport)
		m.PUT("/viewport", h.moveViewport)
		m.POST("/refresh", h.refreshMap)
	}

	markers := secured.Group("/markers")
	{
		markers.GET("", h.listMarkers)
		markers.POST("", h.createMarker)
		markers.GET("/closest", h.closestMarker)
		markers.GET("/admin", h.adminMarkers)
		markers.PUT("/editing", h.setEditingMarker)
		markers.PUT("/:id", h.updateMarker)
		markers.DELETE("/:id", h.deleteMarker)
	}

	incidents := secured.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.PUT("/editing", h.setEditingIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
	}

	route := secured.Group("/route")
	{
		route.GET("", h.getRoute)
		route.POST("", h.buildRoute)
		route.DELETE("", h.clearRoute)
	}

	search := secured.Group("/search")
	{
		search.GET("", h.searchPlaces)
		search.GET("/state", h.getSearch)
		search.PUT("/selection", h.selectPlace)
		search.DELETE("/selection", h.clearSelection)
	}

	notifications := secured.Group("/notifications")
	{
		notifications.GET("", h.getNotifications)
		notifications.POST("/refresh", h.refreshNotifications)
		notifications.GET("/history", h.notificationHistory)
		notifications.PUT("/:id/read", h.markAsRead)
		notifications.DELETE("/count", h.resetCount)
		notifications.DELETE("/popup", h.closePopup)
	}

	sharing := secured.Group("/sharing")
	{
		sharing.GET("", h.getSharing)
		sharing.PUT("", h.setSharing)
		sharing.POST("/toggle", h.toggleSharing)
	}
	secured.GET("/household/positions", h.householdPositions)

	loc := secured.Group("/location")
	{
		loc.GET("", h.locate)
		loc.POST("/fix", h.pushFix)
		loc.PUT("/permission", h.setPermission)
		loc.GET("/reverse", h.reverseGeocode)
	}

	conn := secured.Group("/connection")
	{
		conn.GET("", h.getConnection)
		conn.POST("/connect", h.connect)
		conn.POST("/disconnect", h.disconnect)
	}
}
