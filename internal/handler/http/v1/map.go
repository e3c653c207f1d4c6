package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
)

// @Summary Export rendered layers as GeoJSON
// @Description FeatureCollection of every attached layer and overlay, or of a single layer
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param layer query string false "Layer key"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/layers [get]
func (h *Handler) getLayers(c *gin.Context) {
	data, err := h.deps.Viewport.GeoJSON(c.Query("layer"))
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "getLayers"), err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

// @Summary Get map view status
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MapStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/status [get]
func (h *Handler) getMapStatus(c *gin.Context) {
	v := h.deps.View
	c.JSON(http.StatusOK, MapStatusResponse{
		Markers:     v.MarkerStatus(),
		Incidents:   v.IncidentStatus(),
		Groups:      GroupsToResponses(v.Groups()),
		MarkerTypes: v.MarkerTypes(),
		Notice:      v.Notice(),
	})
}

// @Summary Get the visible map area
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ViewportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/viewport [get]
func (h *Handler) getViewport(c *gin.Context) {
	c.JSON(http.StatusOK, BoundsToViewportResponse(h.deps.Viewport.Bounds()))
}

// @Summary Move the map
// @Description Markers for the new area are fetched after the debounce delay
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param viewport body ViewportRequest true "New visible area"
// @Success 202 {object} ViewportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/viewport [put]
func (h *Handler) moveViewport(c *gin.Context) {
	var input ViewportRequest
	log := h.logger.WithField("method", "moveViewport")
	if !h.bind(c, log, &input) {
		return
	}

	bounds := boundsFromDTO(input)
	if !bounds.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "southWest must be south-west of northEast"})
		return
	}
	h.deps.Viewport.MoveTo(bounds)
	c.JSON(http.StatusAccepted, BoundsToViewportResponse(bounds, true))
}

// @Summary Show or hide a layer group
// @Tags Map
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Layer key (marker type or INCIDENTS)"
// @Param visibility body VisibilityRequest true "Visibility"
// @Success 200 {object} VisibilityResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Layer not found"
// @Router /map/layers/{key}/visibility [put]
func (h *Handler) setLayerVisibility(c *gin.Context) {
	var input VisibilityRequest
	key := c.Param("key")
	log := h.logger.WithField("method", "setLayerVisibility").WithField("key", key)
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.deps.View.SetVisibility(key, *input.Visible); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, VisibilityResponse{Key: key, Visible: *input.Visible})
}

// @Summary Toggle a layer group
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Param key path string true "Layer key (marker type or INCIDENTS)"
// @Success 200 {object} VisibilityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Layer not found"
// @Router /map/layers/{key}/toggle [post]
func (h *Handler) toggleLayer(c *gin.Context) {
	key := c.Param("key")
	visible, err := h.deps.View.ToggleVisibility(key)
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "toggleLayer").WithField("key", key), err)
		return
	}
	c.JSON(http.StatusOK, VisibilityResponse{Key: key, Visible: visible})
}

// @Summary Show or hide all marker layers
// @Tags Map
// @Accept json
// @Security ApiKeyAuth
// @Param visibility body VisibilityRequest true "Visibility"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/markers/visibility [put]
func (h *Handler) setAllMarkersVisibility(c *gin.Context) {
	var input VisibilityRequest
	log := h.logger.WithField("method", "setAllMarkersVisibility")
	if !h.bind(c, log, &input) {
		return
	}
	if err := h.deps.View.SetAllMarkersVisibility(*input.Visible); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Refetch markers and incidents
// @Description Backend errors are reported in the map status, not as a failed request
// @Tags Map
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} MapStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /map/refresh [post]
func (h *Handler) refreshMap(c *gin.Context) {
	log := h.logger.WithField("method", "refreshMap")
	ctx := c.Request.Context()

	if err := h.deps.View.RefreshMarkers(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh markers")
	}
	if err := h.deps.View.RefreshIncidents(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh incidents")
	}
	h.getMapStatus(c)
}

// @Summary List markers in the current area
// @Tags Markers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]models.Marker
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /markers [get]
func (h *Handler) listMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.View.Markers())
}

// @Summary Create a marker
// @Tags Markers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param marker body MarkerRequest true "Marker"
// @Success 201 {object} models.Marker
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /markers [post]
func (h *Handler) createMarker(c *gin.Context) {
	var input MarkerRequest
	log := h.logger.WithField("method", "createMarker")
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToMarkerModel(input)
	if err := h.deps.View.CreateMarker(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Update a marker
// @Tags Markers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Marker ID"
// @Param marker body MarkerRequest true "Marker"
// @Success 200 {object} models.Marker
// @Failure 400 {object} map[string]string "Invalid marker ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /markers/{id} [put]
func (h *Handler) updateMarker(c *gin.Context) {
	id, ok := idParam(c, "marker")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateMarker").WithField("id", id)

	var input MarkerRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToMarkerModel(input)
	model.ID = id
	if err := h.deps.View.UpdateMarker(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Delete a marker
// @Tags Markers
// @Security ApiKeyAuth
// @Param id path int true "Marker ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid marker ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /markers/{id} [delete]
func (h *Handler) deleteMarker(c *gin.Context) {
	id, ok := idParam(c, "marker")
	if !ok {
		return
	}
	if err := h.deps.View.DeleteMarker(c.Request.Context(), id); err != nil {
		h.respondError(c, h.logger.WithField("method", "deleteMarker").WithField("id", id), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set or clear the marker being edited
// @Description Background refreshes are suppressed while a marker is being edited
// @Tags Markers
// @Accept json
// @Security ApiKeyAuth
// @Param editing body EditingRequest true "Marker ID or null"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /markers/editing [put]
func (h *Handler) setEditingMarker(c *gin.Context) {
	var input EditingRequest
	if !h.bind(c, h.logger.WithField("method", "setEditingMarker"), &input) {
		return
	}
	if input.ID == nil {
		h.deps.View.ClearEditingMarker()
	} else {
		h.deps.View.SetEditingMarker(*input.ID)
	}
	c.Status(http.StatusNoContent)
}

// @Summary Find the closest marker of a type
// @Description Uses the given point or, when omitted, the user's position
// @Tags Markers
// @Produce json
// @Security ApiKeyAuth
// @Param type query string true "Marker type"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} models.ClosestMarker
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No marker of this type"
// @Failure 422 {object} map[string]string "Position unavailable"
// @Router /markers/closest [get]
func (h *Handler) closestMarker(c *gin.Context) {
	log := h.logger.WithField("method", "closestMarker")
	markerType := c.Query("type")
	if markerType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type is required"})
		return
	}

	var from geo.LatLng
	if c.Query("lat") != "" || c.Query("lng") != "" {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		from = geo.LatLng{Lat: lat, Lng: lng}
		if errLat != nil || errLng != nil || !from.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
	} else {
		pos, err := h.deps.Locator.Locate(c.Request.Context())
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		from = pos
	}

	closest, err := h.deps.Markers.FindClosest(c.Request.Context(), from, markerType)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if closest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no marker of type " + markerType})
		return
	}
	c.JSON(http.StatusOK, closest)
}

// @Summary List all markers for administration
// @Description Filtered list; the result is also shown in the ADMIN layer group
// @Tags Markers
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Free-text filter"
// @Param type query string false "Marker type"
// @Success 200 {array} models.Marker
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /markers/admin [get]
func (h *Handler) adminMarkers(c *gin.Context) {
	log := h.logger.WithField("method", "adminMarkers")
	markers, err := h.deps.View.AdminMarkers(c.Request.Context(), mapview.AdminFilter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if err := h.deps.View.SetAdminMarkers(markers); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, markers)
}

// @Summary List incidents
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.View.Incidents())
}

// @Summary Create an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body IncidentRequest true "Incident"
// @Success 201 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input IncidentRequest
	log := h.logger.WithField("method", "createIncident")
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.deps.View.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Update an incident
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Param incident body IncidentRequest true "Incident"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, ok := idParam(c, "incident")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input IncidentRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	model.ID = id
	if err := h.deps.View.UpdateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, model)
}

// @Summary Delete an incident
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path int true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, ok := idParam(c, "incident")
	if !ok {
		return
	}
	if err := h.deps.View.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, h.logger.WithField("method", "deleteIncident").WithField("id", id), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Set or clear the incident being edited
// @Tags Incidents
// @Accept json
// @Security ApiKeyAuth
// @Param editing body EditingRequest true "Incident ID or null"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /incidents/editing [put]
func (h *Handler) setEditingIncident(c *gin.Context) {
	var input EditingRequest
	if !h.bind(c, h.logger.WithField("method", "setEditingIncident"), &input) {
		return
	}
	if input.ID == nil {
		h.deps.View.ClearEditingIncident()
	} else {
		h.deps.View.SetEditingIncident(*input.ID)
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the active route
// @Tags Route
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} mapview.RouteStatus
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /route [get]
func (h *Handler) getRoute(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.View.Route())
}

// @Summary Build a route
// @Description To a marker from the user's position (markerId) or between two points. Replaces the active route.
// @Tags Route
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param route body RouteRequest true "Route request"
// @Success 200 {object} mapview.RouteStatus
// @Failure 400 {object} map[string]string "Invalid request body or marker"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Marker not found"
// @Failure 502 {object} map[string]string "Routing service error"
// @Router /route [post]
func (h *Handler) buildRoute(c *gin.Context) {
	var input RouteRequest
	log := h.logger.WithField("method", "buildRoute")
	if !h.bind(c, log, &input) {
		return
	}
	ctx := c.Request.Context()

	var err error
	if input.MarkerID != nil {
		marker, ok := h.findMarker(*input.MarkerID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "marker not found"})
			return
		}
		err = h.deps.View.RouteToMarker(ctx, marker)
	} else {
		err = h.deps.View.GenerateRoute(ctx,
			geo.LatLng{Lat: input.Start.Lat, Lng: input.Start.Lng},
			geo.LatLng{Lat: input.End.Lat, Lng: input.End.Lng})
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, h.deps.View.Route())
}

// @Summary Clear the active route
// @Tags Route
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /route [delete]
func (h *Handler) clearRoute(c *gin.Context) {
	h.deps.View.ClearRoute()
	c.Status(http.StatusNoContent)
}

// findMarker ищет маркер среди загруженных для текущей области
func (h *Handler) findMarker(id int64) (models.Marker, bool) {
	for _, markers := range h.deps.View.Markers() {
		for _, m := range markers {
			if m.ID == id {
				return m, true
			}
		}
	}
	return models.Marker{}, false
}

// @Summary Search places
// @Tags Search
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Query"
// @Success 200 {array} models.Place
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Geocoding service error"
// @Router /search [get]
func (h *Handler) searchPlaces(c *gin.Context) {
	places, err := h.deps.View.SearchPlaces(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "searchPlaces"), err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// @Summary Get search state
// @Tags Search
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} mapview.SearchStatus
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /search/state [get]
func (h *Handler) getSearch(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.View.Search())
}

// @Summary Select a search result
// @Description Marks the place on the map and moves the view to it
// @Tags Search
// @Accept json
// @Security ApiKeyAuth
// @Param place body SelectPlaceRequest true "Selected place"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /search/selection [put]
func (h *Handler) selectPlace(c *gin.Context) {
	var input SelectPlaceRequest
	log := h.logger.WithField("method", "selectPlace")
	if !h.bind(c, log, &input) {
		return
	}
	if err := h.deps.View.SelectSearchResult(DTOToPlace(input)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear the selected search result
// @Tags Search
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /search/selection [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	h.deps.View.ClearSearchResult()
	c.Status(http.StatusNoContent)
}
