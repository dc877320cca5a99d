// File: handlers/geo.go
package handlers

import (
	"net/http"

	"haulify/models"
	"haulify/services/geo"

	"github.com/gin-gonic/gin"
)

// GeoHandler exposes distance and geocoding lookups used by the quote
// wizard's address step.
type GeoHandler struct {
	Geo geo.DistanceService
}

// Distance returns the driving distance in kilometers between two addresses.
func (h *GeoHandler) Distance(c *gin.Context) {
	var input struct {
		Pickup  models.Address `json:"pickup"`
		Dropoff models.Address `json:"dropoff"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Pickup.Line == "" || input.Dropoff.Line == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pickup and dropoff addresses are required"})
		return
	}

	km, err := h.Geo.DistanceKm(c.Request.Context(), input.Pickup, input.Dropoff)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "distance lookup failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"distanceKm": km})
}

// Geocode resolves a free-form address to coordinates.
func (h *GeoHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	lat, lng, err := h.Geo.Geocode(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding failed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lat": lat, "lng": lng})
}
