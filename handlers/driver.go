// File: handlers/driver.go
package handlers

import (
	"net/http"

	"haulify/models"
	"haulify/services/driver"

	"github.com/gin-gonic/gin"
)

// DriverHandler exposes the crew management endpoints.
type DriverHandler struct {
	Service driver.DriverService
}

func (h *DriverHandler) Create(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &d)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DriverHandler) Get(c *gin.Context) {
	d, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DriverHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	drivers, err := h.Service.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list drivers", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

func (h *DriverHandler) Update(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	d.ID = c.Param("id")

	if err := h.Service.Update(c.Request.Context(), &d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update driver", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete driver", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Assign links a driver to a booking.
func (h *DriverHandler) Assign(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingID"`
		DriverID  string `json:"driverID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.BookingID == "" || input.DriverID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookingID and driverID are required"})
		return
	}

	assignment, err := h.Service.Assign(c.Request.Context(), input.BookingID, input.DriverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// Schedule returns a driver's job assignments.
func (h *DriverHandler) Schedule(c *gin.Context) {
	assignments, err := h.Service.Schedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}
