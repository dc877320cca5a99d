// File: handlers/availability.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"haulify/models"
	"haulify/services/availability"
	"haulify/services/pricing"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the customer-facing calendar and slot checks.
type AvailabilityHandler struct {
	Resolver *availability.Resolver
}

const maxCalendarDays = 90

// Calendar renders bookable days and their slots, starting from the "from"
// query date (default today) for "days" days (default 30).
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}
	if days > maxCalendarDays {
		days = maxCalendarDays
	}

	calendar, err := h.Resolver.Calendar(c.Request.Context(), from, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load availability", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": calendar})
}

// CheckSlot answers a single date+slot eligibility question.
func (h *AvailabilityHandler) CheckSlot(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	slot := models.SlotID(c.Query("slot"))
	if slot == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot is required"})
		return
	}

	available := h.Resolver.CheckSlot(c.Request.Context(), date, slot)
	c.JSON(http.StatusOK, gin.H{
		"date":      c.Query("date"),
		"slot":      slot,
		"available": available,
	})
}

// Catalog returns the static inventory catalog for the wizard's item picker.
func (h *AvailabilityHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": pricing.CatalogItems()})
}
