// File: handlers/admin.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	bookingRepo "haulify/database/repository/booking"
	scheduleRepo "haulify/database/repository/schedule"
	"haulify/models"
	"haulify/services/admin"
	"haulify/services/availability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler encapsulates the back-office operations.
type AdminHandler struct {
	Settings  *admin.SettingsService
	Analytics *admin.AnalyticsService
	Marketing *admin.MarketingService
	Bookings  bookingRepo.BookingRepository
	Schedule  scheduleRepo.ScheduleRepository
	Resolver  *availability.Resolver
}

// Login authenticates the configured operator account and issues a JWT.
func (ah *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := admin.Authenticate(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBookings pages through bookings, optionally filtered by status.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	bookings, err := ah.Bookings.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// BookingsForDay lists every booking on one calendar date, the dispatch
// view the drivers are assigned from.
func (ah *AdminHandler) BookingsForDay(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	bookings, err := ah.Bookings.GetByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "bookings": bookings})
}

// UpdateBookingStatus moves a booking through its lifecycle.
func (ah *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	switch input.Status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
		return
	}

	if err := ah.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// Summary serves the dashboard aggregates.
func (ah *AdminHandler) Summary(c *gin.Context) {
	windowDays, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	summary, err := ah.Analytics.Summary(c.Request.Context(), windowDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build analytics summary", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPricingSettings returns the stored overrides, or an empty document when
// the defaults are in force.
func (ah *AdminHandler) GetPricingSettings(c *gin.Context) {
	settings, err := ah.Settings.GetPricing(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load pricing settings", "details": err.Error()})
		return
	}
	if settings == nil {
		settings = &models.PricingSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// SavePricingSettings stores a new override document; subsequent quotes use
// it immediately.
func (ah *AdminHandler) SavePricingSettings(c *gin.Context) {
	var settings models.PricingSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := ah.Settings.SavePricing(c.Request.Context(), &settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save pricing settings", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// GetScheduleRules returns the raw weekly windows and blackout dates.
func (ah *AdminHandler) GetScheduleRules(c *gin.Context) {
	rules, err := ah.Schedule.GetRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule rules", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// UpsertWeeklySlot creates or updates one weekly operating window.
func (ah *AdminHandler) UpsertWeeklySlot(c *gin.Context) {
	var slot models.WeeklySlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.Start < 0 || slot.End > 24*60 || slot.Start >= slot.End {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot window must satisfy 0 <= start < end <= 1440"})
		return
	}

	if err := ah.Schedule.UpsertWeeklySlot(c.Request.Context(), &slot); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save weekly slot", "details": err.Error()})
		return
	}
	ah.Resolver.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, slot)
}

// DeleteWeeklySlot removes one weekly operating window.
func (ah *AdminHandler) DeleteWeeklySlot(c *gin.Context) {
	if err := ah.Schedule.DeleteWeeklySlot(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete weekly slot", "details": err.Error()})
		return
	}
	ah.Resolver.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// AddBlackout marks a calendar date as fully unavailable.
func (ah *AdminHandler) AddBlackout(c *gin.Context) {
	var blackout models.BlackoutDate
	if err := c.ShouldBindJSON(&blackout); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse("2006-01-02", blackout.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if blackout.ID == "" {
		blackout.ID = uuid.New().String()
	}

	if err := ah.Schedule.AddBlackout(c.Request.Context(), &blackout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save blackout date", "details": err.Error()})
		return
	}
	ah.Resolver.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, blackout)
}

// DeleteBlackout reopens a blacked-out date.
func (ah *AdminHandler) DeleteBlackout(c *gin.Context) {
	if err := ah.Schedule.DeleteBlackout(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete blackout date", "details": err.Error()})
		return
	}
	ah.Resolver.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// SendCampaign enqueues a marketing email batch for the async worker.
func (ah *AdminHandler) SendCampaign(c *gin.Context) {
	var input struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Subject == "" || input.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject and body are required"})
		return
	}

	campaignID, recipients, err := ah.Marketing.EnqueueCampaign(c.Request.Context(), input.Subject, input.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue campaign", "details": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"campaignID": campaignID,
		"recipients": recipients,
	})
}
