// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"haulify/services/booking"
	"haulify/services/pricing"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the quote wizard and confirmation endpoints.
type BookingHandler struct {
	Sessions booking.SessionService
	Engine   booking.Engine
}

// InitiateSession opens a fresh quote session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	resp, err := h.Sessions.Initiate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quote session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession applies one wizard step to the session and returns the
// recomputed state.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var input booking.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Sessions.Update(c.Request.Context(), sessionID, input)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession returns the current session state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession discards a session before confirmation.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// ConfirmBooking finalizes the session into a persisted booking and returns
// the payment client secret.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionID is required"})
		return
	}

	record, clientSecret, err := h.Engine.Confirm(c.Request.Context(), input.SessionID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":      record,
		"clientSecret": clientSecret,
	})
}

// writeBookingError maps service errors onto HTTP statuses.
func writeBookingError(c *gin.Context, err error) {
	var bErr *booking.BookingError
	if errors.As(err, &bErr) {
		status := http.StatusBadRequest
		switch bErr.Code {
		case "sessionNotFound":
			status = http.StatusNotFound
		case "slotUnavailable":
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": bErr.Message, "code": bErr.Code})
		return
	}

	var itemErr *pricing.InvalidItemError
	if errors.As(err, &itemErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": itemErr.Error(), "code": "invalidItem"})
		return
	}
	var tierErr *pricing.UnknownTierError
	if errors.As(err, &tierErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": tierErr.Error(), "code": "unknownTier"})
		return
	}
	if errors.Is(err, pricing.ErrNegativeDistance) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "invalidDistance"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
}
