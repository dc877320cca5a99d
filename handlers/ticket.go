// File: handlers/ticket.go
package handlers

import (
	"net/http"

	"haulify/models"
	"haulify/services/ticket"

	"github.com/gin-gonic/gin"
)

// TicketHandler exposes the customer support endpoints.
type TicketHandler struct {
	Service ticket.TicketService
}

// Open creates a new support ticket from the public contact form.
func (h *TicketHandler) Open(c *gin.Context) {
	var t models.SupportTicket
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Open(c.Request.Context(), &t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TicketHandler) Get(c *gin.Context) {
	t, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.Service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tickets", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// Reply appends a staff message to a ticket thread.
func (h *TicketHandler) Reply(c *gin.Context) {
	var input struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Author == "" {
		input.Author = "support"
	}

	if err := h.Service.Reply(c.Request.Context(), c.Param("id"), input.Author, input.Body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"replied": true})
}

func (h *TicketHandler) Close(c *gin.Context) {
	if err := h.Service.Close(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to close ticket", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true})
}
