package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotwise/models"
	"slotwise/services/contact"
	"slotwise/utils"
)

// ContactHandler serves the contact-form endpoints.
type ContactHandler struct {
	Service contact.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// CreateContact stores a public contact-form message.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message received", "contact": created})
}

// ListContacts returns the authenticated user's messages.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	contacts, err := h.Service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// GetContact returns one message.
func (h *ContactHandler) GetContact(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	msg, err := h.Service.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": msg})
}

// DeleteContact removes one message.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
