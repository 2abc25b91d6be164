// internal/handlers/event.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/services"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type EventHandler struct {
	events       *store.EventStore
	descriptions *services.DescriptionService
}

type EventRequest struct {
	Name        string             `json:"name" validate:"required,min=2,max=150"`
	Date        string             `json:"date" validate:"required,calendar_date"`
	Time        string             `json:"time" validate:"required,clock_time"`
	Location    string             `json:"location" validate:"required,max=200"`
	Category    string             `json:"category" validate:"required,event_category"`
	Description string             `json:"description" validate:"max=5000"`
	Links       []models.EventLink `json:"links,omitempty"`
}

type GenerateDescriptionRequest struct {
	Keywords string `json:"keywords" validate:"required,max=300"`
	Details  string `json:"details" validate:"max=1000"`
}

func NewEventHandler(events *store.EventStore, descriptions *services.DescriptionService) *EventHandler {
	return &EventHandler{
		events:       events,
		descriptions: descriptions,
	}
}

func (r *EventRequest) toEvent() models.Event {
	return models.Event{
		Name:        r.Name,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Category:    r.Category,
		Description: r.Description,
		Links:       r.Links,
	}
}

// GET /events?category=Music
func (h *EventHandler) ListEvents(c *gin.Context) {
	category := c.Query("category")

	var events []models.Event
	if category == "" || category == "All" {
		events = h.events.List()
	} else {
		events = h.events.ListByCategory(category)
	}

	utils.SuccessResponse(c, gin.H{
		"events":        events,
		"savedEventIds": h.events.SavedIDs(),
	})
}

// GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, ok := h.events.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Event")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"event": event,
		"saved": h.events.IsSaved(event.ID),
	})
}

// POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	event := h.events.Add(req.toEvent())
	utils.CreatedResponse(c, gin.H{"event": event})
}

// PUT /events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	existing, ok := h.events.Get(id)
	if !ok {
		utils.NotFoundResponse(c, "Event")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	event := req.toEvent()
	event.ID = existing.ID
	event.CreatedAt = existing.CreatedAt
	h.events.Update(event)

	utils.SuccessResponse(c, gin.H{"event": event})
}

// DELETE /events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.events.Get(id); !ok {
		utils.NotFoundResponse(c, "Event")
		return
	}

	h.events.Delete(id)
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// POST /events/:id/save toggles membership in the saved set.
func (h *EventHandler) ToggleSave(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.events.Get(id); !ok {
		utils.NotFoundResponse(c, "Event")
		return
	}

	saved := h.events.ToggleSaved(id)
	utils.SuccessResponse(c, gin.H{
		"eventId": id,
		"saved":   saved,
	})
}

// GET /events/saved
func (h *EventHandler) SavedEvents(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"events": h.events.SavedEvents()})
}

// POST /events/generate-description
func (h *EventHandler) GenerateDescription(c *gin.Context) {
	var req GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	description, err := h.descriptions.GenerateEventDescription(c.Request.Context(), req.Keywords, req.Details)
	if err != nil {
		if errors.Is(err, services.ErrAINotConfigured) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "AI_UNAVAILABLE", "Description generation is not configured", nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to generate description")
		return
	}

	utils.SuccessResponse(c, gin.H{"description": description})
}
