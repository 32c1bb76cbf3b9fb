package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/wisdom-compass-api/models"
	"github.com/andrewpaige1/wisdom-compass-api/storage"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

type reminderRequest struct {
	Title       string                   `json:"title" validate:"required,max=200"`
	Content     string                   `json:"content" validate:"required"`
	Frequency   models.ReminderFrequency `json:"frequency" validate:"required,oneof=daily weekly monthly"`
	Time        string                   `json:"time" validate:"required,len=5,datetime=15:04"`
	Type        models.ReminderType      `json:"type" validate:"required,oneof=quote journal goal"`
	ReferenceID *uint                    `json:"referenceId" validate:"omitempty,gt=0"`
}

func (h *DBHandler) GetReminders(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	reminders, err := h.Store.GetReminders(r.Context(), id)
	if err != nil {
		h.fail(w, r, "GetReminders", "Failed to fetch reminders", err)
		return
	}
	h.respond(w, http.StatusOK, reminders)
}

func (h *DBHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req reminderRequest
	if err := decode(r, w, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid reminder data")
		return
	}

	reminder := models.Reminder{
		UserID:      id,
		Title:       req.Title,
		Content:     req.Content,
		Frequency:   req.Frequency,
		Time:        req.Time,
		Type:        req.Type,
		ReferenceID: req.ReferenceID,
	}
	if err := h.Store.CreateReminder(r.Context(), &reminder); err != nil {
		h.fail(w, r, "CreateReminder", "Failed to create reminder", err)
		return
	}

	h.Metrics.IncReminder(string(reminder.Type))
	h.respond(w, http.StatusCreated, reminder)
}

func (h *DBHandler) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	reminderID, ok := pathID(r, "id")
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid reminder ID")
		return
	}

	reminder, err := h.Store.ToggleReminder(r.Context(), id, reminderID)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	if err != nil {
		h.fail(w, r, "ToggleReminder", "Failed to toggle reminder", err)
		return
	}
	h.respond(w, http.StatusOK, reminder)
}
