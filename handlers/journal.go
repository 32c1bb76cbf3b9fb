package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andrewpaige1/wisdom-compass-api/models"
	"github.com/andrewpaige1/wisdom-compass-api/storage"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

type journalRequest struct {
	Text    string `json:"text" validate:"required,max=10000"`
	QuoteID *uint  `json:"quoteId" validate:"omitempty,gt=0"`
}

func (h *DBHandler) GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	entries, err := h.Store.GetJournalEntries(r.Context(), id)
	if err != nil {
		h.fail(w, r, "GetJournalEntries", "Failed to fetch journal entries", err)
		return
	}
	h.respond(w, http.StatusOK, entries)
}

func (h *DBHandler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req journalRequest
	if err := decode(r, w, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		utils.WriteError(w, http.StatusBadRequest, "Invalid journal entry data")
		return
	}

	entry := models.JournalEntry{
		UserID:  id,
		Text:    req.Text,
		QuoteID: req.QuoteID,
	}
	err := h.Store.CreateJournalEntry(r.Context(), &entry)
	if errors.Is(err, storage.ErrUnknownQuote) {
		utils.WriteError(w, http.StatusBadRequest, "Unknown quote ID")
		return
	}
	if err != nil {
		h.fail(w, r, "CreateJournalEntry", "Failed to create journal entry", err)
		return
	}
	h.respond(w, http.StatusCreated, entry)
}

func (h *DBHandler) ToggleJournalPin(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	entryID, ok := pathID(r, "id")
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid journal entry ID")
		return
	}

	entry, err := h.Store.ToggleJournalPin(r.Context(), id, entryID)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Journal entry not found")
		return
	}
	if err != nil {
		h.fail(w, r, "ToggleJournalPin", "Failed to update journal entry", err)
		return
	}
	h.respond(w, http.StatusOK, entry)
}
