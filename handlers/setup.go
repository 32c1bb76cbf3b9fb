package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/wisdom-compass-api/storage"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

type characterSelection struct {
	CharacterIDs []uint `json:"characterIds" validate:"required,dive,gt=0"`
}

type philosophySelection struct {
	PhilosophyIDs []uint `json:"philosophyIds" validate:"required,dive,gt=0"`
}

var success = map[string]bool{"success": true}

// SaveCharacters replaces the caller's character selection. Used by both the
// setup flow and settings.
func (h *DBHandler) SaveCharacters(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req characterSelection
	if err := decode(r, w, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Character IDs must be an array")
		return
	}

	err := h.Store.ReplaceUserCharacters(r.Context(), id, req.CharacterIDs)
	if errors.Is(err, storage.ErrUnknownCharacter) {
		utils.WriteError(w, http.StatusBadRequest, "Unknown character ID")
		return
	}
	if err != nil {
		h.fail(w, r, "SaveCharacters", "Failed to save character selection", err)
		return
	}
	h.respond(w, http.StatusOK, success)
}

// SavePhilosophies replaces the caller's philosophy selection.
func (h *DBHandler) SavePhilosophies(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req philosophySelection
	if err := decode(r, w, &req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Philosophy IDs must be an array")
		return
	}

	err := h.Store.ReplaceUserPhilosophies(r.Context(), id, req.PhilosophyIDs)
	if errors.Is(err, storage.ErrUnknownPhilosophy) {
		utils.WriteError(w, http.StatusBadRequest, "Unknown philosophy ID")
		return
	}
	if err != nil {
		h.fail(w, r, "SavePhilosophies", "Failed to save philosophy selection", err)
		return
	}
	h.respond(w, http.StatusOK, success)
}

func (h *DBHandler) CompleteSetup(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	err := h.Store.CompleteUserSetup(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.fail(w, r, "CompleteSetup", "Failed to complete setup", err)
		return
	}
	h.respond(w, http.StatusOK, success)
}

func (h *DBHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	prefs, err := h.Store.GetUserPreferences(r.Context(), id)
	if err != nil {
		h.fail(w, r, "GetPreferences", "Failed to fetch preferences", err)
		return
	}
	h.respond(w, http.StatusOK, prefs)
}
