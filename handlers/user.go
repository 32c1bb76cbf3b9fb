package handlers

import (
	"errors"
	"net/http"

	"github.com/andrewpaige1/wisdom-compass-api/storage"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

// GetAuthUser returns the signed-in user.
func (h *DBHandler) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	user, err := h.Store.GetUser(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.fail(w, r, "GetAuthUser", "Failed to fetch user", err)
		return
	}
	h.respond(w, http.StatusOK, user)
}
