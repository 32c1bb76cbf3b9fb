package handlers

import "net/http"

func (h *DBHandler) GetCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.Store.GetCharacters(r.Context())
	if err != nil {
		h.fail(w, r, "GetCharacters", "Failed to fetch characters", err)
		return
	}
	h.respond(w, http.StatusOK, characters)
}

func (h *DBHandler) GetPhilosophies(w http.ResponseWriter, r *http.Request) {
	philosophies, err := h.Store.GetPhilosophies(r.Context())
	if err != nil {
		h.fail(w, r, "GetPhilosophies", "Failed to fetch philosophies", err)
		return
	}
	h.respond(w, http.StatusOK, philosophies)
}
