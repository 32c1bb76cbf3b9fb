package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/andrewpaige1/wisdom-compass-api/metrics"
	"github.com/andrewpaige1/wisdom-compass-api/models"
	"github.com/andrewpaige1/wisdom-compass-api/storage"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

const dayLayout = "2006-01-02"

// GetDailyQuote returns the caller's quote of the day. Browser sessions keep
// the same quote for the UTC day unless ?refresh=true is passed.
func (h *DBHandler) GetDailyQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	principal, _ := utils.PrincipalFrom(ctx)
	day := h.Now().UTC().Format(dayLayout)
	refresh := r.URL.Query().Get("refresh") == "true"

	if principal.SessionID != "" && !refresh {
		if quote := h.sessionQuote(r, principal.SessionID, day); quote != nil {
			h.Metrics.IncDailyQuote(metrics.SourceSession)
			h.respond(w, http.StatusOK, quote)
			return
		}
	}

	daily, err := h.Store.GetDailyQuote(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "No quotes available")
		return
	}
	if err != nil {
		h.fail(w, r, "GetDailyQuote", "Failed to fetch daily quote", err)
		return
	}

	if principal.SessionID != "" {
		if err := h.Store.SetSessionDailyQuote(ctx, principal.SessionID, daily.Quote.ID, day); err != nil {
			h.Log.Warn("GetDailyQuote: failed to remember quote on session", zap.Error(err))
		}
	}

	h.Metrics.IncDailyQuote(string(daily.Source))
	h.respond(w, http.StatusOK, daily.Quote)
}

func (h *DBHandler) sessionQuote(r *http.Request, sid, day string) *models.Quote {
	session, err := h.Store.GetSession(r.Context(), sid)
	if err != nil || session.DailyQuoteID == nil || session.DailyQuoteDate != day {
		return nil
	}
	quote, err := h.Store.GetQuote(r.Context(), *session.DailyQuoteID)
	if err != nil {
		return nil
	}
	return quote
}

func (h *DBHandler) GetAllQuotes(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(w, r); !ok {
		return
	}

	quotes, err := h.Store.GetAllQuotes(r.Context())
	if err != nil {
		h.fail(w, r, "GetAllQuotes", "Failed to fetch quotes", err)
		return
	}
	h.respond(w, http.StatusOK, quotes)
}

func (h *DBHandler) GetQuoteSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	// chi routes on RawPath when the client escaped more than Go would, and
	// the parameter is still encoded then.
	text := chi.URLParam(r, "text")
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(text)
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid suggestion text")
			return
		}
		text = decoded
	}

	quotes, err := h.Store.GetQuoteSuggestions(r.Context(), id, text)
	if err != nil {
		h.fail(w, r, "GetQuoteSuggestions", "Failed to fetch quote suggestions", err)
		return
	}
	h.respond(w, http.StatusOK, quotes)
}

// PinQuote pins a quote and returns the daily reminder created for it.
func (h *DBHandler) PinQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	quoteID, ok := pathID(r, "id")
	if !ok {
		utils.WriteError(w, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	reminder, err := h.Store.PinQuote(r.Context(), id, quoteID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "Quote not found")
		return
	case errors.Is(err, storage.ErrAlreadyPinned):
		utils.WriteError(w, http.StatusConflict, "Quote is already pinned")
		return
	case err != nil:
		h.fail(w, r, "PinQuote", "Failed to pin quote", err)
		return
	}

	h.Metrics.IncPin()
	h.Metrics.IncReminder(string(reminder.Type))
	h.respond(w, http.StatusCreated, reminder)
}
