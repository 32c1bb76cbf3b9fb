package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/andrewpaige1/wisdom-compass-api/metrics"
	"github.com/andrewpaige1/wisdom-compass-api/storage"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// DBHandler serves the JSON API on top of storage.
type DBHandler struct {
	Store   storage.Storage
	Log     *zap.Logger
	Metrics *metrics.Recorder
	Now     func() time.Time
}

func NewDBHandler(store storage.Storage, logger *zap.Logger, recorder *metrics.Recorder) *DBHandler {
	return &DBHandler{
		Store:   store,
		Log:     logger,
		Metrics: recorder,
		Now:     time.Now,
	}
}

func (h *DBHandler) respond(w http.ResponseWriter, status int, v interface{}) {
	if err := utils.WriteJSON(w, status, v); err != nil {
		h.Log.Warn("Failed to write response", zap.Error(err))
	}
}

// fail logs err under op and sends a generic 500 with msg.
func (h *DBHandler) fail(w http.ResponseWriter, r *http.Request, op, msg string, err error) {
	h.Log.Error(op+": "+msg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
	)
	utils.WriteError(w, http.StatusInternalServerError, msg)
}

// userID returns the authenticated caller or writes a 401.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return id, true
}

// decode reads a JSON body into dst and runs struct validation.
func decode(r *http.Request, w http.ResponseWriter, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return validate.Struct(dst)
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (uint, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
