package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"nrt-dosing/domain"
	"nrt-dosing/service"
)

type DosingHandler struct {
	service *service.DosingService
	logger  *zap.Logger
}

func NewDosingHandler(service *service.DosingService, logger *zap.Logger) *DosingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DosingHandler{service: service, logger: logger}
}

type resolveRequest struct {
	CigarettesPerDay *int `json:"cigarettes_per_day"`
}

// Calculate converts an intake and returns the derived value and dosing.
// An intake without result answers 200 with null fields.
func (h *DosingHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if !h.acceptJSONPost(w, r) {
		return
	}

	var input domain.IntakeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("invalid calculate body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateFromIntake(r.Context(), input)
	if err != nil {
		h.logger.Error("calculate failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, result)
}

// Resolve returns the dosing for a cigarettes-per-day value.
func (h *DosingHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !h.acceptJSONPost(w, r) {
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("invalid resolve body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.CigarettesPerDay == nil {
		http.Error(w, "cigarettes_per_day is required", http.StatusBadRequest)
		return
	}

	rec, err := h.service.Recommend(r.Context(), *req.CigarettesPerDay)
	if errors.Is(err, service.ErrInvalidCigarettes) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.Error("resolve failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, rec)
}

func (h *DosingHandler) acceptJSONPost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode never writes a 200.
func (h *DosingHandler) writeJSON(w http.ResponseWriter, v any) {
	writeJSON(w, h.logger, v)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("error writing response", zap.Error(err))
	}
}
