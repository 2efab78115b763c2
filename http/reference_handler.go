package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"nrt-dosing/service"
)

type ReferenceHandler struct {
	service *service.DosingService
	logger  *zap.Logger
	now     func() time.Time
}

func NewReferenceHandler(service *service.DosingService, logger *zap.Logger) *ReferenceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceHandler{service: service, logger: logger, now: time.Now}
}

func (h *ReferenceHandler) DosingTable(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, h.logger, h.service.DosingTable())
}

func (h *ReferenceHandler) HeavySmokerTable(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, h.logger, h.service.HeavySmokerTable())
}

func (h *ReferenceHandler) Version(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}
	writeJSON(w, h.logger, service.CurrentVersion(h.now()))
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
