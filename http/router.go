package http

import (
	"net/http"

	"go.uber.org/zap"

	"nrt-dosing/service"
)

// NewRouter wires the dosing API. A nil limiter disables rate limiting.
func NewRouter(
	dosingService *service.DosingService,
	limiter *RateLimiter,
	logger *zap.Logger,
) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	dosingHandler := NewDosingHandler(dosingService, logger)
	referenceHandler := NewReferenceHandler(dosingService, logger)

	limited := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}
		return RateLimitMiddleware(limiter, logger, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/dosing/calculate", limited(dosingHandler.Calculate))
	mux.Handle("/dosing/resolve", limited(dosingHandler.Resolve))
	mux.Handle("/dosing/table", limited(referenceHandler.DosingTable))
	mux.Handle("/dosing/heavy-smoker-table", limited(referenceHandler.HeavySmokerTable))
	mux.HandleFunc("/version", referenceHandler.Version)
	mux.HandleFunc("/healthz", Healthz)

	return RequestIDMiddleware(AccessLogMiddleware(logger, mux))
}
