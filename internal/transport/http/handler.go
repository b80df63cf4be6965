package http

import (
	"club-membership-service/internal/domain"
	"club-membership-service/internal/service"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

type Handler struct {
	userService *service.UserService
	clubService *service.ClubService
	logger      *slog.Logger
}

func NewHandler(us *service.UserService, cs *service.ClubService, logger *slog.Logger) *Handler {
	return &Handler{
		userService: us,
		clubService: cs,
		logger:      logger,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write json response", "error", err)
	}
}

func (h *Handler) respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	apiErr := APIError{Code: "BAD_REQUEST", Message: message}
	h.respondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: apiErr})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondBadRequest(w, r, "invalid json body")
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	apiErr := APIError{
		Code:    "INTERNAL_ERROR",
		Message: "unknown error",
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		apiErr = APIError{Code: "VALIDATION_ERROR", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		apiErr = APIError{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		status = http.StatusConflict
		apiErr = APIError{Code: "ALREADY_EXISTS", Message: err.Error()}
	case errors.Is(err, domain.ErrCapacity):
		status = http.StatusConflict
		apiErr = APIError{Code: "CLUB_FULL", Message: err.Error()}
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "http server error", "error", err)
	}

	h.respondJSON(w, r, status, ErrorResponse{Error: apiErr})
}

func NewSlogLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(t1).Milliseconds(),
				"bytes_written", ww.BytesWritten(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}

		return http.HandlerFunc(fn)
	}
}
