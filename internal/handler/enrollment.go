package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// EnrollmentAPI is what the enrollment handler needs from the service layer.
type EnrollmentAPI interface {
	GetEnrollment(ctx context.Context, userID string) (*model.Enrollment, error)
}

// EnrollmentHandler holds the HTTP handler for /enrollments.
type EnrollmentHandler struct {
	svc    EnrollmentAPI
	logger *slog.Logger
}

// NewEnrollmentHandler constructs an EnrollmentHandler.
func NewEnrollmentHandler(svc EnrollmentAPI, logger *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc, logger: logger}
}

// Get handles GET /enrollments
func (h *EnrollmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	enrollment, err := h.svc.GetEnrollment(r.Context(), UserIDFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, enrollment)
}
