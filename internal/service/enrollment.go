package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// EnrollmentService lets a user read their own enrollment.
type EnrollmentService struct {
	enrollments EnrollmentStore
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(enrollments EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

// GetEnrollment returns the user's enrollment with its first address, or NotFound.
func (s *EnrollmentService) GetEnrollment(ctx context.Context, userID string) (enrollment *model.Enrollment, err error) {
	ctx, span := startSpan(ctx, "enrollment.get", attribute.String("user.id", userID))
	defer func() { endSpan(span, err) }()

	return s.enrollments.FindByUser(ctx, userID)
}
