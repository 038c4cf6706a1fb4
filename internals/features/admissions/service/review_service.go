// file: internals/features/admissions/service/review_service.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	model "edubridge_backend/internals/features/admissions/model"
)

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
	DecisionRevert  ReviewDecision = "revert"
)

// ResolveReview is the admission state machine: pending is the only state a
// review may act on, and every decision lands on a terminal status. Reject and
// revert both require a non-empty message; approve does not.
// It has no side effects; callers persist the returned status themselves.
func ResolveReview(current model.AdmissionStatus, decision ReviewDecision, reason string) (model.AdmissionStatus, error) {
	if current != model.AdmissionStatusPending {
		return current, fiber.NewError(fiber.StatusConflict, "admission already reviewed")
	}

	switch decision {
	case DecisionApprove:
		return model.AdmissionStatusApproved, nil
	case DecisionReject:
		if strings.TrimSpace(reason) == "" {
			return current, fiber.NewError(fiber.StatusBadRequest, "rejection reason is required")
		}
		return model.AdmissionStatusRejected, nil
	case DecisionRevert:
		if strings.TrimSpace(reason) == "" {
			return current, fiber.NewError(fiber.StatusBadRequest, "revert message is required")
		}
		return model.AdmissionStatusReverted, nil
	default:
		return current, fiber.NewError(fiber.StatusBadRequest, "unknown review decision")
	}
}
