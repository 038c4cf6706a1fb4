// file: internals/features/admissions/service/review_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "edubridge_backend/internals/features/admissions/model"
)

func TestResolveReview_PendingTransitions(t *testing.T) {
	tests := []struct {
		name     string
		decision ReviewDecision
		reason   string
		want     model.AdmissionStatus
	}{
		{"approve without reason", DecisionApprove, "", model.AdmissionStatusApproved},
		{"approve with note", DecisionApprove, "documents verified", model.AdmissionStatusApproved},
		{"reject with reason", DecisionReject, "passport copy unreadable", model.AdmissionStatusRejected},
		{"revert with message", DecisionRevert, "wrong course selected, resubmit", model.AdmissionStatusReverted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveReview(model.AdmissionStatusPending, tc.decision, tc.reason)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.IsTerminal())
		})
	}
}

func TestResolveReview_RejectRequiresReason(t *testing.T) {
	got, err := ResolveReview(model.AdmissionStatusPending, DecisionReject, "   ")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, model.AdmissionStatusPending, got)
}

func TestResolveReview_RevertRequiresMessage(t *testing.T) {
	_, err := ResolveReview(model.AdmissionStatusPending, DecisionRevert, "")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestResolveReview_TerminalStatesConflict(t *testing.T) {
	for _, st := range []model.AdmissionStatus{
		model.AdmissionStatusApproved,
		model.AdmissionStatusRejected,
		model.AdmissionStatusReverted,
	} {
		got, err := ResolveReview(st, DecisionApprove, "")
		require.Error(t, err, "status %s must not be reviewable", st)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusConflict, fe.Code)
		assert.Equal(t, st, got, "status must be untouched on conflict")
	}
}

func TestResolveReview_UnknownDecision(t *testing.T) {
	_, err := ResolveReview(model.AdmissionStatusPending, ReviewDecision("escalate"), "x")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
