// file: internals/features/finance/settlement/service/settlement_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edubridge_backend/internals/constants"
	admmodel "edubridge_backend/internals/features/admissions/model"
	dirmodel "edubridge_backend/internals/features/directory/model"
	ledgermodel "edubridge_backend/internals/features/finance/ledger/model"
	ledgersvc "edubridge_backend/internals/features/finance/ledger/service"
	submodel "edubridge_backend/internals/features/finance/submissions/model"
)

type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

const referenceTypeAdmission = "admission"

// lockForUpdate takes a row lock on the upcoming read. The settlement guard
// depends on it: without the lock two reviewers can both observe "pending".
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// ReviewFeeSubmission settles or rejects one pending fee submission.
//
// Reject flips the status and records the reason; nothing else moves.
//
// Approve runs the whole settlement in one transaction: lock the submission
// (pending-state guard makes settlement at-most-once), lock the admission,
// resolve the course mapping / consultancy / agent, compute the split, append
// the ledger credits, bump admission.fee_paid, and mark the submission
// approved with its split snapshot. Any failure rolls everything back.
func ReviewFeeSubmission(
	db *gorm.DB,
	submissionID uuid.UUID,
	decision ReviewDecision,
	reviewerID uuid.UUID,
	reason string,
) (submodel.FeeSubmissionModel, error) {
	var sub submodel.FeeSubmissionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).
			First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "fee submission not found")
			}
			return err
		}
		if sub.SubmissionStatus != submodel.SubmissionStatusPending {
			return fiber.NewError(fiber.StatusConflict, "fee submission already reviewed")
		}

		now := time.Now()

		switch decision {
		case DecisionReject:
			trimmed := strings.TrimSpace(reason)
			if trimmed == "" {
				return fiber.NewError(fiber.StatusBadRequest, "rejection reason is required")
			}
			sub.SubmissionStatus = submodel.SubmissionStatusRejected
			sub.SubmissionRejectionReason = &trimmed
			sub.SubmissionReviewedBy = &reviewerID
			sub.SubmissionReviewedAt = &now
			return tx.Save(&sub).Error

		case DecisionApprove:
			return approveLocked(tx, &sub, reviewerID, now)

		default:
			return fiber.NewError(fiber.StatusBadRequest, "unknown review decision")
		}
	})

	return sub, err
}

func approveLocked(tx *gorm.DB, sub *submodel.FeeSubmissionModel, reviewerID uuid.UUID, now time.Time) error {
	var admission admmodel.AdmissionModel
	if err := lockForUpdate(tx).
		First(&admission, "admission_id = ?", sub.SubmissionAdmissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "admission not found")
		}
		return err
	}

	var mapping dirmodel.UniversityCourseMappingModel
	if err := tx.First(&mapping, "course_mapping_id = ?", admission.AdmissionCourseMappingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "course mapping not found")
		}
		return err
	}

	var consultancy dirmodel.ConsultancyModel
	if err := tx.First(&consultancy, "consultancy_id = ?", admission.AdmissionConsultancyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "consultancy not found")
		}
		return err
	}

	in := SplitInput{
		AmountReceived:         sub.SubmissionAmountReceived,
		UniversityFee:          mapping.CourseMappingUniversityFee,
		MappingCommissionValue: mapping.CourseMappingCommissionValue,
	}
	if admission.AdmissionAgentID != nil {
		var agent dirmodel.AgentModel
		if err := tx.First(&agent, "agent_id = ?", *admission.AdmissionAgentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "agent not found")
			}
			return err
		}
		in.Agent = &AgentTerms{
			CommissionType: agent.AgentCommissionType,
			CommissionRate: agent.AgentCommissionRate,
			CommissionFlat: agent.AgentCommissionFlat,
		}
	}

	split := ComputeSplit(in)
	refID := admission.AdmissionID
	refType := referenceTypeAdmission

	if split.UniversityFee.GreaterThan(decimal.Zero) {
		entry, err := ledgersvc.NewEntry(
			constants.EntityUniversity, admission.AdmissionUniversityID,
			ledgermodel.TransactionCredit, split.UniversityFee,
			ledgermodel.PurposeAdmissionFee,
			&refID, &refType, nil, &reviewerID,
		)
		if err != nil {
			return err
		}
		if _, err := ledgersvc.Append(tx, entry); err != nil {
			return err
		}
	}

	if admission.AdmissionAgentID != nil && split.AgentCommission.GreaterThan(decimal.Zero) {
		entry, err := ledgersvc.NewEntry(
			constants.EntityAgent, *admission.AdmissionAgentID,
			ledgermodel.TransactionCredit, split.AgentCommission,
			ledgermodel.PurposeCommission,
			&refID, &refType, nil, &reviewerID,
		)
		if err != nil {
			return err
		}
		if _, err := ledgersvc.Append(tx, entry); err != nil {
			return err
		}
	}

	if split.ConsultancyProfit.GreaterThan(decimal.Zero) {
		entry, err := ledgersvc.NewEntry(
			constants.EntityConsultancy, admission.AdmissionConsultancyID,
			ledgermodel.TransactionCredit, split.ConsultancyProfit,
			ledgermodel.PurposeCommission,
			&refID, &refType, nil, &reviewerID,
		)
		if err != nil {
			return err
		}
		if _, err := ledgersvc.Append(tx, entry); err != nil {
			return err
		}
	}

	admission.AdmissionFeePaid = admission.AdmissionFeePaid.Add(sub.SubmissionAmountReceived)
	if err := tx.Save(&admission).Error; err != nil {
		return err
	}

	sub.SubmissionStatus = submodel.SubmissionStatusApproved
	sub.SubmissionReviewedBy = &reviewerID
	sub.SubmissionReviewedAt = &now
	sub.SubmissionUniversityFee = &split.UniversityFee
	sub.SubmissionAgentCommission = &split.AgentCommission
	sub.SubmissionConsultancyProfit = &split.ConsultancyProfit
	return tx.Save(sub).Error
}
