// file: internals/features/finance/submissions/dto/fee_submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "edubridge_backend/internals/features/finance/submissions/model"
)

type FeeSubmissionCreateDTO struct {
	AdmissionID    uuid.UUID         `json:"submission_admission_id" validate:"required"`
	AmountReceived decimal.Decimal   `json:"submission_amount_received" validate:"required"`
	PaymentMode    model.PaymentMode `json:"submission_payment_mode" validate:"required,oneof=cash bank_transfer cheque online gateway"`
	PaymentDate    *time.Time        `json:"submission_payment_date,omitempty"`
	TransactionID  *string           `json:"submission_transaction_id,omitempty"`
	ProofURLs      []string          `json:"submission_proof_urls,omitempty" validate:"omitempty,dive,url"`
	Notes          *string           `json:"submission_notes,omitempty"`
}

type FeeSubmissionReviewDTO struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
	// Reason is mandatory on reject.
	Reason string `json:"reason,omitempty"`
}

type FeeSubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	AdmissionID  uuid.UUID `json:"submission_admission_id"`

	AmountReceived decimal.Decimal   `json:"submission_amount_received"`
	PaymentMode    model.PaymentMode `json:"submission_payment_mode"`
	PaymentDate    time.Time         `json:"submission_payment_date"`
	TransactionID  *string           `json:"submission_transaction_id,omitempty"`
	ProofURLs      []string          `json:"submission_proof_urls,omitempty"`
	Notes          *string           `json:"submission_notes,omitempty"`

	Status          model.SubmissionStatus `json:"submission_status"`
	RejectionReason *string                `json:"submission_rejection_reason,omitempty"`
	ReviewedBy      *uuid.UUID             `json:"submission_reviewed_by,omitempty"`
	ReviewedAt      *time.Time             `json:"submission_reviewed_at,omitempty"`

	UniversityFee     *decimal.Decimal `json:"submission_university_fee,omitempty"`
	AgentCommission   *decimal.Decimal `json:"submission_agent_commission,omitempty"`
	ConsultancyProfit *decimal.Decimal `json:"submission_consultancy_profit,omitempty"`

	SubmittedBy *uuid.UUID `json:"submission_submitted_by,omitempty"`
	CreatedAt   time.Time  `json:"submission_created_at"`
	UpdatedAt   time.Time  `json:"submission_updated_at"`

	// Outstanding balance of the admission at read time. Over-payment is
	// allowed; the caller surfaces a warning when this goes negative.
	AdmissionOutstanding *decimal.Decimal `json:"admission_outstanding_fee,omitempty"`
}

func ToFeeSubmissionResponse(m model.FeeSubmissionModel) FeeSubmissionResponse {
	return FeeSubmissionResponse{
		SubmissionID:      m.SubmissionID,
		AdmissionID:       m.SubmissionAdmissionID,
		AmountReceived:    m.SubmissionAmountReceived,
		PaymentMode:       m.SubmissionPaymentMode,
		PaymentDate:       m.SubmissionPaymentDate,
		TransactionID:     m.SubmissionTransactionID,
		ProofURLs:         m.SubmissionProofURLs,
		Notes:             m.SubmissionNotes,
		Status:            m.SubmissionStatus,
		RejectionReason:   m.SubmissionRejectionReason,
		ReviewedBy:        m.SubmissionReviewedBy,
		ReviewedAt:        m.SubmissionReviewedAt,
		UniversityFee:     m.SubmissionUniversityFee,
		AgentCommission:   m.SubmissionAgentCommission,
		ConsultancyProfit: m.SubmissionConsultancyProfit,
		SubmittedBy:       m.SubmissionSubmittedBy,
		CreatedAt:         m.SubmissionCreatedAt,
		UpdatedAt:         m.SubmissionUpdatedAt,
	}
}

func ToFeeSubmissionResponses(list []model.FeeSubmissionModel) []FeeSubmissionResponse {
	out := make([]FeeSubmissionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeSubmissionResponse(v))
	}
	return out
}
