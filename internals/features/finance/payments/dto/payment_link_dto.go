// file: internals/features/finance/payments/dto/payment_link_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "edubridge_backend/internals/features/finance/payments/model"
)

type PaymentLinkCreateDTO struct {
	AdmissionID uuid.UUID `json:"payment_link_admission_id" validate:"required"`
	// Optional override; defaults to the admission's outstanding fee.
	Amount      *decimal.Decimal `json:"payment_link_amount,omitempty"`
	Description *string          `json:"payment_link_description,omitempty"`
}

// GatewayNotificationDTO is the subset of the Midtrans webhook payload the
// bridge acts on.
type GatewayNotificationDTO struct {
	OrderID           string `json:"order_id" validate:"required"`
	StatusCode        string `json:"status_code" validate:"required"`
	SignatureKey      string `json:"signature_key" validate:"required"`
	TransactionStatus string `json:"transaction_status" validate:"required"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	TransactionID     string `json:"transaction_id,omitempty"`
	GrossAmount       string `json:"gross_amount,omitempty"`
	PaymentType       string `json:"payment_type,omitempty"`
	SettlementTime    string `json:"settlement_time,omitempty"`
}

type PaymentLinkResponse struct {
	PaymentLinkID uuid.UUID `json:"payment_link_id"`
	AdmissionID   uuid.UUID `json:"payment_link_admission_id"`
	OrderID       string    `json:"payment_link_order_id"`

	Amount      decimal.Decimal `json:"payment_link_amount"`
	SnapToken   *string         `json:"payment_link_snap_token,omitempty"`
	RedirectURL *string         `json:"payment_link_redirect_url,omitempty"`

	Status       model.PaymentLinkStatus `json:"payment_link_status"`
	GatewayTxnID *string                 `json:"payment_link_gateway_txn_id,omitempty"`
	PaidAt       *time.Time              `json:"payment_link_paid_at,omitempty"`
	SubmissionID *uuid.UUID              `json:"payment_link_submission_id,omitempty"`

	CreatedBy *uuid.UUID `json:"payment_link_created_by,omitempty"`
	CreatedAt time.Time  `json:"payment_link_created_at"`
	UpdatedAt time.Time  `json:"payment_link_updated_at"`
}

func ToPaymentLinkResponse(m model.PaymentLinkModel) PaymentLinkResponse {
	return PaymentLinkResponse{
		PaymentLinkID: m.PaymentLinkID,
		AdmissionID:   m.PaymentLinkAdmissionID,
		OrderID:       m.PaymentLinkOrderID,
		Amount:        m.PaymentLinkAmount,
		SnapToken:     m.PaymentLinkSnapToken,
		RedirectURL:   m.PaymentLinkRedirectURL,
		Status:        m.PaymentLinkStatus,
		GatewayTxnID:  m.PaymentLinkGatewayTxnID,
		PaidAt:        m.PaymentLinkPaidAt,
		SubmissionID:  m.PaymentLinkSubmissionID,
		CreatedBy:     m.PaymentLinkCreatedBy,
		CreatedAt:     m.PaymentLinkCreatedAt,
		UpdatedAt:     m.PaymentLinkUpdatedAt,
	}
}

func ToPaymentLinkResponses(list []model.PaymentLinkModel) []PaymentLinkResponse {
	out := make([]PaymentLinkResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToPaymentLinkResponse(v))
	}
	return out
}
