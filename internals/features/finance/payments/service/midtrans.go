// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"

	"edubridge_backend/internals/configs"
	model "edubridge_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

var activeServerKey string

// InitMidtrans must be called at app bootstrap. Environment selection comes
// from MIDTRANS_USE_PROD.
func InitMidtrans(serverKey string) {
	activeServerKey = strings.TrimSpace(serverKey)
	if activeServerKey == "" {
		return // gateway features disabled; link creation will error
	}
	if configs.MidtransUseProd {
		SnapClient.New(activeServerKey, midtrans.Production)
	} else {
		SnapClient.New(activeServerKey, midtrans.Sandbox)
	}
}

// VerifyNotificationSignature checks the Midtrans webhook signature:
// SHA512(order_id + status_code + gross_amount + server key).
func VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	want := strings.ToLower(strings.TrimSpace(signatureKey))
	if want == "" || activeServerKey == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + activeServerKey))
	return hex.EncodeToString(sum[:]) == want
}

/* =========================================================
   Snap checkout
========================================================= */

type CheckoutInput struct {
	OrderID     string
	Amount      decimal.Decimal
	StudentName string
	Email       string
	Phone       string
	Description string
}

// CreateSnapCheckout issues a Snap payment link and returns token + redirect URL.
func CreateSnapCheckout(in CheckoutInput) (string, string, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return "", "", errors.New("invalid payment amount")
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return "", "", errors.New("order id is required")
	}

	gross := in.Amount.Round(0).IntPart()
	first, last := splitName(in.StudentName)

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: in.Email,
			Phone: in.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       in.OrderID,
				Price:    gross,
				Qty:      1,
				Name:     defaultString(in.Description, "Admission fee payment"),
				Category: "admission_fee",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

/* =========================================================
   Webhook status mapping
========================================================= */

type MappedFields struct {
	PaidAt *time.Time
	// StageSubmission: the payment is confirmed and a pending fee submission
	// should be created for review.
	StageSubmission bool
}

// MapGatewayStatus converts a Midtrans notification into the internal link
// status. Only settlement (or capture accepted by fraud screening) stages a
// fee submission.
func MapGatewayStatus(current model.PaymentLinkStatus, transactionStatus, fraudStatus string, now time.Time) (model.PaymentLinkStatus, MappedFields) {
	ts := strings.ToLower(transactionStatus)
	fraud := strings.ToLower(fraudStatus)

	switch ts {
	case "capture":
		if fraud == "accept" {
			return model.PaymentLinkStatusPaid, MappedFields{PaidAt: &now, StageSubmission: true}
		}
		if fraud == "challenge" {
			return model.PaymentLinkStatusPending, MappedFields{}
		}
		return model.PaymentLinkStatusFailed, MappedFields{}

	case "settlement":
		return model.PaymentLinkStatusPaid, MappedFields{PaidAt: &now, StageSubmission: true}

	case "pending":
		return model.PaymentLinkStatusPending, MappedFields{}

	case "deny", "failure":
		return model.PaymentLinkStatusFailed, MappedFields{}

	case "cancel":
		return model.PaymentLinkStatusCanceled, MappedFields{}

	case "expire":
		return model.PaymentLinkStatusExpired, MappedFields{}
	}

	return current, MappedFields{}
}

/* =========================================================
   Utils
========================================================= */

func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "Student", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func defaultString(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
