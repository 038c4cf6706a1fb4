// file: internals/features/finance/payments/service/midtrans_test.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "edubridge_backend/internals/features/finance/payments/model"
)

func TestMapGatewayStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		txnStatus  string
		fraud      string
		wantStatus model.PaymentLinkStatus
		wantStage  bool
	}{
		{"settlement stages", "settlement", "", model.PaymentLinkStatusPaid, true},
		{"capture accept stages", "capture", "accept", model.PaymentLinkStatusPaid, true},
		{"capture challenge waits", "capture", "challenge", model.PaymentLinkStatusPending, false},
		{"capture deny fails", "capture", "deny", model.PaymentLinkStatusFailed, false},
		{"pending stays pending", "pending", "", model.PaymentLinkStatusPending, false},
		{"deny fails", "deny", "", model.PaymentLinkStatusFailed, false},
		{"failure fails", "failure", "", model.PaymentLinkStatusFailed, false},
		{"cancel", "cancel", "", model.PaymentLinkStatusCanceled, false},
		{"expire", "expire", "", model.PaymentLinkStatusExpired, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, fields := MapGatewayStatus(model.PaymentLinkStatusPending, tc.txnStatus, tc.fraud, now)
			assert.Equal(t, tc.wantStatus, got)
			assert.Equal(t, tc.wantStage, fields.StageSubmission)
			if tc.wantStage {
				assert.NotNil(t, fields.PaidAt)
			}
		})
	}
}

func TestMapGatewayStatus_UnknownKeepsCurrent(t *testing.T) {
	got, fields := MapGatewayStatus(model.PaymentLinkStatusPaid, "weird", "", time.Now())
	assert.Equal(t, model.PaymentLinkStatusPaid, got)
	assert.False(t, fields.StageSubmission)
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Aarav Sharma Koirala")
	assert.Equal(t, "Aarav", first)
	assert.Equal(t, "Sharma Koirala", last)

	first, last = splitName("Mira")
	assert.Equal(t, "Mira", first)
	assert.Equal(t, "", last)

	first, _ = splitName("  ")
	assert.Equal(t, "Student", first)
}

func TestVerifyNotificationSignature(t *testing.T) {
	InitMidtrans("SB-Mid-server-testkey")
	defer InitMidtrans("")

	orderID := "ADM-1234ABCD-1700000000"
	sum := sha512.Sum512([]byte(orderID + "200" + "500000.00" + "SB-Mid-server-testkey"))
	sig := hex.EncodeToString(sum[:])

	assert.True(t, VerifyNotificationSignature(orderID, "200", "500000.00", sig))
	// Midtrans sends lowercase hex; accept uppercase too.
	assert.True(t, VerifyNotificationSignature(orderID, "200", "500000.00", strings.ToUpper(sig)))

	assert.False(t, VerifyNotificationSignature(orderID, "200", "500000.01", sig), "tampered amount")
	assert.False(t, VerifyNotificationSignature(orderID, "201", "500000.00", sig), "tampered status code")
	assert.False(t, VerifyNotificationSignature(orderID, "200", "500000.00", ""), "missing signature")

	InitMidtrans("")
	assert.False(t, VerifyNotificationSignature(orderID, "200", "500000.00", sig), "gateway disabled")
}
