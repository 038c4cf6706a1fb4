// file: internals/features/finance/payments/controller/payment_link_controller.go
package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	admmodel "edubridge_backend/internals/features/admissions/model"
	dto "edubridge_backend/internals/features/finance/payments/dto"
	model "edubridge_backend/internals/features/finance/payments/model"
	service "edubridge_backend/internals/features/finance/payments/service"
	submodel "edubridge_backend/internals/features/finance/submissions/model"
	helper "edubridge_backend/internals/helpers"
	authmw "edubridge_backend/internals/middlewares/auth"
)

type PaymentLinkController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentLinkController(db *gorm.DB) *PaymentLinkController {
	return &PaymentLinkController{DB: db, Validate: validator.New()}
}

var paymentLinkSortable = map[string]string{
	"created_at": "payment_link_created_at",
	"amount":     "payment_link_amount",
	"status":     "payment_link_status",
}

// POST /payment-links
// Issues a Snap checkout for an admission's outstanding fee.
func (ctl *PaymentLinkController) Create(c *fiber.Ctx) error {
	var req dto.PaymentLinkCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}

	var admission admmodel.AdmissionModel
	if err := ctl.DB.First(&admission, "admission_id = ?", req.AdmissionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "admission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch admission")
	}
	if cid, ok := authmw.ConsultancyID(c); ok && admission.AdmissionConsultancyID != cid {
		return helper.JsonError(c, fiber.StatusForbidden, "admission belongs to another consultancy")
	}

	amount := admission.OutstandingFee()
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment amount must be greater than zero")
	}

	orderID := fmt.Sprintf("ADM-%s-%d", strings.ToUpper(admission.AdmissionID.String()[:8]), time.Now().Unix())

	desc := ""
	if req.Description != nil {
		desc = *req.Description
	}
	email := ""
	if admission.AdmissionStudentEmail != nil {
		email = *admission.AdmissionStudentEmail
	}
	phone := ""
	if admission.AdmissionStudentPhone != nil {
		phone = *admission.AdmissionStudentPhone
	}

	token, redirectURL, err := service.CreateSnapCheckout(service.CheckoutInput{
		OrderID:     orderID,
		Amount:      amount,
		StudentName: admission.AdmissionStudentName,
		Email:       email,
		Phone:       phone,
		Description: desc,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway rejected the checkout")
	}

	row := model.PaymentLinkModel{
		PaymentLinkAdmissionID: admission.AdmissionID,
		PaymentLinkOrderID:     orderID,
		PaymentLinkAmount:      amount,
		PaymentLinkSnapToken:   &token,
		PaymentLinkRedirectURL: &redirectURL,
		PaymentLinkStatus:      model.PaymentLinkStatusPending,
	}
	if uid, err := authmw.UserID(c); err == nil {
		row.PaymentLinkCreatedBy = &uid
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to store payment link")
	}

	return helper.JsonCreated(c, "payment link created", dto.ToPaymentLinkResponse(row))
}

// GET /payment-links
func (ctl *PaymentLinkController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	tx := ctl.DB.Model(&model.PaymentLinkModel{})
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("payment_link_status = ?", st)
	}
	if raw := strings.TrimSpace(c.Query("admission_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid admission_id")
		}
		tx = tx.Where("payment_link_admission_id = ?", id)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count payment links")
	}

	var rows []model.PaymentLinkModel
	if err := tx.
		Order(p.OrderClause(paymentLinkSortable, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to fetch payment links")
	}

	return helper.JsonList(c, dto.ToPaymentLinkResponses(rows), helper.BuildMeta(total, p))
}

// POST /payments/webhook (public)
// Gateway callback. A confirmed payment stages a pending fee submission so the
// money still goes through reviewer settlement; the link row is the
// idempotency guard against duplicate notifications.
func (ctl *PaymentLinkController) Webhook(c *fiber.Ctx) error {
	var notif dto.GatewayNotificationDTO
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification body")
	}
	if err := ctl.Validate.Struct(notif); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorErrorsToMap(err))
	}
	if !service.VerifyNotificationSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var link model.PaymentLinkModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&link, "payment_link_order_id = ?", notif.OrderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "unknown order id")
			}
			return err
		}

		// Duplicate delivery of a terminal notification is a no-op.
		if link.PaymentLinkStatus.IsTerminal() {
			return nil
		}

		now := time.Now()
		next, fields := service.MapGatewayStatus(link.PaymentLinkStatus, notif.TransactionStatus, notif.FraudStatus, now)

		link.PaymentLinkStatus = next
		if txnID := strings.TrimSpace(notif.TransactionID); txnID != "" {
			link.PaymentLinkGatewayTxnID = &txnID
		}
		if fields.PaidAt != nil {
			link.PaymentLinkPaidAt = fields.PaidAt
		}

		if fields.StageSubmission && link.PaymentLinkSubmissionID == nil {
			note := "staged by payment gateway notification"
			sub := submodel.FeeSubmissionModel{
				SubmissionAdmissionID:    link.PaymentLinkAdmissionID,
				SubmissionAmountReceived: link.PaymentLinkAmount,
				SubmissionPaymentMode:    submodel.PaymentModeGateway,
				SubmissionPaymentDate:    now,
				SubmissionTransactionID:  link.PaymentLinkGatewayTxnID,
				SubmissionNotes:          &note,
				SubmissionStatus:         submodel.SubmissionStatusPending,
			}
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
			link.PaymentLinkSubmissionID = &sub.SubmissionID
		}

		return tx.Save(&link).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.JsonOK(c, "notification processed", nil)
}
