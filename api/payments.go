package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrust/account"
	"github.com/skillsenselab/fintrust/auth/authctx"
	apperrors "github.com/skillsenselab/fintrust/errors"
	"github.com/skillsenselab/fintrust/logger"
	"github.com/skillsenselab/fintrust/server"
	"github.com/skillsenselab/fintrust/util"
	"github.com/skillsenselab/fintrust/validation"
)

type paymentRequest struct {
	PayeeName string  `json:"payeeName"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
}

type paymentResponse struct {
	Success   bool    `json:"success"`
	PaymentID string  `json:"paymentId"`
	From      string  `json:"fromUserId"`
	Payee     string  `json:"payeeName"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Message   string  `json:"message"`
}

// PaymentHandler accepts bill payments debited from the caller.
type PaymentHandler struct {
	accounts  *account.Store
	maxAmount float64
	log       *logger.Logger
}

// NewPaymentHandler builds the payment endpoint handler.
func NewPaymentHandler(accounts *account.Store, maxAmount float64, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		accounts:  accounts,
		maxAmount: maxAmount,
		log:       log.WithComponent("payments"),
	}
}

// Create handles POST /payments. Ordering matches transfers: the ceiling
// check runs before the balance check.
func (h *PaymentHandler) Create(c *gin.Context) {
	caller := authctx.MustFrom(c.Request.Context())

	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}
	// Overlong payee names and references are truncated to 200
	// characters, never rejected.
	req.PayeeName = util.TruncateReference(req.PayeeName, maxReferenceLength, "")
	if err := validation.New().
		Required("payeeName", req.PayeeName).
		Positive("amount", req.Amount).
		Validate(); err != nil {
		server.RespondWithError(c, err)
		return
	}

	if req.Amount > h.maxAmount {
		server.RespondWithError(c, apperrors.Validation(fmt.Sprintf("Payment amount cannot exceed %s.", formatAmount(h.maxAmount))))
		return
	}
	if req.Amount > h.accounts.Balance(caller.Subject) {
		server.RespondWithError(c, apperrors.InsufficientFunds("Payment amount exceeds your available balance."))
		return
	}

	reference := util.TruncateReference(req.Reference, maxReferenceLength, "Bill payment")
	id := fmt.Sprintf("P%d", time.Now().UnixMilli())

	h.log.Info("payment accepted", map[string]interface{}{
		"payment_id": id,
		"from":       caller.Subject,
		"amount":     req.Amount,
	})

	server.RespondCreated(c, paymentResponse{
		Success:   true,
		PaymentID: id,
		From:      caller.Subject,
		Payee:     req.PayeeName,
		Amount:    req.Amount,
		Reference: reference,
		Message:   "Payment submitted successfully.",
	})
}
