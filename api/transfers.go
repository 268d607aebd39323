package api

import (
	"fmt"
	"strconv"
	"strings"
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

const maxReferenceLength = 200

// Reference carries no validation tag: overlong references are truncated
// to 200 characters, never rejected.
type transferRequest struct {
	ToUserID  string  `json:"toUserId" validate:"required,accountid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Reference string  `json:"reference"`
}

type transferResponse struct {
	Success    bool    `json:"success"`
	TransferID string  `json:"transferId"`
	From       string  `json:"fromUserId"`
	To         string  `json:"toUserId"`
	Amount     float64 `json:"amount"`
	Reference  string  `json:"reference"`
	Message    string  `json:"message"`
}

// TransferHandler accepts transfer submissions debited from the caller.
type TransferHandler struct {
	accounts  *account.Store
	maxAmount float64
	log       *logger.Logger
}

// NewTransferHandler builds the transfer endpoint handler.
func NewTransferHandler(accounts *account.Store, maxAmount float64, log *logger.Logger) *TransferHandler {
	return &TransferHandler{
		accounts:  accounts,
		maxAmount: maxAmount,
		log:       log.WithComponent("transfers"),
	}
}

// Create handles POST /transfers. The per-transfer ceiling is checked
// before the caller's balance so the response never reveals whether an
// over-ceiling amount would also have exceeded the balance.
func (h *TransferHandler) Create(c *gin.Context) {
	caller := authctx.MustFrom(c.Request.Context())

	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}
	req.ToUserID = strings.TrimSpace(req.ToUserID)
	if err := validation.Validate(req); err != nil {
		server.RespondWithError(c, err)
		return
	}

	if req.Amount > h.maxAmount {
		server.RespondWithError(c, apperrors.Validation(fmt.Sprintf("Transfer amount cannot exceed %s.", formatAmount(h.maxAmount))))
		return
	}
	if req.Amount > h.accounts.Balance(caller.Subject) {
		server.RespondWithError(c, apperrors.InsufficientFunds("Transfer amount exceeds your available balance."))
		return
	}

	reference := util.TruncateReference(req.Reference, maxReferenceLength, "Transfer")
	id := fmt.Sprintf("T%d", time.Now().UnixMilli())

	h.log.Info("transfer accepted", map[string]interface{}{
		"transfer_id": id,
		"from":        caller.Subject,
		"to":          req.ToUserID,
		"amount":      req.Amount,
	})

	server.RespondCreated(c, transferResponse{
		Success:    true,
		TransferID: id,
		From:       caller.Subject,
		To:         req.ToUserID,
		Amount:     req.Amount,
		Reference:  reference,
		Message:    "Transfer submitted successfully.",
	})
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
