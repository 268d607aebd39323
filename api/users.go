package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrust/account"
	"github.com/skillsenselab/fintrust/auth/authctx"
	apperrors "github.com/skillsenselab/fintrust/errors"
	"github.com/skillsenselab/fintrust/server"
)

// UserHandler serves account profile and transaction reads.
type UserHandler struct {
	accounts *account.Store
}

// NewUserHandler builds the user resource handler.
func NewUserHandler(accounts *account.Store) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Me handles GET /users/me for the authenticated caller.
func (h *UserHandler) Me(c *gin.Context) {
	caller := authctx.MustFrom(c.Request.Context())
	user, ok := h.accounts.User(caller.Subject)
	if !ok {
		server.RespondWithError(c, apperrors.NotFound("user"))
		return
	}
	server.RespondOK(c, user)
}

// ByID handles GET /users/:id. The ownership guard runs before this
// handler, so the id here is always the caller's own.
func (h *UserHandler) ByID(c *gin.Context) {
	user, ok := h.accounts.User(c.Param("id"))
	if !ok {
		server.RespondWithError(c, apperrors.NotFound("user"))
		return
	}
	server.RespondOK(c, user)
}

// Transactions handles GET /users/:id/transactions.
func (h *UserHandler) Transactions(c *gin.Context) {
	server.RespondOK(c, h.accounts.Transactions(c.Param("id")))
}
