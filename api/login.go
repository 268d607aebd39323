package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrust/auth/credential"
	"github.com/skillsenselab/fintrust/auth/token"
	apperrors "github.com/skillsenselab/fintrust/errors"
	"github.com/skillsenselab/fintrust/logger"
	"github.com/skillsenselab/fintrust/observability"
	"github.com/skillsenselab/fintrust/server"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler exchanges a credential pair for a signed bearer token.
type LoginHandler struct {
	verifier *credential.Verifier
	tokens   *token.Service
	log      *logger.Logger
	metrics  *observability.Metrics
}

// NewLoginHandler builds the login endpoint handler.
func NewLoginHandler(verifier *credential.Verifier, tokens *token.Service, log *logger.Logger, metrics *observability.Metrics) *LoginHandler {
	return &LoginHandler{
		verifier: verifier,
		tokens:   tokens,
		log:      log.WithComponent("login"),
		metrics:  metrics,
	}
}

// Login handles POST /login. Format violations are rejected with 400
// before the store is consulted; a missing email is the only one with a
// distinct message. Verification failures for unknown accounts and wrong
// passwords produce the same 401 response.
func (h *LoginHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}

	subject, err := h.verifier.Verify(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrEmailRequired):
			server.RespondWithError(c, apperrors.Validation("Email is required."))
		case errors.Is(err, credential.ErrMalformedInput):
			h.metrics.RecordAuthFailure(c.Request.Context(), "malformed")
			server.RespondWithError(c, apperrors.Validation("Invalid credentials."))
		default:
			h.metrics.RecordAuthFailure(c.Request.Context(), "credentials")
			h.log.Warn("login rejected")
			server.RespondWithError(c, apperrors.InvalidCredentials())
		}
		return
	}

	signed, err := h.tokens.Issue(subject, credential.NormalizeEmail(req.Email))
	if err != nil {
		h.log.WithError(err).Error("token signing failed")
		server.RespondWithError(c, apperrors.Internal(err))
		return
	}

	h.log.Info("login succeeded", map[string]interface{}{"subject": subject})
	server.RespondOK(c, loginResponse{Token: signed})
}
