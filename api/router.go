package api

import (
	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/fintrust/observability"
	"github.com/skillsenselab/fintrust/server/endpoint"
	"github.com/skillsenselab/fintrust/server/middleware"
)

// AuthRoutes wires the authentication service surface: health probe and
// the rate-limited, body-capped login endpoint.
type AuthRoutes struct {
	Login     *LoginHandler
	RateLimit middleware.RateLimitConfig
	BodyLimit string
}

// Register attaches the auth routes to the engine.
func (r AuthRoutes) Register(engine *gin.Engine) {
	engine.GET("/health", endpoint.Health())

	login := engine.Group("/login",
		middleware.RateLimit(r.RateLimit),
		middleware.GinWrap(middleware.BodySizeLimit(r.BodyLimit)),
	)
	login.POST("", r.Login.Login)
}

// ResourceRoutes wires the resource service surface. Every route except
// the health probe sits behind the rate limiter and the bearer-token
// gate; the per-user reads additionally require ownership of the id in
// the path.
type ResourceRoutes struct {
	Users     *UserHandler
	Transfers *TransferHandler
	Payments  *PaymentHandler
	Tokens    middleware.TokenVerifier
	Metrics   *observability.Metrics
	RateLimit middleware.RateLimitConfig
}

// Register attaches the resource routes to the engine.
func (r ResourceRoutes) Register(engine *gin.Engine) {
	engine.GET("/health", endpoint.Health())

	authed := engine.Group("/",
		middleware.RateLimit(r.RateLimit),
		middleware.Auth(r.Tokens, r.Metrics),
	)

	users := authed.Group("/users")
	users.GET("/me", r.Users.Me)
	users.GET("/:id",
		middleware.RequireOwner("id", "You can only access your own account."),
		r.Users.ByID,
	)
	users.GET("/:id/transactions",
		middleware.RequireOwner("id", "You can only access your own transactions."),
		r.Users.Transactions,
	)

	authed.POST("/transfers", r.Transfers.Create)
	authed.POST("/payments", r.Payments.Create)
}
