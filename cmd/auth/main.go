// The auth service verifies credentials and issues bearer tokens. It
// refuses to start without a signing secret in the environment.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/fintrust/api"
	"github.com/skillsenselab/fintrust/auth/credential"
	"github.com/skillsenselab/fintrust/auth/token"
	"github.com/skillsenselab/fintrust/config"
	"github.com/skillsenselab/fintrust/logger"
	"github.com/skillsenselab/fintrust/observability"
	"github.com/skillsenselab/fintrust/server"
	"github.com/skillsenselab/fintrust/server/middleware"
	"github.com/skillsenselab/fintrust/util"
)

const serviceName = "fintrust-auth"

func main() {
	cfg := config.LoadAuth()
	log := logger.New(&cfg.Logging, serviceName)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}
	log.Info("Configuration loaded", map[string]interface{}{
		"port":       cfg.Port,
		"jwt_secret": util.MaskSecret(cfg.JWTSecret, 4),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	meterProvider, err := observability.InitMeter(ctx, observability.MeterConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.Metrics.Endpoint,
		Insecure:    true,
	})
	if err != nil {
		log.Fatal("Metrics init failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	tracerProvider, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.Metrics.Endpoint,
		Insecure:    true,
		SampleRate:  1.0,
	})
	if err != nil {
		log.Fatal("Tracing init failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	var metrics *observability.Metrics
	if meterProvider != nil {
		metrics, err = observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			log.Fatal("Metrics instruments failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	store, err := credential.NewStore(credential.DefaultSeeds())
	if err != nil {
		log.Fatal("Credential store init failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	tokens, err := token.NewService(token.Config{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	})
	if err != nil {
		log.Fatal("Token service init failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	srvCfg := server.Config{Port: cfg.Port}
	srvCfg.ApplyDefaults()
	srv := server.New(srvCfg, log)
	srv.ApplyDefaults(serviceName, metrics)

	api.AuthRoutes{
		Login: api.NewLoginHandler(credential.NewVerifier(store), tokens, log, metrics),
		RateLimit: middleware.RateLimitConfig{
			Group:   "login",
			Window:  cfg.LoginRateLimit.Window,
			Max:     cfg.LoginRateLimit.Max,
			Metrics: metrics,
		},
		BodyLimit: cfg.LoginBodyLimit,
	}.Register(srv.GinEngine())

	if err := srv.Start(ctx); err != nil {
		log.Fatal("Server start failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	<-ctx.Done()
	stop()

	shutdownCtx := context.Background()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if meterProvider != nil {
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Metrics shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	if tracerProvider != nil {
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Tracing shutdown error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
