package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/supplyline-io/supplyline-backend/api/responses"
	"github.com/supplyline-io/supplyline-backend/pkg/config"
	pkgerrors "github.com/supplyline-io/supplyline-backend/pkg/errors"
	"github.com/supplyline-io/supplyline-backend/pkg/logger"
)

// Pinger is the probe surface shared by the DB and Redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Supplyline-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, dbProbe, redisProbe Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Supplyline-Env", cfg.App.Env)

		var probeErr error
		if dbProbe != nil {
			if err := dbProbe.Ping(r.Context()); err != nil {
				probeErr = multierr.Append(probeErr, err)
			}
		}
		if redisProbe != nil {
			if err := redisProbe.Ping(r.Context()); err != nil {
				probeErr = multierr.Append(probeErr, err)
			}
		}
		if probeErr != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, probeErr, "readiness probe failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
