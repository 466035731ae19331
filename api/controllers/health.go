package controllers

import (
	"context"
	"net/http"

	"github.com/mesafina/mesafina-backend/api/responses"
	"github.com/mesafina/mesafina-backend/pkg/config"
	pkgerrors "github.com/mesafina/mesafina-backend/pkg/errors"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

const envHeader = "X-Mesafina-Env"

// Pinger is satisfied by every backing client the readiness probe cares about.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every wired dependency answers a ping.
// A nil dependency is treated as deliberately unwired and skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP, redisP, pubsubP Pinger) http.HandlerFunc {
	deps := []struct {
		name string
		ping Pinger
	}{
		{"database", dbP},
		{"redis", redisP},
		{"pubsub", pubsubP},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{}
		for _, dep := range deps {
			if dep.ping == nil {
				checks[dep.name] = "skipped"
				continue
			}
			if err := dep.ping.Ping(r.Context()); err != nil {
				checks[dep.name] = "down"
				err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.name+" unavailable").
					WithDetails(map[string]any{"checks": checks})
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			checks[dep.name] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
