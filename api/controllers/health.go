package controllers

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/quintech/quintech-backend/api/responses"
	"github.com/quintech/quintech-backend/pkg/config"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/logger"
)

// Pinger is implemented by backing stores that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Quintech-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady probes every backing store before reporting ready. All probes
// run so the log carries the full set of unavailable dependencies, not just
// the first one.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Quintech-Env", cfg.App.Env)

		names := make([]string, 0, len(deps))
		for name := range deps {
			names = append(names, name)
		}
		sort.Strings(names)

		var errs []error
		var failed []string
		for _, name := range names {
			dep := deps[name]
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				errs = append(errs, err)
				failed = append(failed, name)
			}
		}

		if len(errs) > 0 {
			wrapped := pkgerrors.Wrap(
				pkgerrors.CodeDependency,
				multierr.Combine(errs...),
				"dependency "+strings.Join(failed, ", ")+" unavailable",
			)
			responses.WriteError(r.Context(), logg, w, wrapped)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
