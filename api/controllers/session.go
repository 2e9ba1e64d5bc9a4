package controllers

import (
	"net/http"

	"github.com/quintech/quintech-backend/api/responses"
	"github.com/quintech/quintech-backend/api/validators"
	"github.com/quintech/quintech-backend/internal/auth"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/logger"
)

// Login exchanges account credentials for a session token.
func Login(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
