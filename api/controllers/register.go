package controllers

import (
	"net/http"

	"github.com/quintech/quintech-backend/api/responses"
	"github.com/quintech/quintech-backend/api/validators"
	"github.com/quintech/quintech-backend/internal/auth"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/logger"
)

// Signup handles onboarding a new user and returns their first session token.
func Signup(reg auth.RegisterService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reg == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := reg.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
