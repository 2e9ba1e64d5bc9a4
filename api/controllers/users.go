package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/quintech/quintech-backend/api/middleware"
	"github.com/quintech/quintech-backend/api/responses"
	"github.com/quintech/quintech-backend/internal/profiles"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/logger"
)

// OwnProfile returns the authenticated user's credentials and their most
// recent notifications.
func OwnProfile(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handle := middleware.HandleFromContext(r.Context())
		if handle == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		result, err := svc.GetOwn(r.Context(), handle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// UserProfile returns the public profile for the requested handle.
func UserProfile(svc profiles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "profile service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		handle := strings.TrimSpace(chi.URLParam(r, "handle"))
		if handle == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "handle is required"))
			return
		}

		result, err := svc.Get(r.Context(), handle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
